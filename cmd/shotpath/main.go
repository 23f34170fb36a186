package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jmallek/shotpath/internal/analysis"
	"github.com/jmallek/shotpath/internal/camera"
	"github.com/jmallek/shotpath/internal/config"
	"github.com/jmallek/shotpath/internal/export"
	"github.com/jmallek/shotpath/internal/interp"
	"github.com/jmallek/shotpath/internal/plan"
	"github.com/jmallek/shotpath/internal/scene"
	"github.com/jmallek/shotpath/internal/storage"
	"github.com/jmallek/shotpath/internal/viz"
)

var (
	dataDir    string
	configFile string
	sceneFile  string
	envFile    string
	preset     string
	duration   float64
	initPos    []float64
	initTarget []float64
	svgOut     string
	svgWidth   int
	svgHeight  int
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shotpath",
		Short: "compile motion plans into camera keyframe streams",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".shotpath", "data directory")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "verbose logging")

	interpretCmd := &cobra.Command{
		Use:   "interpret [plan]",
		Short: "interpret a motion plan against a scene",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInterpret,
	}
	interpretCmd.Flags().StringVar(&configFile, "config", "", "interpreter config file (yaml)")
	interpretCmd.Flags().StringVar(&sceneFile, "scene", "", "scene analysis file (yaml/json)")
	interpretCmd.Flags().StringVar(&envFile, "env", "", "environmental analysis file (yaml/json)")
	interpretCmd.Flags().StringVar(&preset, "preset", "", "use a preset plan instead of a file")
	interpretCmd.Flags().Float64Var(&duration, "duration", 0, "override requested duration")
	interpretCmd.Flags().Float64SliceVar(&initPos, "pos", []float64{0, 1, 5}, "initial camera position")
	interpretCmd.Flags().Float64SliceVar(&initTarget, "target", []float64{0, 0, 0}, "initial camera target")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list interpreted shots",
		RunE:  runList,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot camera position traces",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "path length and speed report",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}

	previewCmd := &cobra.Command{
		Use:   "preview [run_id]",
		Short: "play a shot back in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreview,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export shot metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export shot keyframes to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export shot keyframes to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render the camera path as a top-down SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "", "output file (default stdout)")
	exportSVGCmd.Flags().StringVar(&sceneFile, "scene", "", "scene analysis file for the subject box")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 640, "svg width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 480, "svg height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("%-10s %d steps, %.1fs\n", name, len(p.Steps), p.Metadata.RequestedDuration)
			}
			return nil
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate [run_id]",
		Short: "re-validate a saved shot against a scene",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}
	validateCmd.Flags().StringVar(&sceneFile, "scene", "", "scene analysis file (yaml/json)")
	validateCmd.Flags().StringVar(&configFile, "config", "", "interpreter config file (yaml)")

	rootCmd.AddCommand(interpretCmd, listCmd, plotCmd, analyzeCmd, previewCmd,
		exportCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, presetsCmd, validateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() (*zap.SugaredLogger, error) {
	if verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		return log.Sugar(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return log.Sugar(), nil
}

func loadInputs() (*scene.SceneAnalysis, *scene.EnvironmentalAnalysis, error) {
	var sc *scene.SceneAnalysis
	var env *scene.EnvironmentalAnalysis
	var err error
	if sceneFile != "" {
		if sc, err = scene.LoadScene(sceneFile); err != nil {
			return nil, nil, fmt.Errorf("failed to load scene: %w", err)
		}
	}
	if envFile != "" {
		if env, err = scene.LoadEnvironment(envFile); err != nil {
			return nil, nil, fmt.Errorf("failed to load environment: %w", err)
		}
	}
	return sc, env, nil
}

func vec3(s []float64) mgl64.Vec3 {
	v := mgl64.Vec3{}
	for i := 0; i < len(s) && i < 3; i++ {
		v[i] = s[i]
	}
	return v
}

func runInterpret(cmd *cobra.Command, args []string) error {
	var p *plan.MotionPlan
	var name string
	switch {
	case preset != "":
		p = config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		name = preset
	case len(args) == 1:
		loaded, err := plan.Load(args[0])
		if err != nil {
			return err
		}
		p = loaded
		name = trimExt(args[0])
	default:
		return fmt.Errorf("either a plan file or --preset is required")
	}

	if duration > 0 {
		p.Metadata.RequestedDuration = duration
	}

	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	sc, env, err := loadInputs()
	if err != nil {
		return err
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	it, err := interp.New(cfg.Interp(), log)
	if err != nil {
		return err
	}

	initial := camera.State{Position: vec3(initPos), Target: vec3(initTarget)}
	result, err := it.Interpret(p, sc, env, initial)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(name, p.Metadata.RequestedDuration, result)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("keyframes: %d\n", len(result.Commands))
	fmt.Printf("total duration: %.3fs\n", camera.TotalDuration(result.Commands))
	if result.Validation.Valid {
		fmt.Println("validation: ok")
	} else {
		fmt.Printf("validation: FAILED (%s, keyframes %v)\n", result.Validation.Code, result.Validation.Violations)
	}
	for _, w := range result.Validation.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	return nil
}

func trimExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func runList(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no shots found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPLAN\tTIME\tDURATION\tKEYFRAMES\tVALID")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%d\t%v\n",
			run.ID,
			run.Plan,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.TotalDuration,
			run.Keyframes,
			run.Validation.Valid,
		)
	}
	return w.Flush()
}

func runPlot(cmd *cobra.Command, args []string) error {
	cmds, err := storage.New(dataDir).LoadKeyframes(args[0])
	if err != nil {
		return err
	}
	fmt.Println(viz.RenderTraces(cmds))
	fmt.Println(viz.RenderSpeed(cmds))
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	cmds, err := st.LoadKeyframes(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("shot: %s\n", meta.ID)
	fmt.Printf("plan: %s\n\n", meta.Plan)
	fmt.Printf("keyframes:     %d\n", len(cmds))
	fmt.Printf("play time:     %.3fs\n", camera.TotalDuration(cmds))
	fmt.Printf("path length:   %.3f units\n", analysis.ArcLength(cmds))
	fmt.Printf("mean speed:    %.3f units/s\n", analysis.MeanSpeed(cmds))
	fmt.Printf("peak speed:    %.3f units/s\n", analysis.PeakSpeed(cmds))
	lo, hi := analysis.Extrema(cmds)
	fmt.Printf("x range:       [%.2f, %.2f]\n", lo.X(), hi.X())
	fmt.Printf("y range:       [%.2f, %.2f]\n", lo.Y(), hi.Y())
	fmt.Printf("z range:       [%.2f, %.2f]\n", lo.Z(), hi.Z())
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	cmds, err := storage.New(dataDir).LoadKeyframes(args[0])
	if err != nil {
		return err
	}
	m := viz.NewModel(args[0], cmds)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	meta, err := storage.New(dataDir).Load(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSONStdout(meta, nil)
}

func runExportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	cmds, err := st.LoadKeyframes(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSONStdout(meta, cmds)
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	cmds, err := storage.New(dataDir).LoadKeyframes(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSVStdout(cmds)
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	cmds, err := storage.New(dataDir).LoadKeyframes(args[0])
	if err != nil {
		return err
	}
	var sc *scene.SceneAnalysis
	if sceneFile != "" {
		if sc, err = scene.LoadScene(sceneFile); err != nil {
			return err
		}
	}
	svg := export.PathToSVG(cmds, sc, svgWidth, svgHeight)
	if svgOut == "" {
		fmt.Println(svg)
		return nil
	}
	return os.WriteFile(svgOut, []byte(svg), 0644)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cmds, err := storage.New(dataDir).LoadKeyframes(args[0])
	if err != nil {
		return err
	}
	var sc *scene.SceneAnalysis
	if sceneFile != "" {
		if sc, err = scene.LoadScene(sceneFile); err != nil {
			return err
		}
	}
	cfg := config.DefaultConfig()
	if configFile != "" {
		if cfg, err = config.Load(configFile); err != nil {
			return err
		}
	}
	if cfg.MaxKeyframes > 0 && len(cmds) > cfg.MaxKeyframes {
		return fmt.Errorf("%w: %d > %d", interp.ErrKeyframeLimit, len(cmds), cfg.MaxKeyframes)
	}

	report := interp.Validate(cmds, sc, cfg.MaxVelocity)
	if report.Valid {
		fmt.Println("validation: ok")
	} else {
		fmt.Printf("validation: FAILED (%s, keyframes %v)\n", report.Code, report.Violations)
	}
	for _, w := range report.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	return nil
}
