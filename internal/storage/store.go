// Package storage persists interpreted shots as run directories: a
// metadata.json plus the keyframe stream in JSON and CSV form.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jmallek/shotpath/internal/camera"
	"github.com/jmallek/shotpath/internal/interp"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type ShotMetadata struct {
	ID                string        `json:"id"`
	Plan              string        `json:"plan"`
	Timestamp         time.Time     `json:"timestamp"`
	RequestedDuration float64       `json:"requested_duration"`
	TotalDuration     float64       `json:"total_duration"`
	Keyframes         int           `json:"keyframes"`
	Validation        interp.Report `json:"validation"`
}

// Save writes one interpreted shot under a fresh run directory and returns
// the run id.
func (s *Store) Save(planName string, requested float64, result *interp.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", planName, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := ShotMetadata{
		ID:                runID,
		Plan:              planName,
		Timestamp:         time.Now(),
		RequestedDuration: requested,
		TotalDuration:     camera.TotalDuration(result.Commands),
		Keyframes:         len(result.Commands),
		Validation:        result.Validation,
	}

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(runDir, "keyframes.json"), result.Commands); err != nil {
		return "", err
	}
	if err := writeCSV(filepath.Join(runDir, "keyframes.csv"), result.Commands); err != nil {
		return "", err
	}
	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCSV(path string, cmds []camera.Command) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"time", "px", "py", "pz", "tx", "ty", "tz", "duration", "easing"}
	if err := w.Write(header); err != nil {
		return err
	}

	t := 0.0
	for _, c := range cmds {
		t += c.Duration
		row := []string{
			strconv.FormatFloat(t, 'f', 6, 64),
			strconv.FormatFloat(c.Position.X(), 'f', 6, 64),
			strconv.FormatFloat(c.Position.Y(), 'f', 6, 64),
			strconv.FormatFloat(c.Position.Z(), 'f', 6, 64),
			strconv.FormatFloat(c.Target.X(), 'f', 6, 64),
			strconv.FormatFloat(c.Target.Y(), 'f', 6, 64),
			strconv.FormatFloat(c.Target.Z(), 'f', 6, 64),
			strconv.FormatFloat(c.Duration, 'f', 6, 64),
			c.Easing,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) List() ([]ShotMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []ShotMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]ShotMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*ShotMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta ShotMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadKeyframes reads back the full command stream of a run.
func (s *Store) LoadKeyframes(runID string) ([]camera.Command, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "keyframes.json"))
	if err != nil {
		return nil, err
	}
	var cmds []camera.Command
	if err := json.Unmarshal(data, &cmds); err != nil {
		return nil, err
	}
	return cmds, nil
}
