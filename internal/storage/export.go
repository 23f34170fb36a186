package storage

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"

	"github.com/jmallek/shotpath/internal/camera"
)

// ExportJSONStdout writes a run's metadata and keyframes to stdout as one
// JSON document.
func ExportJSONStdout(meta *ShotMetadata, cmds []camera.Command) error {
	doc := struct {
		Metadata  *ShotMetadata    `json:"metadata"`
		Keyframes []camera.Command `json:"keyframes"`
	}{meta, cmds}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// ExportCSVStdout writes a run's keyframes to stdout as CSV.
func ExportCSVStdout(cmds []camera.Command) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "px", "py", "pz", "tx", "ty", "tz", "duration", "easing"}); err != nil {
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
