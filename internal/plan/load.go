package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a motion plan from a YAML or JSON file, chosen by extension.
func Load(path string) (*MotionPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p := &MotionPlan{}
	if filepath.Ext(path) == ".json" {
		err = json.Unmarshal(data, p)
	} else {
		err = yaml.Unmarshal(data, p)
	}
	if err != nil {
		return nil, fmt.Errorf("parse plan %s: %w", path, err)
	}
	return p, nil
}
