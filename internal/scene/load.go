package scene

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadScene reads a scene analysis from a YAML or JSON file, chosen by
// extension.
func LoadScene(path string) (*SceneAnalysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc := &SceneAnalysis{}
	if err := unmarshal(path, data, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

// LoadEnvironment reads an environmental analysis from a YAML or JSON file.
func LoadEnvironment(path string) (*EnvironmentalAnalysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	env := &EnvironmentalAnalysis{}
	if err := unmarshal(path, data, env); err != nil {
		return nil, err
	}
	return env, nil
}

func unmarshal(path string, data []byte, v any) error {
	if filepath.Ext(path) == ".json" {
		return json.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}
