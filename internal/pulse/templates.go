package pulse

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TemplateFile is the YAML template definition format:
//
//	templates:
//	  - "pulse: %s"
//	tag: "#swarm"
type TemplateFile struct {
	Templates []string `yaml:"templates"`
	Tag       string   `yaml:"tag"`
}

// LoadTemplates reads a YAML template file. Missing fields fall back to
// the built-in defaults.
func LoadTemplates(path string) (TemplateFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TemplateFile{}, err
	}
	var tf TemplateFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return TemplateFile{}, fmt.Errorf("parse templates %s: %w", path, err)
	}
	if len(tf.Templates) == 0 {
		tf.Templates = DefaultTemplates()
	}
	if tf.Tag == "" {
		tf.Tag = DefaultTag
	}
	return tf, nil
}
