package feedback

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/lessonpath/pathcheck/pkg/models"
)

// templateFile is the YAML shape of an authored template overlay.
type templateFile struct {
	Templates map[string]models.FeedbackTemplate `yaml:"templates"`
}

// LoadTemplates reads an id-keyed template overlay from a YAML file.
// Authored templates replace built-ins with the same requirement id.
func LoadTemplates(path string) (map[string]models.FeedbackTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template file: %w", err)
	}

	var tf templateFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing template file %s: %w", path, err)
	}

	for id, tmpl := range tf.Templates {
		if tmpl.Message == "" {
			return nil, fmt.Errorf("template %q has no message", id)
		}
	}
	return tf.Templates, nil
}
