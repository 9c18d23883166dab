package profile

import (
	"bytes"
	_ "embed"
	"text/template"
)

// starterYAML contains the annotated starter profile template.
//
//go:embed starter.yaml
var starterYAML string

// Starter renders the starter profile with dir as the target directory,
// ready to be written to disk and edited.
func Starter(dir string) (string, error) {
	if dir == "" {
		dir = "./testdata"
	}

	tmpl, err := template.New("starter").Parse(starterYAML)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{
		"Directory": dir,
	}); err != nil {
		return "", err
	}

	return buf.String(), nil
}
