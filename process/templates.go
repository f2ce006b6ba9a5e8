package process

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"sdfc/sdf"
)

// Values holds variables available for output name template expansion.
type Values struct {
	Context string
	// Name is source file name without extension.
	Name    string
	Model   string
	Models  []string
	Worlds  []string
	Version string
}

func buildModels(root *sdf.Root) []string {
	result := make([]string, 0, len(root.Models))
	for _, m := range root.Models {
		result = append(result, m.Name)
	}
	for _, w := range root.Worlds {
		for _, m := range w.Models {
			result = append(result, m.Name)
		}
	}
	return result
}

func buildWorlds(root *sdf.Root) []string {
	result := make([]string, 0, len(root.Worlds))
	for _, w := range root.Worlds {
		result = append(result, w.Name)
	}
	return result
}

func expandTemplate(d *document, name, field string) (string, error) {
	tmpl, err := template.New(name).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context: name,
		Name:    strings.TrimSuffix(filepath.Base(d.src), filepath.Ext(d.src)),
		Models:  buildModels(d.root),
		Worlds:  buildWorlds(d.root),
		Version: d.root.Version,
	}
	if len(values.Models) > 0 {
		values.Model = values.Models[0]
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
