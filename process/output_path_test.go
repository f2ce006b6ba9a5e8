package process

import (
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"sdfc/config"
	"sdfc/sdf"
	"sdfc/state"
)

func setupTestEnvForOutputPath(t *testing.T, noDirs, transliterate bool, template string) *state.LocalEnv {
	t.Helper()
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.Import.FileNameTransliterate = transliterate
	cfg.Import.PlanNameTemplate = template

	return &state.LocalEnv{
		Log:    logger,
		Cfg:    cfg,
		NoDirs: noDirs,
	}
}

func testDocument(src string) *document {
	return &document{
		src: src,
		root: &sdf.Root{
			Version: "1.6",
			Models:  []sdf.Model{{Name: "Rover Mk2"}},
			Worlds: []sdf.World{{
				Name:   "yard",
				Models: []sdf.Model{{Name: "ground"}},
			}},
		},
	}
}

func TestBuildOutputPath(t *testing.T) {
	dst := filepath.Join("out", "plans")

	tests := []struct {
		name          string
		src           string
		noDirs        bool
		transliterate bool
		template      string
		want          string
	}{
		{
			name: "keep source dirs",
			src:  filepath.Join("models", "rover", "model.sdf"),
			want: filepath.Join(dst, "models", "rover", "model.plan.yaml"),
		},
		{
			name:   "no dirs",
			src:    filepath.Join("models", "rover", "model.sdf"),
			noDirs: true,
			want:   filepath.Join(dst, "model.plan.yaml"),
		},
		{
			name:          "transliterate",
			src:           "Rover Mk2.sdf",
			noDirs:        true,
			transliterate: true,
			want:          filepath.Join(dst, "rover-mk2.plan.yaml"),
		},
		{
			name:     "template",
			src:      filepath.Join("models", "rover", "model.sdf"),
			noDirs:   true,
			template: `{{ .Model }}-{{ .Version }}`,
			want:     filepath.Join(dst, "Rover Mk2-1.6.plan.yaml"),
		},
		{
			name:     "template with subdirs",
			src:      "model.sdf",
			noDirs:   true,
			template: `{{ .Version }}/{{ .Model | lower }}`,
			want:     filepath.Join(dst, "1.6", "rover mk2.plan.yaml"),
		},
		{
			name:          "template transliterated",
			src:           "model.sdf",
			noDirs:        true,
			transliterate: true,
			template:      `{{ .Model }}`,
			want:          filepath.Join(dst, "rover-mk2.plan.yaml"),
		},
		{
			name:     "template cannot escape destination",
			src:      "model.sdf",
			noDirs:   true,
			template: `../../{{ .Name }}`,
			want:     filepath.Join(dst, "model.plan.yaml"),
		},
		{
			name:     "broken template falls back",
			src:      "model.sdf",
			noDirs:   true,
			template: `{{ .Model`,
			want:     filepath.Join(dst, "model.plan.yaml"),
		},
		{
			name:     "empty expansion falls back",
			src:      "model.sdf",
			noDirs:   true,
			template: `{{ .Missing }}`,
			want:     filepath.Join(dst, "model.plan.yaml"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvForOutputPath(t, tt.noDirs, tt.transliterate, tt.template)
			got := buildOutputPath(testDocument(tt.src), dst, planExt, env)
			if got != tt.want {
				t.Errorf("buildOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitPath(t *testing.T) {
	sep := string(filepath.Separator)
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{strings.Join([]string{"a", "b", "c"}, sep), []string{"a", "b", "c"}},
		{sep + "a" + sep + sep + "b" + sep, []string{"a", "b"}},
		{strings.Join([]string{"..", "a", ".", "b"}, sep), []string{"a", "b"}},
	}
	for _, tt := range tests {
		got := splitPath(tt.in)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("splitPath(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCleanPathSegment(t *testing.T) {
	env := setupTestEnvForOutputPath(t, false, false, "")
	if got := cleanPathSegment(".hidden", env); got != "hidden" {
		t.Errorf("cleanPathSegment() = %q", got)
	}
	if got := cleanPathSegment("...", env); got != "_bad_file_name_" {
		t.Errorf("cleanPathSegment() = %q", got)
	}
}
