package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Parser.Lenient {
		t.Error("Lenient parsing must be off by default")
	}
	imp := cfg.Import
	if imp.HideCollisions || imp.HideJoints || imp.ConvexDecompose || imp.CreateVisualsFromCollisions ||
		imp.CenterModel || imp.NoSelfCollision || imp.PositionControl {
		t.Errorf("Import options must be off by default: %+v", imp)
	}
	if len(imp.ResourcePaths) != 0 {
		t.Errorf("ResourcePaths = %v, want none", imp.ResourcePaths)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("Console level = %q, want normal", cfg.Logging.ConsoleLogger.Level)
	}
	if cfg.Reporting.Destination == "" {
		t.Error("Report destination is empty")
	}
	// destinations are templates expanded by gencfg
	for _, dst := range []string{cfg.Logging.FileLogger.Destination, cfg.Reporting.Destination} {
		if strings.Contains(dst, "{{") {
			t.Errorf("Destination %q was not expanded", dst)
		}
	}
	if filepath.Base(cfg.Logging.FileLogger.Destination) != "sdfc.log" {
		t.Errorf("Log destination = %q, want sdfc.log", cfg.Logging.FileLogger.Destination)
	}
	if filepath.Base(cfg.Reporting.Destination) != "sdfc-report.zip" {
		t.Errorf("Report destination = %q, want sdfc-report.zip", cfg.Reporting.Destination)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
parser:
  lenient: true
import:
  hide_collisions: true
  center_model: true
  position_control: true
  resource_paths: ["/opt/models", "/usr/share/models"]
  heightmap_resolution: 129
  plan_name_template: "{{ .Model }}"
logging:
  console:
    level: debug
  file:
    level: debug
    destination: /tmp/test.log
    mode: append
reporting:
  destination: /tmp/test-report.zip
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if !cfg.Parser.Lenient {
		t.Error("Expected Lenient to be true")
	}
	if !cfg.Import.HideCollisions || !cfg.Import.CenterModel || !cfg.Import.PositionControl {
		t.Errorf("Import options not loaded: %+v", cfg.Import)
	}
	if cfg.Import.HideJoints {
		t.Error("HideJoints was not set and must stay off")
	}
	if len(cfg.Import.ResourcePaths) != 2 || cfg.Import.ResourcePaths[1] != "/usr/share/models" {
		t.Errorf("ResourcePaths = %v", cfg.Import.ResourcePaths)
	}
	if cfg.Import.HeightmapResolution != 129 {
		t.Errorf("HeightmapResolution = %d, want 129", cfg.Import.HeightmapResolution)
	}
	if cfg.Import.PlanNameTemplate != "{{ .Model }}" {
		t.Errorf("PlanNameTemplate = %q, must not be expanded", cfg.Import.PlanNameTemplate)
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("FileLogger.Mode = %q, want append", cfg.Logging.FileLogger.Mode)
	}
}

func TestLoadConfiguration_MergeWithDefaults(t *testing.T) {
	path := writeConfig(t, `version: 1
import:
  hide_joints: true
`)
	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if !cfg.Import.HideJoints {
		t.Error("Expected HideJoints to be true from config file")
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("Console level = %q, default must be kept", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\nparser:\n  lenient: true\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"unknown import option", "version: 1\nimport:\n  flip_normals: true\n"},
		{"bad version", "version: 2\n"},
		{"bad console level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
		{"empty resource path", "version: 1\nimport:\n  resource_paths: [\"\"]\n"},
		{"heightmap resolution too small", "version: 1\nimport:\n  heightmap_resolution: 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if _, err := unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
	if !strings.Contains(string(data), "create_visuals_from_collisions") {
		t.Error("Prepared config does not list import options")
	}
}

func TestDump(t *testing.T) {
	cfg := &Config{
		Version: 1,
		Import: ImportConfig{
			ConvexDecompose: true,
			ResourcePaths:   []string{"/opt/models"},
		},
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	cfg2, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if !cfg2.Import.ConvexDecompose || len(cfg2.Import.ResourcePaths) != 1 {
		t.Errorf("Import section mismatch after dump/load: %+v", cfg2.Import)
	}
}

func TestUnmarshalConfig_WrapsValidationError(t *testing.T) {
	_, err := unmarshalConfig([]byte("version: 99\n"), &Config{}, true)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "validat") {
		t.Errorf("expected error to mention validation, got: %v", err)
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("expected wrapped error, got bare error: %v", err)
	}
}
