package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	ParserConfig struct {
		Lenient bool `yaml:"lenient"`
	}

	// ImportConfig holds options of the import driver. Every option is off by
	// default.
	ImportConfig struct {
		HideCollisions              bool     `yaml:"hide_collisions"`
		HideJoints                  bool     `yaml:"hide_joints"`
		ConvexDecompose             bool     `yaml:"convex_decompose"`
		CreateVisualsFromCollisions bool     `yaml:"create_visuals_from_collisions"`
		CenterModel                 bool     `yaml:"center_model"`
		NoSelfCollision             bool     `yaml:"no_self_collision"`
		PositionControl             bool     `yaml:"position_control"`
		ResourcePaths               []string `yaml:"resource_paths" validate:"dive,required"`
		HeightmapResolution         int      `yaml:"heightmap_resolution" validate:"omitempty,min=2,max=4097"`
		PlanNameTemplate            string   `yaml:"plan_name_template"`
		FileNameTransliterate       bool     `yaml:"file_name_transliterate"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Parser    ParserConfig   `yaml:"parser"`
		Import    ImportConfig   `yaml:"import"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// NOTE: must match yaml field name above, the template is expanded later for
// every processed document, not when configuration is loaded.
const PlanNameTemplateFieldName = "plan_name_template"

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(PlanNameTemplateFieldName),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// only fields we defined are allowed, so no yaml.Unmarshal here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("failed to sanitize configuration: %w", err)
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration expands embedded template to get defaults, then overlays
// values from the file at path (if any) and validates the result.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare returns expanded default configuration.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
