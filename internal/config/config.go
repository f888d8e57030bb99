// Package config loads service configuration from an optional YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"regexp"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	tinterrors "github.com/pharmakit/icontint/pkg/errors"
)

// Config holds the runtime parameters for the CLI and the HTTP service.
type Config struct {
	Listen       string `yaml:"listen" env:"ICONTINT_LISTEN" validate:"required,hostname_port"`
	DatabasePath string `yaml:"database_path" env:"ICONTINT_DB_PATH"`
	ManifestPath string `yaml:"manifest_path" env:"ICONTINT_MANIFEST_PATH"`
	OutputDir    string `yaml:"output_dir" env:"ICONTINT_OUTPUT_DIR"`
	PNGSize      int    `yaml:"png_size" env:"ICONTINT_PNG_SIZE" validate:"min=16,max=2048"`
	Parallel     int    `yaml:"parallel" env:"ICONTINT_PARALLEL" validate:"min=1,max=32"`
	LogLevel     string `yaml:"log_level" env:"ICONTINT_LOG_LEVEL" validate:"required,log_level"`
}

// Default returns the baseline configuration before file and environment
// overrides.
func Default() Config {
	return Config{
		Listen:   "127.0.0.1:8001",
		PNGSize:  200,
		Parallel: 4,
		LogLevel: "info",
	}
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (skipped when path is empty), then environment overrides, then
// validation.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, tinterrors.NewParseError(path, 0, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, tinterrors.NewParseError(path, extractLine(err), err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, tinterrors.NewParseError("environment", 0, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	logLevels = map[string]struct{}{
		"trace": {}, "debug": {}, "info": {}, "warn": {}, "error": {},
	}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			_, ok := logLevels[fl.Field().String()]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the configuration invariants.
func Validate(cfg *Config) error {
	if cfg == nil {
		return tinterrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return tinterrors.NewValidationError(fe.Namespace(),
				fmt.Sprintf("failed %q validation", fe.Tag()), err)
		}
		return tinterrors.NewValidationError("config", err.Error(), err)
	}

	return nil
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
