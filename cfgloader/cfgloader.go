// Package cfgloader loads and validates configuration at the start of an application.
package cfgloader

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/code19m/errx"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvProduction = "production"
	EnvStaging    = "staging"
	EnvDev        = "dev"
	EnvLocal      = "local"
	EnvTest       = "test"

	defaultDir = "./config"
)

// MustLoad is like Load but logs the error and exits the process on failure.
func MustLoad[T any](opts ...Option) T {
	config, err := Load[T](opts...)
	if err != nil {
		slog.Error("[cfgloader]: " + err.Error())
		os.Exit(1)
	}
	return config
}

// Load reads ${ENVIRONMENT}.yaml from the config directory into T.
//
// A .env file, when present, is loaded into the process environment first and
// ${VAR} references in the YAML are expanded. Fields are mapped with `yaml`
// tags, defaults come from `default` tags (github.com/creasty/defaults) and the
// result is checked against `validate` tags (go-playground/validator).
//
// Example:
//
//	type Config struct {
//	    Host string `yaml:"host" validate:"required"`
//	    Port int    `yaml:"port" default:"8080"`
//	}
//
// Unless silenced, the loaded config is printed with fields tagged
// `mask:"true"` hidden.
func Load[T any](opts ...Option) (T, error) {
	var config T

	if reflect.ValueOf(config).Kind() == reflect.Pointer {
		return config, errx.New("[cfgloader]: type parameter must not be a pointer")
	}

	o := buildOptions(opts)

	_ = godotenv.Load()

	env, err := resolveEnvironment(o.Environment)
	if err != nil {
		return config, err
	}

	path := filepath.Join(o.Dir, env+".yaml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, errx.New(
			"[cfgloader]: config file not found",
			errx.WithCode(CodeFileNotFound),
			errx.WithDetails(errx.D{"path": path}),
		)
	}
	if err != nil {
		return config, errx.Wrap(err)
	}

	data = []byte(os.ExpandEnv(string(data)))

	if err = yaml.Unmarshal(data, &config); err != nil {
		return config, errx.Wrap(err, errx.WithDetails(errx.D{"env": env}))
	}

	if err = defaults.Set(&config); err != nil {
		return config, errx.Wrap(err)
	}

	if err = validate(&config, env); err != nil {
		return config, err
	}

	if !o.Silent {
		printConfig(config)
	}

	return config, nil
}

func resolveEnvironment(override string) (string, error) {
	env := override
	if env == "" {
		env = os.Getenv("ENVIRONMENT")
	}

	if !slices.Contains([]string{EnvProduction, EnvStaging, EnvDev, EnvLocal, EnvTest}, env) {
		return "", errx.New(
			"[cfgloader]: ENVIRONMENT is not set or invalid. Choices are: production, staging, dev, local, test",
			errx.WithCode(CodeInvalidEnvironment),
			errx.WithDetails(errx.D{"environment": env}),
		)
	}
	return env, nil
}

func validate(config any, env string) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(yamlName)
	err := v.Struct(config)

	var failed []string
	if errs, ok := err.(validator.ValidationErrors); ok { //nolint: errorlint // validator returns the slice type directly
		for _, fe := range errs {
			tag := fe.Tag()
			if fe.Param() != "" {
				tag += "=" + fe.Param()
			}
			failed = append(failed, fmt.Sprintf("%s: %s", fe.Namespace(), tag))
		}
	}

	if len(failed) > 0 {
		return errx.New(
			fmt.Sprintf("[cfgloader]: invalid fields in %s config -> %s", env, strings.Join(failed, ",  ")),
			errx.WithCode(CodeInvalidConfig),
			errx.WithType(errx.T_Validation),
		)
	}
	return nil
}

// yamlName reports fields by their yaml key so errors match the config file.
func yamlName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}
