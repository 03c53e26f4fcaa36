package journal

import (
	"encoding/json"
	"os"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-journal/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config configures the journal service.
type Config struct {
	// DatabasePath is the DuckDB database location; ":memory:" for an
	// ephemeral store.
	DatabasePath string `yaml:"database_path" json:"database_path" jsonschema:"title=Database Path,description=DuckDB database file path or :memory:" validate:"required"`
	// ListenAddr is the HTTP listen address.
	ListenAddr string `yaml:"listen_addr" json:"listen_addr" jsonschema:"title=Listen Address,description=HTTP listen address for the journal API" validate:"required"`
	// PopularLimit is the default number of assets returned by the popular
	// assets query.
	PopularLimit int `yaml:"popular_limit" json:"popular_limit" jsonschema:"title=Popular Limit,description=Default number of assets in the popular ranking,minimum=1" validate:"gte=1"`
	// ExportPath is the optional directory for Parquet exports.
	ExportPath optional.Option[string] `yaml:"export_path" json:"export_path" jsonschema:"title=Export Path,description=Optional directory for Parquet exports"`
}

// UnmarshalYAML implements custom unmarshaling for Config
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	type plainConfig struct {
		DatabasePath string  `yaml:"database_path"`
		ListenAddr   string  `yaml:"listen_addr"`
		PopularLimit int     `yaml:"popular_limit"`
		ExportPath   *string `yaml:"export_path"`
	}

	var config plainConfig
	if err := value.Decode(&config); err != nil {
		return err
	}

	c.DatabasePath = config.DatabasePath
	c.ListenAddr = config.ListenAddr
	c.PopularLimit = config.PopularLimit

	if config.ExportPath != nil {
		c.ExportPath = optional.Some(*config.ExportPath)
	} else {
		c.ExportPath = optional.None[string]()
	}

	return nil
}

// Validate checks the config against its constraints.
func (c *Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	return nil
}

// GenerateSchema generates a JSON schema for the Config
func (c *Config) GenerateSchema() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		AllowAdditionalProperties:  false,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t.String() == "optional.Option[string]" {
				return &jsonschema.Schema{
					Type: "string",
				}
			}

			return nil
		},
	}

	schema := reflector.Reflect(c)

	schema.Title = "journal-config"
	schema.Description = "Configuration schema for the trading journal service"
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return schema, nil
}

// GenerateSchemaJSON generates a JSON schema string for the Config
func (c *Config) GenerateSchemaJSON() (string, error) {
	schema, err := c.GenerateSchema()
	if err != nil {
		return "", err
	}

	schemaBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", err
	}

	return string(schemaBytes), nil
}

// LoadConfig reads and validates a yaml config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to read config file", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse config file", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// EmptyConfig returns a Config with default values
func EmptyConfig() Config {
	return Config{
		DatabasePath: ":memory:",
		ListenAddr:   ":8080",
		PopularLimit: 5,
		ExportPath:   optional.None[string](),
	}
}

// TestConfig returns a Config suitable for tests.
func TestConfig() Config {
	return Config{
		DatabasePath: ":memory:",
		ListenAddr:   "127.0.0.1:0",
		PopularLimit: 3,
		ExportPath:   optional.None[string](),
	}
}
