package common

import (
	"bytes"
	"encoding/json"

	jsonschema_generator "github.com/invopop/jsonschema"
	jsonschema_validator "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/sirupsen/logrus"
)

var configSchema *jsonschema_validator.Schema

func init() {
	defer func() {
		if r := recover(); r != nil {
			// Config validation is best-effort
			logrus.Warningf("Something went wrong creating config schema: %v", r)
		}
	}()

	r := &jsonschema_generator.Reflector{
		RequiredFromJSONSchemaTags: true,
	}

	schema, err := json.Marshal(r.Reflect(&Config{}))
	if err != nil {
		panic(err)
	}

	doc, err := jsonschema_validator.UnmarshalJSON(bytes.NewReader(schema))
	if err != nil {
		panic(err)
	}

	c := jsonschema_validator.NewCompiler()
	if err := c.AddResource("config_schema.json", doc); err != nil {
		panic(err)
	}

	configSchema = c.MustCompile("config_schema.json")
}

// Validate checks config against its JSON schema.
func Validate(config *Config) error {
	if configSchema == nil {
		return nil
	}

	// Validation must be done on generic types so we re-unmarshal the config
	configString, err := json.Marshal(config)
	if err != nil {
		return err
	}

	value, err := jsonschema_validator.UnmarshalJSON(bytes.NewReader(configString))
	if err != nil {
		return err
	}

	return configSchema.Validate(value)
}
