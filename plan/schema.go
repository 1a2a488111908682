package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	jsonschema_generator "github.com/invopop/jsonschema"
	jsonschema_validator "github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "plan_schema.json"

var (
	planSchema     *jsonschema_validator.Schema
	planSchemaJSON []byte
	planSchemaErr  error
	planSchemaOnce sync.Once
)

func compileSchema() {
	r := &jsonschema_generator.Reflector{
		RequiredFromJSONSchemaTags: true,
	}

	planSchemaJSON, planSchemaErr = json.MarshalIndent(r.Reflect(&Plan{}), "", "  ")
	if planSchemaErr != nil {
		return
	}

	doc, err := jsonschema_validator.UnmarshalJSON(bytes.NewReader(planSchemaJSON))
	if err != nil {
		planSchemaErr = err
		return
	}

	c := jsonschema_validator.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		planSchemaErr = err
		return
	}

	planSchema, planSchemaErr = c.Compile(schemaURL)
}

// Schema returns the JSON schema plan files are validated against.
func Schema() ([]byte, error) {
	planSchemaOnce.Do(compileSchema)

	return planSchemaJSON, planSchemaErr
}

// validate checks a decoded document against the plan schema. The document
// goes through JSON first so the validator only sees JSON types.
func validate(doc interface{}) error {
	planSchemaOnce.Do(compileSchema)
	if planSchemaErr != nil {
		return fmt.Errorf("compiling plan schema: %w", planSchemaErr)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}

	value, err := jsonschema_validator.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}

	return planSchema.Validate(value)
}
