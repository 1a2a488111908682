package plan

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"gitlab.com/aero-tools/flightscript/formatter"
)

// Step is a single catalog command with its arguments.
type Step struct {
	Command string         `json:"command" yaml:"command" toml:"command" jsonschema:"required,minLength=1,description=Name of a catalog command"`
	Args    formatter.Args `json:"args,omitempty" yaml:"args,omitempty" toml:"args,omitempty" jsonschema:"description=Arguments of the command"`
}

// Plan is an ordered list of commands making up one script.
type Plan struct {
	Output  string   `json:"output,omitempty" yaml:"output,omitempty" toml:"output,omitempty" jsonschema:"description=Script file to write"`
	Catalog string   `json:"catalog,omitempty" yaml:"catalog,omitempty" toml:"catalog,omitempty" jsonschema:"description=Additional command catalog relative to the plan file"`
	Header  []string `json:"header,omitempty" yaml:"header,omitempty" toml:"header,omitempty" jsonschema:"description=Comment lines written at the top of the script"`
	Steps   []Step   `json:"steps" yaml:"steps" toml:"steps" jsonschema:"required,minItems=1"`
}

// StepError reports the step a command error comes from.
type StepError struct {
	Index   int
	Command string
	Inner   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Command, e.Inner)
}

func (e *StepError) Unwrap() error {
	return e.Inner
}

// Apply writes the header and every step through w. Failing steps are
// skipped and reported together once all steps were tried.
func (p *Plan) Apply(w *formatter.Writer) error {
	w.Comment(p.Header...)

	var result *multierror.Error
	for i, step := range p.Steps {
		if err := w.Command(step.Command, step.Args); err != nil {
			result = multierror.Append(result, &StepError{
				Index:   i,
				Command: step.Command,
				Inner:   err,
			})
		}
	}

	return result.ErrorOrNil()
}
