package formatter

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
)

var ErrUnknownCommand = errors.New("unknown command")

// InvalidArgumentError is returned when an argument doesn't follow the rules
// of its param.
type InvalidArgumentError struct {
	Command string
	Param   string
	Reason  string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid argument %q: %s", e.Command, e.Param, e.Reason)
}

func (e *InvalidArgumentError) Is(err error) bool {
	_, ok := err.(*InvalidArgumentError)

	return ok
}

// Args are the raw arguments of a command, as decoded from YAML, TOML, JSON
// or built in Go.
type Args map[string]interface{}

// Values are validated arguments with defaults applied. Optional params
// without a default and without an argument are present with a nil value.
type Values map[string]interface{}

// Validate checks args against the definition's params. All violations are
// reported at once.
func (d *Definition) Validate(args Args) (Values, error) {
	var result *multierror.Error

	invalid := func(param, format string, a ...interface{}) {
		result = multierror.Append(result, &InvalidArgumentError{
			Command: d.Name,
			Param:   param,
			Reason:  fmt.Sprintf(format, a...),
		})
	}

	unknown := make([]string, 0)
	for name := range args {
		if _, ok := d.param(name); !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		invalid(name, "unknown argument")
	}

	values := make(Values, len(d.Params))
	for i := range d.Params {
		p := &d.Params[i]

		raw, ok := args[p.Name]
		if !ok || raw == nil {
			if p.Required {
				invalid(p.Name, "is required")
				continue
			}

			raw = p.Default
		}

		if raw == nil {
			values[p.Name] = nil
			continue
		}

		value, err := p.convert(raw)
		if err != nil {
			invalid(p.Name, "%v", err)
			continue
		}

		values[p.Name] = value
	}

	for i := range d.Params {
		p := &d.Params[i]
		if p.Count == "" {
			continue
		}

		list, listOK := values[p.Name].([]int)
		count, countOK := values[p.Count].(int)
		if !listOK || !countOK {
			continue
		}

		if len(list) != count {
			invalid(p.Name, "must have %s=%d elements, got %d", p.Count, count, len(list))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return values, nil
}
