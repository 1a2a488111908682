package formatter

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/samber/lo"
)

type ParamType string

const (
	TypeString    ParamType = "string"
	TypeEnum      ParamType = "enum"
	TypeToggle    ParamType = "toggle"
	TypeInt       ParamType = "int"
	TypeFloat     ParamType = "float"
	TypeIntList   ParamType = "int_list"
	TypeFloatList ParamType = "float_list"
)

var paramTypes = []ParamType{TypeString, TypeEnum, TypeToggle, TypeInt, TypeFloat, TypeIntList, TypeFloatList}

var toggleOptions = []string{"ENABLE", "DISABLE"}

// Param describes one argument of a command and the rules its value must
// follow.
type Param struct {
	Name        string      `toml:"name" json:"name"`
	Type        ParamType   `toml:"type" json:"type"`
	Description string      `toml:"description" json:"description,omitempty"`
	Required    bool        `toml:"required" json:"required,omitempty"`
	Default     interface{} `toml:"default" json:"default,omitempty"`

	// Options lists the accepted values of an enum.
	Options []string `toml:"options" json:"options,omitempty"`

	// Min and Max are inclusive bounds for numbers and list elements.
	Min      *float64 `toml:"min" json:"min,omitempty"`
	Max      *float64 `toml:"max" json:"max,omitempty"`
	Positive bool     `toml:"positive" json:"positive,omitempty"`

	// Count names an int param the list length must be equal to, Length
	// fixes it instead.
	Count  string `toml:"count" json:"count,omitempty"`
	Length int    `toml:"length" json:"length,omitempty"`
}

func (p *Param) options() []string {
	if p.Type == TypeToggle {
		return toggleOptions
	}

	return p.Options
}

// Definition is a single command: its banner title, its parameters and the
// templates of the lines following the banner.
type Definition struct {
	Name        string   `toml:"name" json:"name"`
	Title       string   `toml:"title" json:"title"`
	Description string   `toml:"description" json:"description,omitempty"`
	Params      []Param  `toml:"param" json:"params,omitempty"`
	Lines       []string `toml:"lines" json:"lines"`

	// BannerIndent is the number of stars before the title, 0 means the
	// default.
	BannerIndent int `toml:"banner_indent" json:"banner_indent,omitempty"`

	templates []*template.Template
}

// Keyword is the command keyword written on the first line after the banner.
func (d *Definition) Keyword() string {
	if len(d.Lines) == 0 {
		return ""
	}

	keyword, _, _ := strings.Cut(d.Lines[0], " ")

	return keyword
}

func (d *Definition) param(name string) (*Param, bool) {
	for i := range d.Params {
		if d.Params[i].Name == name {
			return &d.Params[i], true
		}
	}

	return nil, false
}

func (d *Definition) compile() error {
	if d.Name == "" {
		return fmt.Errorf("command without a name")
	}

	if d.Title == "" {
		return fmt.Errorf("command %q: missing title", d.Name)
	}

	if len(d.Lines) == 0 {
		return fmt.Errorf("command %q: no lines", d.Name)
	}

	if d.BannerIndent < 0 || d.BannerIndent > bannerWidth {
		return fmt.Errorf("command %q: banner_indent out of range", d.Name)
	}

	seen := make(map[string]bool, len(d.Params))
	for i := range d.Params {
		p := &d.Params[i]

		if seen[p.Name] {
			return fmt.Errorf("command %q: duplicate param %q", d.Name, p.Name)
		}
		seen[p.Name] = true

		if err := d.checkParam(p); err != nil {
			return fmt.Errorf("command %q: param %q: %w", d.Name, p.Name, err)
		}
	}

	unset := d.unsetParams()

	d.templates = make([]*template.Template, 0, len(d.Lines))
	for i, line := range d.Lines {
		tmpl, err := template.New(fmt.Sprintf("%s:%d", d.Name, i)).
			Option("missingkey=error").
			Funcs(templateFuncs).
			Parse(line)
		if err == nil {
			err = checkGuarded(tmpl.Tree, unset)
		}
		if err != nil {
			return fmt.Errorf("command %q: line %d: %w", d.Name, i, err)
		}

		d.templates = append(d.templates, tmpl)
	}

	return nil
}

func (d *Definition) checkParam(p *Param) error {
	if p.Name == "" {
		return fmt.Errorf("missing name")
	}

	if !lo.Contains(paramTypes, p.Type) {
		return fmt.Errorf("unknown type %q", p.Type)
	}

	if p.Type == TypeEnum && len(p.Options) == 0 {
		return fmt.Errorf("enum without options")
	}

	if p.Count != "" {
		counter, ok := d.param(p.Count)
		if !ok || counter.Type != TypeInt {
			return fmt.Errorf("count refers to %q which is not an int param", p.Count)
		}
	}

	if p.Default == nil {
		return nil
	}

	if _, err := p.convert(p.Default); err != nil {
		return fmt.Errorf("invalid default: %w", err)
	}

	return nil
}
