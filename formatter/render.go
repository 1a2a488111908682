package formatter

import (
	"fmt"
	"strings"
	"text/template"
)

const (
	bannerWidth  = 73
	bannerIndent = 18
)

var templateFuncs = template.FuncMap{
	"join": join,
}

func join(list interface{}, sep string) (string, error) {
	items, err := toList(list)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprint(item))
	}

	return strings.Join(parts, sep), nil
}

// Banner returns the comment block written before every command.
func Banner(title string) []string {
	return banner(title, bannerIndent)
}

// Banner returns the comment block of the command, with its own indent when
// set.
func (d *Definition) Banner() []string {
	if d.BannerIndent == 0 {
		return Banner(d.Title)
	}

	return banner(d.Title, d.BannerIndent)
}

// banner shrinks indent down to 3 stars when the title doesn't fit.
func banner(title string, indent int) []string {
	rule := "#" + strings.Repeat("*", bannerWidth-1)

	if overflow := len(title) + 2 + indent + 1 + 3 - bannerWidth; overflow > 0 {
		indent = max(indent-overflow, 3)
	}

	head := "#" + strings.Repeat("*", indent) + " " + title + " "
	head += strings.Repeat("*", max(bannerWidth-len(head), 3))

	return []string{rule, head, rule, "#"}
}

// Render validates args and returns the full block of lines of the command.
func (d *Definition) Render(args Args) ([]string, error) {
	values, err := d.Validate(args)
	if err != nil {
		return nil, err
	}

	return d.render(values)
}

func (d *Definition) render(values Values) ([]string, error) {
	lines := d.Banner()
	for _, tmpl := range d.templates {
		var sb strings.Builder
		if err := tmpl.Execute(&sb, map[string]interface{}(values)); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", d.Name, err)
		}

		lines = append(lines, sb.String())
	}

	return lines, nil
}
