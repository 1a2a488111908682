package formatter

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed builtin.toml
var builtinCatalog string

var (
	builtin     *Catalog
	builtinOnce sync.Once
)

// Catalog is the set of commands a Writer knows how to format. A command
// name maps to exactly one definition.
type Catalog struct {
	definitions map[string]*Definition
}

type catalogFile struct {
	Commands []Definition `toml:"command"`
}

func NewCatalog() *Catalog {
	return &Catalog{
		definitions: make(map[string]*Definition),
	}
}

// Builtin returns the catalog shipped with the binary.
func Builtin() *Catalog {
	builtinOnce.Do(func() {
		c, err := LoadCatalog(strings.NewReader(builtinCatalog))
		if err != nil {
			panic(fmt.Sprintf("invalid builtin catalog: %v", err))
		}

		builtin = c
	})

	return builtin
}

// LoadCatalog decodes a TOML catalog.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var file catalogFile

	md, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decoding catalog: unknown keys %v", undecoded)
	}

	c := NewCatalog()
	for i := range file.Commands {
		if err := c.Add(&file.Commands[i]); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	return LoadCatalog(f)
}

// Add validates def and adds it to the catalog. Redefining a command is an
// error: there is only one grammar per command.
func (c *Catalog) Add(def *Definition) error {
	if err := def.compile(); err != nil {
		return err
	}

	if _, ok := c.definitions[def.Name]; ok {
		return fmt.Errorf("command %q defined more than once", def.Name)
	}

	c.definitions[def.Name] = def

	return nil
}

// Extend returns a new catalog holding the commands of c and other.
func (c *Catalog) Extend(other *Catalog) (*Catalog, error) {
	merged := NewCatalog()

	for _, catalog := range []*Catalog{c, other} {
		for _, def := range catalog.definitions {
			if _, ok := merged.definitions[def.Name]; ok {
				return nil, fmt.Errorf("command %q defined more than once", def.Name)
			}

			merged.definitions[def.Name] = def
		}
	}

	return merged, nil
}

func (c *Catalog) Get(name string) (*Definition, error) {
	def, ok := c.definitions[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownCommand, name)
	}

	return def, nil
}

// Definitions returns every definition sorted by name.
func (c *Catalog) Definitions() []*Definition {
	defs := make([]*Definition, 0, len(c.definitions))
	for _, def := range c.definitions {
		defs = append(defs, def)
	}

	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Name < defs[j].Name
	})

	return defs
}

func (c *Catalog) Len() int {
	return len(c.definitions)
}
