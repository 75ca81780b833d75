package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type yamlCatalog struct {
	Modules []yamlModule `yaml:"modules"`
}

type yamlModule struct {
	Code    string       `yaml:"code"`
	Name    string       `yaml:"name"`
	Actions []yamlAction `yaml:"actions"`
}

type yamlAction struct {
	Code  string `yaml:"code"`
	Name  string `yaml:"name"`
	Group string `yaml:"group"`
}

// Parse decodes a YAML catalog definition and validates it.
//
// Example document:
//
//	modules:
//	  - code: billing
//	    name: Billing
//	    actions:
//	      - code: ver_modulo
//	        name: View module
//	      - code: own_site
//	        name: Own site only
//	        group: coverage
//	      - code: all_sites
//	        name: All sites
//	        group: coverage
func Parse(r io.Reader) (*Catalog, error) {
	var doc yamlCatalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Join(ErrInvalidCatalog, err)
	}

	modules := make([]Module, 0, len(doc.Modules))
	for _, m := range doc.Modules {
		actions := make([]Action, 0, len(m.Actions))
		for _, a := range m.Actions {
			actions = append(actions, Action{Code: a.Code, Name: a.Name, Group: a.Group})
		}
		modules = append(modules, Module{Code: m.Code, Name: m.Name, Actions: actions})
	}

	return New(modules)
}

// LoadFile reads and validates a YAML catalog definition from disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidCatalog, fmt.Errorf("open catalog file: %w", err))
	}
	defer f.Close()

	return Parse(f)
}
