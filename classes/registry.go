// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package classes loads registries of type-classes from YAML.
//
// A registry file lists each type-class with the constructors of its instances:
//
//	classes:
//	  - name: Num
//	    instances: [Int, Integer, Float, Double]
package classes

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wdamron/hindley/types"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

//go:embed prelude.yaml
var preludeYAML []byte

// Config is the top-level structure of a registry file.
type Config struct {
	Classes []ClassConfig `yaml:"classes"`
}

// ClassConfig declares a single type-class.
type ClassConfig struct {
	// Name must be an identifier starting with an upper-case letter.
	Name string `yaml:"name"`
	// Instances lists type constructors which are members of the class.
	Instances []string `yaml:"instances,omitempty"`
}

// Registry maps type-class names to type-classes.
type Registry struct {
	classes map[string]*types.TypeClass
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{classes: make(map[string]*types.TypeClass)}
}

// Prelude returns a new registry of the standard Haskell prelude type-classes.
func Prelude() *Registry {
	r, err := Parse(preludeYAML)
	if err != nil {
		panic("classes: invalid prelude: " + err.Error())
	}
	return r
}

// Parse decodes a registry from YAML.
func Parse(data []byte) (*Registry, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("classes: decode registry: %w", err)
	}
	return FromConfig(cfg)
}

// Load decodes a registry from r.
func Load(r io.Reader) (*Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("classes: read registry: %w", err)
	}
	return Parse(data)
}

// LoadFile decodes a registry from the YAML file at path.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("classes: %w", err)
	}
	return Parse(data)
}

// FromConfig builds a registry from a decoded configuration.
func FromConfig(cfg Config) (*Registry, error) {
	r := NewRegistry()
	for _, c := range cfg.Classes {
		if err := r.Add(types.NewTypeClass(c.Name, c.Instances...)); err != nil {
			return nil, err
		}
	}
	return r, nil
}

var ErrDuplicateClass = errors.New("duplicate type-class")

// Add registers tc. The name must be a valid, unregistered type-class name.
func (r *Registry) Add(tc *types.TypeClass) error {
	if !types.IsClassName(tc.Name) {
		return fmt.Errorf("classes: invalid type-class name %q", tc.Name)
	}
	if _, ok := r.classes[tc.Name]; ok {
		return fmt.Errorf("classes: %w: %s", ErrDuplicateClass, tc.Name)
	}
	r.classes[tc.Name] = tc
	return nil
}

// Get the type-class with the given name.
func (r *Registry) Get(name string) (*types.TypeClass, bool) {
	tc, ok := r.classes[name]
	return tc, ok
}

// Len returns the number of registered type-classes.
func (r *Registry) Len() int { return len(r.classes) }

// Names returns the names of all registered type-classes, sorted.
func (r *Registry) Names() []string {
	names := maps.Keys(r.classes)
	slices.Sort(names)
	return names
}

// Set returns the set of type-classes with the given names.
func (r *Registry) Set(names ...string) (types.ClassSet, error) {
	s := types.EmptyClassSet
	for _, name := range names {
		tc, ok := r.classes[name]
		if !ok {
			return types.EmptyClassSet, fmt.Errorf("classes: unknown type-class %q", name)
		}
		s = s.Add(tc)
	}
	return s, nil
}
