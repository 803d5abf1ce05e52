package schema

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds the schemas of a process, keyed by model name. Models are
// registered once at startup, a registered schema never changes.
type Registry struct {
	namer      Namer
	cacheStore *sync.Map
}

// DefaultRegistry the process wide registry
var DefaultRegistry = NewRegistry(IdentityNamer{})

// NewRegistry creates an empty registry naming tables with namer
func NewRegistry(namer Namer) *Registry {
	if namer == nil {
		namer = IdentityNamer{}
	}
	return &Registry{namer: namer, cacheStore: &sync.Map{}}
}

// Register builds and stores the schema of def
func (r *Registry) Register(def Definition) (*Schema, error) {
	return Parse(def, r.cacheStore, r.namer)
}

// MustRegister is like Register but panics on a configuration error, for
// package level model declarations
func (r *Registry) MustRegister(def Definition) *Schema {
	s, err := r.Register(def)
	if err != nil {
		panic(fmt.Sprintf("schema: %v", err))
	}
	return s
}

// Lookup returns the schema registered under name
func (r *Registry) Lookup(name string) (*Schema, bool) {
	v, ok := r.cacheStore.Load(name)
	if !ok {
		return nil, false
	}
	return v.(*Schema), true
}

// Schemas returns every registered schema sorted by name
func (r *Registry) Schemas() []*Schema {
	var schemas []*Schema
	r.cacheStore.Range(func(_, v interface{}) bool {
		schemas = append(schemas, v.(*Schema))
		return true
	})

	sort.Slice(schemas, func(i, j int) bool {
		return schemas[i].Name < schemas[j].Name
	})
	return schemas
}

// Register registers def in the DefaultRegistry
func Register(def Definition) (*Schema, error) {
	return DefaultRegistry.Register(def)
}

// MustRegister registers def in the DefaultRegistry, panics on error
func MustRegister(def Definition) *Schema {
	return DefaultRegistry.MustRegister(def)
}
