package schema

import (
	"fmt"
	"sync"

	"golang.org/x/text/unicode/norm"

	"github.com/Morgahl/structify/value"
)

// Registry holds record type descriptors and the symbol interner. A Registry
// is safe for concurrent readers once registration is complete; registration
// itself is serialized internally.
type Registry struct {
	mu      sync.RWMutex
	types   map[string]*Type
	symbols map[string]value.Symbol
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		types:   make(map[string]*Type),
		symbols: make(map[string]value.Symbol),
	}
}

// Register adds a record type descriptor, interning its field names as
// symbols. The type name and field names are NFC-normalized. Registering an
// empty name, a duplicate name, or duplicate field names is an error.
func (r *Registry) Register(t Type) (*Type, error) {
	if t.Name == "" {
		return nil, fmt.Errorf("schema: type name must not be empty")
	}
	name := norm.NFC.String(t.Name)

	reg := &Type{
		Name:   name,
		Fields: make([]Field, len(t.Fields)),
		index:  make(map[value.Symbol]int, len(t.Fields)),
	}
	for i, f := range t.Fields {
		f.Name = value.Symbol(norm.NFC.String(string(f.Name)))
		if f.Name == "" {
			return nil, fmt.Errorf("schema: type %s: field name must not be empty", name)
		}
		if _, dup := reg.index[f.Name]; dup {
			return nil, fmt.Errorf("schema: type %s: duplicate field %s", name, f.Name)
		}
		reg.Fields[i] = f
		reg.index[f.Name] = i
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.types[name]; dup {
		return nil, fmt.Errorf("schema: type %s already registered", name)
	}
	r.types[name] = reg
	for _, f := range reg.Fields {
		r.symbols[string(f.Name)] = f.Name
	}
	return reg, nil
}

// MustRegister is like Register but panics on error. Intended for
// package-level fixture and startup registration.
func (r *Registry) MustRegister(t Type) *Type {
	reg, err := r.Register(t)
	if err != nil {
		panic(err)
	}
	return reg
}

// Lookup returns the descriptor for a registered type name.
func (r *Registry) Lookup(name string) (*Type, bool) {
	r.mu.RLock()
	t, ok := r.types[norm.NFC.String(name)]
	r.mu.RUnlock()
	return t, ok
}

// Resolve maps a textual key to an existing interned Symbol. Resolution
// fails when no such symbol was ever interned; it never creates one.
func (r *Registry) Resolve(text string) (value.Symbol, bool) {
	r.mu.RLock()
	s, ok := r.symbols[norm.NFC.String(text)]
	r.mu.RUnlock()
	return s, ok
}

// Intern adds a symbol to the interner without attaching it to a type.
// Useful for symbolic mapping keys that are not record fields.
func (r *Registry) Intern(text string) value.Symbol {
	canon := norm.NFC.String(text)
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.symbols[canon]; ok {
		return s
	}
	s := value.Symbol(canon)
	r.symbols[canon] = s
	return s
}
