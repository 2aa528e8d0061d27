package convert

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Names of the converters in DefaultRegistry.
const (
	TypeBoolean     = "boolean"
	TypeInteger     = "integer"
	TypeEnumerated  = "enumerated"
	TypeOctetString = "octetstring"
	TypeUTF8String  = "utf8string"
)

// Registry is a flat catalog of codecs keyed by logical type name.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Codec
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Codec),
	}
}

// DefaultRegistry returns a new registry holding the built-in converters.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, c := range []Codec{
		Erase[bool](TypeBoolean, Boolean{}),
		Erase[int64](TypeInteger, Integer{}),
		Erase[int64](TypeEnumerated, Enumerated{}),
		Erase[[]byte](TypeOctetString, OctetString{}),
		Erase[string](TypeUTF8String, UTF8String{}),
	} {
		// Names are distinct constants, registration cannot fail.
		_ = r.Register(c)
	}
	return r
}

// Register adds c under c.Name(). Names are case-insensitive.
func (r *Registry) Register(c Codec) error {
	name := normalizeName(c.Name())
	if name == "" {
		return ErrEmptyTypeName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.codecs[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateType, name)
	}
	r.codecs[name] = c
	return nil
}

// Lookup returns the codec registered under name.
func (r *Registry) Lookup(name string) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.codecs[normalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return c, nil
}

// Names returns the registered type names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.codecs))
	for name := range r.codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
