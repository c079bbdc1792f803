package serializer

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrUnresolvedReference reports symbolic references without a declared serializer
	ErrUnresolvedReference = errors.New("unresolved serializer reference")
	// ErrDuplicate reports serializers declared twice under the same name
	ErrDuplicate = errors.New("duplicate serializer")
)

// Registry represents two-phase serializer build: declare all serializers, then link symbolic references
type Registry struct {
	serializers map[string]*Serializer
	names       []string
}

// Declare registers serializers by name
func (r *Registry) Declare(serializers ...*Serializer) error {
	for _, serializer := range serializers {
		if _, ok := r.serializers[serializer.name]; ok {
			return errors.Wrapf(ErrDuplicate, "%v", serializer.name)
		}
		r.serializers[serializer.name] = serializer
		r.names = append(r.names, serializer.name)
	}
	return nil
}

// Lookup returns declared serializer
func (r *Registry) Lookup(name string) (*Serializer, bool) {
	ret, ok := r.serializers[name]
	return ret, ok
}

// Link resolves symbolic references of all declared serializers and serializers reachable from them
func (r *Registry) Link() error {
	visited := map[*Serializer]bool{}
	var unresolved []string
	for _, name := range r.names {
		unresolved = r.link(r.serializers[name], visited, unresolved)
	}
	if len(unresolved) > 0 {
		return errors.Wrapf(ErrUnresolvedReference, "%v", strings.Join(unresolved, ", "))
	}
	return nil
}

func (r *Registry) link(serializer *Serializer, visited map[*Serializer]bool, unresolved []string) []string {
	if serializer == nil || visited[serializer] {
		return unresolved
	}
	visited[serializer] = true
	if ref := serializer.relatedRef; ref != "" {
		if target, ok := r.serializers[ref]; ok {
			serializer.related = target
		} else {
			unresolved = append(unresolved, fmt.Sprintf("%v.related: %v", serializer.name, ref))
		}
	}
	unresolved = r.linkFields(serializer, serializer.fields, visited, unresolved)
	return r.link(serializer.related, visited, unresolved)
}

func (r *Registry) linkFields(owner *Serializer, fields []Field, visited map[*Serializer]bool, unresolved []string) []string {
	for _, field := range fields {
		nested := field.Nested
		if nested == nil {
			continue
		}
		switch {
		case nested.inline:
			unresolved = r.linkFields(owner, nested.fields, visited, unresolved)
		case nested.ref != "":
			target, ok := r.serializers[nested.ref]
			if !ok {
				unresolved = append(unresolved, fmt.Sprintf("%v.%v: %v", owner.name, field.Name, nested.ref))
				continue
			}
			nested.serializer = target
			unresolved = r.link(target, visited, unresolved)
		case nested.serializer != nil:
			unresolved = r.link(nested.serializer, visited, unresolved)
		}
	}
	return unresolved
}

// NewRegistry creates a registry
func NewRegistry() *Registry {
	return &Registry{serializers: map[string]*Serializer{}}
}
