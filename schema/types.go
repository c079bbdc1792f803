package schema

import (
	"reflect"
	"unsafe"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/uptrace/bun/dialect/pgdialect"
	bunschema "github.com/uptrace/bun/schema"
)

type (
	// TableProvider provides bun table registry, typically a bun dialect
	TableProvider interface {
		Tables() *bunschema.Tables
	}

	// Types represents record type cache
	Types struct {
		cache  *xsync.MapOf[reflect.Type, *Type]
		tables *bunschema.Tables
	}

	// Option represents types option
	Option func(t *Types)
)

// WithDialect uses dialect tables for bun model introspection
func WithDialect(provider TableProvider) Option {
	return func(t *Types) {
		t.tables = provider.Tables()
	}
}

var defaultTypes = NewTypes()

// Default returns shared types cache
func Default() *Types {
	return defaultTypes
}

// Lookup returns record type for struct or struct pointer type, nil for other types
func (t *Types) Lookup(rType reflect.Type) *Type {
	if rType = ensureStruct(rType); rType == nil {
		return nil
	}
	ret, _ := t.cache.LoadOrCompute(rType, func() *Type {
		return t.build(rType)
	})
	return ret
}

// TypeOf returns record type for supplied value
func (t *Types) TypeOf(value interface{}) *Type {
	if value == nil {
		return nil
	}
	return t.Lookup(reflect.TypeOf(value))
}

func (t *Types) build(rType reflect.Type) *Type {
	ret := &Type{rType: rType, marker: NewMarker(rType)}
	ret.addFields(rType, nil, 0)
	if table := t.table(rType); table != nil {
		ret.applyModel(table)
	}
	ret.init()
	return ret
}

func (t *Types) table(rType reflect.Type) (table *bunschema.Table) {
	if t.tables == nil || !isModel(rType) {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			table = nil
		}
	}()
	return t.tables.Get(rType)
}

func isModel(rType reflect.Type) bool {
	for i := 0; i < rType.NumField(); i++ {
		if rType.Field(i).Type == baseModelType {
			return true
		}
	}
	return false
}

// PointerOf returns struct pointer for supplied struct or struct pointer value, nil otherwise
func PointerOf(value interface{}) unsafe.Pointer {
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr:
		if rValue.IsNil() || rValue.Elem().Kind() != reflect.Struct {
			return nil
		}
		return unsafe.Pointer(rValue.Pointer())
	case reflect.Struct:
		clone := reflect.New(rValue.Type())
		clone.Elem().Set(rValue)
		return unsafe.Pointer(clone.Pointer())
	}
	return nil
}

// NewTypes creates record type cache
func NewTypes(opts ...Option) *Types {
	ret := &Types{cache: xsync.NewMapOf[reflect.Type, *Type]()}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.tables == nil {
		ret.tables = pgdialect.New().Tables()
	}
	return ret
}
