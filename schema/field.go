package schema

import (
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

// Field represents a record field
type Field struct {
	Name     string
	GoName   string
	Type     reflect.Type
	Relation bool
	path     []*xunsafe.Field
	derefs   []bool
	marker   *Marker
}

// Depth returns embedding depth, 0 for direct fields
func (f *Field) Depth() int {
	return len(f.path) - 1
}

// Value returns field value for supplied struct pointer, false if the value is missing:
// either an embedding pointer is nil or presence marker reports field as unset
func (f *Field) Value(ptr unsafe.Pointer) (interface{}, bool) {
	if ptr == nil {
		return nil, false
	}
	if !f.marker.IsSet(ptr, f.GoName) {
		return nil, false
	}
	holder := ptr
	last := len(f.path) - 1
	for i := 0; i < last; i++ {
		holder = f.path[i].Pointer(holder)
		if f.derefs[i] {
			if holder = xunsafe.DerefPointer(holder); holder == nil {
				return nil, false
			}
		}
	}
	return f.path[last].Value(holder), true
}

type xField struct {
	field *xunsafe.Field
	deref bool
}

func newField(sf reflect.StructField, name string, upstream []*xField) *Field {
	ret := &Field{
		Name:   name,
		GoName: sf.Name,
		Type:   sf.Type,
		path:   make([]*xunsafe.Field, 0, len(upstream)+1),
		derefs: make([]bool, 0, len(upstream)+1),
	}
	for _, embedded := range upstream {
		ret.path = append(ret.path, embedded.field)
		ret.derefs = append(ret.derefs, embedded.deref)
	}
	ret.path = append(ret.path, xunsafe.NewField(sf))
	ret.derefs = append(ret.derefs, false)
	return ret
}
