package serializer

import (
	"unsafe"

	"github.com/viant/serializer/schema"
	"github.com/viant/serializer/visitor"
)

type (
	// source represents keyed content of a mapping or record
	source interface {
		instance() interface{}
		names() []string
		lookup(name string) (interface{}, bool)
	}

	mappingSource struct {
		value  interface{}
		keys   []string
		values map[string]interface{}
	}

	recordSource struct {
		value interface{}
		ptr   unsafe.Pointer
		aType *schema.Type
	}
)

func (m *mappingSource) instance() interface{} {
	return m.value
}

func (m *mappingSource) names() []string {
	return m.keys
}

func (m *mappingSource) lookup(name string) (interface{}, bool) {
	value, ok := m.values[name]
	return value, ok
}

func newMappingSource(value interface{}) (*mappingSource, error) {
	ret := &mappingSource{value: value}
	if aMap, ok := value.(map[string]interface{}); ok {
		ret.values = aMap
	} else {
		visit, err := visitor.AnyMapVisitorOf(value)
		if err != nil {
			return nil, err
		}
		ret.values = map[string]interface{}{}
		if err = visit(func(key string, element interface{}) (bool, error) {
			ret.values[key] = element
			return true, nil
		}); err != nil {
			return nil, err
		}
	}
	ret.keys = make([]string, 0, len(ret.values))
	for key := range ret.values {
		ret.keys = append(ret.keys, key)
	}
	return ret, nil
}

func (r *recordSource) instance() interface{} {
	return r.value
}

func (r *recordSource) names() []string {
	return r.aType.Names()
}

func (r *recordSource) lookup(name string) (interface{}, bool) {
	return r.aType.Value(r.ptr, name)
}

func newRecordSource(types *schema.Types, value interface{}) *recordSource {
	return &recordSource{value: value, ptr: schema.PointerOf(value), aType: types.TypeOf(value)}
}
