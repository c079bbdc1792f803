package visitor

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/viant/serializer/conv"
)

// AnyMapVisitorOf creates a visitor for any map value, keys are visited as text.
func AnyMapVisitorOf(value interface{}) (Visitor[string, interface{}], error) {
	switch actual := value.(type) {
	case map[string]interface{}:
		return TypedMapVisitorOf[interface{}](actual), nil
	case map[string]string:
		return TypedMapVisitorOf[string](actual), nil
	case map[string]int:
		return TypedMapVisitorOf[int](actual), nil
	case map[string]bool:
		return TypedMapVisitorOf[bool](actual), nil
	}
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	visitor := &AnyMapVisitor{data: val}
	return visitor.Visit, nil
}

// TypedMapVisitorOf returns visitor for string keyed map
func TypedMapVisitorOf[V any](aMap map[string]V) Visitor[string, interface{}] {
	return func(f func(key string, element interface{}) (bool, error)) error {
		for k, e := range aMap {
			continueVisit, err := f(k, e)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

// AnyMapVisitor defines reflection based map visitor
type AnyMapVisitor struct {
	data reflect.Value
}

// Visit iterates over the map via reflection and calls f for each entry.
func (v *AnyMapVisitor) Visit(f func(key string, element interface{}) (bool, error)) error {
	iter := v.data.MapRange()
	for iter.Next() {
		continueVisit, err := f(conv.Text(iter.Key().Interface()), iter.Value().Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

// IsSet returns true if map type models a set (map[K]struct{})
func IsSet(rType reflect.Type) bool {
	return rType.Kind() == reflect.Map && rType.Elem().Kind() == reflect.Struct && rType.Elem().NumField() == 0
}

// SetVisitorOf creates a visitor over set members, members are visited in their text order.
func SetVisitorOf(value interface{}) (Visitor[int, interface{}], error) {
	val := reflect.ValueOf(value)
	if !IsSet(val.Type()) {
		return nil, fmt.Errorf("expected set, got %T", value)
	}
	keys := val.MapKeys()
	members := make([]interface{}, len(keys))
	for i, key := range keys {
		members[i] = key.Interface()
	}
	sort.SliceStable(members, func(i, j int) bool {
		return conv.Text(members[i]) < conv.Text(members[j])
	})
	return AnyTypedSliceVisitorOf[interface{}](members), nil
}
