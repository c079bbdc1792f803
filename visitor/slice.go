package visitor

import (
	"fmt"
	"reflect"
)

// AnySliceVisitorOf dynamically creates a visitor from any slice or array value.
func AnySliceVisitorOf(value interface{}) (Visitor[int, any], error) {
	switch actual := value.(type) {
	case []interface{}:
		return AnyTypedSliceVisitorOf[interface{}](actual), nil
	case []string:
		return AnyTypedSliceVisitorOf[string](actual), nil
	case []int:
		return AnyTypedSliceVisitorOf[int](actual), nil
	case []int64:
		return AnyTypedSliceVisitorOf[int64](actual), nil
	case []float64:
		return AnyTypedSliceVisitorOf[float64](actual), nil
	case []bool:
		return AnyTypedSliceVisitorOf[bool](actual), nil
	}
	val := reflect.ValueOf(value)
	if kind := val.Kind(); kind != reflect.Slice && kind != reflect.Array {
		return nil, fmt.Errorf("expected slice, got %T", value)
	}
	visitor := &AnySliceVisitor{data: val}
	return visitor.Visit, nil
}

// AnyTypedSliceVisitorOf return visitor
func AnyTypedSliceVisitorOf[E any](slice []E) Visitor[int, any] {
	return func(f func(key int, element any) (bool, error)) error {
		for i, e := range slice {
			continueVisit, err := f(i, e)
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

// AnySliceVisitor visits slices and arrays of any type.
type AnySliceVisitor struct {
	data reflect.Value
}

// Visit iterates over any slice type via reflection.
func (v *AnySliceVisitor) Visit(f func(key int, element any) (bool, error)) error {
	for i := 0; i < v.data.Len(); i++ {
		continueVisit, err := f(i, v.data.Index(i).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

// IsSeq returns true if type is a lazy sequence: func(yield func(E) bool)
func IsSeq(rType reflect.Type) bool {
	if rType.Kind() != reflect.Func || rType.NumIn() != 1 || rType.NumOut() != 0 {
		return false
	}
	yield := rType.In(0)
	return yield.Kind() == reflect.Func && yield.NumIn() == 1 && yield.NumOut() == 1 && yield.Out(0).Kind() == reflect.Bool
}

// SeqVisitorOf creates a visitor pulling elements from a lazy sequence
func SeqVisitorOf(value interface{}) (Visitor[int, any], error) {
	if seq, ok := value.(func(func(interface{}) bool)); ok && seq != nil {
		return func(f func(key int, element any) (bool, error)) error {
			var err error
			index := 0
			seq(func(element interface{}) bool {
				var continueVisit bool
				continueVisit, err = f(index, element)
				index++
				return err == nil && continueVisit
			})
			return err
		}, nil
	}
	val := reflect.ValueOf(value)
	if !IsSeq(val.Type()) || val.IsNil() {
		return nil, fmt.Errorf("expected sequence, got %T", value)
	}
	yieldType := val.Type().In(0)
	return func(f func(key int, element any) (bool, error)) error {
		var err error
		index := 0
		yield := reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
			var continueVisit bool
			continueVisit, err = f(index, args[0].Interface())
			index++
			return []reflect.Value{reflect.ValueOf(err == nil && continueVisit).Convert(yieldType.Out(0))}
		})
		val.Call([]reflect.Value{yield})
		return err
	}, nil
}
