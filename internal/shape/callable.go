package shape

import (
	"fmt"
	"reflect"
)

// IsCallable returns true for functions without parameters returning a value, optionally followed by an error
func IsCallable(rType reflect.Type) bool {
	if rType.Kind() != reflect.Func || rType.NumIn() != 0 {
		return false
	}
	switch rType.NumOut() {
	case 1:
		return true
	case 2:
		return rType.Out(1) == errorType
	}
	return false
}

// Invoke calls zero-argument function and returns its result
func Invoke(fn interface{}) (interface{}, error) {
	switch actual := fn.(type) {
	case func() interface{}:
		return actual(), nil
	case func() (interface{}, error):
		return actual()
	}
	rValue := reflect.ValueOf(fn)
	if !IsCallable(rValue.Type()) {
		return nil, fmt.Errorf("expected zero-argument function, got %T", fn)
	}
	if rValue.IsNil() {
		return nil, nil
	}
	out := rValue.Call(nil)
	if len(out) == 2 && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}
