package shape

import "reflect"

// Identity represents reference identity, equal but distinct values have different identities
type Identity struct {
	rType reflect.Type
	ptr   uintptr
	size  int
}

// Identify returns reference identity for pointers, maps, channels and non empty slices.
// Struct values and other values passed by copy have no identity.
func Identify(value interface{}) (Identity, bool) {
	if value == nil {
		return Identity{}, false
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan:
		if rValue.IsNil() {
			return Identity{}, false
		}
		return Identity{rType: rValue.Type(), ptr: rValue.Pointer()}, true
	case reflect.Slice:
		if rValue.Len() == 0 {
			return Identity{}, false
		}
		return Identity{rType: rValue.Type(), ptr: rValue.Pointer(), size: rValue.Len()}, true
	}
	return Identity{}, false
}

// Stack represents ancestor identities
type Stack []Identity

// Contains returns true if stack contains identity
func (s Stack) Contains(identity Identity) bool {
	for _, candidate := range s {
		if candidate == identity {
			return true
		}
	}
	return false
}

// Push returns a copy of the stack extended with identity
func (s Stack) Push(identity Identity) Stack {
	ret := make(Stack, len(s), len(s)+1)
	copy(ret, s)
	return append(ret, identity)
}
