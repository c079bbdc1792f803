package schema

import (
	"reflect"
	"strings"
	"unsafe"

	"github.com/viant/xunsafe"
)

const (
	//SetMarkerTag defines set marker tag
	SetMarkerTag = "setMarker"
	//PresenceMarkerTag defines presence marker tag
	PresenceMarkerTag = "presenceMarker"

	legacyMarkerTag   = "presenceIndex"
	legacyTagFragment = "presence=true"
)

// IsMarker returns true if struct tag flags field as presence marker holder
func IsMarker(tag reflect.StructTag) bool {
	for _, name := range []string{SetMarkerTag, PresenceMarkerTag, legacyMarkerTag} {
		if _, ok := tag.Lookup(name); ok {
			return true
		}
	}
	return strings.Contains(string(tag), legacyTagFragment)
}

// Marker reports whether record fields were set, based on a *struct{Field bool...} holder field
type Marker struct {
	holder *xunsafe.Field
	flags  map[string]*xunsafe.Field
}

// IsSet returns true if field has been flagged as set, missing holder or flag means set
func (m *Marker) IsSet(ptr unsafe.Pointer, goName string) bool {
	if m == nil || m.holder == nil || ptr == nil || m.holder.IsNil(ptr) {
		return true
	}
	flag, ok := m.flags[goName]
	if !ok {
		return true
	}
	return flag.Bool(m.holder.ValuePointer(ptr))
}

// NewMarker returns a presence marker for supplied struct or nil if struct does not define one
func NewMarker(rType reflect.Type) *Marker {
	if rType = ensureStruct(rType); rType == nil {
		return nil
	}
	for i := 0; i < rType.NumField(); i++ {
		field := rType.Field(i)
		if !IsMarker(field.Tag) {
			continue
		}
		if field.Type.Kind() != reflect.Ptr || field.Type.Elem().Kind() != reflect.Struct {
			continue
		}
		holderType := field.Type.Elem()
		ret := &Marker{holder: xunsafe.NewField(field), flags: make(map[string]*xunsafe.Field, holderType.NumField())}
		for j := 0; j < holderType.NumField(); j++ {
			flag := holderType.Field(j)
			if flag.Type.Kind() != reflect.Bool {
				continue
			}
			ret.flags[flag.Name] = xunsafe.NewField(flag)
		}
		return ret
	}
	return nil
}

func ensureStruct(t reflect.Type) reflect.Type {
	switch t.Kind() {
	case reflect.Struct:
		return t
	case reflect.Ptr:
		return ensureStruct(t.Elem())
	}
	return nil
}
