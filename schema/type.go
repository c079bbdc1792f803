package schema

import (
	"reflect"
	"sort"
	"strings"
	"unsafe"

	"github.com/uptrace/bun"
	bunschema "github.com/uptrace/bun/schema"
	"github.com/viant/xunsafe"
)

const maxEmbedding = 8

var baseModelType = reflect.TypeOf(bun.BaseModel{})

// Type represents a record type
type Type struct {
	rType    reflect.Type
	model    bool
	names    []string
	fields   []*Field
	index    map[string]*Field
	caseless map[string]*Field
	marker   *Marker
}

// Type returns struct type
func (t *Type) Type() reflect.Type {
	return t.rType
}

// IsModel returns true if type is a bun model
func (t *Type) IsModel() bool {
	return t.model
}

// Names returns declared field names, for bun models persisted columns followed by relations
func (t *Type) Names() []string {
	return t.names
}

// Fields returns all resolvable fields
func (t *Type) Fields() []*Field {
	return t.fields
}

// Marker returns presence marker or nil
func (t *Type) Marker() *Marker {
	return t.marker
}

// Lookup returns a field matching name, Go name or case-insensitive name
func (t *Type) Lookup(name string) *Field {
	if field, ok := t.index[name]; ok {
		return field
	}
	return t.caseless[strings.ToLower(name)]
}

// Value returns named field value for supplied struct pointer
func (t *Type) Value(ptr unsafe.Pointer, name string) (interface{}, bool) {
	field := t.Lookup(name)
	if field == nil {
		return nil, false
	}
	return field.Value(ptr)
}

func (t *Type) addField(field *Field) {
	for i, candidate := range t.fields {
		if candidate.Name != field.Name {
			continue
		}
		if candidate.Depth() > field.Depth() {
			t.fields[i] = field
		}
		return
	}
	t.fields = append(t.fields, field)
}

func (t *Type) init() {
	t.index = make(map[string]*Field, 2*len(t.fields))
	t.caseless = make(map[string]*Field, 2*len(t.fields))
	for _, field := range t.fields {
		t.index[field.Name] = field
	}
	for _, field := range t.fields {
		if _, ok := t.index[field.GoName]; !ok {
			t.index[field.GoName] = field
		}
		for _, key := range []string{field.Name, field.GoName} {
			key = strings.ToLower(key)
			if _, ok := t.caseless[key]; !ok {
				t.caseless[key] = field
			}
		}
	}
	if t.model {
		return
	}
	t.names = make([]string, 0, len(t.fields))
	for _, field := range t.fields {
		t.names = append(t.names, field.Name)
	}
}

// applyModel uses bun table columns and relations as declared names
func (t *Type) applyModel(table *bunschema.Table) {
	byGoName := make(map[string]*Field, len(t.fields))
	for _, field := range t.fields {
		if _, ok := byGoName[field.GoName]; !ok {
			byGoName[field.GoName] = field
		}
	}
	t.model = true
	t.names = make([]string, 0, len(table.Fields)+len(table.Relations))
	for _, column := range table.Fields {
		if field, ok := byGoName[column.GoName]; ok {
			field.Name = column.Name
		}
		t.names = append(t.names, column.Name)
	}
	relations := make([]*bunschema.Relation, 0, len(table.Relations))
	for _, relation := range table.Relations {
		relations = append(relations, relation)
	}
	sort.Slice(relations, func(i, j int) bool {
		return relations[i].Field.Name < relations[j].Field.Name
	})
	for _, relation := range relations {
		if field, ok := byGoName[relation.Field.GoName]; ok {
			field.Name = relation.Field.Name
			field.Relation = true
		}
		t.names = append(t.names, relation.Field.Name)
	}
}

func (t *Type) addFields(rType reflect.Type, upstream []*xField, depth int) {
	for i := 0; i < rType.NumField(); i++ {
		sf := rType.Field(i)
		if sf.Type == baseModelType || IsMarker(sf.Tag) {
			continue
		}
		tag := resolveTag(sf)
		if tag.ignore {
			continue
		}
		if sf.Anonymous && !tag.explicit && depth < maxEmbedding {
			embedded, isPtr := sf.Type, false
			if embedded.Kind() == reflect.Ptr {
				embedded, isPtr = embedded.Elem(), true
			}
			if embedded.Kind() == reflect.Struct {
				t.addFields(embedded, append(append([]*xField{}, upstream...), &xField{field: xunsafe.NewField(sf), deref: isPtr}), depth+1)
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}
		field := newField(sf, tag.name, upstream)
		if len(upstream) == 0 {
			field.marker = t.marker
		}
		t.addField(field)
	}
}
