package serializer

type (
	//Nested represents field related configuration: inline fields, a serializer or a symbolic reference
	Nested struct {
		inline     bool
		fields     []Field
		serializer *Serializer
		ref        string
	}

	//Field represents field descriptor
	Field struct {
		Name   string
		Nested *Nested
	}
)

// Ref returns symbolic reference name or empty string
func (n *Nested) Ref() string {
	if n == nil {
		return ""
	}
	return n.ref
}

// Serializer returns explicit or linked serializer
func (n *Nested) Serializer() *Serializer {
	if n == nil {
		return nil
	}
	return n.serializer
}

// F creates a field descriptor
func F(name string, nested ...*Nested) Field {
	ret := Field{Name: name}
	if len(nested) > 0 {
		ret.Nested = nested[0]
	}
	return ret
}

// Names creates bare field descriptors
func Names(names ...string) []Field {
	ret := make([]Field, len(names))
	for i, name := range names {
		ret[i] = Field{Name: name}
	}
	return ret
}

// Inline overrides fields of the current serializer for a related value
func Inline(fields ...Field) *Nested {
	return &Nested{inline: true, fields: fields}
}

// Use uses supplied serializer for a related value
func Use(serializer *Serializer) *Nested {
	return &Nested{serializer: serializer}
}

// Ref references a serializer declared in a registry by name
func Ref(name string) *Nested {
	return &Nested{ref: name}
}
