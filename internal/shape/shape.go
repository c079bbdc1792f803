// Package shape classifies host values into a closed set of kinds driving the traversal.
package shape

import (
	"context"
	"reflect"
	"time"

	"github.com/viant/serializer/conv"
	"github.com/viant/serializer/visitor"
	"go.mongodb.org/mongo-driver/bson"
)

// Kind represents value kind
type Kind int

const (
	//Protected represents values passed through unchanged
	Protected Kind = iota
	//Text represents values rendered as text
	Text
	//Mapping represents keyed values
	Mapping
	//Record represents structs and ORM models
	Record
	//Sequence represents slices, arrays, sets and lazy sequences
	Sequence
	//Cursor represents document-store cursors
	Cursor
	//Document represents document-store records
	Document
	//Collection represents relation accessors
	Collection
	//Callable represents zero-argument functions
	Callable
)

var kindNames = [...]string{"protected", "text", "mapping", "record", "sequence", "cursor", "document", "collection", "callable"}

// String returns kind name
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsComposite returns true if kind is subject to depth and recursion control
func (k Kind) IsComposite() bool {
	switch k {
	case Protected, Text, Callable:
		return false
	}
	return true
}

type (
	collection interface {
		All() (interface{}, error)
	}

	cursor interface {
		Next(ctx context.Context) bool
		Decode(val interface{}) error
		Err() error
	}

	documenter interface {
		Document() bson.D
	}
)

var (
	errorType = reflect.TypeOf((*error)(nil)).Elem()
	timeType  = reflect.TypeOf(time.Time{})
)

// Classify returns value kind, pointers to non struct values are expected to be dereferenced with Indirect
func Classify(value interface{}) Kind {
	switch value.(type) {
	case nil:
		return Protected
	case bson.D, bson.M, bson.Raw, documenter:
		return Document
	case cursor:
		return Cursor
	case collection:
		return Collection
	}
	if conv.IsProtected(value) {
		return Protected
	}
	rType := reflect.TypeOf(value)
	switch rType.Kind() {
	case reflect.Map:
		if visitor.IsSet(rType) {
			return Sequence
		}
		return Mapping
	case reflect.Slice, reflect.Array:
		if rType.Elem().Kind() == reflect.Uint8 || conv.HasText(rType) {
			return Text
		}
		return Sequence
	case reflect.Func:
		if visitor.IsSeq(rType) {
			return Sequence
		}
		if IsCallable(rType) {
			return Callable
		}
	case reflect.Ptr:
		if rType.Elem().Kind() == reflect.Struct {
			return classifyStruct(rType.Elem())
		}
	case reflect.Struct:
		return classifyStruct(rType)
	}
	return Text
}

func classifyStruct(rType reflect.Type) Kind {
	if hasExportedFields(rType) {
		return Record
	}
	if conv.HasText(rType) || rType.Implements(errorType) || reflect.PointerTo(rType).Implements(errorType) {
		return Text
	}
	return Record
}

func hasExportedFields(rType reflect.Type) bool {
	for i := 0; i < rType.NumField(); i++ {
		if rType.Field(i).IsExported() {
			return true
		}
	}
	return false
}

// Indirect dereferences pointers to non struct values and time pointers, nil pointer returns nil
func Indirect(value interface{}) interface{} {
	if value == nil {
		return nil
	}
	rValue := reflect.ValueOf(value)
	if rValue.Kind() != reflect.Ptr {
		return value
	}
	for rValue.Kind() == reflect.Ptr {
		if rValue.IsNil() {
			return nil
		}
		if elem := rValue.Elem(); elem.Kind() == reflect.Struct && elem.Type() != timeType {
			break
		}
		rValue = rValue.Elem()
	}
	return rValue.Interface()
}
