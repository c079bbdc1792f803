package serializer

import (
	"context"
	"reflect"

	"github.com/pkg/errors"
	"github.com/viant/serializer/conv"
	"github.com/viant/serializer/document"
	"github.com/viant/serializer/internal/shape"
	"github.com/viant/serializer/visitor"
	"go.uber.org/zap"
)

// Serialize converts value into plain data
func (s *Serializer) Serialize(value interface{}) (interface{}, error) {
	return s.SerializeContext(context.Background(), value)
}

// SerializeContext converts value into plain data, context is used by document-store cursors
func (s *Serializer) SerializeContext(ctx context.Context, value interface{}) (interface{}, error) {
	value = shape.Indirect(value)
	return s.serialize(newScope(ctx, s.depth, value), value)
}

func (s *Serializer) serialize(sc *scope, value interface{}) (interface{}, error) {
	value = shape.Indirect(value)
	switch shape.Classify(value) {
	case shape.Mapping:
		src, err := newMappingSource(value)
		if err != nil {
			return nil, err
		}
		return s.emit(sc, src)
	case shape.Record:
		return s.emit(sc, newRecordSource(s.types, value))
	case shape.Sequence:
		return s.serializeSequence(sc, value)
	case shape.Cursor:
		items, err := s.documents.ConvertCursor(sc.ctx, value.(document.Cursor), sc)
		if err != nil {
			return nil, err
		}
		return items, nil
	case shape.Document:
		doc, err := s.documents.Convert(value, sc)
		if err != nil {
			return nil, err
		}
		return doc, nil
	case shape.Collection:
		items, err := value.(Collection).All()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load %T collection", value)
		}
		return s.serialize(sc, items)
	case shape.Callable:
		result, _, err := call(value)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to call %T", value)
		}
		return s.serialize(sc, result)
	case shape.Protected:
		return value, nil
	}
	return conv.Text(value), nil
}

func (s *Serializer) serializeSequence(sc *scope, value interface{}) ([]interface{}, error) {
	visit, err := sequenceVisitorOf(value)
	if err != nil {
		return nil, err
	}
	var ret = make([]interface{}, 0)
	err = visit(func(index int, item interface{}) (bool, error) {
		item = shape.Indirect(item)
		if sc.contains(item) {
			result := s.hook(s.onRecursion, item)
			switch result.kind {
			case omitResult:
				return true, nil
			case errorResult:
				return false, errors.Wrapf(result.err, "[%v]", index)
			}
			ret = append(ret, result.value)
			return true, nil
		}
		serialized, err := s.serialize(sc, item)
		if err != nil {
			return false, errors.Wrapf(err, "[%v]", index)
		}
		ret = append(ret, serialized)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func sequenceVisitorOf(value interface{}) (visitor.Visitor[int, interface{}], error) {
	switch reflect.TypeOf(value).Kind() {
	case reflect.Map:
		return visitor.SetVisitorOf(value)
	case reflect.Func:
		return visitor.SeqVisitorOf(value)
	}
	return visitor.AnySliceVisitorOf(value)
}

// enter applies depth and recursion policy before entering a composite value
func (s *Serializer) enter(sc *scope, name string, value interface{}, related *Serializer) (*scope, Result, bool) {
	if sc.exhausted() {
		s.logger.Debug("max depth reached", zap.String("serializer", s.name), zap.String("field", name))
		return nil, s.hook(s.onMaxDepth, value), false
	}
	if sc.contains(value) {
		s.logger.Debug("recursion detected", zap.String("serializer", s.name), zap.String("field", name))
		return nil, s.hook(s.onRecursion, value), false
	}
	return sc.child(value, related.depth), Result{}, true
}

// call invokes callable once, a callable result is rendered as text
func call(value interface{}) (interface{}, shape.Kind, error) {
	result, err := shape.Invoke(value)
	if err != nil {
		return nil, shape.Protected, err
	}
	result = shape.Indirect(result)
	kind := shape.Classify(result)
	if kind == shape.Callable {
		return conv.Text(result), shape.Text, nil
	}
	return result, kind, nil
}

func (s *Serializer) hook(hook Hook, value interface{}) Result {
	if hook == nil {
		return Omit()
	}
	return hook(value)
}
