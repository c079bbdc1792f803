package serializer

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/viant/serializer/conv"
	"github.com/viant/serializer/internal/shape"
	"github.com/viant/tagly/format/text"
	"go.uber.org/zap"
)

// emit serializes mapping or record fields
func (s *Serializer) emit(sc *scope, src source) (map[string]interface{}, error) {
	fields := s.selectFields(src)
	ret := make(map[string]interface{}, len(fields))
	for _, field := range fields {
		raw, ok, err := s.fieldValue(src, field.Name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to access %v", field.Name)
		}
		if !ok {
			continue
		}
		result := s.serializeField(sc, field, raw)
		switch result.kind {
		case omitResult:
			continue
		case errorResult:
			if result.err == nil {
				continue
			}
			return nil, errors.Wrapf(result.err, "failed to serialize %v", field.Name)
		}
		ret[s.key(field.Name)] = result.value
	}
	return ret, nil
}

// selectFields returns configured fields or sorted default names combined with include and exclude
func (s *Serializer) selectFields(src source) []Field {
	if len(s.fields) > 0 {
		return s.fields
	}
	names := lo.Without(lo.Union(src.names(), s.include), s.exclude...)
	sort.Strings(names)
	return Names(names...)
}

func (s *Serializer) fieldValue(src source, name string) (interface{}, bool, error) {
	if accessor, ok := s.accessors[name]; ok {
		value, err := accessor(src.instance())
		if err != nil {
			return nil, false, err
		}
		return value, true, nil
	}
	value, ok := src.lookup(name)
	return value, ok, nil
}

func (s *Serializer) serializeField(sc *scope, field Field, raw interface{}) Result {
	value := shape.Indirect(raw)
	kind := shape.Classify(value)
	if kind == shape.Callable {
		var err error
		if value, kind, err = call(value); err != nil {
			return Fail(err)
		}
	}
	switch kind {
	case shape.Protected:
		return Value(value)
	case shape.Text:
		return Value(conv.Text(value))
	}
	related := s.relatedOf(field)
	child, result, ok := s.enter(sc, field.Name, value, related)
	if !ok {
		return result
	}
	serialized, err := related.serialize(child, value)
	if err != nil {
		return Fail(err)
	}
	return Value(serialized)
}

// relatedOf returns serializer for the field value
func (s *Serializer) relatedOf(field Field) *Serializer {
	if nested := field.Nested; nested != nil {
		switch {
		case nested.inline:
			return s.derive(nested.fields)
		case nested.serializer != nil:
			return nested.serializer
		case nested.ref != "":
			s.logger.Debug("unresolved serializer reference", zap.String("serializer", s.name), zap.String("field", field.Name), zap.String("ref", nested.ref))
		}
	}
	if s.related != nil {
		return s.related
	}
	return Default()
}

// key returns output key, renamed keys are not case formatted
func (s *Serializer) key(name string) string {
	if renamed, ok := s.rename[name]; ok {
		return renamed
	}
	caseFormat := s.keyCaseFormat
	if caseFormat == "" {
		return name
	}
	if name == "ID" {
		switch caseFormat {
		case text.CaseFormatLower, text.CaseFormatLowerCamel, text.CaseFormatLowerUnderscore:
			return "id"
		}
	}
	src := text.DetectCaseFormat(name)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(name, caseFormat)
}
