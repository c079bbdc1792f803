package document

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/viant/serializer/visitor"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// TimeLayout represents default document date/time layout
const TimeLayout = "2006-01-02T15:04:05.000000Z"

var excluded = map[string]bool{
	"_id":      true,
	"password": true,
}

type (
	// Record represents native document-store record
	Record interface {
		Document() bson.D
	}

	// Cursor represents document-store cursor
	Cursor = visitor.Cursor

	// Guard controls entering nested documents, returned guard is used for the nested document content
	Guard interface {
		Enter(value interface{}) (Guard, bool)
	}

	// Converter converts documents into plain mappings
	Converter struct {
		mapping      map[string]string
		subDocuments bool
		timeLayout   string
		logger       *zap.Logger
	}
)

// Convert converts a single document, without sub documents option embedded documents are converted one level deep
// and referenced records are omitted
func (c *Converter) Convert(value interface{}, guard Guard) (map[string]interface{}, error) {
	return c.convert(value, c.subDocuments, c.ensureGuard(guard, value))
}

// ConvertCursor converts all cursor records including nested documents.
// Records failing to decode or convert are logged and skipped, cursor error fails conversion.
// Caller owns the cursor.
func (c *Converter) ConvertCursor(ctx context.Context, cursor Cursor, guard Guard) ([]interface{}, error) {
	var ret = make([]interface{}, 0)
	err := visitor.CursorVisitorOf(ctx, cursor)(func(index int, decode func(dest interface{}) error) (bool, error) {
		var doc bson.D
		if err := decode(&doc); err != nil {
			c.logger.Error("failed to decode document", zap.Int("index", index), zap.Error(err))
			return true, nil
		}
		converted, err := c.convert(doc, true, c.ensureGuard(guard, doc))
		if err != nil {
			c.logger.Error("failed to convert document", zap.Int("index", index), zap.Error(err))
			return true, nil
		}
		ret = append(ret, converted)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// Key returns output key or false if key is excluded
func (c *Converter) Key(key string) (string, bool) {
	if mapped, ok := c.mapping[key]; ok {
		return mapped, true
	}
	if excluded[key] {
		return "", false
	}
	return key, true
}

func (c *Converter) convert(value interface{}, subDocuments bool, guard Guard) (map[string]interface{}, error) {
	visit, err := visitor.DocumentVisitorOf(value)
	if err != nil {
		return nil, err
	}
	ret := make(map[string]interface{})
	err = visit(func(key string, element interface{}) (bool, error) {
		outKey, ok := c.Key(key)
		if !ok {
			return true, nil
		}
		converted, ok, err := c.value(element, subDocuments, guard)
		if err != nil {
			return false, errors.Wrapf(err, "failed to convert document key %v", key)
		}
		if ok {
			ret[outKey] = converted
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func (c *Converter) value(value interface{}, subDocuments bool, guard Guard) (interface{}, bool, error) {
	switch actual := value.(type) {
	case nil:
		return nil, true, nil
	case string, bool, float32, float64,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return actual, true, nil
	case time.Time:
		return c.formatTime(actual), true, nil
	case *time.Time:
		if actual == nil {
			return nil, true, nil
		}
		return c.formatTime(*actual), true, nil
	case primitive.DateTime:
		return c.formatTime(actual.Time()), true, nil
	case primitive.ObjectID:
		return actual.Hex(), true, nil
	case primitive.Decimal128:
		return actual.String(), true, nil
	case bson.A:
		items := make([]interface{}, 0, len(actual))
		for _, item := range actual {
			converted, ok, err := c.value(item, subDocuments, guard)
			if err != nil {
				return nil, false, err
			}
			if ok {
				items = append(items, converted)
			}
		}
		return items, true, nil
	case bson.D, bson.M, bson.Raw:
		if !subDocuments {
			// nil guard marks embedded content, deeper documents are omitted
			if guard == nil {
				return nil, false, nil
			}
			converted, err := c.convert(actual, false, nil)
			if err != nil {
				return nil, false, err
			}
			return converted, true, nil
		}
		return c.enter(actual, guard)
	case Record:
		if !subDocuments {
			return nil, false, nil
		}
		return c.enter(actual, guard)
	}
	return nil, false, nil
}

// enter converts nested document when guard permits
func (c *Converter) enter(value interface{}, guard Guard) (interface{}, bool, error) {
	child, ok := guard.Enter(value)
	if !ok {
		return nil, false, nil
	}
	converted, err := c.convert(value, true, child)
	if err != nil {
		return nil, false, err
	}
	return converted, true, nil
}

func (c *Converter) formatTime(ts time.Time) string {
	return ts.UTC().Format(c.timeLayout)
}

func (c *Converter) ensureGuard(guard Guard, root interface{}) Guard {
	if guard != nil {
		return guard
	}
	ret, _ := (&stackGuard{}).Enter(root)
	return ret
}

// New creates a document converter
func New(opts ...Option) *Converter {
	ret := &Converter{timeLayout: TimeLayout, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
