package visitor

import (
	"fmt"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

// documenter is implemented by native document-store records exposing their ordered content
type documenter interface {
	Document() bson.D
}

// DocumentVisitorOf creates a visitor over document-store record elements.
// Ordered documents (bson.D, bson.Raw) are visited in their stored order.
func DocumentVisitorOf(value interface{}) (Visitor[string, interface{}], error) {
	switch actual := value.(type) {
	case bson.D:
		return elementsVisitor(actual), nil
	case bson.M:
		return TypedMapVisitorOf[interface{}](actual), nil
	case bson.Raw:
		var doc bson.D
		if err := bson.Unmarshal(actual, &doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode raw document")
		}
		return elementsVisitor(doc), nil
	case documenter:
		return elementsVisitor(actual.Document()), nil
	}
	return nil, fmt.Errorf("expected document, got %T", value)
}

func elementsVisitor(doc bson.D) Visitor[string, interface{}] {
	return func(f func(key string, element interface{}) (bool, error)) error {
		for _, elem := range doc {
			continueVisit, err := f(elem.Key, elem.Value)
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
