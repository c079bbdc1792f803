package visitor

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

type order struct {
	items bson.D
}

func (o *order) Document() bson.D {
	return o.items
}

func reflectType(value interface{}) reflect.Type {
	return reflect.TypeOf(value)
}

func TestDocumentVisitorOf(t *testing.T) {
	raw, err := bson.Marshal(bson.D{{Key: "a", Value: "x"}, {Key: "b", Value: int32(2)}})
	if !assert.Nil(t, err) {
		return
	}
	var testCases = []struct {
		description string
		value       interface{}
		expectKeys  []string
	}{
		{
			description: "ordered document",
			value:       bson.D{{Key: "z", Value: 1}, {Key: "a", Value: 2}},
			expectKeys:  []string{"z", "a"},
		},
		{
			description: "raw document",
			value:       bson.Raw(raw),
			expectKeys:  []string{"a", "b"},
		},
		{
			description: "record",
			value:       &order{items: bson.D{{Key: "total", Value: 10}}},
			expectKeys:  []string{"total"},
		},
	}
	for _, testCase := range testCases {
		visit, err := DocumentVisitorOf(testCase.value)
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		var keys []string
		err = visit(func(key string, _ interface{}) (bool, error) {
			keys = append(keys, key)
			return true, nil
		})
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expectKeys, keys, testCase.description)
	}

	_, err = DocumentVisitorOf(bson.Raw([]byte{1, 2}))
	assert.NotNil(t, err)
	_, err = DocumentVisitorOf(42)
	assert.NotNil(t, err)
}
