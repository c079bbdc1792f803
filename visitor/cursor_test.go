package visitor

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type brokenCursor struct {
	remaining int
}

func (c *brokenCursor) Next(ctx context.Context) bool {
	c.remaining--
	return c.remaining >= 0
}

func (c *brokenCursor) Decode(val interface{}) error {
	return fmt.Errorf("corrupted record")
}

func (c *brokenCursor) Err() error {
	if c.remaining < 0 {
		return fmt.Errorf("connection reset")
	}
	return nil
}

func TestCursorVisitorOf(t *testing.T) {
	cursor, err := mongo.NewCursorFromDocuments([]interface{}{
		bson.D{{Key: "name", Value: "a"}},
		bson.D{{Key: "name", Value: "b"}},
	}, nil, nil)
	if !assert.Nil(t, err) {
		return
	}
	var names []interface{}
	err = CursorVisitorOf(context.Background(), cursor)(func(index int, decode func(dest interface{}) error) (bool, error) {
		var doc bson.D
		if err := decode(&doc); err != nil {
			return false, err
		}
		names = append(names, doc[0].Value)
		return true, nil
	})
	assert.Nil(t, err)
	assert.EqualValues(t, []interface{}{"a", "b"}, names)

	var decodeErrors int
	err = CursorVisitorOf(context.Background(), &brokenCursor{remaining: 2})(func(index int, decode func(dest interface{}) error) (bool, error) {
		if decode(&bson.D{}) != nil {
			decodeErrors++
		}
		return true, nil
	})
	assert.Equal(t, 2, decodeErrors)
	assert.NotNil(t, err)
}
