package visitor

import (
	"context"

	"github.com/pkg/errors"
)

// Cursor represents a document-store cursor, i.e. *mongo.Cursor
type Cursor interface {
	Next(ctx context.Context) bool
	Decode(val interface{}) error
	Err() error
}

// CursorVisitor represents cursor record visitor, decode errors are passed to the callback
type CursorVisitor func(visit func(index int, decode func(dest interface{}) error) (bool, error)) error

// CursorVisitorOf returns a cursor visitor, cursor iteration error terminates visiting
func CursorVisitorOf(ctx context.Context, cursor Cursor) CursorVisitor {
	return func(visit func(index int, decode func(dest interface{}) error) (bool, error)) error {
		index := 0
		for cursor.Next(ctx) {
			next, err := visit(index, cursor.Decode)
			if err != nil || !next {
				return err
			}
			index++
		}
		if err := cursor.Err(); err != nil {
			return errors.Wrapf(err, "failed to iterate cursor at %v", index)
		}
		return nil
	}
}
