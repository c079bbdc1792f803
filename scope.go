package serializer

import (
	"context"

	"github.com/viant/serializer/document"
	"github.com/viant/serializer/internal/shape"
)

// scope represents traversal state: remaining depth (nil: unlimited) and ancestor identities
type scope struct {
	ctx   context.Context
	depth *int
	stack shape.Stack
}

func newScope(ctx context.Context, depth *int, root interface{}) *scope {
	ret := &scope{ctx: ctx, depth: depth}
	if identity, ok := shape.Identify(root); ok {
		ret.stack = shape.Stack{identity}
	}
	return ret
}

func (s *scope) exhausted() bool {
	return s.depth != nil && *s.depth <= 0
}

func (s *scope) contains(value interface{}) bool {
	identity, ok := shape.Identify(value)
	return ok && s.stack.Contains(identity)
}

// child returns a nested scope, unlimited depth falls back to the nested serializer depth
func (s *scope) child(value interface{}, fallback *int) *scope {
	ret := &scope{ctx: s.ctx, depth: fallback, stack: s.stack}
	if s.depth != nil {
		depth := *s.depth - 1
		ret.depth = &depth
	}
	if identity, ok := shape.Identify(value); ok {
		ret.stack = s.stack.Push(identity)
	}
	return ret
}

// Enter guards nested documents with the same depth and recursion rules
func (s *scope) Enter(value interface{}) (document.Guard, bool) {
	if s.exhausted() || s.contains(value) {
		return nil, false
	}
	return s.child(value, nil), true
}
