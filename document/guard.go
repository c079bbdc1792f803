package document

import "github.com/viant/serializer/internal/shape"

// stackGuard rejects nested documents already being converted
type stackGuard struct {
	stack shape.Stack
}

func (g *stackGuard) Enter(value interface{}) (Guard, bool) {
	identity, ok := shape.Identify(value)
	if !ok {
		return g, true
	}
	if g.stack.Contains(identity) {
		return nil, false
	}
	return &stackGuard{stack: g.stack.Push(identity)}, true
}
