package serializer

import (
	"github.com/viant/serializer/document"
	"github.com/viant/serializer/schema"
	"github.com/viant/tagly/format/text"
	"go.uber.org/zap"
)

type (
	// Accessor computes field value for an instance, it takes precedence over instance keys and fields
	Accessor func(instance interface{}) (interface{}, error)

	// Collection represents relation accessor
	Collection interface {
		All() (interface{}, error)
	}

	// Serializer represents serialization configuration
	Serializer struct {
		name          string
		fields        []Field
		include       []string
		exclude       []string
		rename        map[string]string
		depth         *int
		related       *Serializer
		relatedRef    string
		accessors     map[string]Accessor
		onMaxDepth    Hook
		onRecursion   Hook
		keyCaseFormat text.CaseFormat
		mapping       map[string]string
		timeLayout    string
		logger        *zap.Logger
		types         *schema.Types
		documents     *document.Converter
	}
)

var defaultSerializer = New("Serializer")

// Default returns generic serializer without customization
func Default() *Serializer {
	return defaultSerializer
}

// Name returns serializer name
func (s *Serializer) Name() string {
	return s.name
}

// Fields returns configured field descriptors
func (s *Serializer) Fields() []Field {
	return s.fields
}

// Depth returns maximum depth, false when unlimited
func (s *Serializer) Depth() (int, bool) {
	if s.depth == nil {
		return 0, false
	}
	return *s.depth, true
}

// Related returns default related serializer or nil
func (s *Serializer) Related() *Serializer {
	return s.related
}

// derive returns a copy of the serializer with replaced fields
func (s *Serializer) derive(fields []Field) *Serializer {
	ret := *s
	ret.fields = fields
	return &ret
}

// New creates a serializer
func New(name string, opts ...Option) *Serializer {
	ret := &Serializer{
		name:        name,
		onMaxDepth:  omit,
		onRecursion: omit,
		timeLayout:  document.TimeLayout,
		logger:      zap.NewNop(),
	}
	Options(opts).Apply(ret)
	if ret.types == nil {
		ret.types = schema.Default()
	}
	ret.documents = document.New(
		document.WithMapping(ret.mapping),
		document.WithTimeLayout(ret.timeLayout),
		document.WithLogger(ret.logger),
	)
	return ret
}
