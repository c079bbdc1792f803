package serializer

import (
	"github.com/viant/serializer/conv"
	"github.com/viant/serializer/schema"
	"github.com/viant/tagly/format/text"
	"go.uber.org/zap"
)

//Option represents serializer option
type Option func(s *Serializer)

//Options represents serializer options
type Options []Option

//Apply applies options
func (o Options) Apply(s *Serializer) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		if opt != nil {
			opt(s)
		}
	}
}

//WithFields sets field descriptors, non empty fields take precedence over include/exclude
func WithFields(fields ...Field) Option {
	return func(s *Serializer) {
		s.fields = fields
	}
}

//WithInclude adds names to default fields
func WithInclude(names ...string) Option {
	return func(s *Serializer) {
		s.include = append(s.include, names...)
	}
}

//WithExclude removes names from default fields
func WithExclude(names ...string) Option {
	return func(s *Serializer) {
		s.exclude = append(s.exclude, names...)
	}
}

//WithRename sets field name to output key mapping
func WithRename(rename map[string]string) Option {
	return func(s *Serializer) {
		s.rename = rename
	}
}

//WithDepth limits related object depth
func WithDepth(depth int) Option {
	return func(s *Serializer) {
		s.depth = &depth
	}
}

//WithRelated sets default related serializer
func WithRelated(related *Serializer) Option {
	return func(s *Serializer) {
		s.related = related
	}
}

//WithRelatedRef sets default related serializer by registry name
func WithRelatedRef(name string) Option {
	return func(s *Serializer) {
		s.relatedRef = name
	}
}

//WithAccessor sets field accessor
func WithAccessor(name string, accessor Accessor) Option {
	return func(s *Serializer) {
		if s.accessors == nil {
			s.accessors = map[string]Accessor{}
		}
		s.accessors[name] = accessor
	}
}

//WithMaxDepthHook sets exhausted depth hook
func WithMaxDepthHook(hook Hook) Option {
	return func(s *Serializer) {
		s.onMaxDepth = hook
	}
}

//WithRecursionHook sets recursion hook
func WithRecursionHook(hook Hook) Option {
	return func(s *Serializer) {
		s.onRecursion = hook
	}
}

//WithMapping sets document key mapping
func WithMapping(mapping map[string]string) Option {
	return func(s *Serializer) {
		s.mapping = mapping
	}
}

//WithKeyCaseFormat formats output keys not renamed explicitly
func WithKeyCaseFormat(caseFormat text.CaseFormat) Option {
	return func(s *Serializer) {
		s.keyCaseFormat = caseFormat
	}
}

//WithTimeFormat sets document time format, either ISO date format (yyyy-MM-dd) or Go time layout
func WithTimeFormat(format string) Option {
	return func(s *Serializer) {
		s.timeLayout = conv.TimeLayout(format)
	}
}

//WithLogger sets logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Serializer) {
		s.logger = logger
	}
}

//WithTypes sets record types cache
func WithTypes(types *schema.Types) Option {
	return func(s *Serializer) {
		s.types = types
	}
}
