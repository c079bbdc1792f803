package document

import "go.uber.org/zap"

// Option represents converter option
type Option func(c *Converter)

// WithMapping sets key remapping table, remapped keys bypass the exclusion list
func WithMapping(mapping map[string]string) Option {
	return func(c *Converter) {
		c.mapping = mapping
	}
}

// WithSubDocuments enables nested document conversion for single records
func WithSubDocuments(flag bool) Option {
	return func(c *Converter) {
		c.subDocuments = flag
	}
}

// WithTimeLayout overrides date/time layout
func WithTimeLayout(layout string) Option {
	return func(c *Converter) {
		c.timeLayout = layout
	}
}

// WithLogger sets logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}
