package xmltree

import "io"

// Options holds parse configuration values. The zero value means no
// overrides.
type Options struct {
	resolveEntities bool
	charsetReader   func(r io.Reader) (io.Reader, error)

	resolveEntitiesSet bool
	charsetReaderSet   bool
}

// JoinOptions combines multiple option sets into one in declaration order.
// Later options override earlier ones when set.
func JoinOptions(srcs ...Options) Options {
	var merged Options
	for _, src := range srcs {
		merged.merge(src)
	}
	return merged
}

func (opts *Options) merge(src Options) {
	if src.resolveEntitiesSet {
		opts.resolveEntities = src.resolveEntities
		opts.resolveEntitiesSet = true
	}
	if src.charsetReaderSet {
		opts.charsetReader = src.charsetReader
		opts.charsetReaderSet = true
	}
}

// ResolveEntities controls whether entity references in content are
// replaced by their literal characters during parsing. Default true.
func ResolveEntities(value bool) Options {
	return Options{resolveEntities: value, resolveEntitiesSet: true}
}

// WithCharsetReader replaces the default byte-order-mark detection used by
// ParseReader with a caller-supplied decoding reader.
func WithCharsetReader(fn func(r io.Reader) (io.Reader, error)) Options {
	return Options{charsetReader: fn, charsetReaderSet: true}
}

type parseOptions struct {
	resolveEntities bool
	charsetReader   func(r io.Reader) (io.Reader, error)
}

func resolveParseOptions(joined Options) parseOptions {
	resolved := parseOptions{resolveEntities: true}
	if joined.resolveEntitiesSet {
		resolved.resolveEntities = joined.resolveEntities
	}
	if joined.charsetReaderSet {
		resolved.charsetReader = joined.charsetReader
	}
	return resolved
}
