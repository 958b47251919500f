// FILE: builder.go
package rotatelog

import "strconv"

// Builder provides a fluent API for constructing a FileChannel,
// adapted from the teacher's Builder: it wraps a path and an attribute
// bag and offers chainable setters instead of requiring callers to know
// the AttributeBag's string keys up front.
type Builder struct {
	path  string
	attrs map[string]string
	err   error
}

// NewBuilder starts building a FileChannel for path.
func NewBuilder(path string) *Builder {
	return &Builder{path: path, attrs: make(map[string]string)}
}

// Build constructs the FileChannel with the accumulated attributes.
func (b *Builder) Build() (*FileChannel, error) {
	if b.err != nil {
		return nil, b.err
	}

	c := New(b.path)
	for k, v := range b.attrs {
		c.PutAttr(k, v)
	}
	return c, nil
}

// Compression sets the compression_mode attribute (none/gzip/bzip2/zlib).
func (b *Builder) Compression(mode string) *Builder {
	b.attrs[AttrCompressionMode] = mode
	return b
}

// RotateBySize configures size-triggered rotation with the given
// threshold string (e.g. "1k", "10m", "57").
func (b *Builder) RotateBySize(size string) *Builder {
	if _, err := ParseSize(size); err != nil {
		b.err = err
		return b
	}
	b.attrs[AttrRotate] = RotateSize
	b.attrs[AttrRotateSize] = size
	return b
}

// RotateByInterval configures interval-triggered rotation with an
// "HH:MM:SS" duration string.
func (b *Builder) RotateByInterval(interval string) *Builder {
	if _, err := ParseInterval(interval); err != nil {
		b.err = err
		return b
	}
	b.attrs[AttrRotate] = RotateInterval
	b.attrs[AttrRotateInterval] = interval
	return b
}

// Archive sets the archive attribute (none/number/timestamp).
func (b *Builder) Archive(mode string) *Builder {
	b.attrs[AttrArchive] = mode
	return b
}

// PurgeCount configures retention by archive count.
func (b *Builder) PurgeCount(n int) *Builder {
	b.attrs[AttrPurge] = "count:" + strconv.Itoa(n)
	return b
}

// PurgeAge configures retention by archive age (a Go duration string,
// e.g. "720h" for 30 days).
func (b *Builder) PurgeAge(duration string) *Builder {
	b.attrs[AttrPurge] = "age:" + duration
	return b
}

// Times selects the clock used for timestamp archive names (utc/local).
func (b *Builder) Times(mode string) *Builder {
	b.attrs[AttrTimes] = mode
	return b
}
