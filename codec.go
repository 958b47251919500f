// FILE: codec.go
package rotatelog

import (
	"io"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// codec is the capability set spec.md section 4.4/section 9 describes:
// a tagged variant of compressor kinds, each implementing write,
// finalize, and close. Adding a codec means one new variant here, not a
// new class hierarchy.
//
// Critical contract (section 4.4): Write's returned count of bytes
// consumed is the count of logical bytes fed in, never the compressed
// byte count on disk — rotation decisions are made in terms of the
// original record stream so size-based rotation stays predictable
// regardless of compression ratio.
type codec interface {
	Write(p []byte) (int, error)
	Finalize() error
	Close() error
}

// newCodec constructs the codec variant named by mode, wrapping w.
// Unrecognized modes fall back to "none" per spec.md section 4.1/6.
func newCodec(mode string, w io.Writer) (codec, error) {
	switch mode {
	case CompressionGzip:
		return &gzipCodec{w: gzip.NewWriter(w)}, nil
	case CompressionBzip2:
		bw, err := bzip2.NewWriter(w, nil)
		if err != nil {
			return nil, newError(ErrCompressionError, "open_codec", "", err)
		}
		return &bzip2Codec{w: bw}, nil
	case CompressionZlib:
		return &zlibCodec{w: zlib.NewWriter(w)}, nil
	default:
		return &noneCodec{w: w}, nil
	}
}

// noneCodec is the identity pass-through variant.
type noneCodec struct{ w io.Writer }

func (c *noneCodec) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	if err != nil {
		return n, newError(ErrIOError, "codec_write", "", err)
	}
	return n, nil
}
func (c *noneCodec) Finalize() error { return nil }
func (c *noneCodec) Close() error    { return nil }

// gzipCodec streams through a klauspost/compress gzip.Writer.
type gzipCodec struct{ w *gzip.Writer }

func (c *gzipCodec) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	if err != nil {
		return n, newError(ErrCompressionError, "codec_write", "", err)
	}
	return len(p), nil
}

func (c *gzipCodec) Finalize() error {
	if err := c.w.Flush(); err != nil {
		return newError(ErrCompressionError, "codec_finalize", "", err)
	}
	if err := c.w.Close(); err != nil {
		return newError(ErrCompressionError, "codec_finalize", "", err)
	}
	return nil
}

func (c *gzipCodec) Close() error { return c.w.Close() }

// zlibCodec streams through a klauspost/compress zlib.Writer.
type zlibCodec struct{ w *zlib.Writer }

func (c *zlibCodec) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	if err != nil {
		return n, newError(ErrCompressionError, "codec_write", "", err)
	}
	return len(p), nil
}

func (c *zlibCodec) Finalize() error {
	if err := c.w.Flush(); err != nil {
		return newError(ErrCompressionError, "codec_finalize", "", err)
	}
	if err := c.w.Close(); err != nil {
		return newError(ErrCompressionError, "codec_finalize", "", err)
	}
	return nil
}

// Close is a no-op: Finalize already closed the underlying zlib.Writer,
// and klauspost/compress/zlib.Writer.Close panics if called a second
// time (unlike gzip.Writer.Close, which tolerates it). This mirrors the
// bzip2Codec pattern below.
func (c *zlibCodec) Close() error { return nil }

// bzip2Codec streams through a dsnet/compress bzip2.Writer. The standard
// library's compress/bzip2 package is decompress-only, so an external
// encoder is required; dsnet/compress is the ecosystem's standard
// bzip2-writer implementation.
type bzip2Codec struct{ w *bzip2.Writer }

func (c *bzip2Codec) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	if err != nil {
		return n, newError(ErrCompressionError, "codec_write", "", err)
	}
	return len(p), nil
}

// Finalize writes the terminator frame. dsnet/compress/bzip2.Writer has
// no separate flush; Close both finalizes and releases the writer, so
// Finalize calls it once and Close becomes a no-op thereafter.
func (c *bzip2Codec) Finalize() error {
	if err := c.w.Close(); err != nil {
		return newError(ErrCompressionError, "codec_finalize", "", err)
	}
	return nil
}

func (c *bzip2Codec) Close() error { return nil }
