// FILE: writer.go
package rotatelog

// activeWriter is the scoped resource from spec.md's Data Model: owns an
// OS file handle opened in append mode and an optional compression
// filter chain layered atop it. At most one activeWriter exists per
// FileChannel at any time (invariant 1).
type activeWriter struct {
	sink  *fileSink
	codec codec
	mode  string
}

// openActiveWriter opens path and layers a fresh codec per compression
// mode atop it, per rotate() step 4 (spec.md section 4.8).
func openActiveWriter(path, compressionMode string) (*activeWriter, error) {
	sink, err := openFileSink(path)
	if err != nil {
		return nil, err
	}

	c, err := newCodec(compressionMode, sink)
	if err != nil {
		_ = sink.Close()
		return nil, err
	}

	return &activeWriter{sink: sink, codec: c, mode: compressionMode}, nil
}

// write writes p through the codec. The returned count is the logical
// byte count per codec.Write's contract (spec.md section 4.4).
func (w *activeWriter) write(p []byte) (int, error) {
	return w.codec.Write(p)
}

// finalizeAndClose finalizes the compressor (writing its terminator
// frame) and releases the file handle, guaranteeing invariant 5: after
// close, the compressor chain has been finalized and the handle
// released. Both steps are attempted even if the first fails, and the
// first error is returned (matching the channel's close() aggregation
// contract in spec.md section 7).
func (w *activeWriter) finalizeAndClose() error {
	finalizeErr := w.codec.Finalize()
	codecCloseErr := w.codec.Close()
	flushErr := w.sink.Flush()
	closeErr := w.sink.Close()

	var err error
	err = combineErrors(err, finalizeErr)
	err = combineErrors(err, codecCloseErr)
	err = combineErrors(err, flushErr)
	err = combineErrors(err, closeErr)
	return err
}
