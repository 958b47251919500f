// FILE: channel.go
package rotatelog

import (
	"time"
)

// DiagnosticFunc receives non-fatal diagnostics: unrecognized attribute
// values falling back to "none" (section 4.1/6), and purge failures
// that don't fail log() (section 7). A nil DiagnosticFunc swallows them.
type DiagnosticFunc func(err error)

// FileChannel is the C8 orchestrator: the public log/open/close contract
// spec.md section 4.8 describes. It is not internally synchronized
// (section 5) — callers serialize log/put_attr/open/close through an
// external mutex themselves.
type FileChannel struct {
	path  string
	attrs *Attrs
	clock Clock
	diag  DiagnosticFunc

	writer   *activeWriter
	openedAt time.Time
	state    state

	parsed parsedConfig
}

// parsedConfig is the parse-once-and-cache form of the attribute bag,
// recomputed whenever an attribute mutates (see Attrs.onMutate), per the
// Design Notes' correctness/perf guidance against reparsing per log().
type parsedConfig struct {
	compression string
	rotate      rotateConfig
	archiveMode string
	purgeValue  string
	timesLocal  bool
}

// New constructs a FileChannel for path with default attributes
// (compression=none, rotate=none, archive=none, purge=none, times=utc).
// The channel is not opened until the first Log or an explicit Open.
func New(path string) *FileChannel {
	c := &FileChannel{
		path:  path,
		attrs: NewAttrs(),
		clock: SystemClock(),
	}
	c.attrs.onMutate(func(key, value string) { c.reparse() })
	c.reparse()
	return c
}

// reparse recomputes parsedConfig from the current attribute bag,
// falling back to "none"/defaults and reporting a diagnostic for
// unrecognized values, per spec.md section 4.1.
func (c *FileChannel) reparse() {
	var p parsedConfig

	compressionRaw, _ := c.attrs.Get(AttrCompressionMode)
	compressionMode, ok := normalizedEnum(compressionRaw, CompressionNone, CompressionGzip, CompressionBzip2, CompressionZlib)
	if !ok && compressionRaw != "" {
		c.report(newError(ErrInvalidConfig, "attrs", "", nil))
	}
	p.compression = compressionMode

	archiveRaw, _ := c.attrs.Get(AttrArchive)
	archiveMode, ok := normalizedEnum(archiveRaw, ArchiveNone, ArchiveNumber, ArchiveTimestamp)
	if !ok && archiveRaw != "" {
		c.report(newError(ErrInvalidConfig, "attrs", "", nil))
	}
	p.archiveMode = archiveMode

	if v, ok := c.attrs.Get(AttrPurge); ok {
		p.purgeValue = v
	} else {
		p.purgeValue = PurgeNone
	}

	timesRaw, _ := c.attrs.Get(AttrTimes)
	p.timesLocal = timesRaw == TimesLocal

	rotateRaw := mustGet(c.attrs, AttrRotate)
	rotateMode, ok := normalizedEnum(rotateRaw, RotateNone, RotateSize, RotateInterval)
	if !ok && rotateRaw != "" {
		c.report(newError(ErrInvalidConfig, "attrs", "", nil))
	}
	rc := rotateConfig{mode: rotateMode}

	switch rotateMode {
	case RotateSize:
		if v, ok := c.attrs.Get(AttrRotateSize); ok {
			if n, err := ParseSize(v); err == nil {
				rc.threshold = n
			} else {
				c.report(err)
				rc.mode = RotateNone
			}
		} else {
			c.report(newError(ErrInvalidConfig, "attrs", "", nil))
			rc.mode = RotateNone
		}
	case RotateInterval:
		if v, ok := c.attrs.Get(AttrRotateInterval); ok {
			if d, err := ParseInterval(v); err == nil {
				rc.interval = d
			} else {
				c.report(err)
				rc.mode = RotateNone
			}
		} else {
			c.report(newError(ErrInvalidConfig, "attrs", "", nil))
			rc.mode = RotateNone
		}
	}
	p.rotate = rc

	c.parsed = p
}

func mustGet(a *Attrs, key string) string {
	v, _ := a.Get(key)
	return v
}

func (c *FileChannel) report(err error) {
	if err == nil {
		return
	}
	if c.diag != nil {
		c.diag(err)
	}
}

// SetDiagnostic installs the sink non-fatal errors are reported through.
func (c *FileChannel) SetDiagnostic(fn DiagnosticFunc) { c.diag = fn }

// SetClock overrides the channel's time source, for deterministic tests
// of interval-based rotation.
func (c *FileChannel) SetClock(clock Clock) { c.clock = clock }

// PutAttr delegates to the attribute bag (C1).
func (c *FileChannel) PutAttr(key, value string) { c.attrs.Put(key, value) }

// GetAttr delegates to the attribute bag (C1).
func (c *FileChannel) GetAttr(key string) (string, bool) { return c.attrs.Get(key) }

// GetPath returns the channel's fixed primary path.
func (c *FileChannel) GetPath() string { return c.path }

// GetSize returns the current primary file's on-disk size, or 0 if
// absent, per spec.md section 4.8.
func (c *FileChannel) GetSize() int64 {
	return statSize(c.path)
}

// GetLastWriteTime returns seconds since epoch for the primary file's
// mtime, or -1 if it does not exist, per spec.md section 4.8.
func (c *FileChannel) GetLastWriteTime() int64 {
	t, ok := statModTime(c.path)
	if !ok {
		return -1
	}
	return t
}

// Open ensures a writer exists; idempotent. Fails with NotAFile if the
// path is a directory, or IOError if otherwise unopenable.
func (c *FileChannel) Open() error {
	if c.writer != nil {
		return nil
	}

	w, err := openActiveWriter(c.path, c.parsed.compression)
	if err != nil {
		return err
	}

	size, err := w.sink.CurrentSize()
	if err != nil {
		_ = w.finalizeAndClose()
		return err
	}

	c.writer = w
	c.openedAt = c.clock.Now()
	c.state.bytesWritten.Store(size)
	c.state.isOpen.Store(true)
	return nil
}

// Close finalizes the compressor, flushes and closes the sink, and
// clears state. Idempotent. Attempts all finalization steps even if an
// earlier one fails, returning the first error (spec.md section 7).
func (c *FileChannel) Close() error {
	if c.writer == nil {
		return nil
	}
	err := c.writer.finalizeAndClose()
	c.writer = nil
	c.state.isOpen.Store(false)
	return err
}

// Log formats msg, rotates if the configured policy fires, writes the
// record, and updates counters. On I/O error the channel is left either
// usable or cleanly closed — never half-open (spec.md section 4.8/7).
func (c *FileChannel) Log(msg Message) error {
	if err := c.Open(); err != nil {
		return err
	}

	record := formatRecord(msg)
	bytesWritten := c.state.bytesWritten.Load()

	if shouldRotate(c.parsed.rotate, bytesWritten, int64(len(record)), c.openedAt, c.clock.Now()) {
		if err := c.rotate(); err != nil {
			return err
		}
	}

	n, err := c.writer.write(record)
	if err != nil {
		if closeErr := c.Close(); closeErr != nil {
			return combineErrors(err, closeErr)
		}
		return err
	}

	c.state.bytesWritten.Add(int64(n))
	return nil
}

// Write implements io.Writer so a *FileChannel can back a
// zapcore.WriteSyncer (see zapadapter.go) or any other io.Writer-based
// logging façade. p is treated as an already-framed record; Write does
// not add a trailing newline itself.
func (c *FileChannel) Write(p []byte) (int, error) {
	if err := c.Open(); err != nil {
		return 0, err
	}

	bytesWritten := c.state.bytesWritten.Load()
	if shouldRotate(c.parsed.rotate, bytesWritten, int64(len(p)), c.openedAt, c.clock.Now()) {
		if err := c.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := c.writer.write(p)
	if err != nil {
		if closeErr := c.Close(); closeErr != nil {
			return n, combineErrors(err, closeErr)
		}
		return n, err
	}
	c.state.bytesWritten.Add(int64(n))
	return n, nil
}

// Sync flushes the underlying sink, completing the zapcore.WriteSyncer
// contract.
func (c *FileChannel) Sync() error {
	if c.writer == nil {
		return nil
	}
	return c.writer.sink.Flush()
}

// rotate implements spec.md section 4.8's rotate() procedure. If any
// step fails, the channel transitions to Closed and the error surfaces
// from the log() call that triggered it (the transient Rotating state
// is never observable from outside).
func (c *FileChannel) rotate() error {
	if err := c.writer.finalizeAndClose(); err != nil {
		c.writer = nil
		c.state.isOpen.Store(false)
		return newError(ErrIOError, "rotate", c.path, err)
	}
	c.writer = nil
	c.state.isOpen.Store(false)

	seq := c.state.rotationSeq.Load()
	result, err := computeArchive(c.parsed.archiveMode, c.path, seq, c.clock.Now(), c.parsed.timesLocal)
	if err != nil {
		return err
	}

	if result.truncate {
		if err := truncateFile(c.path); err != nil {
			return newError(ErrIOError, "rotate", c.path, err)
		}
	} else {
		if err := renameFile(c.path, result.path); err != nil {
			// Rename failures are fatal to the rotation: the channel
			// stays closed and the error surfaces (spec.md section 7).
			return newError(ErrIOError, "rotate", c.path, err)
		}
	}

	if c.parsed.purgeValue != "" && c.parsed.purgeValue != PurgeNone {
		if err := applyPurge(c.path, c.parsed.purgeValue, c.parsed.archiveMode, c.clock.Now()); err != nil {
			// Purge failures are reported but non-fatal; the writer
			// still gets reopened below (spec.md section 7).
			c.state.totalPurgeErrors.Add(1)
			c.report(err)
		} else {
			c.state.totalPurgeDeletes.Add(1)
		}
	}

	w, err := openActiveWriter(c.path, c.parsed.compression)
	if err != nil {
		return err
	}

	c.writer = w
	c.openedAt = c.clock.Now()
	c.state.bytesWritten.Store(0)
	c.state.rotationSeq.Add(1)
	c.state.totalRotations.Add(1)
	c.state.isOpen.Store(true)
	return nil
}
