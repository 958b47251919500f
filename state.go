// FILE: state.go
package rotatelog

import "sync/atomic"

// state holds the FileChannel's externally-observable counters as
// atomics, adapted from the teacher's State struct. This is a
// concession for safe concurrent *reads* of already-published state
// (Describe, the metrics collector; GetSize and GetLastWriteTime stat
// the primary file instead) — it
// is not a claim that concurrent log/open/close calls are safe; per
// spec.md section 5 those still require external serialization.
type state struct {
	bytesWritten atomic.Int64
	rotationSeq  atomic.Uint64
	isOpen       atomic.Bool

	totalRotations    atomic.Uint64
	totalPurgeDeletes atomic.Uint64
	totalPurgeErrors  atomic.Uint64
}
