// FILE: rotate.go
package rotatelog

import "time"

// rotateConfig is the parsed, cached form of the rotate.* attributes,
// computed once on attribute mutation per the Design Notes' "parse-once
// and cache" guidance, rather than re-parsed on every shouldRotate call.
type rotateConfig struct {
	mode      string // none/size/interval
	threshold int64  // bytes, when mode == size
	interval  time.Duration
}

// shouldRotate implements the C5 predicate from spec.md section 4.5:
// "should rotate now?" given the channel's state. The check happens
// before writing the next record (pre-write check), so when a single
// record already reaches the threshold, the first Log on a fresh primary
// rotates the still-empty file away: scenario S6 (5 records at threshold
// 57 bytes) produces 6 files, the first archive empty and the primary
// holding the last record.
func shouldRotate(cfg rotateConfig, bytesWritten, nextRecordLen int64, openedAt, now time.Time) bool {
	switch cfg.mode {
	case RotateSize:
		return bytesWritten+nextRecordLen >= cfg.threshold || bytesWritten >= cfg.threshold
	case RotateInterval:
		return now.Sub(openedAt) >= cfg.interval
	default:
		return false
	}
}
