// FILE: archive.go
package rotatelog

import (
	"fmt"
	"os"
	"time"
)

// archiveResult describes what rotate() should do with the primary file.
type archiveResult struct {
	path     string // destination path; empty when truncate is true
	truncate bool   // true for archive=none: truncate primary in place
}

// computeArchive implements C6 (spec.md section 4.6): given the primary
// path and the rotation sequence about to complete, decide the archive's
// destination.
//
//   - none: truncate the primary in place, no archive kept.
//   - number: primary + "." + N. The Open Questions resolution (section 9)
//     is monotonic growth, not suffix-shifting, so N starts at the
//     channel's rotation_seq and only advances past that if a file with
//     that name already exists (e.g. left over from a prior process).
//     This also satisfies the uniqueness invariant (section 3 invariant 3)
//     and the contiguous-suffix property (section 8 property 3).
//   - timestamp: primary + "." + ISO8601(now) at millisecond resolution,
//     in the configured clock (UTC default per section 3). A collision
//     appends a disambiguating ".N" counter, per section 4.6.
func computeArchive(mode, primary string, rotationSeq uint64, now time.Time, timesLocal bool) (archiveResult, error) {
	switch mode {
	case ArchiveNumber:
		n := rotationSeq
		for {
			candidate := fmt.Sprintf("%s.%d", primary, n)
			if !pathExists(candidate) {
				return archiveResult{path: candidate}, nil
			}
			n++
		}

	case ArchiveTimestamp:
		t := now
		if timesLocal {
			t = t.Local()
		} else {
			t = t.UTC()
		}
		stamp := t.Format("2006-01-02T15:04:05.000Z0700")
		candidate := fmt.Sprintf("%s.%s", primary, stamp)
		if !pathExists(candidate) {
			return archiveResult{path: candidate}, nil
		}
		for counter := 1; ; counter++ {
			candidate = fmt.Sprintf("%s.%s.%d", primary, stamp, counter)
			if !pathExists(candidate) {
				return archiveResult{path: candidate}, nil
			}
		}

	default:
		return archiveResult{truncate: true}, nil
	}
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
