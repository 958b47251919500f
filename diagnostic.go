// FILE: diagnostic.go
package rotatelog

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Describe returns a humanized one-line summary of the channel's
// current state, grounded in the jaypaulb-CanvusAPI-LLMDemo example
// repo's pairing of a rotating file writer with humanized operator
// output. Intended for logging-about-the-logger, not for the log
// stream itself.
func (c *FileChannel) Describe() string {
	status := "closed"
	if c.state.isOpen.Load() {
		status = "open"
	}
	return fmt.Sprintf(
		"rotatelog[%s]: %s, %s written, %d rotation(s), %d purge pass(es)",
		c.path,
		status,
		humanize.Bytes(uint64(c.state.bytesWritten.Load())),
		c.state.rotationSeq.Load(),
		c.state.totalPurgeDeletes.Load(),
	)
}
