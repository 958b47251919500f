// FILE: message.go
package rotatelog

import "time"

// Priority mirrors the severity scale a logger façade typically attaches
// to a message. The channel never branches on it; formatting and routing
// by priority belong to the caller's logger, not the file channel.
type Priority int

const (
	PriorityTrace Priority = iota
	PriorityDebug
	PriorityInfo
	PriorityNotice
	PriorityWarning
	PriorityError
	PriorityCritical
	PriorityFatal
)

// Message is the minimum contract the channel consumes. Any richer
// message type (the caller's logger façade, a formatter, ...) needs only
// satisfy this to be logged.
type Message interface {
	Text() string
}

// Sourced is an optional capability a Message may implement.
type Sourced interface {
	Source() string
}

// Prioritized is an optional capability a Message may implement.
type Prioritized interface {
	Priority() Priority
}

// Timestamped is an optional capability a Message may implement.
type Timestamped interface {
	Timestamp() time.Time
}

// Record is a concrete Message implementation for callers that don't
// already have their own message type.
type Record struct {
	SourceName string
	Body       string
	Level      Priority
	At         time.Time
}

func (r Record) Text() string         { return r.Body }
func (r Record) Source() string       { return r.SourceName }
func (r Record) Priority() Priority   { return r.Level }
func (r Record) Timestamp() time.Time { return r.At }

// formatRecord applies the channel's minimal framing: the message text
// plus a trailing newline. Richer formatting (timestamps, levels,
// structured encoding) is explicitly the formatter's concern, not the
// channel's.
func formatRecord(msg Message) []byte {
	text := msg.Text()
	buf := make([]byte, 0, len(text)+1)
	buf = append(buf, text...)
	buf = append(buf, '\n')
	return buf
}
