// FILE: zapadapter.go
package rotatelog

import "go.uber.org/zap/zapcore"

// ZapWriteSyncer adapts a *FileChannel to zapcore.WriteSyncer, grounded
// in the jaypaulb-CanvusAPI-LLMDemo example repo, which pairs
// natefinch/lumberjack file rotation with go.uber.org/zap. Callers
// standardized on zap can attach this channel via zapcore.AddSync
// without zap depending on this module's Message type at all — the
// channel's io.Writer/Sync methods already satisfy the interface
// structurally, so this wrapper exists only to name the intent and to
// be the documented integration point.
type ZapWriteSyncer struct {
	*FileChannel
}

// NewZapWriteSyncer wraps channel as a zapcore.WriteSyncer.
func NewZapWriteSyncer(channel *FileChannel) zapcore.WriteSyncer {
	return &ZapWriteSyncer{FileChannel: channel}
}
