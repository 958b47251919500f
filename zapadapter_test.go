// FILE: zapadapter_test.go
package rotatelog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestZapWriteSyncerWritesThroughChannel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "name.log")
	c := New(path)
	syncer := NewZapWriteSyncer(c)

	encoderCfg := zap.NewProductionEncoderConfig()
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), syncer, zap.InfoLevel)
	logger := zap.New(core)

	logger.Info("hello from zap")
	require.NoError(t, logger.Sync())
	require.NoError(t, c.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from zap")
}
