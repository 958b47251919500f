// FILE: diagnostic_test.go
package rotatelog

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeReflectsState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "name.log")
	c := New(path)

	assert.Contains(t, c.Describe(), "closed")

	require.NoError(t, c.Log(Record{Body: testMessage}))
	assert.Contains(t, c.Describe(), "open")
	assert.True(t, strings.Contains(c.Describe(), "B") || strings.Contains(c.Describe(), "byte"))

	require.NoError(t, c.Close())
	assert.Contains(t, c.Describe(), "closed")
}
