// FILE: purge_test.go
package rotatelog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touchWithMTime(t *testing.T, path string, mtime time.Time) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestApplyPurgeNoneKeepsEverything(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "name.log")
	touchWithMTime(t, primary+".0", time.Now())

	require.NoError(t, applyPurge(primary, PurgeNone, ArchiveNumber, time.Now()))

	_, err := os.Stat(primary + ".0")
	assert.NoError(t, err)
}

func TestApplyPurgeCountByNumericSuffix(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "name.log")
	for i := 0; i < 5; i++ {
		touchWithMTime(t, primary+"."+string(rune('0'+i)), time.Now())
	}

	require.NoError(t, applyPurge(primary, "count:2", ArchiveNumber, time.Now()))

	files, err := listArchives(primary)
	require.NoError(t, err)
	assert.Len(t, files, 2)
	// The two highest numeric suffixes (3, 4) survive.
	kept := map[int64]bool{}
	for _, f := range files {
		kept[f.numeric] = true
	}
	assert.True(t, kept[3])
	assert.True(t, kept[4])
}

func TestApplyPurgeAgeDeletesOldArchives(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "name.log")
	now := time.Now()

	touchWithMTime(t, primary+".old", now.Add(-48*time.Hour))
	touchWithMTime(t, primary+".new", now.Add(-time.Minute))

	require.NoError(t, applyPurge(primary, "age:24h", ArchiveTimestamp, now))

	_, errOld := os.Stat(primary + ".old")
	assert.True(t, os.IsNotExist(errOld))

	_, errNew := os.Stat(primary + ".new")
	assert.NoError(t, errNew)
}

func TestApplyPurgeInvalidSpec(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "name.log")
	touchWithMTime(t, primary+".0", time.Now())

	err := applyPurge(primary, "count:notanumber", ArchiveNumber, time.Now())
	require.Error(t, err)
	assert.True(t, IsKind(err, ErrInvalidConfig))
}
