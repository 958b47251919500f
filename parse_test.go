// FILE: parse_test.go
package rotatelog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"57", 57, false},
		{"1k", 1024, false},
		{"1K", 1024, false},
		{"1m", 1024 * 1024, false},
		{"1M", 1024 * 1024, false},
		{"0", 0, false},
		{"", 0, true},
		{"-5", 0, true},
		{"abc", 0, true},
		{"5x", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseSize(tc.in)
		if tc.wantErr {
			require.Error(t, err)
			assert.True(t, IsKind(err, ErrInvalidConfig))
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestParseInterval(t *testing.T) {
	cases := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"00:00:01", time.Second, false},
		{"01:00:00", time.Hour, false},
		{"100:30:15", 100*time.Hour + 30*time.Minute + 15*time.Second, false},
		{"00:60:00", 0, true},
		{"00:00:60", 0, true},
		{"bad", 0, true},
		{"1:2", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseInterval(tc.in)
		if tc.wantErr {
			require.Error(t, err)
			assert.True(t, IsKind(err, ErrInvalidConfig))
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}
