// FILE: parse.go
package rotatelog

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseSize parses a size attribute: leading digits, optional suffix
// k/K (x1024) or m/M (x1024^2). Absent suffix means bytes. The digits
// are required: an empty value or a bare suffix is rejected. Fails with
// an InvalidConfig *Error on empty, negative or non-numeric input,
// per spec.md section 4.2.
func ParseSize(s string) (int64, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, newError(ErrInvalidConfig, "parse_size", "", fmt.Errorf("empty size value"))
	}

	multiplier := int64(1)
	suffix := raw[len(raw)-1]
	numPart := raw
	switch suffix {
	case 'k', 'K':
		multiplier = 1024
		numPart = raw[:len(raw)-1]
	case 'm', 'M':
		multiplier = 1024 * 1024
		numPart = raw[:len(raw)-1]
	}

	n, err := strconv.ParseInt(strings.TrimSpace(numPart), 10, 64)
	if err != nil {
		return 0, newError(ErrInvalidConfig, "parse_size", "", fmt.Errorf("invalid size '%s': %w", s, err))
	}
	if n < 0 {
		return 0, newError(ErrInvalidConfig, "parse_size", "", fmt.Errorf("negative size '%s'", s))
	}

	return n * multiplier, nil
}

// ParseInterval parses an "HH:MM:SS" interval attribute into a duration.
// HH has no upper bound; MM and SS must each be in [0,59]. Fails with an
// InvalidConfig *Error otherwise, per spec.md section 4.2.
func ParseInterval(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, newError(ErrInvalidConfig, "parse_interval", "", fmt.Errorf("invalid interval '%s', expected HH:MM:SS", s))
	}

	hh, errH := strconv.ParseInt(parts[0], 10, 64)
	mm, errM := strconv.ParseInt(parts[1], 10, 64)
	ss, errS := strconv.ParseInt(parts[2], 10, 64)
	if errH != nil || errM != nil || errS != nil {
		return 0, newError(ErrInvalidConfig, "parse_interval", "", fmt.Errorf("invalid interval '%s', non-numeric component", s))
	}
	if hh < 0 || mm < 0 || mm > 59 || ss < 0 || ss > 59 {
		return 0, newError(ErrInvalidConfig, "parse_interval", "", fmt.Errorf("invalid interval '%s', out-of-range component", s))
	}

	total := hh*3600 + mm*60 + ss
	return time.Duration(total) * time.Second, nil
}
