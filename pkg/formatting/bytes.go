// Package formatting provides human-readable formatting and parsing of byte sizes.
package formatting

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// ErrInvalidSize is returned by ParseBytes for malformed or out-of-range input.
var ErrInvalidSize = errors.New("invalid byte size")

var units = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}

var bytesPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([A-Za-z]*)$`)

// FormatBytes converts a byte count to a human-readable string using base-1024 units.
// Negative precision values are clamped to zero.
func FormatBytes(n int64, precision int) string {
	precision = max(precision, 0)

	sign := ""
	f := float64(n)
	if n < 0 {
		sign = "-"
		f = -f
	}

	i := 0
	for f >= 1024 && i < len(units)-1 {
		f /= 1024
		i++
	}

	if i == 0 {
		return fmt.Sprintf("%s%d B", sign, int64(f))
	}
	return sign + strconv.FormatFloat(f, 'f', precision, 64) + " " + units[i]
}

// ParseBytes parses a human-readable byte size such as "64KB", "1.5 MB" or
// "2GiB" into a byte count. Units are base-1024 and case-insensitive; the
// IEC spellings (KiB, MiB, ...) are accepted as aliases. A bare number is bytes.
func ParseBytes(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidSize)
	}

	m := bytesPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidSize, err)
	}

	unit := strings.ToUpper(m[2])
	if unit != "B" {
		unit = strings.Replace(unit, "IB", "B", 1)
	}
	if unit == "" {
		unit = "B"
	}

	idx := slices.Index(units, unit)
	if idx == -1 {
		return 0, fmt.Errorf("%w: unknown unit %q", ErrInvalidSize, m[2])
	}

	n := value * math.Pow(1024, float64(idx))
	if n >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q overflows", ErrInvalidSize, s)
	}
	return int64(n), nil
}
