package calculator

import (
	"math"
	"strconv"
	"strings"
)

// ParseDuration parses free text of the form [[H:]M:]S[.fraction] into
// milliseconds. The fraction is truncated or padded to three digits.
// Fields that are not numbers count as zero. ok is false for empty input or
// more than three fields, in which case the caller keeps its previous value.
func ParseDuration(s string) (ms uint32, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, false
	}

	last := parts[len(parts)-1]
	secText, fracText, _ := strings.Cut(last, ".")

	total := parseField(secText) * 1000
	total += parseFraction(fracText)

	switch len(parts) {
	case 2:
		total += parseField(parts[0]) * 60 * 1000
	case 3:
		total += parseField(parts[0]) * 3600 * 1000
		total += parseField(parts[1]) * 60 * 1000
	}

	if total > math.MaxUint32 {
		total = math.MaxUint32
	}
	return uint32(total), true
}

// ParseVitality parses a vitality count, falling back to 0
func ParseVitality(s string) uint8 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

// ParseScore parses a target score
func ParseScore(s string) (uint32, bool) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

func parseField(s string) uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0
	}
	return v
}

// parseFraction turns the digits after the decimal point into milliseconds
func parseFraction(s string) uint64 {
	s = strings.TrimSpace(s)
	if len(s) > 3 {
		s = s[:3]
	}
	if s == "" {
		return 0
	}
	s += strings.Repeat("0", 3-len(s))
	return parseField(s)
}
