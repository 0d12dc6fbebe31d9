package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// NormalizeTime returns the canonical "HH:MM" form of a time-of-day label.
// Seconds and fractions ("09:00:00", "09:00:00.000") are dropped and a
// single digit hour is padded ("9:00").
func NormalizeTime(label string) (string, error) {
	parts := strings.Split(strings.TrimSpace(label), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return "", Invalid("invalid_time")
	}

	if len(parts[0]) > 2 || !digits(parts[0]) || len(parts[1]) != 2 || !digits(parts[1]) {
		return "", Invalid("invalid_time")
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h > 23 {
		return "", Invalid("invalid_time")
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m > 59 {
		return "", Invalid("invalid_time")
	}
	if len(parts) == 3 {
		sec, frac, _ := strings.Cut(parts[2], ".")
		if len(sec) != 2 || !digits(sec) || !digits(frac) {
			return "", Invalid("invalid_time")
		}
		if s, _ := strconv.Atoi(sec); s > 59 {
			return "", Invalid("invalid_time")
		}
	}

	return fmt.Sprintf("%02d:%02d", h, m), nil
}

// NormalizeSlots validates a configured slot list. Labels are made
// canonical, duplicates rejected and the given order kept.
func NormalizeSlots(labels []string) ([]string, error) {
	out := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))

	for _, l := range labels {
		hm, err := NormalizeTime(l)
		if err != nil {
			return nil, Invalid("invalid_slot")
		}
		if _, dup := seen[hm]; dup {
			return nil, Invalid("duplicate_slot")
		}
		seen[hm] = struct{}{}
		out = append(out, hm)
	}
	return out, nil
}

// HasSlot reports whether the canonical label hm is one of slots.
func HasSlot(slots []string, hm string) bool {
	for _, s := range slots {
		if s == hm {
			return true
		}
	}
	return false
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// timestampLayouts are accepted for a date that carries a time of day.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseDate parses a calendar day. A well-formed timestamp is accepted and
// its time of day ignored: the first ten characters name the day.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(DateLayout) {
		sep := s[len(DateLayout)]
		if (sep != 'T' && sep != ' ') || !isTimestamp(s) {
			return time.Time{}, Invalid("invalid_date")
		}
		s = s[:len(DateLayout)]
	}

	d, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, Invalid("invalid_date")
	}
	return d, nil
}

func isTimestamp(s string) bool {
	for _, layout := range timestampLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
