package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var dateInputLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// NewDateFormatter renders date-like values with a moment-style pattern taken
// from the first argument (DefaultDatePattern when absent). Supported tokens:
// YYYY YY MMMM MMM MM M DD D dddd ddd HH H hh h mm m ss s A a. Text inside
// square brackets is copied literally. Integers are read as unix seconds.
func NewDateFormatter(loc *time.Location) Func {
	return func(value any, args []string) (string, error) {
		if value == nil {
			return "", nil
		}
		if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
			return "", nil
		}

		ts, err := toTime(value)
		if err != nil {
			return "", err
		}
		if loc != nil {
			ts = ts.In(loc)
		}

		pattern := DefaultDatePattern
		if len(args) > 0 && args[0] != "" {
			pattern = args[0]
		}
		return FormatMoment(ts, pattern), nil
	}
}

func toTime(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("nil time")
		}
		return *v, nil
	case int:
		return time.Unix(int64(v), 0).UTC(), nil
	case int64:
		return time.Unix(v, 0).UTC(), nil
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range dateInputLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts, nil
			}
		}
		if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
			return time.Unix(secs, 0).UTC(), nil
		}
		return time.Time{}, fmt.Errorf("cannot read %q as a date", v)
	default:
		return time.Time{}, fmt.Errorf("cannot read %T as a date", value)
	}
}

// Longest tokens first so "MMMM" wins over "MM".
var momentTokens = []string{
	"YYYY", "YY",
	"MMMM", "MMM", "MM", "M",
	"dddd", "ddd",
	"DD", "D",
	"HH", "H", "hh", "h",
	"mm", "m", "ss", "s",
	"A", "a",
}

// FormatMoment formats ts using moment-style tokens.
func FormatMoment(ts time.Time, pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		if pattern[i] == '[' {
			end := strings.IndexByte(pattern[i+1:], ']')
			if end >= 0 {
				b.WriteString(pattern[i+1 : i+1+end])
				i += end + 2
				continue
			}
		}

		matched := false
		for _, tok := range momentTokens {
			if strings.HasPrefix(pattern[i:], tok) {
				b.WriteString(renderToken(ts, tok))
				i += len(tok)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(pattern[i])
			i++
		}
	}
	return b.String()
}

func renderToken(ts time.Time, tok string) string {
	switch tok {
	case "YYYY":
		return fmt.Sprintf("%04d", ts.Year())
	case "YY":
		return fmt.Sprintf("%02d", ts.Year()%100)
	case "MMMM":
		return ts.Month().String()
	case "MMM":
		return ts.Month().String()[:3]
	case "MM":
		return fmt.Sprintf("%02d", int(ts.Month()))
	case "M":
		return strconv.Itoa(int(ts.Month()))
	case "dddd":
		return ts.Weekday().String()
	case "ddd":
		return ts.Weekday().String()[:3]
	case "DD":
		return fmt.Sprintf("%02d", ts.Day())
	case "D":
		return strconv.Itoa(ts.Day())
	case "HH":
		return fmt.Sprintf("%02d", ts.Hour())
	case "H":
		return strconv.Itoa(ts.Hour())
	case "hh":
		return fmt.Sprintf("%02d", hour12(ts.Hour()))
	case "h":
		return strconv.Itoa(hour12(ts.Hour()))
	case "mm":
		return fmt.Sprintf("%02d", ts.Minute())
	case "m":
		return strconv.Itoa(ts.Minute())
	case "ss":
		return fmt.Sprintf("%02d", ts.Second())
	case "s":
		return strconv.Itoa(ts.Second())
	case "A":
		if ts.Hour() < 12 {
			return "AM"
		}
		return "PM"
	case "a":
		if ts.Hour() < 12 {
			return "am"
		}
		return "pm"
	}
	return tok
}

func hour12(h int) int {
	h %= 12
	if h == 0 {
		return 12
	}
	return h
}
