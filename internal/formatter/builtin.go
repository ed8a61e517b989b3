package formatter

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/alexisbeaulieu97/tabula/internal/logger"
)

// Built-in formatter names.
const (
	FormatDate   = "formatDate"
	AllCap       = "allcap"
	GenderLabel  = "genderLabel"
	FormatNumber = "formatNumber"
)

// DefaultDatePattern is used by formatDate when the callback carries no pattern.
const DefaultDatePattern = "D MMM YYYY"

// BuiltinOptions carries host-supplied settings for the built-in formatters.
type BuiltinOptions struct {
	// GenderLabels maps coded values to labels. Nil selects M→Male, F→Female.
	GenderLabels map[string]string
	// GenderUnknown replaces unrecognised codes; empty passes them through.
	GenderUnknown string
	// Language selects digit grouping for formatNumber. Zero value means English.
	Language language.Tag
	// Location is applied to dates before formatting. Nil keeps the parsed zone.
	Location *time.Location
}

// DefaultGenderLabels is the mapping used when the host supplies none.
func DefaultGenderLabels() map[string]string {
	return map[string]string{"M": "Male", "F": "Female"}
}

// NewDefaultRegistry returns a registry with formatDate, allcap, genderLabel and formatNumber installed.
func NewDefaultRegistry(opts BuiltinOptions, log *logger.Logger) *Registry {
	r := NewRegistry(log)

	labels := opts.GenderLabels
	if labels == nil {
		labels = DefaultGenderLabels()
	}
	tag := opts.Language
	if tag == language.Und {
		tag = language.English
	}

	// The registry is empty, so these cannot collide.
	_ = r.Register(FormatDate, NewDateFormatter(opts.Location))
	_ = r.Register(AllCap, UpperCase)
	_ = r.Register(GenderLabel, NewGenderLabeler(labels, opts.GenderUnknown))
	_ = r.Register(FormatNumber, NewNumberFormatter(tag))
	return r
}

var upperCaser = cases.Upper(language.Und)

// UpperCase is the allcap formatter. Applying it twice equals applying it once.
func UpperCase(value any, _ []string) (string, error) {
	return upperCaser.String(Stringify(value)), nil
}

// NewGenderLabeler maps coded values to labels. Codes are matched exactly.
func NewGenderLabeler(labels map[string]string, unknown string) Func {
	table := make(map[string]string, len(labels))
	for code, label := range labels {
		table[code] = label
	}

	return func(value any, _ []string) (string, error) {
		code := Stringify(value)
		if code == "" {
			return "", nil
		}
		if label, ok := table[code]; ok {
			return label, nil
		}
		if unknown != "" {
			return unknown, nil
		}
		return code, nil
	}
}

// NewNumberFormatter groups thousands according to tag. The optional first
// argument fixes the number of decimals; without it integers get none and
// floats keep their shortest representation, capped at maxFloatDecimals
// fraction digits. Non-numeric input renders as "".
func NewNumberFormatter(tag language.Tag) Func {
	return func(value any, args []string) (string, error) {
		num, ok := toNumber(value)
		if !ok {
			return "", nil
		}

		printer := message.NewPrinter(tag)
		if len(args) > 0 && args[0] != "" {
			decimals, err := strconv.Atoi(args[0])
			if err != nil || decimals < 0 {
				return "", fmt.Errorf("invalid decimal count %q", args[0])
			}
			return printer.Sprint(number.Decimal(num, number.Scale(decimals))), nil
		}
		if f, ok := num.(float64); ok {
			if n := fractionDigits(f); n > 0 {
				return printer.Sprint(number.Decimal(f, number.MaxFractionDigits(n))), nil
			}
		}
		return printer.Sprint(number.Decimal(num)), nil
	}
}

const maxFloatDecimals = 20

// fractionDigits counts the fraction digits of the shortest decimal form of f.
func fractionDigits(f float64) int {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	_, frac, ok := strings.Cut(s, ".")
	if !ok {
		return 0
	}
	return min(len(frac), maxFloatDecimals)
}

// toNumber returns an int64 or float64 for numeric input.
func toNumber(value any) (any, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		if uint64(v) > math.MaxInt64 {
			return float64(v), true
		}
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return float64(v), true
		}
		return int64(v), true
	case float32:
		return finite(float64(v))
	case float64:
		return finite(v)
	case json.Number:
		return parseNumeric(v.String())
	case string:
		return parseNumeric(strings.TrimSpace(v))
	default:
		return nil, false
	}
}

func parseNumeric(s string) (any, bool) {
	if s == "" {
		return nil, false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}
	return finite(f)
}

func finite(f float64) (any, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return f, true
}
