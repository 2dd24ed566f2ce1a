package options

import (
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/aus-world/internal/errors"
)

// Kind is the shape of an option's domain
type Kind string

const (
	KindRange      Kind = "range"
	KindNamedRange Kind = "named_range"
	KindToggle     Kind = "toggle"
	KindChoice     Kind = "choice"
)

// Name is one alias of a named range or one value of a choice
type Name struct {
	Name  string
	Value int
}

// Definition declares a single option: its key, domain and default
type Definition struct {
	Key         string
	DisplayName string
	Description string
	Kind        Kind
	Min         int
	Max         int
	Default     int
	// Names are the special names of a named range or the options of a
	// choice, in declaration order.
	Names []Name
}

var toggleWords = map[string]int{
	"true":  1,
	"false": 0,
	"on":    1,
	"off":   0,
	"yes":   1,
	"no":    0,
}

// Resolve turns a raw player value into the option's integer value. It
// accepts ints, integral floats, numeric strings, names and, for toggles,
// booleans.
func (d Definition) Resolve(raw any) (int, error) {
	switch v := raw.(type) {
	case nil:
		return d.Default, nil
	case bool:
		if d.Kind != KindToggle {
			return 0, errors.InvalidArgumentf("%s does not accept a boolean", d.Key).
				WithMeta("option", d.Key)
		}
		if v {
			return 1, nil
		}
		return 0, nil
	case int:
		return d.resolveNumber(v)
	case int64:
		return d.resolveNumber(int(v))
	case uint64:
		if v > math.MaxInt32 {
			return 0, errors.OutOfRangeLiteral(d.Key, strconv.FormatUint(v, 10), d.Min, d.Max)
		}
		return d.resolveNumber(int(v))
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, errors.InvalidArgumentf("%s must be a whole number, got %v", d.Key, v).
				WithMeta("option", d.Key)
		}
		if v > math.MaxInt32 || v < math.MinInt32 {
			return 0, errors.OutOfRangeLiteral(d.Key, strconv.FormatFloat(v, 'f', -1, 64), d.Min, d.Max)
		}
		return d.resolveNumber(int(v))
	case string:
		return d.resolveString(v)
	default:
		return 0, errors.InvalidArgumentf("%s has unsupported value type %T", d.Key, raw).
			WithMeta("option", d.Key)
	}
}

func (d Definition) resolveNumber(v int) (int, error) {
	if v < d.Min || v > d.Max {
		return 0, errors.OutOfRangeValue(d.Key, v, d.Min, d.Max)
	}
	if d.Kind == KindChoice && !d.hasValue(v) {
		return 0, errors.InvalidArgumentf("%s has no option %d", d.Key, v).
			WithMeta("option", d.Key)
	}
	return v, nil
}

func (d Definition) resolveString(raw string) (int, error) {
	s := strings.ToLower(strings.TrimSpace(raw))

	if n, err := strconv.Atoi(s); err == nil {
		return d.resolveNumber(n)
	}
	if d.Kind == KindToggle {
		if n, ok := toggleWords[s]; ok {
			return n, nil
		}
	}
	for _, name := range d.Names {
		if name.Name == s {
			return name.Value, nil
		}
	}

	return 0, errors.InvalidArgumentf("%s has no option named %q", d.Key, raw).
		WithMeta("option", d.Key).
		WithMeta("accepted", d.nameList())
}

func (d Definition) hasValue(v int) bool {
	for _, name := range d.Names {
		if name.Value == v {
			return true
		}
	}
	return false
}

func (d Definition) nameList() []string {
	if d.Kind == KindToggle {
		return []string{"true", "false", "on", "off", "yes", "no"}
	}
	out := make([]string, len(d.Names))
	for i, name := range d.Names {
		out[i] = name.Name
	}
	return out
}
