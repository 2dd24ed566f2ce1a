package slotdata

import (
	"math"
	"sort"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/aus-world/internal/errors"
)

// Normalize checks that every value is a primitive and returns a copy in
// canonical form: integral numbers as int, other numbers as float64.
func Normalize(data map[string]any) (map[string]any, error) {
	vb := errors.NewValidationBuilder()
	out := make(map[string]any, len(data))

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v, ok := normalizeValue(data[k])
		if !ok {
			vb.Fieldf(k, "unsupported slot data value of type %T", data[k])
			continue
		}
		out[k] = v
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}
	return out, nil
}

func normalizeValue(v any) (any, bool) {
	switch n := v.(type) {
	case nil, bool, string:
		return n, true
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint32:
		return int(n), true
	case float32:
		return normalizeFloat(float64(n)), true
	case float64:
		return normalizeFloat(n), true
	default:
		return nil, false
	}
}

func normalizeFloat(f float64) any {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return int(f)
	}
	return f
}

// ToStruct converts slot data to its protobuf wire form. Lists and nested
// maps are rejected.
func ToStruct(data map[string]any) (*structpb.Struct, error) {
	normalized, err := Normalize(data)
	if err != nil {
		return nil, err
	}

	s, err := structpb.NewStruct(normalized)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to convert slot data")
	}
	return s, nil
}

// FromStruct converts the wire form back to canonical slot data
func FromStruct(s *structpb.Struct) (map[string]any, error) {
	if s == nil {
		return map[string]any{}, nil
	}
	return Normalize(s.AsMap())
}
