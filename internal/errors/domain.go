package errors

import (
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// OutOfRangeValue reports an option value outside [minValue, maxValue]
func OutOfRangeValue(option string, value, minValue, maxValue int) *Error {
	return OutOfRangef("%s must be between %d and %d, got %d", option, minValue, maxValue, value).
		WithMeta("option", option).
		WithMeta("value", value).
		WithMeta("min", minValue).
		WithMeta("max", maxValue)
}

// OutOfRangeLiteral reports a value too large to hold as an int, keeping
// the value as it was supplied
func OutOfRangeLiteral(option, value string, minValue, maxValue int) *Error {
	return OutOfRangef("%s must be between %d and %d, got %s", option, minValue, maxValue, value).
		WithMeta("option", option).
		WithMeta("value", value).
		WithMeta("min", minValue).
		WithMeta("max", maxValue)
}

// UnknownItem reports an item name missing from the item table. known is
// used to attach the closest names as a suggestion.
func UnknownItem(name string, known []string) *Error {
	return unknownName("item", name, known)
}

// UnknownLocation reports a location name missing from the location tables
func UnknownLocation(name string, known []string) *Error {
	return unknownName("location", name, known)
}

// DuplicateID reports two table entries that share a numeric id or name
func DuplicateID(table string, id int64, first, second string) *Error {
	return AlreadyExistsf("%s id %d is used by both %q and %q", table, id, first, second).
		WithMeta("table", table).
		WithMeta("id", id).
		WithMeta("first", first).
		WithMeta("second", second)
}

func unknownName(kind, name string, known []string) *Error {
	err := NotFoundf("unknown %s %q", kind, name).
		WithMeta(kind, name)
	if s := suggest(name, known); len(s) > 0 {
		err.Message += ", did you mean " + quoteJoin(s) + "?"
		err.WithMeta("suggestions", s)
	}
	return err
}

// quoteJoin quotes each name and joins them with ", "
func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = strconv.Quote(n)
	}
	return strings.Join(quoted, ", ")
}

const maxSuggestions = 3

// suggest returns up to maxSuggestions names tied at the smallest edit
// distance, which must be within a quarter of the input length.
func suggest(name string, known []string) []string {
	limit := len(name)/4 + 1

	best := limit + 1
	var hits []string
	for _, cand := range known {
		d := levenshtein.ComputeDistance(name, cand)
		switch {
		case d < best:
			best = d
			hits = []string{cand}
		case d == best:
			hits = append(hits, cand)
		}
	}
	sort.Strings(hits)

	if len(hits) > maxSuggestions {
		hits = hits[:maxSuggestions]
	}
	return hits
}
