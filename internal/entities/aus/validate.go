package aus

import (
	"sort"

	"github.com/KirkDiggler/aus-world/internal/errors"
)

// ValidateTables checks the static tables for collisions: no location name
// appears in two tables, and no two items or locations share a numeric id.
// A failure here is a defect in the tables themselves.
func ValidateTables() error {
	if err := checkItemCodes(); err != nil {
		return err
	}
	_, err := MergeLocations(baseLocationTable, arcadeLocationTable, finalClimbLocationTable)
	return err
}

// MergeLocations combines location tables into one. A name or id that
// appears twice is a DuplicateID error.
func MergeLocations(tables ...map[string]LocationData) (map[string]LocationData, error) {
	merged := make(map[string]LocationData)
	byID := make(map[int64]string)
	for _, table := range tables {
		for _, name := range sortedNames(table) {
			data := table[name]
			if prev, ok := merged[name]; ok {
				return nil, errors.DuplicateID("location", prev.ID, name, name)
			}
			if other, ok := byID[data.ID]; ok {
				return nil, errors.DuplicateID("location", data.ID, other, name)
			}
			merged[name] = data
			byID[data.ID] = name
		}
	}
	return merged, nil
}

func checkItemCodes() error {
	byCode := make(map[int64]string, len(itemTable))
	names := make([]string, 0, len(itemTable))
	for name := range itemTable {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		code := itemTable[name].Code
		if other, ok := byCode[code]; ok {
			return errors.DuplicateID("item", code, other, name)
		}
		byCode[code] = name
	}
	return nil
}

func sortedNames(table map[string]LocationData) []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
