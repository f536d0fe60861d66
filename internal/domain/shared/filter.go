package shared

import "strings"

// FieldAccessor extracts a searchable string field from a record.
// Accessors may return an empty string when the field is absent on a
// given record; such fields are simply skipped during matching.
type FieldAccessor[T any] func(T) string

// FilterBySubstring returns the subsequence of records where any accessor's
// lower-cased value contains the lower-cased term as a substring. An empty
// term returns the input unchanged (same elements, same order). The input
// slice is never mutated; the result is recomputed on every call so it can
// never diverge from its source.
func FilterBySubstring[T any](records []T, term string, accessors ...FieldAccessor[T]) []T {
	if term == "" {
		return records
	}

	needle := strings.ToLower(term)
	matched := make([]T, 0, len(records))

	for _, record := range records {
		for _, accessor := range accessors {
			value := accessor(record)
			if value == "" {
				continue
			}
			if strings.Contains(strings.ToLower(value), needle) {
				matched = append(matched, record)
				break
			}
		}
	}

	return matched
}
