package views

// MergeByID reconciles a baseline record set with a live one of the same
// entity type. Live records win whenever both sets carry the same identifier.
// Output order is baseline-only records first, in their original order,
// followed by the live records in theirs. Merging is idempotent as a
// key-to-value mapping.
func MergeByID[T any](baseline, live []T, id func(T) string) []T {
	replaced := make(map[string]T, len(live))
	for _, rec := range live {
		replaced[id(rec)] = rec
	}

	merged := make([]T, 0, len(baseline)+len(live))
	for _, rec := range baseline {
		if _, ok := replaced[id(rec)]; ok {
			continue
		}
		merged = append(merged, rec)
	}
	return append(merged, live...)
}
