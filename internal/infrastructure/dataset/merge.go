package dataset

// dedupKey identifies a listing for merge deduplication.
type dedupKey struct {
	url   string
	title string
}

// Merge normalizes both tables against the canonical table's columns and
// appends capture rows whose (url, title) pair is not already present.
// The canonical table's rows are normalized in place and its column order
// is preserved. Returns how many rows were appended; merging the same
// capture twice appends 0 the second time.
func Merge(canonical, capture *Table) int {
	seen := make(map[dedupKey]struct{}, len(canonical.Rows))
	for i, row := range canonical.Rows {
		cleaned := NormalizeRow(row, canonical.Columns)
		canonical.Rows[i] = cleaned
		seen[dedupKey{cleaned["url"], cleaned["title"]}] = struct{}{}
	}

	appended := 0
	for _, row := range capture.Rows {
		cleaned := NormalizeRow(row, canonical.Columns)
		key := dedupKey{cleaned["url"], cleaned["title"]}
		if _, dup := seen[key]; dup {
			continue
		}
		canonical.Rows = append(canonical.Rows, cleaned)
		seen[key] = struct{}{}
		appended++
	}
	return appended
}
