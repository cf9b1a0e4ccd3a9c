package dataset

import (
	"strconv"
	"strings"
)

// NormalizeText collapses line endings, non-breaking spaces, and runs of
// whitespace into single spaces, trimmed.
func NormalizeText(value string) string {
	text := strings.NewReplacer(
		"\r\n", " ",
		"\n", " ",
		"\r", " ",
		" ", " ",
	).Replace(value)
	return strings.Join(strings.Fields(text), " ")
}

// NormalizePrice canonicalizes a price cell: strips currency symbols and
// thousands separators, then reformats parsable values as a plain float
// ("$1,299.00" -> "1299"). Unparsable text is kept cleaned; empty input
// stays empty. This is the batch-tool contract; the serving path's
// 0.0-default parse lives in the assembler.
func NormalizePrice(value string) string {
	text := NormalizeText(value)
	if text == "" {
		return ""
	}
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(text)
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return cleaned
	}
	return strconv.FormatFloat(parsed, 'f', -1, 64)
}

// NormalizeRow normalizes a row against the canonical column list: price
// columns through NormalizePrice, everything else through NormalizeText.
// Columns missing from the row come out empty.
func NormalizeRow(row map[string]string, columns []string) map[string]string {
	normalized := make(map[string]string, len(columns))
	for _, col := range columns {
		if col == "price" {
			normalized[col] = NormalizePrice(row[col])
		} else {
			normalized[col] = NormalizeText(row[col])
		}
	}
	return normalized
}
