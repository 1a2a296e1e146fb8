// Package reports renders report rows as CSV. Every non-null field is
// double-quoted with embedded quotes doubled, including numbers and empty
// strings; null values render as a bare empty cell. encoding/csv is not
// used because it only quotes when needed, which would change the output
// contract.
package reports

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

func escape(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func cell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case *string:
		if x == nil {
			return ""
		}
		return escape(*x)
	case string:
		return escape(x)
	case int:
		return escape(strconv.Itoa(x))
	case float64:
		return escape(strconv.FormatFloat(x, 'f', -1, 64))
	default:
		return escape(fmt.Sprint(x))
	}
}

// Encode builds the CSV body: header line first, then one line per row.
func Encode(headers []string, rows [][]any) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(headers, ","))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = cell(v)
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n")
}

// Filename returns "<prefix>_YYYY-MM-DD.csv" for the attachment header.
func Filename(prefix string, now time.Time) string {
	return prefix + "_" + now.Format("2006-01-02") + ".csv"
}
