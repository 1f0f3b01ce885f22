package csvtable

import "fmt"

// Table is a header row followed by records. Records are not required to have
// the header's width.
type Table struct {
	Header  []string
	Records [][]string
}

// ColumnIndex returns the position of the first header cell equal to name.
func (t *Table) ColumnIndex(name string) (int, bool) {
	if t == nil {
		return -1, false
	}
	for i, col := range t.Header {
		if col == name {
			return i, true
		}
	}
	return -1, false
}

// Rows returns the number of records, excluding the header.
func (t *Table) Rows() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// HeaderPreview lists at most n header names, for diagnostics.
func (t *Table) HeaderPreview(n int) []string {
	if t == nil || n <= 0 {
		return nil
	}
	if len(t.Header) <= n {
		return append([]string(nil), t.Header...)
	}
	return append([]string(nil), t.Header[:n]...)
}

func (t *Table) String() string {
	return fmt.Sprintf("table(%d columns, %d rows)", len(t.Header), t.Rows())
}
