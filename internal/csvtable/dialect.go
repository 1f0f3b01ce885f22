package csvtable

import (
	"bufio"
	"strings"
)

// Parser states. A quote only opens a quoted section at the start of a field;
// after the closing quote the field continues unquoted up to the delimiter.
const (
	startRecord = iota
	startField
	inField
	inQuoted
	quoteInQuoted
)

// splitRecords parses delimited text into records. Line breaks are normalized
// to "\n" first, including inside quoted fields. A blank line yields an empty
// record. Parsing never fails: a quote left open at the end of the input
// closes the last field.
func splitRecords(text string, delimiter rune) [][]string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var (
		records [][]string
		record  []string
		field   strings.Builder
		state   = startRecord
	)
	saveField := func() {
		record = append(record, field.String())
		field.Reset()
	}
	saveRecord := func() {
		if record == nil {
			record = []string{}
		}
		records = append(records, record)
		record = nil
		state = startRecord
	}

	for _, c := range text {
		switch state {
		case startRecord, startField:
			switch c {
			case '\n':
				if state == startField {
					saveField()
				}
				saveRecord()
			case '"':
				state = inQuoted
			case delimiter:
				saveField()
				state = startField
			default:
				field.WriteRune(c)
				state = inField
			}
		case inField:
			switch c {
			case '\n':
				saveField()
				saveRecord()
			case delimiter:
				saveField()
				state = startField
			default:
				field.WriteRune(c)
			}
		case inQuoted:
			if c == '"' {
				state = quoteInQuoted
			} else {
				field.WriteRune(c)
			}
		case quoteInQuoted:
			switch c {
			case '"':
				field.WriteRune('"')
				state = inQuoted
			case '\n':
				saveField()
				saveRecord()
			case delimiter:
				saveField()
				state = startField
			default:
				field.WriteRune(c)
				state = inField
			}
		}
	}
	if state != startRecord {
		saveField()
		saveRecord()
	}
	return records
}

// writeRecord writes one CRLF-terminated record. A record made of a single
// empty field is written as "" so it does not read back as a blank line.
func writeRecord(w *bufio.Writer, record []string, delimiter rune) {
	if len(record) == 1 && record[0] == "" {
		w.WriteString(`""`)
	}
	for i, field := range record {
		if i > 0 {
			w.WriteRune(delimiter)
		}
		if !needsQuotes(field, delimiter) {
			w.WriteString(field)
			continue
		}
		w.WriteByte('"')
		w.WriteString(strings.ReplaceAll(field, `"`, `""`))
		w.WriteByte('"')
	}
	w.WriteString("\r\n")
}

// needsQuotes reports whether field would be misread without quoting.
// Leading spaces and other characters are written as they are.
func needsQuotes(field string, delimiter rune) bool {
	return strings.ContainsRune(field, delimiter) || strings.ContainsAny(field, "\"\r\n")
}
