package csvtable

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// Write renders t, encodes it with opts.Encoding and writes it to path,
// truncating any existing file. Encoding happens before the file is opened,
// so an unencodable table leaves the destination untouched. An I/O failure
// mid-write may leave a partial file.
func Write(path string, t *Table, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Render(&buf, t, opts.delimiter()); err != nil {
		return err
	}
	data, err := opts.Encoding.Encode(buf.Bytes())
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := out.Write(data); err != nil {
		_ = out.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// Render writes t as UTF-8 delimited text with CRLF line endings. Fields are
// quoted only when they contain the delimiter, a quote, or a line break.
func Render(w io.Writer, t *Table, delimiter rune) error {
	bw := bufio.NewWriter(w)
	writeRecord(bw, t.Header, delimiter)
	for _, record := range t.Records {
		writeRecord(bw, record, delimiter)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
