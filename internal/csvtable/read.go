package csvtable

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Read loads the file at path, decodes it with opts.Encoding and parses it.
// A missing file surfaces as fs.ErrNotExist, a decoding failure as
// textenc.ErrUndecodable, and a file without rows as ErrEmptyTable.
func Read(path string, opts Options) (*Table, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	text, err := opts.Encoding.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return Parse(bytes.NewReader(text), opts.delimiter())
}

// Parse reads UTF-8 delimited text. A field may be quoted as a whole or open
// with a quoted section followed by unquoted text; quotes are not kept in
// values and "" inside a quoted section is a literal quote. Records may have
// any number of fields, and blank lines are kept as empty records.
func Parse(r io.Reader, delimiter rune) (*Table, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	rows := splitRecords(string(text), delimiter)
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}
	return &Table{Header: rows[0], Records: rows[1:]}, nil
}
