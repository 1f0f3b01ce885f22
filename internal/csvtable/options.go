package csvtable

import (
	"errors"
	"fmt"

	"surveyclean/internal/textenc"
)

// DefaultDelimiter separates fields in survey exports.
const DefaultDelimiter = ';'

// ErrEmptyTable is returned when the input holds no rows at all.
var ErrEmptyTable = errors.New("table is empty")

// Options control how a table is read or written.
type Options struct {
	Encoding  textenc.Encoding
	Delimiter rune
}

func (o Options) delimiter() rune {
	if o.Delimiter == 0 {
		return DefaultDelimiter
	}
	return o.Delimiter
}

func (o Options) validate() error {
	if !o.Encoding.Valid() {
		return fmt.Errorf("%w: no encoding configured", textenc.ErrUnknownEncoding)
	}
	return nil
}
