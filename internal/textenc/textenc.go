package textenc

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrUnknownEncoding is returned when a name does not resolve to a supported encoding.
	ErrUnknownEncoding = errors.New("unknown encoding")
	// ErrUndecodable is returned when input bytes are invalid under the declared encoding.
	ErrUndecodable = errors.New("undecodable input")
	// ErrUnencodable is returned when text contains runes the target encoding cannot represent.
	ErrUnencodable = errors.New("unencodable output")
)

// Encoding pairs a resolved x/text encoding with the name it was requested under.
type Encoding struct {
	Name string
	enc  encoding.Encoding
	utf8 bool
}

// aliases not present in the IANA registry but common in tooling configs.
var aliases = map[string]encoding.Encoding{
	"utf-8-sig": unicode.UTF8BOM,
	"utf-8-bom": unicode.UTF8BOM,
	"utf8":      unicode.UTF8,
}

// Lookup resolves an encoding name. Matching is case-insensitive.
func Lookup(name string) (Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Encoding{}, fmt.Errorf("%w: empty name", ErrUnknownEncoding)
	}
	if key == "latin-1" {
		key = "latin1"
	}
	if enc, ok := aliases[key]; ok {
		return newEncoding(name, enc), nil
	}
	enc, err := ianaindex.IANA.Encoding(key)
	if err != nil {
		return Encoding{}, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	if enc == nil {
		return Encoding{}, fmt.Errorf("%w: %q is registered but unsupported", ErrUnknownEncoding, name)
	}
	return newEncoding(name, enc), nil
}

// MustLookup is Lookup for names known at compile time.
func MustLookup(name string) Encoding {
	enc, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return enc
}

func newEncoding(name string, enc encoding.Encoding) Encoding {
	return Encoding{
		Name: strings.TrimSpace(name),
		enc:  enc,
		utf8: enc == unicode.UTF8 || enc == unicode.UTF8BOM,
	}
}

// Valid reports whether the encoding was resolved.
func (e Encoding) Valid() bool {
	return e.enc != nil
}

func (e Encoding) String() string {
	return e.Name
}

// Decode converts data in encoding e to UTF-8.
func (e Encoding) Decode(data []byte) ([]byte, error) {
	if e.enc == nil {
		return nil, fmt.Errorf("%w: unresolved", ErrUnknownEncoding)
	}
	if e.utf8 {
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("%w: invalid %s byte sequence at offset %d", ErrUndecodable, e.Name, invalidOffset(data))
		}
	}
	out, _, err := transform.Bytes(e.enc.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	// Single-byte tables map unassigned bytes to U+FFFD; none of them can
	// legitimately produce it.
	if !e.utf8 && bytes.ContainsRune(out, utf8.RuneError) {
		return nil, fmt.Errorf("%w: byte without %s mapping near offset %d", ErrUndecodable, e.Name, bytes.IndexRune(out, utf8.RuneError))
	}
	return out, nil
}

// Encode converts UTF-8 text to encoding e.
func (e Encoding) Encode(data []byte) ([]byte, error) {
	if e.enc == nil {
		return nil, fmt.Errorf("%w: unresolved", ErrUnknownEncoding)
	}
	if e.enc == unicode.UTF8 {
		return data, nil
	}
	out, _, err := transform.Bytes(e.enc.NewEncoder(), data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnencodable, e.Name, err)
	}
	return out, nil
}

func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
