// Package textenc resolves character encodings by name and converts raw file
// bytes to and from UTF-8.
//
// Names are looked up in the IANA registry (iso-8859-1, latin1, windows-1252,
// utf-8, utf-16le, ...). Decoding is strict: bytes that have no mapping in the
// declared encoding are reported as ErrUndecodable instead of being silently
// replaced, and runes the target encoding cannot represent are reported as
// ErrUnencodable.
package textenc
