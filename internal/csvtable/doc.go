// Package csvtable loads and stores delimited text tables entirely in memory.
//
// Read decodes the file from its declared encoding before parsing, so quoting
// and delimiters are interpreted on UTF-8 text. Write renders the table with
// minimal quoting and CRLF line endings, encodes it, and only then touches the
// destination file.
package csvtable
