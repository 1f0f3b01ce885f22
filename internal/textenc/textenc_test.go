package textenc

import (
	"errors"
	"testing"
)

func TestLookupResolvesCommonNames(t *testing.T) {
	for _, name := range []string{"iso-8859-1", "ISO-8859-1", "latin1", "Latin-1", "utf-8", "UTF8", "utf-8-sig", "windows-1252"} {
		enc, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q) returned error: %v", name, err)
		}
		if !enc.Valid() {
			t.Fatalf("Lookup(%q) returned unresolved encoding", name)
		}
	}
}

func TestLookupRejectsUnknownNames(t *testing.T) {
	for _, name := range []string{"", "  ", "klingon-8"} {
		if _, err := Lookup(name); !errors.Is(err, ErrUnknownEncoding) {
			t.Fatalf("Lookup(%q) error = %v, want ErrUnknownEncoding", name, err)
		}
	}
}

func TestDecodeLatin1(t *testing.T) {
	enc := MustLookup("iso-8859-1")
	got, err := enc.Decode([]byte{'B', 0xfc, 't', 'o', ';', 0xdf})
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if string(got) != "Büto;ß" {
		t.Fatalf("unexpected decode result %q", got)
	}
}

func TestDecodeRejectsInvalidUTF8(t *testing.T) {
	enc := MustLookup("utf-8")
	_, err := enc.Decode([]byte{'a', 0xff, 'b'})
	if !errors.Is(err, ErrUndecodable) {
		t.Fatalf("Decode error = %v, want ErrUndecodable", err)
	}
}

func TestDecodeRejectsUnmappedSingleByte(t *testing.T) {
	// 0x81 is unassigned in windows-1252.
	enc := MustLookup("windows-1252")
	_, err := enc.Decode([]byte{'a', 0x81})
	if !errors.Is(err, ErrUndecodable) {
		t.Fatalf("Decode error = %v, want ErrUndecodable", err)
	}
}

func TestEncodeUTF8PassesThrough(t *testing.T) {
	enc := MustLookup("utf-8")
	got, err := enc.Encode([]byte("Schüler"))
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if string(got) != "Schüler" {
		t.Fatalf("unexpected encode result %q", got)
	}
}

func TestEncodeLatin1RejectsUnrepresentable(t *testing.T) {
	enc := MustLookup("iso-8859-1")
	_, err := enc.Encode([]byte("Preis 5€"))
	if !errors.Is(err, ErrUnencodable) {
		t.Fatalf("Encode error = %v, want ErrUnencodable", err)
	}
}

func TestEncodeLatin1RoundTrip(t *testing.T) {
	enc := MustLookup("latin1")
	raw, err := enc.Encode([]byte("Rentnerin;Früh"))
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	back, err := enc.Decode(raw)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if string(back) != "Rentnerin;Früh" {
		t.Fatalf("round trip mismatch: %q", back)
	}
}
