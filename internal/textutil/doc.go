// Package textutil provides text normalization helpers used for keyword
// matching.
//
// Fold brings free text into a canonical form (NFC composed, Unicode lower
// case) so substring tests behave the same regardless of how the input was
// typed or which encoding it was decoded from.
package textutil
