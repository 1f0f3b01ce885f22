// Package config loads, normalizes, and validates surveyclean configuration.
//
// It supplies defaults that reproduce the fixed behaviour of the cleaning run
// (input export, ISO-8859-1 in, UTF-8 out, column DE07_01), reads optional
// TOML files, and checks that encodings and delimiters are usable before any
// file is touched.
//
// Always obtain settings through this package so the pipeline receives
// expanded paths and canonical encoding names.
package config
