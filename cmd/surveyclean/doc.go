// Package main hosts the surveyclean CLI.
//
// Invoked without a subcommand it runs the occupation cleaning pass with the
// configured (or default) files and prints a German summary. Subcommands
// cover reviewing the classifier on ad-hoc text and scaffolding or
// validating configuration files.
//
// Keep this package lean: pipeline behaviour belongs in internal/cleaner and
// the packages below it; this package only wires configuration, logging and
// console output.
package main
