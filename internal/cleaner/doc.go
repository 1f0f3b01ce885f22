// Package cleaner runs the occupation cleaning pipeline over one survey
// export.
//
// Run reads the input table, locates the occupation column, replaces every
// value with its category, writes the output, and returns counts for the
// report. The run is a single synchronous pass: the first failure aborts it
// and comes back as an *Error whose Kind tells the caller how to report it.
// Nothing is written when reading or column lookup fails.
package cleaner
