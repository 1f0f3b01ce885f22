// Package occupation maps free-text occupation answers from the stress scale
// survey onto a closed set of categories.
//
// Classification is driven by data: Rules hold the sentinel answers that mean
// "no answer" and an ordered list of keyword groups. The first group with a
// keyword contained in the folded answer decides the category; answers that
// match nothing fall back to Other. DefaultRules carries the curated keyword
// lists for column DE07_01, including the misspellings found in real answers.
package occupation
