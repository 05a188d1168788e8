// Package collate compares UTF-8 byte sequences according to the
// Unicode Collation Algorithm, augmented by the CLDR root collation
// order and two shipped locale tailorings. It is a pure comparison
// library: no I/O, no global state beyond the lazily-built weight
// tables in internal/weighttab, and no input mutation.
package collate
