// SPDX-License-Identifier: MIT

// Package matrixio reads and writes matrices in the plain text format used by
// the command-line tools.
//
// Input: one row per line. Tokens are separated by any run of ',', ' ',
// '\t' or '\r'. Lines holding no tokens are skipped. The first row fixes the
// column count; every later row must match it. Every token must parse as a
// finite float64.
//
// Output: one row per line, each entry formatted with exactly four decimals
// ("%.4f"), entries separated by a single ',', no trailing separator, every
// line newline-terminated.
package matrixio
