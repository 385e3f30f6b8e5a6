// Package parser decodes the labyrinth text format into maze.Grid values.
//
// Format:
//
//	L R C            header: three integers, the first one non-zero
//	<R rows of C>    layer 0
//	<blank line>
//	...              L layers in total
//	0 0 0            terminator
//
// A line is a header only when its first character is a digit 1–9; header
// fields are plain decimal numbers. Blank lines and any other non-header
// lines between records are skipped (WithStrictRecords rejects the latter),
// and trailing whitespace is stripped from every line. Rows shorter than C are padded with rock unless WithStrictRows
// is given. Parsing stops at "0 0 0" or at end of input.
//
// Every structural problem is reported as a *MalformedInputError carrying the
// 1-based line number; it matches ErrMalformedInput with errors.Is.
package parser
