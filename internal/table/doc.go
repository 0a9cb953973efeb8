// Package table reads and writes delimited text with a header row.
//
// The first row of the input names the columns. Every following row is a Record whose values are
// looked up by column name. Records are read lazily, one at a time, so memory use does not grow
// with the size of the input.
package table
