// Package sink serializes depth-of-field tables.
//
// Each output format is a [Writer]. [New] looks one up by name:
//
//   - csv: header row followed by one comma-separated line per row
//   - json: an array of row objects; an infinite far limit is null
//   - table: a bordered, human-readable table for terminals
//
// [WriteFile] writes a complete table atomically: the output lands in a
// temporary file next to the destination and is renamed into place only
// after every row has been written.
package sink
