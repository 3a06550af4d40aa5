// Package jsonl parses JSON Lines coordinate data into SparseTensors. This parser
// uses https://github.com/tidwall/gjson to process data, and supports coordinate
// and value locations formatted as gjson paths.
package jsonl
