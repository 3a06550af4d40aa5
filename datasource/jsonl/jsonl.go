package jsonl

import (
	"bufio"
	"fmt"
	"io"
	"log"

	"github.com/tidwall/gjson"

	errors "github.com/go-spt/spt/errors"
	"github.com/go-spt/spt/tensor"
)

// ParserConf configures a JSONL Parser, suitable for JSON lines coordinate data
type ParserConf struct {
	IndexPaths    []string // gjson paths to each mode's coordinate. Defaults to "inds.0", "inds.1", ...
	ValuePath     string   // gjson path to the nonzero value. Defaults to "value".
	HeaderLines   int      // The number of lines to ignore from the beginning of the stream. Defaults to 0.
	MaxBufferSize int      // Maximum size in bytes of the buffer used to read lines from the stream
}

// Parser produces SparseTensors from JSONL data, one record per stored nonzero
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser. Coordinates and values are extracted
// from each record using gjson paths. Fields within the JSON which do not
// correspond to a configured path are ignored.
func CreateParser(conf *ParserConf) *Parser {
	if conf.ValuePath == "" {
		conf.ValuePath = "value"
	}
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Parse parses JSONL data to produce a SparseTensor with the given mode extents.
// The result is unsorted; call Sort before starting a chunk enumeration over it.
func (p *Parser) Parse(r io.Reader, dims []uint64) (*tensor.SparseTensor, error) {
	indexPaths := p.conf.IndexPaths
	if indexPaths == nil {
		indexPaths = make([]string, len(dims))
		for m := range indexPaths {
			indexPaths[m] = fmt.Sprintf("inds.%d", m)
		}
	}
	if len(indexPaths) != len(dims) {
		return nil, errors.ModeCountError{Expected: len(dims), Actual: len(indexPaths)}
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)
	for i := 0; i < p.conf.HeaderLines; i++ {
		scanner.Scan()
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}
	t := tensor.New(dims)
	coords := make([]uint64, len(dims))
	for scanner.Scan() {
		rowString := scanner.Text()
		record := gjson.Parse(rowString)
		if err := parseRecord(indexPaths, p.conf.ValuePath, record, coords); err != nil {
			log.Printf("Unable to parse line:\n\t%s", rowString)
			return nil, err
		}
		if err := t.Append(coords, record.Get(p.conf.ValuePath).Float()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// parseRecord extracts one nonzero's coordinates from a parsed JSON record
func parseRecord(indexPaths []string, valuePath string, record gjson.Result, coords []uint64) error {
	for m, path := range indexPaths {
		field := record.Get(path)
		if !field.Exists() {
			return errors.MissingFieldError{Path: path}
		}
		coords[m] = field.Uint()
	}
	if !record.Get(valuePath).Exists() {
		return errors.MissingFieldError{Path: valuePath}
	}
	return nil
}
