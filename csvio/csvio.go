package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/tabular/frame"
)

// Sentinel errors for delimited-file ingestion; match with errors.Is.
var (
	// ErrNilReader indicates Read was handed a nil io.Reader.
	ErrNilReader = errors.New("csvio: reader is nil")

	// ErrNoData indicates the input contained no records at all.
	ErrNoData = errors.New("csvio: no records in input")

	// ErrRaggedRow indicates a record whose field count deviates from the
	// first record's; the error is wrapped with the record's line number.
	ErrRaggedRow = errors.New("csvio: record has wrong number of fields")
)

// Options configures delimited-file reading.
//
// Fields:
//   - Comma     — field delimiter (',' by default; use '\t' for TSV).
//   - HasHeader — when true, the first record provides column names;
//     when false, names are generated as V1…Vk.
type Options struct {
	Comma     rune
	HasHeader bool
}

// DefaultOptions returns the canonical configuration:
// comma-delimited, first record is the header.
func DefaultOptions() Options {
	return Options{Comma: ',', HasHeader: true}
}

// Read parses delimited records from r into a typed frame.Table.
//
// Every record must have the same field count (the csv reader enforces
// this and reports the offending line). Column kinds are inferred with
// frame.InferColumn after the whole input is buffered, so a failure never
// yields a partially typed table.
//
// Errors: ErrNilReader, ErrNoData, wrapped csv parse errors, and wrapped
// frame sentinels (ErrMixedColumn, ErrDuplicateColumn, ...).
func Read(r io.Reader, opts *Options) (*frame.Table, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	cr := csv.NewReader(r)
	cr.Comma = o.Comma
	records, err := cr.ReadAll()
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) && errors.Is(pe.Err, csv.ErrFieldCount) {
			return nil, fmt.Errorf("line %d: %w", pe.Line, ErrRaggedRow)
		}

		return nil, fmt.Errorf("csvio: read: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoData
	}

	var names []string
	if o.HasHeader {
		names = records[0]
		records = records[1:]
	} else {
		names = make([]string, len(records[0]))
		for i := range names {
			names[i] = fmt.Sprintf("V%d", i+1)
		}
	}

	// Transpose row-major records into per-column value slices.
	cols := make([]*frame.Column, len(names))
	for j, name := range names {
		raw := make([]string, len(records))
		for i, rec := range records {
			raw[i] = rec[j]
		}
		col, cerr := frame.InferColumn(name, raw)
		if cerr != nil {
			return nil, fmt.Errorf("csvio: %w", cerr)
		}
		cols[j] = col
	}

	t, err := frame.New(cols...)
	if err != nil {
		return nil, fmt.Errorf("csvio: %w", err)
	}

	return t, nil
}

// ReadFile opens path and delegates to Read.
func ReadFile(path string, opts *Options) (*frame.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvio: open: %w", err)
	}
	defer f.Close()

	return Read(f, opts)
}
