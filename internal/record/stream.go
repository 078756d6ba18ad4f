package record

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when Reading changes shape.
const schemaVersion uint16 = 1

const streamMagic = "ufmt/readings"

type header struct {
	Magic  string `msgpack:"magic"`
	Schema uint16 `msgpack:"schema"`
}

// Writer appends readings to a msgpack stream.
type Writer struct {
	enc *msgpack.Encoder
	n   int
}

// NewWriter writes the stream header to w.
func NewWriter(w io.Writer) (*Writer, error) {
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(&header{Magic: streamMagic, Schema: schemaVersion}); err != nil {
		return nil, err
	}
	return &Writer{enc: enc}, nil
}

// Write validates and appends one reading.
func (w *Writer) Write(r Reading) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := w.enc.Encode(&r); err != nil {
		return err
	}
	w.n++
	return nil
}

// Count returns the number of readings written so far.
func (w *Writer) Count() int { return w.n }

// Reader decodes readings written by Writer.
type Reader struct {
	dec *msgpack.Decoder
}

// NewReader consumes and checks the stream header.
func NewReader(r io.Reader) (*Reader, error) {
	dec := msgpack.NewDecoder(r)
	dec.DisallowUnknownFields(true)
	var h header
	if err := dec.Decode(&h); err != nil {
		return nil, fmt.Errorf("%w: reading header: %w", ErrSchema, err)
	}
	if h.Magic != streamMagic || h.Schema != schemaVersion {
		return nil, fmt.Errorf("%w: got %q v%d, want %q v%d", ErrSchema, h.Magic, h.Schema, streamMagic, schemaVersion)
	}
	return &Reader{dec: dec}, nil
}

// Next returns the next reading, or io.EOF after the last one.
func (r *Reader) Next() (Reading, error) {
	var out Reading
	if err := r.dec.Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return Reading{}, io.EOF
		}
		return Reading{}, err
	}
	if err := out.Validate(); err != nil {
		return Reading{}, err
	}
	return out, nil
}

// ReadAll drains the stream.
func (r *Reader) ReadAll() ([]Reading, error) {
	var out []Reading
	for {
		rd, err := r.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rd)
	}
}
