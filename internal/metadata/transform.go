package metadata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnparseable marks tool output that is not a single metadata record,
// typically because a directory or a non-media file was given.
var ErrUnparseable = errors.New("unparseable metadata")

type UnparseableError struct {
	Index  int
	Reason string
	Err    error
}

func (e *UnparseableError) Error() string {
	msg := fmt.Sprintf("file %d: %v: %s", e.Index, ErrUnparseable, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UnparseableError) Is(target error) bool {
	return target == ErrUnparseable
}

func (e *UnparseableError) Unwrap() error {
	return e.Err
}

// Transform parses every raw tool output into a record, in input order.
// If any output cannot be parsed no records are returned and the error
// joins one *UnparseableError per failed output.
func Transform(raw []string) ([]Record, error) {
	records := make([]Record, 0, len(raw))
	var errs []error

	for i, out := range raw {
		record, err := Parse(out)
		if err != nil {
			var ue *UnparseableError
			if errors.As(err, &ue) {
				ue.Index = i
			}
			errs = append(errs, err)
			continue
		}
		records = append(records, record)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return records, nil
}

// Parse reads one tool output: a JSON array holding exactly one object.
func Parse(raw string) (Record, error) {
	if strings.TrimSpace(raw) == "" {
		return Record{}, &UnparseableError{Reason: "empty output"}
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	if err := expectDelim(dec, '['); err != nil {
		return Record{}, &UnparseableError{Reason: "expected a JSON array", Err: err}
	}

	var record Record
	objects := 0
	for dec.More() {
		objects++
		if objects > 1 {
			return Record{}, &UnparseableError{Reason: "more than one record in output"}
		}
		r, err := parseRecord(dec)
		if err != nil {
			return Record{}, &UnparseableError{Reason: "malformed record", Err: err}
		}
		record = r
	}
	if err := expectDelim(dec, ']'); err != nil {
		return Record{}, &UnparseableError{Reason: "unterminated array", Err: err}
	}
	if objects == 0 {
		return Record{}, &UnparseableError{Reason: "no record in output"}
	}
	if _, err := dec.Token(); err != io.EOF {
		return Record{}, &UnparseableError{Reason: "trailing data after array"}
	}

	return record, nil
}

func parseRecord(dec *json.Decoder) (Record, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return Record{}, err
	}

	var record Record
	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return Record{}, err
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return Record{}, fmt.Errorf("value of %q: %w", key, err)
		}

		switch key {
		case KeySourceFile:
			var source string
			if err := json.Unmarshal(raw, &source); err == nil {
				record.SourceFile = source
			}
		case KeyExifTool:
		default:
			pairs, err := parseCategory(raw)
			if err != nil {
				return Record{}, fmt.Errorf("category %q: %w", key, err)
			}
			record.Categories = append(record.Categories, Category{Name: key, Pairs: pairs})
		}
	}

	if err := expectDelim(dec, '}'); err != nil {
		return Record{}, err
	}
	return record, nil
}

// entry is one tag in -long output.
type entry struct {
	Desc string          `json:"desc"`
	Val  json.RawMessage `json:"val"`
}

func parseCategory(raw json.RawMessage) ([]Pair, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		// a scalar at the top level has no nested entries
		return []Pair{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	pairs := []Pair{}
	for dec.More() {
		tag, err := readKey(dec)
		if err != nil {
			return nil, err
		}
		var item json.RawMessage
		if err := dec.Decode(&item); err != nil {
			return nil, fmt.Errorf("tag %q: %w", tag, err)
		}

		pair, ok, err := parsePair(tag, item)
		if err != nil {
			return nil, fmt.Errorf("tag %q: %w", tag, err)
		}
		if ok {
			pairs = append(pairs, pair)
		}
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return pairs, nil
}

// parsePair reports ok=false for entries without a usable value; those are
// dropped rather than shown with a placeholder.
func parsePair(tag string, item json.RawMessage) (Pair, bool, error) {
	label := tag
	valueRaw := item

	if trimmed := bytes.TrimSpace(item); len(trimmed) > 0 && trimmed[0] == '{' {
		var e entry
		if err := json.Unmarshal(trimmed, &e); err != nil {
			return Pair{}, false, err
		}
		if e.Desc != "" {
			label = e.Desc
		}
		valueRaw = e.Val
	}

	value, err := decodeValue(valueRaw)
	if err != nil {
		return Pair{}, false, err
	}
	if isEmpty(value) {
		return Pair{}, false, nil
	}
	return Pair{Label: label, Value: NewValue(value)}, true, nil
}

func decodeValue(raw json.RawMessage) (interface{}, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func isEmpty(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	}
	return false
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return key, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
