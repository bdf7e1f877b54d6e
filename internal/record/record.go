// Package record splits decoded header lines into typed parameters and
// writes parameters back into the line grammar
//
//	TYPE#KEY=V1,V2,...
//
// where a text value may hold several sub-entries separated by '|'.
package record

import (
	"errors"
	"fmt"
	"strings"
)

// Separators of the line grammar.
const (
	TypeKeySep  = "#"
	KeyValueSep = "="
	EntrySep    = ","
	SubEntrySep = "|"
)

// Type tags.
const (
	TagString = "string"
	TagReal32 = "real32"
	TagUInt32 = "uint32"
	TagUInt64 = "uint64"
)

// Errors
var (
	ErrMalformedRecord   = errors.New("malformed record")
	ErrUnparseableNumber = errors.New("unparseable number")
)

// Record is a tokenized line.
type Record struct {
	Tag    string
	Key    string
	Values []string
}

// Tokenize splits line at the first type/key separator and the first
// key/value separator, then splits the value part into entries. Tokens are
// trimmed and empty entries dropped.
func Tokenize(line string) (Record, error) {
	tag, rest, ok := strings.Cut(line, TypeKeySep)
	if !ok {
		return Record{}, fmt.Errorf("%w: missing %q in %q", ErrMalformedRecord, TypeKeySep, line)
	}
	key, value, ok := strings.Cut(rest, KeyValueSep)
	if !ok {
		return Record{}, fmt.Errorf("%w: missing %q in %q", ErrMalformedRecord, KeyValueSep, line)
	}

	rec := Record{
		Tag: strings.TrimSpace(tag),
		Key: strings.TrimSpace(key),
	}
	if rec.Key == "" {
		return Record{}, fmt.Errorf("%w: empty key in %q", ErrMalformedRecord, line)
	}

	for _, v := range strings.Split(value, EntrySep) {
		if v = strings.TrimSpace(v); v != "" {
			rec.Values = append(rec.Values, v)
		}
	}
	return rec, nil
}

// First returns the first value, or "" if there is none.
func (r Record) First() string {
	if len(r.Values) == 0 {
		return ""
	}
	return r.Values[0]
}

// String renders the record in the line grammar.
func (r Record) String() string {
	return r.Tag + TypeKeySep + r.Key + KeyValueSep + strings.Join(r.Values, EntrySep)
}
