package record

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/robert-malhotra/go-scanm/internal/param"
)

// nanToken marks an unavailable unsigned integer.
const nanToken = "nan"

// Parse converts a record into a parameter entry. Only the first value is
// interpreted; multi-part text uses sub-entries instead.
func Parse(rec Record) (*param.Entry, error) {
	v := rec.First()

	switch rec.Tag {
	case TagString:
		parts := strings.Split(v, SubEntrySep)
		if len(parts) == 1 {
			return param.NewScalar(param.TypeText, param.Text(v)), nil
		}
		return &param.Entry{
			Type:  param.TypeText,
			Shape: param.Shape{len(parts)},
			Value: param.Texts(parts),
		}, nil

	case TagReal32:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) {
			return nil, fmt.Errorf("%w: %s %q = %q", ErrUnparseableNumber, rec.Tag, rec.Key, v)
		}
		return param.NewScalar(param.TypeFloat64, param.Float64(f)), nil

	case TagUInt32, TagUInt64:
		typ, bits := param.TypeUInt32, 32
		if rec.Tag == TagUInt64 {
			typ, bits = param.TypeUInt64, 64
		}
		if strings.EqualFold(v, nanToken) {
			return param.NewScalar(typ, nil), nil
		}

		u, err := strconv.ParseUint(v, 10, bits)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q = %q", ErrUnparseableNumber, rec.Tag, rec.Key, v)
		}
		if typ == param.TypeUInt32 {
			return param.NewScalar(typ, param.UInt32(u)), nil
		}
		return param.NewScalar(typ, param.UInt64(u)), nil

	default:
		return param.NewScalar(param.TypeUnknown, nil), nil
	}
}

// ParseLine tokenizes and parses one decoded line.
func ParseLine(line string) (string, *param.Entry, error) {
	rec, err := Tokenize(line)
	if err != nil {
		return "", nil, err
	}
	e, err := Parse(rec)
	if err != nil {
		return "", nil, err
	}
	return rec.Key, e, nil
}

// Format renders a scalar or text-list entry as a line. Derived sequences
// and matrices have no line form.
func Format(key string, e *param.Entry) (string, error) {
	rec := Record{Key: key}

	switch e.Type {
	case param.TypeText:
		switch v := e.Value.(type) {
		case param.Text:
			rec.Values = []string{string(v)}
		case param.Texts:
			rec.Values = []string{strings.Join(v, SubEntrySep)}
		default:
			return "", fmt.Errorf("%q: %w: no line form for %T", key, param.ErrTypeMismatch, e.Value)
		}
		rec.Tag = TagString

	case param.TypeFloat64:
		f, err := param.AsFloat64(e.Value)
		if err != nil {
			return "", fmt.Errorf("%q: %w", key, err)
		}
		rec.Tag = TagReal32
		rec.Values = []string{strconv.FormatFloat(f, 'g', -1, 64)}

	case param.TypeUInt32, param.TypeUInt64:
		rec.Tag = TagUInt32
		if e.Type == param.TypeUInt64 {
			rec.Tag = TagUInt64
		}
		if e.Value == nil {
			rec.Values = []string{nanToken}
			break
		}
		u, err := param.AsUnsigned(e.Value)
		if err != nil {
			return "", fmt.Errorf("%q: %w", key, err)
		}
		rec.Values = []string{strconv.FormatUint(u, 10)}

	default:
		return "", fmt.Errorf("%q: %w: unknown type has no line form", key, param.ErrTypeMismatch)
	}

	return rec.String(), nil
}
