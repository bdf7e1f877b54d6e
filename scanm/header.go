package scanm

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/robert-malhotra/go-scanm/internal/logger"
	"github.com/robert-malhotra/go-scanm/internal/param"
	"github.com/robert-malhotra/go-scanm/internal/preheader"
	"github.com/robert-malhotra/go-scanm/internal/rebuild"
	"github.com/robert-malhotra/go-scanm/internal/record"
	"github.com/robert-malhotra/go-scanm/internal/textdec"
)

// File extensions of a ScanM recording.
const (
	HeaderFileExt = "smh"
	PixelFileExt  = "smp"
)

// PreHeaderSize is the length of the binary block before the parameters.
const PreHeaderSize = preheader.Size

// Parameter types, re-exported so callers can inspect and type-switch on
// values without importing internal packages.
type (
	PreHeader    = preheader.PreHeader
	Entry        = param.Entry
	Shape        = param.Shape
	Type         = param.Type
	Value        = param.Value
	Text         = param.Text
	Texts        = param.Texts
	Float64      = param.Float64
	Float64s     = param.Float64s
	UInt32       = param.UInt32
	UInt32s      = param.UInt32s
	UInt64       = param.UInt64
	UInt64s      = param.UInt64s
	UInt64Matrix = param.UInt64Matrix
)

const (
	TypeUnknown = param.TypeUnknown
	TypeText    = param.TypeText
	TypeFloat64 = param.TypeFloat64
	TypeUInt32  = param.TypeUInt32
	TypeUInt64  = param.TypeUInt64
)

// Header is a loaded header file. It is read-only and may be shared
// between goroutines once Load returns.
type Header struct {
	path   string
	pre    *preheader.PreHeader
	params *param.Store
}

// HeaderPath returns the header file path for name. A name without
// extension gets ".smh" appended; a pixel data path (".smp") is mapped to
// its header.
func HeaderPath(name string) string {
	ext := filepath.Ext(name)
	switch strings.ToLower(ext) {
	case "." + HeaderFileExt:
		return name
	case "." + PixelFileExt:
		return strings.TrimSuffix(name, ext) + "." + HeaderFileExt
	default:
		return name + "." + HeaderFileExt
	}
}

// Load reads the header file belonging to name; see HeaderPath.
func Load(name string, opts ...LoadOption) (*Header, error) {
	path := HeaderPath(name)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	return parse(f, fi.Size(), path, opts)
}

// Parse reads a header from r, which holds size bytes.
func Parse(r io.ReaderAt, size int64, opts ...LoadOption) (*Header, error) {
	return parse(r, size, "", opts)
}

// ParseBytes reads a header held in memory.
func ParseBytes(data []byte, opts ...LoadOption) (*Header, error) {
	return parse(bytes.NewReader(data), int64(len(data)), "", opts)
}

func parse(r io.ReaderAt, size int64, path string, opts []LoadOption) (*Header, error) {
	o := defaultLoadOptions()
	for _, opt := range opts {
		opt(o)
	}
	log := logger.With(logger.KeyPath, path)

	log.Debug("loading pre-header")
	pre, err := preheader.Read(r)
	if err != nil {
		return nil, fmt.Errorf("reading pre-header: %w", err)
	}

	log.Debug("loading parameters")
	lines, err := readLines(io.NewSectionReader(r, preheader.Size, size-preheader.Size), o, log)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		log.Error("no parameters found")
		return nil, ErrNoParametersFound
	}
	log.Debug("key-value pairs found", logger.KeyCount, len(lines))

	params := param.NewStore()
	for i, ln := range lines {
		key, e, err := record.ParseLine(ln)
		if err != nil {
			return nil, &LineError{Line: i, Text: ln, Err: err}
		}
		params.Upsert(key, e)
		if o.verbose {
			log.Info("parameter", logger.KeyLine, i, logger.KeyKey, key, logger.KeyType, e.Type.String())
		}
	}

	if err := rebuild.All(params); err != nil {
		return nil, err
	}
	log.Debug("parameters extracted", logger.KeyCount, params.Len())

	return &Header{path: path, pre: pre, params: params}, nil
}

func readLines(r io.Reader, o *loadOptions, log *slog.Logger) ([]string, error) {
	var lines []string
	sc := textdec.NewScanner(r)
	for sc.Scan() {
		if o.verbose {
			log.Info("line", logger.KeyLine, len(lines), "text", sc.Text())
		}
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("decoding parameters: %w", err)
	}
	return lines, nil
}

// Path returns the file path, or "" for headers parsed from memory.
func (h *Header) Path() string {
	return h.path
}

// GUID returns the recording identifier from the pre-header.
func (h *Header) GUID() string {
	return h.pre.GUIDString()
}

// PreHeader returns a copy of the pre-header.
func (h *Header) PreHeader() PreHeader {
	return *h.pre
}

// Len returns the number of parameters, including inert ones with unknown
// type.
func (h *Header) Len() int {
	return h.params.Len()
}

// Keys returns the parameter names in insertion order.
func (h *Header) Keys() []string {
	return h.params.Keys()
}

// All iterates over all parameters in file order.
func (h *Header) All() iter.Seq2[string, *Entry] {
	return h.params.All()
}

// Entry returns the parameter stored under key.
func (h *Header) Entry(key string) (*Entry, error) {
	return h.params.Lookup(key)
}

// Get returns the whole value of key. Parameters without a value report
// ErrNoValue, which also matches ErrKeyNotFound.
func (h *Header) Get(key string) (Value, error) {
	return h.params.Get(key)
}

// GetAt returns element i of key: the scalar itself for i == 0, an element
// of a list, or a row of a matrix.
func (h *Header) GetAt(key string, i int) (Value, error) {
	return h.params.GetAt(key, i)
}
