package preheader

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	binpkg "github.com/robert-malhotra/go-scanm/internal/binary"
)

// Size is the length of the pre-header in bytes.
const Size = 64

// ErrTruncated is returned when the input ends inside the pre-header.
var ErrTruncated = errors.New("truncated pre-header")

// PreHeader is the fixed binary prefix of a header file.
type PreHeader struct {
	// FileTypeID identifies the writer, e.g. "SMH".
	FileTypeID string

	// GUID ties the header to its pixel data file.
	GUID uuid.UUID

	HeaderSizeBytes          uint64
	HeaderLengthInValuePairs uint64
	HeaderStartBytes         uint64
	PixelDataLengthBytes     uint64
	AnalogDataLengthBytes    uint64
}

// Read parses the pre-header at offset 0 of r.
func Read(r io.ReaderAt) (*PreHeader, error) {
	br := binpkg.NewReader(r, binary.LittleEndian)

	ph := &PreHeader{}
	var err error

	if ph.FileTypeID, err = br.ReadFixedString(8); err != nil {
		return nil, wrap("file type id", err)
	}

	raw, err := br.ReadBytes(16)
	if err != nil {
		return nil, wrap("guid", err)
	}
	if ph.GUID, err = uuid.FromBytes(raw); err != nil {
		return nil, fmt.Errorf("guid: %w", err)
	}

	fields := []*uint64{
		&ph.HeaderSizeBytes,
		&ph.HeaderLengthInValuePairs,
		&ph.HeaderStartBytes,
		&ph.PixelDataLengthBytes,
		&ph.AnalogDataLengthBytes,
	}
	for _, f := range fields {
		if *f, err = br.ReadUint64(); err != nil {
			return nil, wrap("size fields", err)
		}
	}

	return ph, nil
}

// GUIDString returns the GUID in canonical 8-4-4-4-12 form.
func (ph *PreHeader) GUIDString() string {
	return ph.GUID.String()
}

func wrap(field string, err error) error {
	if errors.Is(err, binpkg.ErrShortRead) {
		return fmt.Errorf("%w: reading %s", ErrTruncated, field)
	}
	return fmt.Errorf("reading %s: %w", field, err)
}
