package preheader

import "encoding/binary"

// Encode serializes ph into its Size-byte on-disk form.
// FileTypeID is truncated to 8 bytes.
func Encode(ph *PreHeader) []byte {
	buf := make([]byte, Size)
	copy(buf[0:8], ph.FileTypeID)
	copy(buf[8:24], ph.GUID[:])

	le := binary.LittleEndian
	le.PutUint64(buf[24:], ph.HeaderSizeBytes)
	le.PutUint64(buf[32:], ph.HeaderLengthInValuePairs)
	le.PutUint64(buf[40:], ph.HeaderStartBytes)
	le.PutUint64(buf[48:], ph.PixelDataLengthBytes)
	le.PutUint64(buf[56:], ph.AnalogDataLengthBytes)
	return buf
}
