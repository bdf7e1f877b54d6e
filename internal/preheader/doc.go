// Package preheader parses the fixed-size binary block at the start of a
// ScanM header (.smh) file.
//
// The pre-header is always [Size] bytes long and little-endian. The text
// parameter section starts immediately after it.
//
// # Layout
//
//	offset  size  field
//	     0     8  FileTypeID (ASCII, NUL padded)
//	     8    16  GUID
//	    24     8  HeaderSizeBytes
//	    32     8  HeaderLengthInValuePairs
//	    40     8  HeaderStartBytes
//	    48     8  PixelDataLengthBytes
//	    56     8  AnalogDataLengthBytes
//
// Only the GUID is needed to pair a header with its pixel data file; the
// other fields are informational and are not cross-checked against the
// text section.
//
// # Usage
//
//	ph, err := preheader.Read(file)
//	if errors.Is(err, preheader.ErrTruncated) {
//	    // file shorter than the pre-header
//	}
//	fmt.Println(ph.GUIDString())
package preheader
