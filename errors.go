package taggedbase64

import (
	"fmt"

	"github.com/pkg/errors"
)

// These are the failure kinds surfaced by this package. Callers that need to
// react to a specific kind should match with errors.Is (for the sentinels) or
// errors.As (for ErrInvalidByte); the message carries the specifics.
var (
	// ErrInvalidTag indicates a tag with a character outside the URL-safe
	// base64 alphabet. It is the only error New and SetTag can return.
	ErrInvalidTag = errors.New("tag contains characters outside the URL-safe base64 alphabet")

	// ErrInvalidLength indicates a string that cannot frame a checksum and
	// payload: the delimiter is missing, the base64 part has a length no
	// unpadded encoding produces, or the decoded frame is empty.
	ErrInvalidLength = errors.New("invalid length for a tagged base64 string")

	// ErrInvalidChecksum indicates that the checksum byte embedded in a
	// parsed string does not match the checksum computed over its tag and
	// payload.
	ErrInvalidChecksum = errors.New("embedded checksum does not match the computed checksum")
)

// ErrInvalidByte indicates a byte the base64 decoder cannot accept: either a
// character outside the URL-safe alphabet or a final symbol carrying
// non-zero trailing bits. Offset is relative to the beginning of the encoded
// part, just after the delimiter.
type ErrInvalidByte struct {
	Offset int
	Byte   byte
}

func (e ErrInvalidByte) Error() string {
	return fmt.Sprintf("invalid base64 byte %q at offset %d", e.Byte, e.Offset)
}
