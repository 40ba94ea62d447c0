package taggedbase64

import (
	"encoding/base64"
	"strings"

	"github.com/pkg/errors"

	"github.com/kaspanet/go-taggedbase64/crc8"
)

// Delimiter separates the tag from the encoded frame. It is the only
// printable, URL-safe character outside the base64 alphabet that requires no
// percent-encoding anywhere in a URL, which is what lets a tagged string
// travel through URLs unscathed.
const Delimiter = '~'

// encoding is unpadded URL-safe base64 in strict mode, so that trailing bits
// the encoder could never produce are rejected rather than silently dropped.
var encoding = base64.RawURLEncoding.Strict()

// IsSafeBase64Tag reports whether tag consists entirely of characters from
// the URL-safe base64 alphabet. The empty tag is safe.
func IsSafeBase64Tag(tag string) bool {
	for i := 0; i < len(tag); i++ {
		if !isSafeBase64Byte(tag[i]) {
			return false
		}
	}
	return true
}

func isSafeBase64Byte(b byte) bool {
	return b >= 'A' && b <= 'Z' ||
		b >= 'a' && b <= 'z' ||
		b >= '0' && b <= '9' ||
		b == '-' || b == '_'
}

// CalcChecksum computes the checksum byte for the given tag and value. The
// tag bytes and the value bytes feed one running CRC-8 register in that
// order, so the checksum binds the payload to its tag: reattaching a payload
// under a different tag is detected just like payload corruption.
func CalcChecksum(tag string, value []byte) byte {
	digest := crc8.New()
	_, _ = digest.Write([]byte(tag))
	_, _ = digest.Write(value)
	return digest.Sum8()
}

// Encode builds the tagged base64 string for the given tag and value. It
// fails only when the tag contains a character outside the URL-safe base64
// alphabet.
func Encode(tag string, value []byte) (string, error) {
	tb, err := New(tag, value)
	if err != nil {
		return "", err
	}
	return tb.String(), nil
}

// Decode parses s and returns its tag and payload. It fails with the same
// errors as Parse.
func Decode(s string) (tag string, value []byte, err error) {
	tb, err := Parse(s)
	if err != nil {
		return "", nil, err
	}
	return tb.Tag(), tb.Value(), nil
}

// Parse decodes a tagged base64 string into a TaggedBase64. The string must
// carry a '~' delimiter, a tag drawn from the URL-safe base64 alphabet, and
// an unpadded URL-safe base64 frame whose first decoded byte is the checksum
// of the remaining payload under that tag. Parse never returns a partially
// decoded value: on any failure the result is nil and the error is one of
// ErrInvalidTag, ErrInvalidByte, ErrInvalidLength, or ErrInvalidChecksum.
func Parse(s string) (*TaggedBase64, error) {
	delimiterIndex := strings.IndexByte(s, Delimiter)
	if delimiterIndex < 0 {
		return nil, errors.Wrapf(ErrInvalidLength, "missing %q delimiter in %q",
			Delimiter, s)
	}

	tag := s[:delimiterIndex]
	if !IsSafeBase64Tag(tag) {
		return nil, errors.Wrapf(ErrInvalidTag, "tag %q", tag)
	}

	frame, err := decodeFrame(s[delimiterIndex+1:])
	if err != nil {
		return nil, err
	}
	if len(frame) < crc8.Size {
		return nil, errors.Wrap(ErrInvalidLength, "frame is missing its checksum byte")
	}

	checksum := frame[0]
	value := frame[crc8.Size:]
	if expected := CalcChecksum(tag, value); checksum != expected {
		return nil, errors.Wrapf(ErrInvalidChecksum,
			"embedded checksum 0x%02x, computed checksum 0x%02x", checksum, expected)
	}

	return &TaggedBase64{
		tag:      tag,
		value:    value,
		checksum: checksum,
	}, nil
}

// MustParse is like Parse but panics on failure. It simplifies initializing
// package-level variables from strings known to be well formed.
func MustParse(s string) *TaggedBase64 {
	tb, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return tb
}

// encodeFrame serializes the checksum byte followed by the payload as
// unpadded URL-safe base64.
func encodeFrame(checksum byte, value []byte) string {
	frame := make([]byte, 0, crc8.Size+len(value))
	frame = append(frame, checksum)
	frame = append(frame, value...)
	return encoding.EncodeToString(frame)
}

// decodeFrame decodes the part of a tagged base64 string after the
// delimiter. Go's base64 decoder skips newlines and reports error offsets in
// input coordinates, so out-of-alphabet bytes are scanned for up front; that
// both pins the exact offending offset and keeps embedded line breaks from
// being silently accepted.
func decodeFrame(encoded string) ([]byte, error) {
	for i := 0; i < len(encoded); i++ {
		if !isSafeBase64Byte(encoded[i]) {
			return nil, errors.WithStack(ErrInvalidByte{Offset: i, Byte: encoded[i]})
		}
	}

	frame, err := encoding.DecodeString(encoded)
	if err != nil {
		if _, ok := err.(base64.CorruptInputError); ok {
			// Every byte passed the alphabet scan, so the decoder can only
			// object to a length no unpadded encoding produces or to the
			// final symbol carrying non-zero trailing bits. The decoder's
			// own offset points at the start of the failing quantum, not at
			// the offending symbol, so it is not reported.
			if len(encoded)%4 == 1 {
				return nil, errors.Wrapf(ErrInvalidLength,
					"%d is not a valid length for unpadded base64", len(encoded))
			}
			last := len(encoded) - 1
			return nil, errors.WithStack(ErrInvalidByte{Offset: last, Byte: encoded[last]})
		}
		return nil, errors.WithStack(err)
	}
	return frame, nil
}
