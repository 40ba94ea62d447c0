package taggedbase64

import (
	"bytes"

	"github.com/pkg/errors"
)

// TaggedBase64 is a binary payload paired with a mnemonic tag and the
// checksum byte derived from both. Instances are built either from a tag and
// payload via New, with the checksum computed, or from a string via Parse,
// with the checksum verified. The checksum is cached and kept consistent by
// the mutators, so an invalid combination of fields cannot exist.
type TaggedBase64 struct {
	tag      string
	value    []byte
	checksum byte
}

// New constructs a TaggedBase64 from a tag and an array of bytes. The tag
// must be URL-safe (alphanumeric with hyphen and underscore); the byte
// values are unconstrained. The checksum is always derived, never supplied,
// so ErrInvalidTag is the only possible failure.
func New(tag string, value []byte) (*TaggedBase64, error) {
	if !IsSafeBase64Tag(tag) {
		return nil, errors.Wrapf(ErrInvalidTag, "tag %q", tag)
	}
	valueClone := make([]byte, len(value))
	copy(valueClone, value)
	return &TaggedBase64{
		tag:      tag,
		value:    valueClone,
		checksum: CalcChecksum(tag, valueClone),
	}, nil
}

// Tag returns the mnemonic tag.
func (tb *TaggedBase64) Tag() string {
	return tb.tag
}

// Value returns the payload bytes. The bytes are cloned, so it is safe to
// modify the resulting slice.
func (tb *TaggedBase64) Value() []byte {
	valueClone := make([]byte, len(tb.value))
	copy(valueClone, tb.value)
	return valueClone
}

// Checksum returns the checksum byte for the current tag and payload.
func (tb *TaggedBase64) Checksum() byte {
	return tb.checksum
}

// SetTag replaces the tag and recomputes the checksum. An invalid tag is
// rejected without mutating the receiver.
func (tb *TaggedBase64) SetTag(tag string) error {
	if !IsSafeBase64Tag(tag) {
		return errors.Wrapf(ErrInvalidTag, "tag %q", tag)
	}
	tb.tag = tag
	tb.checksum = CalcChecksum(tb.tag, tb.value)
	return nil
}

// SetValue replaces the payload bytes and recomputes the checksum. The bytes
// are cloned, so the caller may keep modifying the passed slice.
func (tb *TaggedBase64) SetValue(value []byte) {
	valueClone := make([]byte, len(value))
	copy(valueClone, value)
	tb.value = valueClone
	tb.checksum = CalcChecksum(tb.tag, tb.value)
}

// Equal returns whether tb equals to other. Two values are equal when their
// tags and payloads match; the checksum is derived from those, so it matches
// whenever they do.
func (tb *TaggedBase64) Equal(other *TaggedBase64) bool {
	if tb == nil || other == nil {
		return tb == other
	}
	return tb.tag == other.tag && bytes.Equal(tb.value, other.value)
}

// String returns the canonical textual form: the tag, the delimiter, and the
// URL-safe base64 encoding of the checksum byte followed by the payload.
// It is total - every TaggedBase64 has a string form.
func (tb *TaggedBase64) String() string {
	return tb.tag + string(Delimiter) + encodeFrame(tb.checksum, tb.value)
}
