package taggedbase64

// MarshalText implements encoding.TextMarshaler. The output is the same
// tagged base64 string String returns, so a TaggedBase64 embeds naturally in
// JSON, YAML, and any other text-based format.
func (tb *TaggedBase64) MarshalText() ([]byte, error) {
	return []byte(tb.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It fails with the same
// errors as Parse and leaves tb unchanged on failure.
func (tb *TaggedBase64) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*tb = *parsed
	return nil
}
