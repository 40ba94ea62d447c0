package taggedbase64_test

import (
	"fmt"

	"github.com/kaspanet/go-taggedbase64"
)

// This example demonstrates how to encode a binary value under a mnemonic
// tag.
func ExampleEncode() {
	encoded, err := taggedbase64.Encode("TX", []byte("foobar"))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("Encoded:", encoded)

	// Output:
	// Encoded: TX~0WZvb2Jhcg
}

// This example demonstrates how to decode a tagged base64 string back into
// its tag and payload. The checksum embedded in the string is verified
// during decoding.
func ExampleDecode() {
	tag, value, err := taggedbase64.Decode("LA~5zMxNDE1")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("Tag:", tag)
	fmt.Println("Payload:", string(value))

	// Output:
	// Tag: LA
	// Payload: 31415
}

// This example demonstrates parsing into a TaggedBase64 value and reading
// its parts, the way a wallet would render a received address.
func ExampleParse() {
	tb, err := taggedbase64.Parse("ADDR~2d6tvu8")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Tag: %s\n", tb.Tag())
	fmt.Printf("Payload: %x\n", tb.Value())
	fmt.Printf("Checksum: 0x%02x\n", tb.Checksum())

	// Output:
	// Tag: ADDR
	// Payload: deadbeef
	// Checksum: 0xd9
}

// This example demonstrates that corruption is caught at parse time rather
// than handed to the caller as a wrong payload.
func ExampleParse_corrupted() {
	// The second character of TX~0WZvb2Jhcg was mistyped.
	_, err := taggedbase64.Parse("TX~0XZvb2Jhcg")
	fmt.Println(err)

	// Output:
	// embedded checksum 0xd1, computed checksum 0x4f: embedded checksum does not match the computed checksum
}

// This example demonstrates how mutating a value keeps its checksum, and
// therefore its string form, consistent.
func ExampleTaggedBase64_SetValue() {
	tb, err := taggedbase64.New("TX", []byte("foobar"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Before:", tb)

	tb.SetValue([]byte("31415"))
	fmt.Println("After:", tb)

	// Output:
	// Before: TX~0WZvb2Jhcg
	// After: TX~JjMxNDE1
}
