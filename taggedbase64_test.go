package taggedbase64

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

func TestNew(t *testing.T) {
	value := []byte("foobar")
	tb, err := New("TX", value)
	if err != nil {
		t.Fatalf("TestNew: unexpected error: %v", err)
	}
	if tb.Tag() != "TX" {
		t.Errorf("TestNew: tag is %q, want %q", tb.Tag(), "TX")
	}
	if !bytes.Equal(tb.Value(), value) {
		t.Errorf("TestNew: value is %x, want %x", tb.Value(), value)
	}
	if tb.Checksum() != 0xd1 {
		t.Errorf("TestNew: checksum is 0x%02x, want 0xd1", tb.Checksum())
	}

	// The payload is cloned on construction, so mutating the caller's slice
	// afterwards must not desynchronize the cached checksum.
	value[0] = 'F'
	if !bytes.Equal(tb.Value(), []byte("foobar")) {
		t.Errorf("TestNew: value changed through the caller's slice: %x", tb.Value())
	}

	invalidTags := []string{"bad tag", "TX~", "a+b", "a/b", "日本"}
	for _, tag := range invalidTags {
		tb, err := New(tag, []byte("foobar"))
		if !errors.Is(err, ErrInvalidTag) {
			t.Errorf("TestNew: tag %q: got %v, want ErrInvalidTag", tag, err)
		}
		if tb != nil {
			t.Errorf("TestNew: tag %q: got a value despite the error", tag)
		}
	}
}

func TestValueCloning(t *testing.T) {
	tb, err := New("TX", []byte("foobar"))
	if err != nil {
		t.Fatalf("TestValueCloning: unexpected error: %v", err)
	}

	// Mutating the slice returned by Value must not reach the instance.
	leaked := tb.Value()
	leaked[0] = 'F'
	if !bytes.Equal(tb.Value(), []byte("foobar")) {
		t.Errorf("TestValueCloning: value changed through the returned slice: %x", tb.Value())
	}

	// Same for the slice passed to SetValue.
	replacement := []byte("31415")
	tb.SetValue(replacement)
	replacement[0] = '9'
	if !bytes.Equal(tb.Value(), []byte("31415")) {
		t.Errorf("TestValueCloning: value changed through the SetValue slice: %x", tb.Value())
	}
}

func TestSetTag(t *testing.T) {
	tb, err := New("TX", []byte("foobar"))
	if err != nil {
		t.Fatalf("TestSetTag: unexpected error: %v", err)
	}

	// Rejected tags must leave the instance untouched, checksum included.
	err = tb.SetTag("not a tag")
	if !errors.Is(err, ErrInvalidTag) {
		t.Errorf("TestSetTag: invalid tag: got %v, want ErrInvalidTag", err)
	}
	if tb.Tag() != "TX" || tb.Checksum() != 0xd1 {
		t.Errorf("TestSetTag: rejected tag mutated the instance: tag %q, checksum 0x%02x",
			tb.Tag(), tb.Checksum())
	}
	if got, want := tb.String(), "TX~0WZvb2Jhcg"; got != want {
		t.Errorf("TestSetTag: rejected tag changed the string form: got %q, want %q", got, want)
	}

	// An accepted tag recomputes the checksum, so the string form matches a
	// freshly constructed instance.
	err = tb.SetTag("LA")
	if err != nil {
		t.Fatalf("TestSetTag: unexpected error: %v", err)
	}
	if tb.Checksum() != 0x98 {
		t.Errorf("TestSetTag: checksum is 0x%02x, want 0x98", tb.Checksum())
	}
	if got, want := tb.String(), "LA~mGZvb2Jhcg"; got != want {
		t.Errorf("TestSetTag: got %q, want %q", got, want)
	}

	fresh, err := New("LA", []byte("foobar"))
	if err != nil {
		t.Fatalf("TestSetTag: unexpected error: %v", err)
	}
	if !tb.Equal(fresh) {
		t.Error("TestSetTag: mutated instance differs from a freshly constructed one")
	}
}

func TestSetValue(t *testing.T) {
	tb, err := New("TX", []byte("foobar"))
	if err != nil {
		t.Fatalf("TestSetValue: unexpected error: %v", err)
	}

	tb.SetValue([]byte("31415"))
	if tb.Checksum() != 0x26 {
		t.Errorf("TestSetValue: checksum is 0x%02x, want 0x26", tb.Checksum())
	}
	if got, want := tb.String(), "TX~JjMxNDE1"; got != want {
		t.Errorf("TestSetValue: got %q, want %q", got, want)
	}

	// Shrinking to an empty payload is legal and keeps the checksum
	// consistent.
	tb.SetValue(nil)
	if got, want := tb.String(), "TX~1w"; got != want {
		t.Errorf("TestSetValue: empty payload: got %q, want %q", got, want)
	}
	if parsed, err := Parse(tb.String()); err != nil || !parsed.Equal(tb) {
		t.Errorf("TestSetValue: mutated instance does not round-trip: %v", err)
	}
}

func TestEqual(t *testing.T) {
	txFoobar, _ := New("TX", []byte("foobar"))
	txFoobar2, _ := New("TX", []byte("foobar"))
	laFoobar, _ := New("LA", []byte("foobar"))
	tx31415, _ := New("TX", []byte("31415"))
	emptyEmpty, _ := New("", nil)

	tests := []struct {
		name   string
		first  *TaggedBase64
		second *TaggedBase64
		want   bool
	}{
		{"both nil", nil, nil, true},
		{"first nil", nil, txFoobar, false},
		{"second nil", txFoobar, nil, false},
		{"same instance", txFoobar, txFoobar, true},
		{"equal fields", txFoobar, txFoobar2, true},
		{"different tag", txFoobar, laFoobar, false},
		{"different value", txFoobar, tx31415, false},
		{"empty vs full", emptyEmpty, txFoobar, false},
		{"empty vs empty", emptyEmpty, emptyEmpty, true},
	}

	for _, test := range tests {
		if got := test.first.Equal(test.second); got != test.want {
			t.Errorf("TestEqual: %s: got %t, want %t", test.name, got, test.want)
		}
	}
}
