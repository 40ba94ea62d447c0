package main

import (
	"encoding/hex"
	"fmt"

	"github.com/kaspanet/go-taggedbase64"
)

func inspect(cfg *inspectConfig) error {
	input, err := readTaggedString(cfg.Args.TaggedString, cfg.File)
	if err != nil {
		return err
	}

	tb, err := taggedbase64.Parse(input)
	if err != nil {
		return err
	}

	fmt.Printf("Tag:      %s\n", tb.Tag())
	fmt.Printf("Length:   %d bytes\n", len(tb.Value()))
	fmt.Printf("Checksum: 0x%02x\n", tb.Checksum())
	fmt.Printf("Payload:  %s\n", hex.EncodeToString(tb.Value()))
	return nil
}
