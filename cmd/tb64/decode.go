package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/kaspanet/go-taggedbase64"
)

func decode(cfg *decodeConfig) error {
	input, err := readTaggedString(cfg.Args.TaggedString, cfg.File)
	if err != nil {
		return err
	}

	tb, err := taggedbase64.Parse(input)
	if err != nil {
		return err
	}
	log.Debugf("Parsed tag %q with a %d byte payload", tb.Tag(), len(tb.Value()))

	if cfg.ExpectTag != "" && tb.Tag() != cfg.ExpectTag {
		return errors.Errorf("tag is %q, expected %q", tb.Tag(), cfg.ExpectTag)
	}

	switch cfg.Format {
	case "raw":
		_, err = os.Stdout.Write(tb.Value())
		return errors.Wrap(err, "writing payload")
	case "hex":
		fmt.Printf("%x\n", tb.Value())
	case "text":
		fmt.Println(string(tb.Value()))
	}
	return nil
}

// readTaggedString takes the input string either from the positional argument
// or from --file. Surrounding whitespace is trimmed on the file path, since
// neither the tag nor the encoded part may contain any.
func readTaggedString(positional, file string) (string, error) {
	if positional != "" && file != "" {
		return "", errors.New("specify either a tagged-string argument or --file, not both")
	}
	if file != "" {
		data, err := readFileOrStdin(file)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(data)), nil
	}
	if positional == "" {
		return "", errors.New("a tagged-string argument or --file is required")
	}
	return positional, nil
}
