package main

import (
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/kaspanet/go-taggedbase64"
)

func encode(cfg *encodeConfig) error {
	value, err := readPayload(cfg)
	if err != nil {
		return err
	}

	encoded, err := taggedbase64.Encode(cfg.Tag, value)
	if err != nil {
		return err
	}

	fmt.Println(encoded)
	return nil
}

// readPayload resolves the payload from whichever source flag is set. With no
// source flag at all the payload is empty, which is a legal value.
func readPayload(cfg *encodeConfig) ([]byte, error) {
	sources := 0
	for _, source := range []string{cfg.Hex, cfg.Text, cfg.File} {
		if source != "" {
			sources++
		}
	}
	if sources > 1 {
		return nil, errors.New("at most one of --hex, --text and --file may be specified")
	}

	switch {
	case cfg.Hex != "":
		value, err := hex.DecodeString(cfg.Hex)
		if err != nil {
			return nil, errors.Wrapf(err, "--hex payload %q", cfg.Hex)
		}
		return value, nil
	case cfg.Text != "":
		return []byte(cfg.Text), nil
	case cfg.File != "":
		return readFileOrStdin(cfg.File)
	}
	return nil, nil
}

func readFileOrStdin(path string) ([]byte, error) {
	if path == "-" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			log.Warnf("Reading from an interactive terminal; end the input with ^D")
		}
		data, err := ioutil.ReadAll(os.Stdin)
		return data, errors.Wrap(err, "reading standard input")
	}
	data, err := ioutil.ReadFile(path)
	return data, errors.Wrapf(err, "reading %s", path)
}
