package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/kaspanet/go-taggedbase64/version"
)

const (
	encodeSubCmd  = "encode"
	decodeSubCmd  = "decode"
	inspectSubCmd = "inspect"
)

type configFlags struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	DebugLevel  string `short:"d" long:"debuglevel" default:"warn" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	LogFile     string `long:"logfile" description:"Also write logs to this file, with rotation"`
}

type encodeConfig struct {
	Tag  string `long:"tag" short:"t" description:"Mnemonic tag to prefix the encoded value with. May be empty."`
	Hex  string `long:"hex" short:"x" description:"Payload bytes, hex encoded"`
	Text string `long:"text" short:"s" description:"Payload bytes, taken verbatim from the argument"`
	File string `long:"file" short:"f" description:"Read the payload from this file; '-' reads standard input"`
}

type decodeConfig struct {
	Format    string `long:"format" short:"o" default:"raw" choice:"raw" choice:"hex" choice:"text" description:"How to print the decoded payload"`
	ExpectTag string `long:"expect-tag" short:"e" description:"Fail unless the decoded tag equals this value"`
	File      string `long:"file" short:"f" description:"Read the tagged base64 string from this file; '-' reads standard input"`
	Args      struct {
		TaggedString string `positional-arg-name:"tagged-string"`
	} `positional-args:"true"`
}

type inspectConfig struct {
	File string `long:"file" short:"f" description:"Read the tagged base64 string from this file; '-' reads standard input"`
	Args struct {
		TaggedString string `positional-arg-name:"tagged-string"`
	} `positional-args:"true"`
}

func parseCommandLine() (subCommand string, globalConfig *configFlags, config interface{}) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)

	encodeConf := &encodeConfig{}
	parser.AddCommand(encodeSubCmd, "Encode a binary value as a tagged base64 string",
		"Encode a binary value as a tagged base64 string. The payload comes from --hex, "+
			"--text or --file; omit all three to encode an empty payload.", encodeConf)

	decodeConf := &decodeConfig{}
	parser.AddCommand(decodeSubCmd, "Decode a tagged base64 string back into its payload",
		"Decode a tagged base64 string, verify its checksum and print the payload.", decodeConf)

	inspectConf := &inspectConfig{}
	parser.AddCommand(inspectSubCmd, "Show the parts of a tagged base64 string",
		"Parse a tagged base64 string and print its tag, payload length, checksum byte "+
			"and payload bytes.", inspectConf)

	_, err := parser.Parse()

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Println(appName, "version", version.Version())
		os.Exit(0)
	}

	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
		return "", nil, nil
	}

	switch parser.Command.Active.Name {
	case encodeSubCmd:
		config = encodeConf
	case decodeSubCmd:
		config = decodeConf
	case inspectSubCmd:
		config = inspectConf
	}

	return parser.Command.Active.Name, cfg, config
}
