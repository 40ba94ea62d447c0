package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/kaspanet/go-taggedbase64"
	"github.com/kaspanet/go-taggedbase64/util/panics"
	"github.com/kaspanet/go-taggedbase64/version"
)

func main() {
	defer panics.HandlePanic(log)

	subCmd, globalConfig, config := parseCommandLine()

	err := initLog(globalConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %s\n", err)
		os.Exit(1)
	}

	log.Debugf("Version %s", version.Version())

	switch subCmd {
	case encodeSubCmd:
		err = encode(config.(*encodeConfig))
	case decodeSubCmd:
		err = decode(config.(*decodeConfig))
	case inspectSubCmd:
		err = inspect(config.(*inspectConfig))
	default:
		err = errors.Errorf("Unknown sub-command '%s'", subCmd)
	}

	if err != nil {
		printErrorAndExit(err)
	}
	backendLog.Close()
}

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "tb64: %s\n", err)
	backendLog.Close()
	os.Exit(exitCode(err))
}

// exitCode maps each parse failure kind to its own exit code, so scripts can
// react to the reason a string was rejected without scraping stderr.
func exitCode(err error) int {
	var invalidByte taggedbase64.ErrInvalidByte
	switch {
	case errors.Is(err, taggedbase64.ErrInvalidTag):
		return 2
	case errors.As(err, &invalidByte):
		return 3
	case errors.Is(err, taggedbase64.ErrInvalidLength):
		return 4
	case errors.Is(err, taggedbase64.ErrInvalidChecksum):
		return 5
	}
	return 1
}
