package main

import (
	"os"

	"github.com/pkg/errors"

	"github.com/kaspanet/go-taggedbase64/infrastructure/logger"
)

var (
	backendLog = logger.NewBackend()
	log        = backendLog.Logger("TB64")
)

func initLog(cfg *configFlags) error {
	level, ok := logger.LevelFromString(cfg.DebugLevel)
	if !ok {
		return errors.Errorf("invalid debug level: %s", cfg.DebugLevel)
	}

	// Logs go to stderr so the encoded and decoded output on stdout stays
	// clean for pipes.
	err := backendLog.AddLogWriter(os.Stderr, level)
	if err != nil {
		return err
	}
	if cfg.LogFile != "" {
		err = backendLog.AddLogFile(cfg.LogFile, level)
		if err != nil {
			return err
		}
	}

	err = backendLog.Run()
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}
