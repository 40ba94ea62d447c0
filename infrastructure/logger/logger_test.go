package logger

import (
	"bytes"
	"strings"
	"testing"
)

// bufferWriter is an in-memory log writer for tests.
type bufferWriter struct {
	bytes.Buffer
}

func (b *bufferWriter) Close() error {
	return nil
}

// runLogger builds a backend around an in-memory writer, hands the logger at
// LevelTrace to logCalls, and returns the written lines after draining.
func runLogger(t *testing.T, flags uint32, logCalls func(log *Logger)) []string {
	buffer := &bufferWriter{}
	backend := NewBackendWithFlags(flags)
	err := backend.AddLogWriter(buffer, LevelTrace)
	if err != nil {
		t.Fatalf("AddLogWriter unexpectedly errored: %v", err)
	}
	err = backend.Run()
	if err != nil {
		t.Fatalf("Run unexpectedly errored: %v", err)
	}

	log := backend.Logger("TEST")
	log.SetLevel(LevelTrace)
	logCalls(log)
	backend.Close()

	return strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n")
}

// TestCallsiteAttribution makes sure file attribution resolves the logging
// caller's frame for every exported entry point, leveled methods included,
// rather than a frame inside this package.
func TestCallsiteAttribution(t *testing.T) {
	lines := runLogger(t, LogFlagShortFile, func(log *Logger) {
		log.Trace("plain")
		log.Tracef("formatted %d", 1)
		log.Debug("plain")
		log.Debugf("formatted %d", 2)
		log.Info("plain")
		log.Infof("formatted %d", 3)
		log.Warn("plain")
		log.Warnf("formatted %d", 4)
		log.Error("plain")
		log.Errorf("formatted %d", 5)
		log.Critical("plain")
		log.Criticalf("formatted %d", 6)
		log.Write(LevelInfo, "plain")
		log.Writef(LevelInfo, "formatted %d", 7)
	})

	if len(lines) != 14 {
		t.Fatalf("TestCallsiteAttribution: got %d lines, want 14", len(lines))
	}
	for i, line := range lines {
		if !strings.Contains(line, "logger_test.go:") {
			t.Errorf("TestCallsiteAttribution: line %d is not attributed to the "+
				"calling file: %q", i, line)
		}
		if strings.Contains(line, "logger.go:") {
			t.Errorf("TestCallsiteAttribution: line %d is attributed to the logger "+
				"itself: %q", i, line)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	lines := runLogger(t, 0, func(log *Logger) {
		log.SetLevel(LevelWarn)
		log.Debugf("dropped")
		log.Infof("dropped")
		log.Warnf("kept warning")
		log.Errorf("kept error")
	})

	if len(lines) != 2 {
		t.Fatalf("TestLevelFiltering: got %d lines, want 2: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], "[WRN] TEST: kept warning") {
		t.Errorf("TestLevelFiltering: unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[1], "[ERR] TEST: kept error") {
		t.Errorf("TestLevelFiltering: unexpected second line %q", lines[1])
	}
}
