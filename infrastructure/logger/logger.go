package logger

import (
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
	"time"
)

// logEntry is one formatted message on its way from a subsystem logger to
// the backend's writers.
type logEntry struct {
	log   []byte
	level Level
}

// Logger is a subsystem logger for a Backend. All messages carry the
// subsystem tag and are dropped at the source when they are below the
// logger's level, before any formatting work is done.
type Logger struct {
	lvl       Level // atomic
	tag       string
	b         *Backend
	writeChan chan<- logEntry
}

// The leveled methods repeat the level check instead of delegating to Write
// and Writef so that every exported entry point sits calldepth frames above
// callsite and file attribution resolves the caller's frame.

// Trace formats message using the default formats for its operands and
// writes to log with LevelTrace.
func (l *Logger) Trace(args ...interface{}) {
	if l.Level() <= LevelTrace {
		l.print(LevelTrace, args...)
	}
}

// Tracef formats message according to format specifier and writes to log
// with LevelTrace.
func (l *Logger) Tracef(format string, args ...interface{}) {
	if l.Level() <= LevelTrace {
		l.printf(LevelTrace, format, args...)
	}
}

// Debug formats message using the default formats for its operands and
// writes to log with LevelDebug.
func (l *Logger) Debug(args ...interface{}) {
	if l.Level() <= LevelDebug {
		l.print(LevelDebug, args...)
	}
}

// Debugf formats message according to format specifier and writes to log
// with LevelDebug.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.Level() <= LevelDebug {
		l.printf(LevelDebug, format, args...)
	}
}

// Info formats message using the default formats for its operands and
// writes to log with LevelInfo.
func (l *Logger) Info(args ...interface{}) {
	if l.Level() <= LevelInfo {
		l.print(LevelInfo, args...)
	}
}

// Infof formats message according to format specifier and writes to log
// with LevelInfo.
func (l *Logger) Infof(format string, args ...interface{}) {
	if l.Level() <= LevelInfo {
		l.printf(LevelInfo, format, args...)
	}
}

// Warn formats message using the default formats for its operands and
// writes to log with LevelWarn.
func (l *Logger) Warn(args ...interface{}) {
	if l.Level() <= LevelWarn {
		l.print(LevelWarn, args...)
	}
}

// Warnf formats message according to format specifier and writes to log
// with LevelWarn.
func (l *Logger) Warnf(format string, args ...interface{}) {
	if l.Level() <= LevelWarn {
		l.printf(LevelWarn, format, args...)
	}
}

// Error formats message using the default formats for its operands and
// writes to log with LevelError.
func (l *Logger) Error(args ...interface{}) {
	if l.Level() <= LevelError {
		l.print(LevelError, args...)
	}
}

// Errorf formats message according to format specifier and writes to log
// with LevelError.
func (l *Logger) Errorf(format string, args ...interface{}) {
	if l.Level() <= LevelError {
		l.printf(LevelError, format, args...)
	}
}

// Critical formats message using the default formats for its operands and
// writes to log with LevelCritical.
func (l *Logger) Critical(args ...interface{}) {
	if l.Level() <= LevelCritical {
		l.print(LevelCritical, args...)
	}
}

// Criticalf formats message according to format specifier and writes to log
// with LevelCritical.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	if l.Level() <= LevelCritical {
		l.printf(LevelCritical, format, args...)
	}
}

// Write formats message using the default formats for its operands and
// writes to log with the given logLevel.
func (l *Logger) Write(logLevel Level, args ...interface{}) {
	if l.Level() <= logLevel {
		l.print(logLevel, args...)
	}
}

// Writef formats message according to format specifier and writes to log
// with the given logLevel.
func (l *Logger) Writef(logLevel Level, format string, args ...interface{}) {
	if l.Level() <= logLevel {
		l.printf(logLevel, format, args...)
	}
}

// Level returns the current logging level.
func (l *Logger) Level() Level {
	return Level(atomic.LoadUint32((*uint32)(&l.lvl)))
}

// SetLevel changes the logging level. Messages below the new level are
// discarded from this point on.
func (l *Logger) SetLevel(logLevel Level) {
	atomic.StoreUint32((*uint32)(&l.lvl), uint32(logLevel))
}

// Backend returns the backend this logger writes to.
func (l *Logger) Backend() *Backend {
	return l.b
}

func (l *Logger) print(lvl Level, args ...interface{}) {
	l.send(lvl, fmt.Sprintln(args...))
}

func (l *Logger) printf(lvl Level, format string, args ...interface{}) {
	l.send(lvl, fmt.Sprintf(format, args...)+"\n")
}

// send builds the complete log line, header included, and hands it to the
// backend. The buffer's ownership moves to the backend goroutine with the
// entry, so it is never reused on this side.
func (l *Logger) send(lvl Level, message string) {
	t := time.Now() // get the timestamp as early as possible

	var file string
	var line int
	if l.b.flag&(LogFlagLongFile|LogFlagShortFile) != 0 {
		file, line = callsite(l.b.flag)
	}

	buf := make([]byte, 0, normalLogSize)
	formatHeader(&buf, t, lvl.String(), l.tag, file, line)
	buf = append(buf, message...)

	l.writeChan <- logEntry{buf, lvl}
}

// itoa appends a fixed-width decimal representation of i to buf, padded
// with zeros on the left. A negative width appends the plain decimal form.
// Taken from the standard library's log package.
func itoa(buf *[]byte, i int, wid int) {
	var b [20]byte
	bp := len(b) - 1
	for i >= 10 || wid > 1 {
		wid--
		q := i / 10
		b[bp] = byte('0' + i - q*10)
		bp--
		i = q
	}
	b[bp] = byte('0' + i)
	*buf = append(*buf, b[bp:]...)
}

// formatHeader appends a header in the format
// 'YYYY-MM-DD hh:mm:ss.sss [LVL] TAG: ' to buf. When file is not empty,
// 'file:line' is inserted between the tag and the final colon.
func formatHeader(buf *[]byte, t time.Time, lvl, tag string, file string, line int) {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	millisecond := t.Nanosecond() / 1e6

	itoa(buf, year, 4)
	*buf = append(*buf, '-')
	itoa(buf, int(month), 2)
	*buf = append(*buf, '-')
	itoa(buf, day, 2)
	*buf = append(*buf, ' ')
	itoa(buf, hour, 2)
	*buf = append(*buf, ':')
	itoa(buf, min, 2)
	*buf = append(*buf, ':')
	itoa(buf, sec, 2)
	*buf = append(*buf, '.')
	itoa(buf, millisecond, 3)
	*buf = append(*buf, " ["...)
	*buf = append(*buf, lvl...)
	*buf = append(*buf, "] "...)
	*buf = append(*buf, tag...)
	if file != "" {
		*buf = append(*buf, ' ')
		*buf = append(*buf, file...)
		*buf = append(*buf, ':')
		itoa(buf, line, -1)
	}
	*buf = append(*buf, ": "...)
}

// calldepth is the call depth of callsite relative to the exported logging
// methods, used to resolve the file and line of the logging call.
const calldepth = 4

// callsite returns the file name and line number of the logging callsite.
func callsite(flag uint32) (string, int) {
	_, file, line, ok := runtime.Caller(calldepth)
	if !ok {
		return "???", 0
	}
	if flag&LogFlagShortFile != 0 {
		short := file
		for i := len(file) - 1; i > 0; i-- {
			if os.IsPathSeparator(file[i]) {
				short = file[i+1:]
				break
			}
		}
		file = short
	}
	return file, line
}
