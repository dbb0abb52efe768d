package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// GlobalLogger describes a Logger that is disabled by default. Hosts embedding the mutators enable it by replacing it
// or adjusting its level and writers. Each package should create its own sub-logger from it.
var GlobalLogger = NewLogger(zerolog.Disabled, false)

// Logger describes a custom logging object that can log events to any arbitrary channel and can handle specialized
// output to console as well
type Logger struct {
	// level describes the log level
	level zerolog.Level

	// context describes the key-value pairs attached by NewSubLogger, re-applied whenever the writers change.
	context map[string]string

	// multiLogger describes a logger that will be used to output logs to any arbitrary channel(s) in either structured
	// or unstructured format.
	multiLogger zerolog.Logger

	// consoleLogger describes a logger that will be used to output unstructured output to console.
	consoleLogger zerolog.Logger

	// writers describes a list of io.Writer objects where log output will go.
	writers []io.Writer
}

// LogFormat describes what format to log in
type LogFormat string

const (
	// STRUCTURED describes that logging should be done in structured JSON format
	STRUCTURED LogFormat = "structured"
	// UNSTRUCTURED describes that logging should be done in an unstructured format
	UNSTRUCTURED LogFormat = "unstructured"
)

// StructuredLogInfo describes a key-value mapping that can be used to log structured data
type StructuredLogInfo map[string]any

// NewLogger will create a new Logger object with a specific log level. The Logger can output to console, if enabled,
// and output logs to any number of arbitrary io.Writer channels
func NewLogger(level zerolog.Level, consoleEnabled bool, writers ...io.Writer) *Logger {
	// The base console logger is disabled. We create an instance of it so that we do not get nil pointer dereferences
	// down the line.
	baseConsoleLogger := zerolog.New(os.Stdout).Level(zerolog.Disabled)

	// If console logging is enabled, update the console logger
	if consoleEnabled {
		consoleWriter := setupDefaultFormatting(zerolog.ConsoleWriter{Out: os.Stdout}, level)
		baseConsoleLogger = zerolog.New(consoleWriter).Level(level)
	}

	l := &Logger{
		level:         level,
		context:       make(map[string]string),
		consoleLogger: baseConsoleLogger,
		writers:       writers,
	}
	l.rebuildMultiLogger()
	return l
}

// NewSubLogger will create a new Logger with unique context in the form of a key-value pair. The expected use of this
// function is for each package to have their own unique logger so that parsing of logs is "grep-able" based on some key
func (l *Logger) NewSubLogger(key string, value string) *Logger {
	context := make(map[string]string, len(l.context)+1)
	for k, v := range l.context {
		context[k] = v
	}
	context[key] = value

	sub := &Logger{
		level:         l.level,
		context:       context,
		consoleLogger: l.consoleLogger.With().Str(key, value).Logger(),
		writers:       append([]io.Writer(nil), l.writers...),
	}
	sub.rebuildMultiLogger()
	return sub
}

// rebuildMultiLogger recreates the multi logger from the current writers, level and context.
func (l *Logger) rebuildMultiLogger() {
	if len(l.writers) == 0 {
		l.multiLogger = zerolog.New(os.Stdout).Level(zerolog.Disabled)
		return
	}

	ctx := zerolog.New(zerolog.MultiLevelWriter(l.writers...)).Level(l.level).With().Timestamp()
	for k, v := range l.context {
		ctx = ctx.Str(k, v)
	}
	l.multiLogger = ctx.Logger()
}

// AddWriter will add a writer to the list of channels where log output will be sent.
func (l *Logger) AddWriter(writer io.Writer, format LogFormat) {
	// Check to see if the writer is already in the array of writers
	for _, w := range l.writers {
		if writer == underlyingWriter(w) {
			return
		}
	}

	// If we want unstructured output, wrap the base writer object into a console writer so that we get unstructured
	// output with no ANSI coloring
	if format == UNSTRUCTURED {
		writer = zerolog.ConsoleWriter{Out: writer, NoColor: true}
	}

	l.writers = append(l.writers, writer)
	l.rebuildMultiLogger()
}

// RemoveWriter will remove a writer from the list of writers that the logger manages. Writers added in UNSTRUCTURED
// format are matched by their underlying output. If the writer does not exist, this function is a no-op
func (l *Logger) RemoveWriter(writer io.Writer) {
	for i, w := range l.writers {
		if writer == underlyingWriter(w) {
			l.writers = append(l.writers[:i], l.writers[i+1:]...)
			l.rebuildMultiLogger()
			return
		}
	}
}

// underlyingWriter returns the output a writer added in UNSTRUCTURED format wraps, or the writer itself.
func underlyingWriter(w io.Writer) io.Writer {
	if cw, ok := w.(zerolog.ConsoleWriter); ok {
		return cw.Out
	}
	return w
}

// Level will get the log level of the Logger
func (l *Logger) Level() zerolog.Level {
	return l.level
}

// SetLevel will update the log level of the Logger
func (l *Logger) SetLevel(level zerolog.Level) {
	l.level = level
	l.multiLogger = l.multiLogger.Level(level)
	l.consoleLogger = l.consoleLogger.Level(level)
}

// Trace is a wrapper function that will log a trace event
func (l *Logger) Trace(args ...any) {
	l.log(l.consoleLogger.Trace(), l.multiLogger.Trace(), args...)
}

// Debug is a wrapper function that will log a debug event
func (l *Logger) Debug(args ...any) {
	l.log(l.consoleLogger.Debug(), l.multiLogger.Debug(), args...)
}

// Info is a wrapper function that will log an info event
func (l *Logger) Info(args ...any) {
	l.log(l.consoleLogger.Info(), l.multiLogger.Info(), args...)
}

// Warn is a wrapper function that will log a warning event
func (l *Logger) Warn(args ...any) {
	l.log(l.consoleLogger.Warn(), l.multiLogger.Warn(), args...)
}

// Error is a wrapper function that will log an error event.
func (l *Logger) Error(args ...any) {
	l.log(l.consoleLogger.Error(), l.multiLogger.Error(), args...)
}

// log builds the messages from args, chains any error and structured info, and sends the events.
func (l *Logger) log(consoleLog *zerolog.Event, multiLog *zerolog.Event, args ...any) {
	// Build the messages and retrieve any error or associated structured log info
	msg, err, info := buildMsgs(args...)

	// Chain the error
	chainError(consoleLog, multiLog, err, l.level <= zerolog.DebugLevel)

	// Chain the structured log info and messages and send off the logs
	chainStructuredLogInfoAndMsgs(consoleLog, multiLog, info, msg)
}

// buildMsgs takes in a variadic list of arguments of any type and returns the concatenated message and, optionally,
// an error and a StructuredLogInfo object which add context to the message.
func buildMsgs(args ...any) (string, error, StructuredLogInfo) {
	// Guard clause
	if len(args) == 0 {
		return "", nil, nil
	}

	output := make([]string, 0, len(args))
	var info StructuredLogInfo
	var err error

	for _, arg := range args {
		switch t := arg.(type) {
		case StructuredLogInfo:
			// Note that only one structured log info can be provided for each log message
			info = t
		case error:
			// Note that only one error can be provided for each log message
			err = t
		default:
			output = append(output, fmt.Sprintf("%v", t))
		}
	}

	return strings.Join(output, ""), err, info
}

// chainError is a helper function that takes in a *zerolog.Event for console and multi-log output and chains an error
// to both events. If debug is true, then a stack trace is added to both events as well.
func chainError(consoleLog *zerolog.Event, multiLog *zerolog.Event, err error, debug bool) {
	// Note that even if err is nil, there will not be a panic here
	consoleLog.Err(err)
	multiLog.Err(err)

	if debug {
		consoleLog.Stack()
		multiLog.Stack()
	}
}

// chainStructuredLogInfoAndMsgs is a helper function that takes in a *zerolog.Event for console and multi-log output,
// chains any StructuredLogInfo provided to it, adds the message, and sends out the logs to their respective channels.
func chainStructuredLogInfoAndMsgs(consoleLog *zerolog.Event, multiLog *zerolog.Event, info StructuredLogInfo, msg string) {
	if info != nil {
		consoleLog.Any("info", info)
		multiLog.Any("info", info)
	}

	defer multiLog.Msg(msg)
	consoleLog.Msg(msg)
}

// setupDefaultFormatting will update the console logger's formatting
func setupDefaultFormatting(writer zerolog.ConsoleWriter, level zerolog.Level) zerolog.ConsoleWriter {
	// Get rid of the timestamp for console output
	writer.FormatTimestamp = func(i any) string {
		return ""
	}

	// If we are above debug level, we want to get rid of the `module` component when logging to console
	if level > zerolog.DebugLevel {
		writer.FieldsExclude = []string{"module"}
	}

	return writer
}
