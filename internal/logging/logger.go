package logging

// Structured logging for catview

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelSilent LogLevel = iota
	LogLevelError
	LogLevelInfo
	LogLevelVerbose
	LogLevelDebug
)

// ParseLevel maps a config/flag string to a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silent", "off", "none":
		return LogLevelSilent, nil
	case "error":
		return LogLevelError, nil
	case "", "info":
		return LogLevelInfo, nil
	case "verbose":
		return LogLevelVerbose, nil
	case "debug":
		return LogLevelDebug, nil
	}
	return LogLevelInfo, fmt.Errorf("unknown log level %q", s)
}

func (l LogLevel) String() string {
	switch l {
	case LogLevelSilent:
		return "silent"
	case LogLevelError:
		return "error"
	case LogLevelInfo:
		return "info"
	case LogLevelVerbose:
		return "verbose"
	case LogLevelDebug:
		return "debug"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// Logger provides structured logging
type Logger struct {
	mu    sync.Mutex
	level LogLevel
	file  *os.File
	zap   *zap.Logger
}

// NewLogger creates a new logger. Errors always reach stderr; other
// messages reach stderr only at verbose or debug. When logFile is set every
// message at or above the level is also written there as JSON.
func NewLogger(level LogLevel, logFile string) (*Logger, error) {
	l := &Logger{level: level}

	var cores []zapcore.Core

	if logFile != "" {
		file, err := os.Create(logFile)
		if err != nil {
			return nil, fmt.Errorf("create log file: %w", err)
		}
		l.file = file
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(file),
			l.enabler(),
		))
	}

	consoleLevel := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		if lvl >= zapcore.ErrorLevel {
			return l.GetLevel() >= LogLevelError
		}
		return l.GetLevel() >= LogLevelVerbose && l.enabler().Enabled(lvl)
	})
	cores = append(cores, zapcore.NewCore(consoleEncoder(), zapcore.Lock(os.Stderr), consoleLevel))

	l.zap = zap.New(zapcore.NewTee(cores...))
	return l, nil
}

// NewFileLogger creates a logger that only writes JSON to logFile. It never
// touches the terminal, so it is safe to use under a full-screen UI. An
// empty logFile yields a no-op logger.
func NewFileLogger(level LogLevel, logFile string) (*Logger, error) {
	if logFile == "" {
		return Nop(), nil
	}
	file, err := os.Create(logFile)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}
	l := &Logger{level: level, file: file}
	l.zap = zap.New(zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(file),
		l.enabler(),
	))
	return l, nil
}

// NewWriterLogger creates a logger that writes console-formatted lines to w.
func NewWriterLogger(level LogLevel, w io.Writer) *Logger {
	l := &Logger{level: level}
	l.zap = zap.New(zapcore.NewCore(consoleEncoder(), zapcore.AddSync(w), l.enabler()))
	return l
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{level: LogLevelSilent, zap: zap.NewNop()}
}

func consoleEncoder() zapcore.Encoder {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.CallerKey = ""
	return zapcore.NewConsoleEncoder(cfg)
}

// enabler maps the catview levels onto zap levels. Verbose and debug both
// log at zap's debug level.
func (l *Logger) enabler() zap.LevelEnablerFunc {
	return func(lvl zapcore.Level) bool {
		switch level := l.GetLevel(); {
		case level == LogLevelSilent:
			return false
		case lvl >= zapcore.ErrorLevel:
			return true
		case lvl >= zapcore.InfoLevel:
			return level >= LogLevelInfo
		default:
			return level >= LogLevelVerbose
		}
	}
}

// Close closes the logger and flushes all data
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	_ = l.zap.Sync()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Zap exposes the underlying zap logger for structured call sites.
func (l *Logger) Zap() *zap.Logger {
	return l.zap
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	l.zap.Error(fmt.Sprintf(format, v...))
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	l.zap.Info(fmt.Sprintf(format, v...))
}

// Verbose logs a verbose message
func (l *Logger) Verbose(format string, v ...interface{}) {
	if l.GetLevel() >= LogLevelVerbose {
		l.zap.Debug(fmt.Sprintf(format, v...), zap.Bool("verbose", true))
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	if l.GetLevel() >= LogLevelDebug {
		l.zap.Debug(fmt.Sprintf(format, v...))
	}
}

// SetLevel sets the logging level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel returns the current logging level
func (l *Logger) GetLevel() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// LogSheet logs the outcome of fetching and parsing one sheet.
func (l *Logger) LogSheet(sheet, source string, rows int, elapsed time.Duration, err error) {
	fields := []zap.Field{
		zap.String("sheet", sheet),
		zap.String("source", source),
		zap.Int("rows", rows),
		zap.Duration("elapsed", elapsed),
	}
	if err != nil {
		l.zap.Error("sheet load failed", append(fields, zap.Error(err))...)
		return
	}
	if l.GetLevel() >= LogLevelVerbose {
		l.zap.Debug("sheet loaded", fields...)
	}
}

// LogIndex logs the shape of a freshly built catalogue index.
func (l *Logger) LogIndex(rows, codes, categories, images, categoryImages int) {
	l.zap.Info("catalogue loaded",
		zap.Int("rows", rows),
		zap.Int("items", codes),
		zap.Int("categories", categories),
		zap.Int("images", images),
		zap.Int("category_images", categoryImages),
	)
}

// LogStartup logs startup information
func (l *Logger) LogStartup(command, source, configPath string) {
	l.Info("Starting catview %s", command)
	l.Verbose("  Source: %s", source)
	l.Verbose("  Config: %s", configPath)
}
