package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

type Level logging.Level

// The levels that can be passed to the SetLevel function.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var leveledBackend logging.LeveledBackend

// Logger is the leveled logger used across the renderer
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New creates a logger tagged with the given module name.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink replaces the output writer. The level resets to Info.
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	backendWithFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(backendWithFormatter)
	leveledBackend.SetLevel(logging.INFO, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel sets the verbosity for every module without its own level.
func SetLevel(level Level) {
	leveledBackend.SetLevel(level.backendLevel(), "")
}

// SetModuleLevel overrides the verbosity of a single module, such as
// "renderer" or "whitted". SetSink clears the overrides.
func SetModuleLevel(module string, level Level) {
	leveledBackend.SetLevel(level.backendLevel(), module)
}

// ParseLevel maps a level name like "debug" or "WARNING" to a Level.
func ParseLevel(name string) (Level, error) {
	level, err := logging.LogLevel(name)
	if err != nil {
		return Notice, err
	}
	switch level {
	case logging.DEBUG:
		return Debug, nil
	case logging.INFO:
		return Info, nil
	case logging.NOTICE:
		return Notice, nil
	case logging.WARNING:
		return Warning, nil
	default:
		return Error, nil
	}
}

func (level Level) backendLevel() logging.Level {
	switch level {
	case Debug:
		return logging.DEBUG
	case Info:
		return logging.INFO
	case Warning:
		return logging.WARNING
	case Error:
		return logging.ERROR
	default:
		return logging.NOTICE
	}
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}
