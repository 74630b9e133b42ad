package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the zerolog logger used across the service.
type Logger = zerolog.Logger

const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldReportID   = "report_id"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"
	FieldDuration   = "duration"
)

func init() {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}
}

// New creates a JSON logger on stdout at the given level.
func New(level string) (Logger, error) {
	return NewWithWriter(os.Stdout, level)
}

// NewWithWriter is New with an explicit output.
func NewWithWriter(w io.Writer, level string) (Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Caller().
		Logger(), nil
}

// Component returns a child logger tagged with the component name.
func Component(l Logger, name string) Logger {
	return l.With().Str(FieldComponent, name).Logger()
}

// Ctx returns the logger stored on ctx, or a disabled logger.
func Ctx(ctx context.Context) *Logger {
	return zerolog.Ctx(ctx)
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return zerolog.Nop()
}
