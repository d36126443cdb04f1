// Package logger wraps logrus with request-scoped fields carried in context.
package logger

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ctxKey string

// RequestIDKey is the context key holding the current request id.
const RequestIDKey ctxKey = "request_id"

var base = logrus.New()

func init() {
	base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	base.SetOutput(os.Stdout)
}

// Init sets the level and, when file is non-empty, tees output into a rotated log file.
func Init(level, file string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	base.SetLevel(lvl)

	if file != "" {
		base.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    50, // MB
			MaxBackups: 5,
			MaxAge:     14, // days
			Compress:   true,
		}))
	}
}

// SetOutput redirects log output; used by tests.
func SetOutput(w io.Writer) {
	base.SetOutput(w)
}

// WithRequestID stores id in ctx for later log lines.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// GetLogger returns an entry tagged with the request id found in ctx, if any.
func GetLogger(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(base)
	if ctx == nil {
		return entry
	}
	if id, ok := ctx.Value(RequestIDKey).(string); ok && id != "" {
		entry = entry.WithField("request_id", id)
	}
	return entry
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	GetLogger(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	GetLogger(ctx).Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	GetLogger(ctx).Errorf(format, args...)
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	GetLogger(ctx).Debugf(format, args...)
}
