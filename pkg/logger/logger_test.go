package logger

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLoggerCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	ctx := WithRequestID(context.Background(), "req-123")
	Infof(ctx, "hello %s", "world")

	out := buf.String()
	assert.Contains(t, out, "hello world")
	assert.Contains(t, out, "request_id=req-123")
}

func TestGetLoggerWithoutRequestID(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	Warnf(context.Background(), "plain")

	assert.Contains(t, buf.String(), "plain")
	assert.NotContains(t, buf.String(), "request_id")
}

func TestInitFallsBackToInfo(t *testing.T) {
	Init("nonsense", "")
	assert.Equal(t, "info", base.GetLevel().String())
}
