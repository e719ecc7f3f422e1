package logs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("tokenize", "tokens", 42)
	})
}

func TestHandlerAttachesSource(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(&Handler{
		Handler: slog.NewTextHandler(&buf, nil),
	})

	ctx := WithSource(context.Background(), "greet.lol")
	logger.InfoContext(ctx, "tokenize")

	if !strings.Contains(buf.String(), "logs.source=greet.lol") {
		t.Fatalf("got %q", buf.String())
	}

	buf.Reset()
	logger.InfoContext(context.Background(), "tokenize")
	if strings.Contains(buf.String(), "logs.source") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestWrapSource(t *testing.T) {
	ctx := WithSource(context.Background(), "greet.lol")
	err := WrapSource(ctx, context.DeadlineExceeded)
	if !strings.Contains(err.Error(), "greet.lol") {
		t.Fatalf("got %v", err)
	}

	err = WrapSource(context.Background(), context.DeadlineExceeded)
	if err != context.DeadlineExceeded {
		t.Fatalf("got %v", err)
	}
}
