package logs

import (
	"context"
	"log/slog"
)

type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if name, ok := sourceFrom(ctx); ok {
		record.Add("logs.source", name)
	}
	return h.Handler.Handle(ctx, record)
}
