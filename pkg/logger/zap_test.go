package logger_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/oppify/pkg/ctxmeta"
	"github.com/Gunvolt24/oppify/pkg/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_AddsContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := logger.NewFromZap(zap.New(core))

	ctx := ctxmeta.WithRequestID(context.Background(), "req-1")
	ctx = ctxmeta.WithUserID(ctx, 7)

	l.Infof(ctx, "applied opportunity_id=%d", 3)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("want 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Message != "applied opportunity_id=3" {
		t.Fatalf("unexpected message: %q", e.Message)
	}
	fields := e.ContextMap()
	if fields["request_id"] != "req-1" {
		t.Fatalf("request_id field missing: %v", fields)
	}
	if fields["user_id"] != int64(7) {
		t.Fatalf("user_id field missing: %v", fields)
	}
}

func TestZapLogger_NoFieldsWithoutMetadata(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logger.NewFromZap(zap.New(core))

	l.Warnf(context.Background(), "plain %s", "warn")
	l.Errorf(context.Background(), "plain %s", "error")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("want 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if len(e.Context) != 0 {
			t.Fatalf("unexpected fields: %v", e.Context)
		}
	}
	if entries[0].Level != zapcore.WarnLevel || entries[1].Level != zapcore.ErrorLevel {
		t.Fatalf("unexpected levels: %v %v", entries[0].Level, entries[1].Level)
	}
}

func TestNewZapLogger_DevAndProd(t *testing.T) {
	for _, prod := range []bool{false, true} {
		l, cleanup, err := logger.NewZapLogger(prod)
		if err != nil {
			t.Fatalf("NewZapLogger(%v): %v", prod, err)
		}
		if l.Base() == nil || l.Sugared() == nil {
			t.Fatalf("logger must expose base and sugared loggers")
		}
		_ = cleanup()
	}
}
