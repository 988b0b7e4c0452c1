package services_test

import (
	"context"
	"testing"

	"svupick/internal/services"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := services.WithRequestID(context.Background(), "run-123")
	id, ok := services.RequestIDFromContext(ctx)
	if !ok || id != "run-123" {
		t.Fatalf("expected run-123, got %q (ok=%v)", id, ok)
	}
}

func TestRequestIDEmptyIsNoop(t *testing.T) {
	ctx := services.WithRequestID(context.Background(), "")
	if _, ok := services.RequestIDFromContext(ctx); ok {
		t.Fatal("expected no request id for empty value")
	}
}

func TestTitleRoundTrip(t *testing.T) {
	ctx := services.WithTitle(context.Background(), "Scourge")
	title, ok := services.TitleFromContext(ctx)
	if !ok || title != "Scourge" {
		t.Fatalf("expected Scourge, got %q (ok=%v)", title, ok)
	}
}
