package services_test

import (
	"errors"
	"strings"
	"testing"

	"svupick/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrDataSource, "catalog", "load", "open failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrDataSource) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"catalog", "load", "open failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := services.Wrap(nil, "picker", "range", "bad literal", nil)
	if !errors.Is(err, services.ErrInputFormat) {
		t.Fatalf("expected nil marker to default to input format, got %v", err)
	}
}

func TestExitCodeMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{services.Wrap(services.ErrNotFound, "details", "lookup", "no match", nil), 1},
		{services.Wrap(services.ErrInputFormat, "picker", "range", "bad", nil), 2},
		{services.Wrap(services.ErrConfiguration, "config", "validate", "bad", nil), 2},
		{services.Wrap(services.ErrDataSource, "catalog", "load", "missing", nil), 3},
		{errors.New("unclassified"), 1},
	}
	for _, tc := range cases {
		if got := services.ExitCode(tc.err); got != tc.want {
			t.Fatalf("ExitCode(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
