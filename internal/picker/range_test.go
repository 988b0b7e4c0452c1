package picker_test

import (
	"errors"
	"strings"
	"testing"

	"svupick/internal/picker"
	"svupick/internal/services"
)

func TestParseRangeRoundTrip(t *testing.T) {
	for _, expr := range []string{"S2E1>S6E20", "S1E1>S1E1", "S3E22>S4E1", "S12E5>S12E24"} {
		r, err := picker.ParseRange(expr)
		if err != nil {
			t.Fatalf("ParseRange(%q) returned error: %v", expr, err)
		}
		if r.String() != expr {
			t.Fatalf("round trip mismatch: parsed %q, reconstructed %q", expr, r.String())
		}
		again, err := picker.ParseRange(r.String())
		if err != nil {
			t.Fatalf("reparse of %q failed: %v", r.String(), err)
		}
		if again != r {
			t.Fatalf("reparse of %q produced %+v, want %+v", r.String(), again, r)
		}
	}
}

func TestParseRangeNormalizesCaseAndSpace(t *testing.T) {
	r, err := picker.ParseRange(" s2e1 > s6e20 ")
	if err != nil {
		t.Fatalf("ParseRange returned error: %v", err)
	}
	if r.StartSeason != 2 || r.StartEpisode != 1 || r.EndSeason != 6 || r.EndEpisode != 20 {
		t.Fatalf("unexpected range: %+v", r)
	}
}

func TestParseRangeLinearization(t *testing.T) {
	r, err := picker.ParseRange("S2E1>S6E20")
	if err != nil {
		t.Fatalf("ParseRange returned error: %v", err)
	}
	if r.Start() != 201 || r.End() != 620 {
		t.Fatalf("unexpected linear bounds: %d..%d", r.Start(), r.End())
	}
}

func TestParseRangeRejectsDescending(t *testing.T) {
	_, err := picker.ParseRange("S6E1>S3E1")
	if err == nil {
		t.Fatal("expected error for descending range")
	}
	if !errors.Is(err, services.ErrInputFormat) {
		t.Fatalf("expected input format marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "S6E1>S3E1") {
		t.Fatalf("expected offending literal in error, got %q", err.Error())
	}
}

func TestParseRangeRejectsDescendingEpisodeWithinSeason(t *testing.T) {
	if _, err := picker.ParseRange("S3E5>S3E4"); err == nil {
		t.Fatal("expected error for descending episode within a season")
	}
}

func TestParseRangeRejectsMalformed(t *testing.T) {
	for _, expr := range []string{
		"S2-E1>S3E1",
		"S2E1",
		"S2E1>S3E1>S4E1",
		"2E1>S3E1",
		"SxEy>S3E1",
		"S2E>S3E1",
		"",
	} {
		_, err := picker.ParseRange(expr)
		if err == nil {
			t.Fatalf("expected error for %q", expr)
		}
		if !errors.Is(err, services.ErrInputFormat) {
			t.Fatalf("expected input format marker for %q, got %v", expr, err)
		}
		if expr != "" && !strings.Contains(err.Error(), expr) {
			t.Fatalf("expected offending literal %q in error %q", expr, err.Error())
		}
	}
}

func TestParseRangeAcceptsOutOfCatalogPositions(t *testing.T) {
	// Bounds checking belongs to the filter, not the parser.
	if _, err := picker.ParseRange("S90E1>S99E50"); err != nil {
		t.Fatalf("expected out-of-catalog range to parse, got %v", err)
	}
}
