package timeutil

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	stamp := time.Date(2020, 7, 20, 16, 0, 0, 0, time.UTC)
	if got := FormatDate(stamp); got != "2020-07-20" {
		t.Errorf("FormatDate = %q", got)
	}
}

func TestDateLayoutRoundTrips(t *testing.T) {
	parsed, err := time.Parse(DateLayout, "2020-10-17")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := FormatDate(parsed); got != "2020-10-17" {
		t.Errorf("round trip = %q", got)
	}
}
