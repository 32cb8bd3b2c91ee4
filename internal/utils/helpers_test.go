package utils

import (
	"testing"
	"time"
)

func TestParseDateFormats(t *testing.T) {
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{
		"2024-03-15",
		"2024/03/15",
		"03/15/2024",
		"15 Mar 2024",
		"Mar 15, 2024",
		"March 15, 2024",
	} {
		got := ParseDate(in)
		if got == nil {
			t.Errorf("ParseDate(%q) = nil", in)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseDate(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseDateRejectsJunk(t *testing.T) {
	for _, in := range []string{"", "  ", "null", "NULL", "not a date", "2024-13-45"} {
		if got := ParseDate(in); got != nil {
			t.Errorf("ParseDate(%q) = %v, want nil", in, got)
		}
	}
}

func TestParseDateTruncatesTime(t *testing.T) {
	got := ParseDate("2024-03-15T14:30:00Z")
	if got == nil {
		t.Fatal("ParseDate returned nil for RFC3339 input")
	}
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ParseDate = %v, want midnight UTC", got)
	}
}
