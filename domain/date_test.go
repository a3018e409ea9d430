package domain

import (
	"testing"
	"time"
)

func TestParseDateNormalizesMixedFormats(t *testing.T) {
	d, err := ParseDate("2024-03-05")
	if err != nil || d != "2024-03-05" {
		t.Fatalf("canonical form: %v %v", d, err)
	}
	d, err = ParseDate("2024-03-05T17:30:00Z")
	if err != nil || d != "2024-03-05" {
		t.Fatalf("RFC3339 form: %v %v", d, err)
	}
	d, err = ParseDate("")
	if err != nil || !d.IsZero() {
		t.Fatalf("empty form: %v %v", d, err)
	}
	if _, err = ParseDate("05/03/2024"); err == nil {
		t.Fatal("expected error for unsupported layout")
	}
}

func TestDateBeforeDayGranularity(t *testing.T) {
	if !Date("2024-01-01").Before("2024-01-02") {
		t.Fatal("earlier day not before later day")
	}
	if Date("2024-01-02").Before("2024-01-02") {
		t.Fatal("same day compared as before")
	}
	if Date("").Before("2024-01-02") || Date("2024-01-01").Before("") {
		t.Fatal("unset dates must never order")
	}
	if Date("garbage").Before("2024-01-02") {
		t.Fatal("malformed date must never order")
	}
}

func TestDateOf(t *testing.T) {
	at := time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC)
	if d := DateOf(at); d != "2024-06-01" {
		t.Fatalf("DateOf = %s", d)
	}
}
