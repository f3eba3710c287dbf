package tzone

import (
	"slices"
	"strings"
	"testing"
	"time"

	_ "time/tzdata"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		zone    string
		want    string
		wantErr bool
	}{
		{name: "empty keeps utc", zone: "", want: "UTC"},
		{name: "utc", zone: "UTC", want: "UTC"},
		{name: "iana name", zone: "America/New_York", want: "America/New_York"},
		{name: "unknown zone", zone: "Not/AZone", wantErr: true},
		{name: "not a zone at all", zone: "late afternoon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := Resolve(tt.zone)

			if tt.wantErr {
				if err == nil {
					t.Errorf("Resolve(%q) expected error, got nil", tt.zone)
				} else if !strings.Contains(err.Error(), tt.zone) {
					t.Errorf("Resolve(%q) error %q does not reference the zone", tt.zone, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Resolve(%q) unexpected error: %v", tt.zone, err)
			}
			if loc.String() != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.zone, loc, tt.want)
			}
		})
	}
}

func TestResolveConvertsTimes(t *testing.T) {
	loc, err := Resolve("America/New_York")
	if err != nil {
		t.Fatalf("Resolve unexpected error: %v", err)
	}

	got := time.Unix(1679258186, 0).In(loc)
	if got.Format("2006-01-02T15:04:05-0700") != "2023-03-19T16:36:26-0400" {
		t.Errorf("conversion = %v", got)
	}
}

func TestList(t *testing.T) {
	names, err := List(nil)
	if err != nil {
		t.Skipf("no system timezone database: %v", err)
	}

	if !slices.Contains(names, "UTC") {
		t.Errorf("List() does not contain UTC")
	}
	if !slices.IsSorted(names) {
		t.Errorf("List() is not sorted")
	}
	for _, name := range names {
		if strings.HasPrefix(name, "posix/") || strings.HasPrefix(name, "right/") {
			t.Errorf("List() contains duplicate tree entry %q", name)
		}
		if strings.Contains(name, ".") {
			t.Errorf("List() contains non-zone file %q", name)
		}
	}
}

func TestListPatterns(t *testing.T) {
	if _, err := List(nil); err != nil {
		t.Skipf("no system timezone database: %v", err)
	}

	names, err := List([]string{"America/**"})
	if err != nil {
		t.Fatalf("List unexpected error: %v", err)
	}
	for _, name := range names {
		if !strings.HasPrefix(name, "America/") {
			t.Errorf("List(America/**) returned %q", name)
		}
	}

	if _, err := List([]string{"[invalid"}); err == nil {
		t.Errorf("List with invalid pattern expected error, got nil")
	}
}
