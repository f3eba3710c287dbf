package timefmt

import (
	"errors"
	"testing"
	"time"
)

func TestCompileValid(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   Class
	}{
		{
			name:   "date only",
			format: "%Y-%m-%d",
			want:   ClassDateOnly,
		},
		{
			name:   "day month year",
			format: "%d/%m/%Y",
			want:   ClassDateOnly,
		},
		{
			name:   "date and time",
			format: "%Y-%m-%d %H:%M:%S",
			want:   ClassNaive,
		},
		{
			name:   "date and partial time",
			format: "%Y-%m-%d %H",
			want:   ClassNaive,
		},
		{
			name:   "compact offset",
			format: "%Y-%m-%dT%H:%M:%S%z",
			want:   ClassZoneAware,
		},
		{
			name:   "colon offset",
			format: "%Y-%m-%d %H:%M:%S%:z",
			want:   ClassZoneAware,
		},
		{
			name:   "offset alone is still zone-aware",
			format: "%z",
			want:   ClassZoneAware,
		},
		{
			name:   "milliseconds",
			format: "%Y-%m-%d %H:%M:%S.%3f",
			want:   ClassNaive,
		},
		{
			name:   "time without date",
			format: "%H:%M:%S",
			want:   ClassIncomplete,
		},
		{
			name:   "partial date",
			format: "%Y-%m",
			want:   ClassIncomplete,
		},
		{
			name:   "escaped percent is a literal",
			format: "%Y-%m-%d %% done",
			want:   ClassDateOnly,
		},
		{
			name:   "no specifiers",
			format: "hello",
			want:   ClassIncomplete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Compile(tt.format)
			if err != nil {
				t.Fatalf("Compile(%q) unexpected error: %v", tt.format, err)
			}
			if spec.Class() != tt.want {
				t.Errorf("Compile(%q).Class() = %v, want %v", tt.format, spec.Class(), tt.want)
			}
			if spec.String() != tt.format {
				t.Errorf("Compile(%q).String() = %q", tt.format, spec.String())
			}
		})
	}
}

func TestCompileInvalid(t *testing.T) {
	tests := []struct {
		name   string
		format string
		token  string
	}{
		{"unknown specifier", "%Q", "%Q"},
		{"unknown specifier mid-string", "%Y-%m-%d %q", "%q"},
		{"trailing escape", "%Y-%m-%d%", "%"},
		{"colon without z", "%:Y", "%:"},
		{"digit without f", "%3d", "%3"},
		{"zero-width fraction", "%0f", "%0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.format)
			var specErr *InvalidSpecifierError
			if !errors.As(err, &specErr) {
				t.Fatalf("Compile(%q) error = %v, want InvalidSpecifierError", tt.format, err)
			}
			if specErr.Specifier != tt.token {
				t.Errorf("Compile(%q) rejected %q, want %q", tt.format, specErr.Specifier, tt.token)
			}
		})
	}
}

func TestRender(t *testing.T) {
	est := time.FixedZone("", -5*3600)
	cet := time.FixedZone("", 2*3600)

	tests := []struct {
		name   string
		format string
		time   time.Time
		want   string
	}{
		{
			name:   "default layout",
			format: "%Y-%m-%dT%H:%M:%S%z",
			time:   time.Date(2023, 3, 19, 16, 33, 42, 0, time.FixedZone("", -4*3600)),
			want:   "2023-03-19T16:33:42-0400",
		},
		{
			name:   "colon offset",
			format: "%Y-%m-%d %H:%M:%S%:z",
			time:   time.Date(2023, 7, 15, 14, 30, 45, 0, cet),
			want:   "2023-07-15 14:30:45+02:00",
		},
		{
			name:   "negative offset with colon",
			format: "%:z",
			time:   time.Date(2023, 2, 12, 22, 16, 26, 0, est),
			want:   "-05:00",
		},
		{
			name:   "utc offset",
			format: "%z",
			time:   time.Date(2023, 2, 12, 22, 16, 26, 0, time.UTC),
			want:   "+0000",
		},
		{
			name:   "milliseconds",
			format: "%H:%M:%S.%3f",
			time:   time.Date(2023, 4, 12, 19, 38, 31, 220000120, time.UTC),
			want:   "19:38:31.220",
		},
		{
			name:   "nanoseconds",
			format: "%S.%9f",
			time:   time.Date(2023, 4, 12, 19, 38, 31, 220000120, time.UTC),
			want:   "31.220000120",
		},
		{
			name:   "zero padding",
			format: "%Y-%m-%d",
			time:   time.Date(33, 1, 2, 0, 0, 0, 0, time.UTC),
			want:   "0033-01-02",
		},
		{
			name:   "escaped percent",
			format: "%d%%",
			time:   time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
			want:   "02%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Compile(tt.format)
			if err != nil {
				t.Fatalf("Compile(%q) unexpected error: %v", tt.format, err)
			}
			if got := spec.Render(tt.time); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}
