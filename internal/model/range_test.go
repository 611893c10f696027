package model

import (
	"errors"
	"testing"
)

func TestParseByteRange_NoHeader(t *testing.T) {
	rng, err := ParseByteRange("", 100)
	if err != nil {
		t.Fatalf("ParseByteRange() error = %v", err)
	}
	if rng != nil {
		t.Errorf("range = %+v, want nil for absent header", rng)
	}
}

func TestParseByteRange_Valid(t *testing.T) {
	tests := []struct {
		name  string
		value string
		size  int64
		start int64
		end   int64
	}{
		{"exact span", "bytes=10-19", 100, 10, 19},
		{"open ended", "bytes=0-", 100, 0, 99},
		{"open ended mid file", "bytes=40-", 100, 40, 99},
		{"end clamped to size", "bytes=90-150", 100, 90, 99},
		{"suffix", "bytes=-10", 100, 90, 99},
		{"suffix larger than file", "bytes=-500", 100, 0, 99},
		{"single byte", "bytes=0-0", 100, 0, 0},
		{"last byte", "bytes=99-99", 100, 99, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, err := ParseByteRange(tt.value, tt.size)
			if err != nil {
				t.Fatalf("ParseByteRange(%q) error = %v", tt.value, err)
			}
			if rng == nil {
				t.Fatalf("ParseByteRange(%q) = nil, want range", tt.value)
			}
			if rng.Start != tt.start || rng.End != tt.end {
				t.Errorf("range = %d-%d, want %d-%d", rng.Start, rng.End, tt.start, tt.end)
			}
		})
	}
}

func TestParseByteRange_Malformed(t *testing.T) {
	values := []string{
		"bytes",
		"bytes=",
		"bytes=abc-def",
		"bytes=10",
		"bytes=19-10",
		"bytes=10-19,30-39", // multi-range out of scope
		"items=0-10",
		"bytes=--5",
	}

	for _, v := range values {
		if _, err := ParseByteRange(v, 100); !errors.Is(err, ErrRangeMalformed) {
			t.Errorf("ParseByteRange(%q) error = %v, want ErrRangeMalformed", v, err)
		}
	}
}

func TestParseByteRange_Unsatisfiable(t *testing.T) {
	tests := []struct {
		value string
		size  int64
	}{
		{"bytes=100-110", 100}, // start == size
		{"bytes=200-", 100},    // start past size
		{"bytes=-0", 100},      // zero-length suffix
		{"bytes=0-", 0},        // empty file
	}

	for _, tt := range tests {
		if _, err := ParseByteRange(tt.value, tt.size); !errors.Is(err, ErrRangeUnsatisfiable) {
			t.Errorf("ParseByteRange(%q, %d) error = %v, want ErrRangeUnsatisfiable", tt.value, tt.size, err)
		}
	}
}

func TestByteRange_Length(t *testing.T) {
	r := ByteRange{Start: 10, End: 19}
	if got := r.Length(); got != 10 {
		t.Errorf("Length() = %d, want 10", got)
	}
}
