package model

import (
	"errors"
	"strconv"
	"strings"
)

// ErrRangeMalformed indicates a Range header that does not parse as a single
// byte range. Callers should degrade to serving the full file.
var ErrRangeMalformed = errors.New("malformed range header")

// ErrRangeUnsatisfiable indicates a syntactically valid range that lies
// entirely beyond the end of the file. Callers should respond 416.
var ErrRangeUnsatisfiable = errors.New("unsatisfiable range")

// ByteRange is an inclusive byte span within a file, resolved against the
// file size so that 0 <= Start <= End < size always holds.
type ByteRange struct {
	Start int64
	End   int64
}

// Length returns the number of bytes covered by the range.
func (r ByteRange) Length() int64 {
	return r.End - r.Start + 1
}

// ParseByteRange parses a single-range Range header value ("bytes=a-b",
// "bytes=a-" or "bytes=-n") against a file of the given size.
//
// A nil range with nil error means no Range header was supplied. Multi-range
// values (comma-separated) are not supported and report ErrRangeMalformed,
// as does any other syntax error; suffix length zero and a start at or past
// the end of the file report ErrRangeUnsatisfiable.
func ParseByteRange(value string, size int64) (*ByteRange, error) {
	if value == "" {
		return nil, nil
	}

	spec, ok := strings.CutPrefix(value, "bytes=")
	if !ok {
		return nil, ErrRangeMalformed
	}
	if strings.Contains(spec, ",") {
		return nil, ErrRangeMalformed
	}

	startStr, endStr, ok := strings.Cut(strings.TrimSpace(spec), "-")
	if !ok {
		return nil, ErrRangeMalformed
	}

	if startStr == "" {
		// Suffix form: last n bytes.
		n, err := strconv.ParseInt(endStr, 10, 64)
		if err != nil || n < 0 {
			return nil, ErrRangeMalformed
		}
		if n == 0 || size == 0 {
			return nil, ErrRangeUnsatisfiable
		}
		if n > size {
			n = size
		}
		return &ByteRange{Start: size - n, End: size - 1}, nil
	}

	start, err := strconv.ParseInt(startStr, 10, 64)
	if err != nil || start < 0 {
		return nil, ErrRangeMalformed
	}
	if start >= size {
		return nil, ErrRangeUnsatisfiable
	}

	end := size - 1
	if endStr != "" {
		end, err = strconv.ParseInt(endStr, 10, 64)
		if err != nil {
			return nil, ErrRangeMalformed
		}
		if end < start {
			return nil, ErrRangeMalformed
		}
		if end > size-1 {
			end = size - 1
		}
	}

	return &ByteRange{Start: start, End: end}, nil
}
