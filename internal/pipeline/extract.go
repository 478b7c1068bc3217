package pipeline

import (
	"bytes"
	"regexp"
	"strings"

	json "github.com/goccy/go-json"
)

// Shape is the top-level JSON kind a use case expects from the model.
type Shape int

const (
	ShapeObject Shape = iota
	ShapeArray
)

func (s Shape) open() byte {
	if s == ShapeArray {
		return '['
	}
	return '{'
}

func (s Shape) String() string {
	if s == ShapeArray {
		return "array"
	}
	return "object"
}

var fenceMarker = regexp.MustCompile("(?i)```[a-z]*")

// StripCodeFences removes markdown fence markers such as ```json and ```.
func StripCodeFences(raw string) string {
	return strings.TrimSpace(fenceMarker.ReplaceAllString(raw, ""))
}

// Extract recovers a JSON value of the given shape from model output. It
// tries the cleaned text as a whole first, then every balanced span that
// opens with the shape's bracket, in order of appearance. Valid JSON of the
// wrong shape is scanned the same way, so an object wrapped in an array is
// still found.
func Extract(raw string, shape Shape) ([]byte, error) {
	text := StripCodeFences(raw)
	if text == "" {
		return nil, &MalformedResponseError{Reason: "empty response"}
	}

	if json.Valid([]byte(text)) && hasShape([]byte(text), shape) {
		return []byte(text), nil
	}

	open := shape.open()
	for start := strings.IndexByte(text, open); start >= 0; start = nextOpen(text, start, open) {
		end := balancedEnd(text, start)
		if end < 0 {
			// a stray bracket in prose; a later one may still open the payload
			continue
		}
		span := []byte(text[start : end+1])
		if json.Valid(span) {
			return span, nil
		}
	}

	return nil, &MalformedResponseError{Reason: "no balanced JSON " + shape.String() + " found"}
}

func nextOpen(text string, start int, open byte) int {
	next := strings.IndexByte(text[start+1:], open)
	if next < 0 {
		return -1
	}
	return start + 1 + next
}

// ExtractInto extracts and decodes into v.
func ExtractInto(raw string, shape Shape, v any) error {
	data, err := Extract(raw, shape)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &MalformedResponseError{Reason: "decode " + shape.String(), Err: err}
	}
	return nil
}

func hasShape(data []byte, shape Shape) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == shape.open()
}

// balancedEnd returns the index of the bracket closing the one at start, or
// -1. Brackets inside string literals are ignored.
func balancedEnd(text string, start int) int {
	var (
		depth    int
		inString bool
		escaped  bool
	)
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return i
			}
			if depth < 0 {
				return -1
			}
		}
	}
	return -1
}
