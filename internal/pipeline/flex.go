package pipeline

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)`)

// parseLeadingFloat accepts "4.5", " 4.5/5" or "3 people" and reports whether
// any number was found.
func parseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, true
	}
	m := leadingNumber.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FlexNumber accepts a JSON number or a numeric string. Present is false for
// a missing, null or empty value; Valid is false when something was sent but
// no number could be read from it.
type FlexNumber struct {
	Value   float64
	Present bool
	Valid   bool
}

func Number(v float64) FlexNumber { return FlexNumber{Value: v, Present: true, Valid: true} }

func (n *FlexNumber) UnmarshalJSON(b []byte) error {
	*n = FlexNumber{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			return nil
		}
		n.Present = true
		n.Value, n.Valid = parseLeadingFloat(s)
		return nil
	}
	n.Present = true
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return nil
	}
	n.Value, n.Valid = v, true
	return nil
}

func (n FlexNumber) MarshalJSON() ([]byte, error) {
	if !n.Present || !n.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(n.Value, 'f', -1, 64)), nil
}

// FlexString renders whatever scalar the model produced as text. Objects and
// arrays are kept as their raw JSON.
type FlexString struct {
	Value   string
	Present bool
}

func (s *FlexString) UnmarshalJSON(b []byte) error {
	*s = FlexString{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	s.Present = true
	if b[0] == '"' {
		return json.Unmarshal(b, &s.Value)
	}
	s.Value = string(b)
	return nil
}

// Text returns the trimmed value, empty when absent.
func (s FlexString) Text() string {
	return strings.TrimSpace(s.Value)
}

// FlexFloat reads ratings such as 4.5, "4.5" or "4.5/5".
type FlexFloat struct {
	Value float64
	Raw   string
	Valid bool
}

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	var s FlexString
	if err := s.UnmarshalJSON(b); err != nil {
		return err
	}
	*f = FlexFloat{Raw: s.Text()}
	if !s.Present {
		return nil
	}
	f.Value, f.Valid = parseLeadingFloat(s.Value)
	return nil
}
