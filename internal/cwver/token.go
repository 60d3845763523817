package cwver

import (
	"strings"

	"github.com/username/cwver/pkg/dateutil"
)

// Kind tells which representation a token was written in
type Kind int

const (
	KindVersion Kind = iota + 1
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindVersion:
		return "cwver"
	case KindDate:
		return "date"
	default:
		return "unknown"
	}
}

// Token is a user-supplied value in either notation. Exactly one of Version
// and Date is meaningful, selected by Kind.
type Token struct {
	Kind    Kind
	Raw     string
	Version Version
	Date    dateutil.Date
}

// ParseToken detects the notation of s and parses it. A 'w' marker selects
// the version grammar, '-' separators select YYYY-MM-DD.
func ParseToken(s string) (Token, error) {
	switch {
	case strings.Contains(s, "w"):
		v, err := Parse(s)
		if err != nil {
			return Token{}, err
		}
		return Token{Kind: KindVersion, Raw: s, Version: v}, nil
	case strings.Contains(s, "-"):
		d, err := dateutil.ParseDate(s)
		if err != nil {
			return Token{}, newError(s, ErrMalformed, "expected YYYY-MM-DD")
		}
		return Token{Kind: KindDate, Raw: s, Date: d}, nil
	default:
		return Token{}, newError(s, ErrMalformed, "expected <yy>w<ww>.<d> or YYYY-MM-DD")
	}
}

// ResolveDate returns the calendar date named by the token
func (c Converter) ResolveDate(t Token) (dateutil.Date, error) {
	if t.Kind == KindDate {
		return t.Date, nil
	}
	return c.ToDate(t.Version)
}

// Convert returns the token rewritten in the other notation
func (c Converter) Convert(t Token) (string, error) {
	switch t.Kind {
	case KindVersion:
		d, err := c.ToDate(t.Version)
		if err != nil {
			return "", err
		}
		return d.String(), nil
	case KindDate:
		v, err := c.FromDate(t.Date)
		if err != nil {
			return "", err
		}
		return v.String(), nil
	default:
		return "", newError(t.Raw, ErrMalformed, "unknown token kind")
	}
}
