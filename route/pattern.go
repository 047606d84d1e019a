// Package route implements the path-pattern matcher that dispatches
// requests to handlers and extracts path parameters.
package route

import (
	"strings"

	"github.com/pkg/errors"
)

// Pattern is the structural description of an acceptable request path.
// It takes exactly one of three forms: the literal root "/", a
// sequence of literal and single-segment variable segments, or one
// variable capturing the whole path.
type Pattern struct {
	root  bool
	whole string // whole-path variable name, when set.
	segs  []segment
}

// segment is one element of a segment-sequence pattern: a fixed
// literal or a named variable matching any single path segment.
type segment struct {
	literal string
	varName string
}

// Parse parses the pattern syntax:
//
//	"/"            the root path, and only the root path
//	"/user/:name"  literal segments mixed with single-segment variables
//	"*rest"        one variable bound to the entire path
//
// The leading slash on segment patterns is optional.
func Parse(s string) (Pattern, error) {
	if s == "" {
		return Pattern{}, errors.New("pattern is empty")
	}

	if s == "/" {
		return Pattern{root: true}, nil
	}

	if strings.HasPrefix(s, "*") {
		name := s[1:]
		if name == "" {
			return Pattern{}, errors.New("whole-path variable has no name")
		}
		if strings.Contains(name, "/") {
			return Pattern{}, errors.Errorf("whole-path variable name contains '/': %q", name)
		}
		return Pattern{whole: name}, nil
	}

	parts := strings.Split(strings.TrimPrefix(s, "/"), "/")
	segs := make([]segment, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return Pattern{}, errors.Errorf("pattern has an empty segment: %q", s)
		}

		if name, found := strings.CutPrefix(part, ":"); found {
			if name == "" {
				return Pattern{}, errors.Errorf("variable segment has no name: %q", s)
			}
			segs = append(segs, segment{varName: name})
			continue
		}

		segs = append(segs, segment{literal: part})
	}

	return Pattern{segs: segs}, nil
}

// MustParse is [Parse] for table literals built at startup.
// It panics on a malformed pattern.
func MustParse(s string) Pattern {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Match checks path against the pattern's single structural form.
//
// Literal segments compare against the raw path segments byte-for-byte;
// no percent-decoding is applied on either side. A segment sequence
// matches only a path of exactly the same arity. A whole-path variable
// matches any path, binding the entire string including slashes.
func (p Pattern) Match(path string) (Params, bool) {
	switch {
	case p.root:
		return nil, path == "/"
	case p.whole != "":
		return Params{{Name: p.whole, Value: path}}, true
	}

	if path == "/" {
		// Only the root pattern matches the root path.
		return nil, false
	}

	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(parts) != len(p.segs) {
		return nil, false
	}

	var params Params
	for idx, seg := range p.segs {
		if seg.varName != "" {
			params = append(params, Param{Name: seg.varName, Value: parts[idx]})
			continue
		}

		if seg.literal != parts[idx] {
			return nil, false
		}
	}

	return params, true
}

// Param is one bound path variable.
type Param struct{ Name, Value string }

// Params holds path-variable bindings in pattern order.
type Params []Param

// Get returns the first binding with the given name.
func (ps Params) Get(name string) (string, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}
