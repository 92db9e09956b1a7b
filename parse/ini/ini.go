package ini

// Package ini implements a line-oriented INI-style configuration parser with
// deterministic type inference and a post-parse query API.
//
// Scope:
// - Sections, key/value assignments, comments (# and ;)
// - Typed scalars (string / integer / float / boolean)
// - Homogeneous arrays with a shared element type
// - Strict and lenient error policies
// - Post-parse validation against size and syntax limits
//
// Non-goals (by design):
// - Nested sections or inline tables
// - Multiline strings
// - Escape-sequence processing
// - Commas inside quoted array elements
//
// This implementation is suitable for production use as a configuration
// ingestion layer.

import (
	"bufio"
	"errors"
	"io"
	"math"
	"strings"
)

// =========================
// Public API
// =========================

// Parser carries the parse policy. Strict aborts a session on the first
// error; lenient skips offending lines and keeps going. Limits bound entry
// count, array size and the lengths checked by Validate.
type Parser struct {
	Strict bool
	Limits Limits
}

// NewParser returns a Parser with the default limits.
func NewParser(strict bool) *Parser {
	return &Parser{Strict: strict, Limits: DefaultLimits()}
}

// Parse consumes r line by line and returns the populated Config. In strict
// mode the first error aborts the session; the returned Config still holds
// every entry parsed before the failing line, so earlier entries stay
// queryable.
func (p *Parser) Parse(r io.Reader) (*Config, error) {
	s := &session{
		strict: p.Strict,
		limits: p.Limits,
		cfg:    newConfig(p.Limits),
	}

	scanner := bufio.NewScanner(r)
	// lines may be arbitrarily long; the default 64KB token limit would
	// abort the session instead of letting the validator judge the value
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for scanner.Scan() {
		s.lineNo++
		if err := s.parseLine(scanner.Text()); err != nil {
			return s.cfg, err
		}
	}
	if err := scanner.Err(); err != nil {
		return s.cfg, err
	}

	return s.cfg, nil
}

// ParseString is the whole-blob variant of Parse.
func (p *Parser) ParseString(text string) (*Config, error) {
	return p.Parse(strings.NewReader(text))
}

// =========================
// Session
// =========================

// session is the per-parse state: the store under construction, the current
// section and the line counter. Sessions are single-use and must not be
// shared across goroutines.
type session struct {
	strict  bool
	limits  Limits
	cfg     *Config
	section string
	lineNo  int
}

// parseLine classifies one line and updates the session. Blank lines and
// comments produce nothing; a section header replaces the current section;
// anything with an '=' is an assignment. A non-nil return aborts the parse.
func (s *session) parseLine(line string) error {
	trimmed := strings.TrimSpace(line)

	if trimmed == "" {
		return nil
	}
	if trimmed[0] == '#' || trimmed[0] == ';' {
		return nil
	}
	if len(trimmed) >= 2 && trimmed[0] == '[' && trimmed[len(trimmed)-1] == ']' {
		return s.enterSection(trimmed)
	}

	idx := strings.Index(trimmed, "=")
	if idx < 0 {
		return s.fail(perr(ErrInvalidSyntax, "no '=' found"))
	}

	key := strings.TrimSpace(trimmed[:idx])
	if !validKey(key, s.limits.MaxKeyLen) {
		return s.fail(perr(ErrInvalidKey, "invalid key %q", key))
	}

	value, err := ParseValue(trimmed[idx+1:], s.limits)
	if err != nil {
		return s.fail(err)
	}

	if err := s.cfg.append(Entry{Key: key, Section: s.section, Value: value}); err != nil {
		return s.fail(err)
	}
	return nil
}

// enterSection extracts the name between the brackets. The name persists as
// the current section until the next header.
func (s *session) enterSection(trimmed string) error {
	name := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	if name == "" {
		return s.fail(perr(ErrMalformedSection, "empty section name"))
	}
	s.section = name
	return nil
}

// fail stamps the current line number onto the error and applies the
// propagation policy: strict surfaces it, lenient skips the line.
func (s *session) fail(err error) error {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Line == 0 {
		pe.Line = s.lineNo
	}
	if s.strict {
		return err
	}
	return nil
}
