// Package inference heuristically associates user-defined entities with
// the base class they declare, by scanning source text line by line.
//
// This is not a parser. The scan cannot see through string literals,
// block comments spanning a marker, or declarations split across lines,
// and parameterized declarations may not be captured. Those are
// accepted trade-offs; the two guarantees the scanner does make are
// that a single unmatched line never fails a scan, and that state is
// reset at the start of every source unit.
package inference

import (
	"regexp"
	"strings"
)

// Source is one source unit to scan.
type Source struct {
	// Name identifies the unit, typically its file path.
	Name string
	// Text is the full source text.
	Text string
}

// Options configures the marker tokens the scanner reacts to. Zero
// values fall back to the godot-rust conventions.
type Options struct {
	// BaseMarker is the token of a base-declaration line. Default "base".
	BaseMarker string
	// EntityMarker is the token of an entity-declaration line.
	// Default "struct".
	EntityMarker string
	// DocComment is the prefix of documentation-comment lines, which are
	// ignored for both transitions. Default "///".
	DocComment string
}

func (o Options) withDefaults() Options {
	if o.BaseMarker == "" {
		o.BaseMarker = "base"
	}
	if o.EntityMarker == "" {
		o.EntityMarker = "struct"
	}
	if o.DocComment == "" {
		o.DocComment = "///"
	}
	return o
}

// Scanner scans source units for base-class declarations.
type Scanner struct {
	opts     Options
	baseRe   *regexp.Regexp
	entityRe *regexp.Regexp
}

// NewScanner compiles the narrow extraction patterns for the given
// markers.
func NewScanner(opts Options) *Scanner {
	opts = opts.withDefaults()
	return &Scanner{
		opts: opts,
		// identifier immediately following the equality marker
		baseRe: regexp.MustCompile(regexp.QuoteMeta(opts.BaseMarker) + `\s*=\s*([A-Za-z_][A-Za-z0-9_]*)`),
		// identifier immediately following the entity marker
		entityRe: regexp.MustCompile(regexp.QuoteMeta(opts.EntityMarker) + `\s+([A-Za-z_][A-Za-z0-9_]*)`),
	}
}

// scan state, reset per source unit
type state int

const (
	idle state = iota
	baseSeen
)

// Scan builds the map of base-class name to the entities declaring that
// base, across all source units.
//
// Per unit, the scan is a two-state machine. A non-doc-comment line
// containing both the base marker and "=" moves it to baseSeen and
// creates the base key (possibly with no entities, if no declaration
// ever follows). The next non-doc-comment line containing the entity
// marker records the pair and moves back to idle. Lines matching
// neither transition leave the state unchanged, so gaps between the two
// declarations are tolerated. A line whose identifier cannot be
// isolated is skipped without changing state.
func (s *Scanner) Scan(sources []Source) map[string][]string {
	baseClasses := make(map[string][]string)

	for _, src := range sources {
		st := idle
		base := ""

		for _, line := range strings.Split(src.Text, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), s.opts.DocComment) {
				continue
			}

			switch {
			case strings.Contains(line, s.opts.BaseMarker) && strings.Contains(line, "="):
				m := s.baseRe.FindStringSubmatch(line)
				if m == nil {
					continue
				}
				base = m[1]
				if _, ok := baseClasses[base]; !ok {
					baseClasses[base] = []string{}
				}
				st = baseSeen
			case st == baseSeen && strings.Contains(line, s.opts.EntityMarker):
				m := s.entityRe.FindStringSubmatch(line)
				if m == nil {
					continue
				}
				baseClasses[base] = append(baseClasses[base], m[1])
				st = idle
			}
		}
	}

	return baseClasses
}

// Scan runs a one-off scan with default options.
func Scan(sources []Source) map[string][]string {
	return NewScanner(Options{}).Scan(sources)
}
