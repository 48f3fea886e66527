// File: parse.go
// Title: Date Parsing
// Description: Parses text into an Instant, either against a token pattern
//              ("DD.MM.YYYY HH:mm") or by trying a list of common layouts.
//              Layout matches without an explicit offset are read as wall
//              clock time in the call's timezone. Zone abbreviations resolve
//              through a fixed table, never through the host zone.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-03
// Modified: 2025-08-04
//
// Change History:
// - 2025-08-03 v0.1.0: Initial implementation
// - 2025-08-04 v0.2.0: Host independent zone abbreviations

package chronal

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	chronerror "github.com/msto63/chronal/core/error"
	"github.com/msto63/chronal/core/log"
	"github.com/msto63/chronal/internal/zone"
)

// Layouts carrying an offset or zone, tried first
var offsetLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05 -0700",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC850,
	time.UnixDate,
	time.RubyDate,
}

// zoneAbbreviations maps the abbreviations accepted in offset layouts to
// their UTC offset in hours. Abbreviations outside the table are rejected.
var zoneAbbreviations = map[string]int{
	"UTC": 0, "UT": 0, "GMT": 0, "Z": 0,
	"EST": -5, "EDT": -4,
	"CST": -6, "CDT": -5,
	"MST": -7, "MDT": -6,
	"PST": -8, "PDT": -7,
	"AKST": -9, "AKDT": -8,
	"HST": -10,
	"WET": 0, "WEST": 1,
	"CET": 1, "CEST": 2,
	"EET": 2, "EEST": 3,
	"JST": 9,
}

// parseOffsetLayout parses text in layout without consulting the host zone.
// A zero offset with an abbreviation is looked up in zoneAbbreviations.
func parseOffsetLayout(layout, text string) (Instant, bool) {
	t, err := time.ParseInLocation(layout, text, time.UTC)
	if err != nil {
		return 0, false
	}
	name, off := t.Zone()
	if off != 0 || name == "" {
		return FromTime(t), true
	}
	hours, ok := zoneAbbreviations[name]
	if !ok {
		return 0, false
	}
	return FromTime(t) - Instant(int64(hours)*MillisPerHour), true
}

// Layouts without offset, interpreted in the call's timezone
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01",
	"20060102T150405",
	"January 2, 2006 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"01/02/2006 15:04:05",
	"01/02/2006",
	time.ANSIC,
}

// patternParser is a compiled parse pattern
type patternParser struct {
	re    *regexp.Regexp
	order []string
}

// parseTokens in match order with their capture expressions
var parseTokens = []struct {
	token string
	expr  string
}{
	{"YYYY", `(\d{4})`},
	{"SSS", `(\d{3})`},
	{"MM", `(\d{2})`},
	{"DD", `(\d{2})`},
	{"HH", `(\d{2})`},
	{"mm", `(\d{2})`},
	{"ss", `(\d{2})`},
}

func compileParser(pattern string) (*patternParser, error) {
	var expr, literal strings.Builder
	var order []string

	flush := func() {
		expr.WriteString(regexp.QuoteMeta(literal.String()))
		literal.Reset()
	}

	expr.WriteString("^")
	for i := 0; i < len(pattern); {
		matched := false
		for _, pt := range parseTokens {
			if strings.HasPrefix(pattern[i:], pt.token) {
				flush()
				expr.WriteString(pt.expr)
				order = append(order, pt.token)
				i += len(pt.token)
				matched = true
				break
			}
		}
		if !matched {
			literal.WriteByte(pattern[i])
			i++
		}
	}
	flush()
	expr.WriteString("$")

	re, err := regexp.Compile(expr.String())
	if err != nil {
		return nil, chronerror.Wrap(err, "compiling parse pattern").
			WithCode(chronerror.CodeInvalidFormat).
			WithOperation("chronal.ParseDate").
			WithDetail("pattern", pattern)
	}
	return &patternParser{re: re, order: order}, nil
}

// parse matches text and builds a UTC instant. Absent or zero year means
// 1970, absent or zero month and day mean 1. Out of range values roll over.
func (p *patternParser) parse(text string) (Instant, bool) {
	m := p.re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}

	get := func(token string) int {
		for idx, t := range p.order {
			if t == token {
				n, _ := strconv.Atoi(m[idx+1])
				return n
			}
		}
		return 0
	}

	year := get("YYYY")
	if year == 0 {
		year = 1970
	}
	month := get("MM")
	if month == 0 {
		month = 1
	}
	day := get("DD")
	if day == 0 {
		day = 1
	}
	return DateUTC(year, month, day, get("HH"), get("mm"), get("ss"), get("SSS")), true
}

// ParseDate parses text into an Instant. With WithPattern the text must
// match the pattern exactly and is read as UTC wall clock. Otherwise common
// layouts are tried in turn. Unparseable text is INVALID_DATE.
func (e *Engine) ParseDate(text string, opts ...CallOption) (Instant, error) {
	s, o := e.resolve(opts)

	if o.pattern != "" {
		pp, _, err := e.parsers.Get(o.pattern, func() (*patternParser, error) {
			return compileParser(o.pattern)
		})
		if err != nil {
			return 0, err
		}
		i, ok := pp.parse(text)
		if !ok {
			return 0, invalidDate("chronal.ParseDate", text).WithDetail("pattern", o.pattern)
		}
		return i, nil
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, invalidDate("chronal.ParseDate", text)
	}

	for _, layout := range offsetLayouts {
		if i, ok := parseOffsetLayout(layout, trimmed); ok {
			e.logger.Trace("parsed with offset", log.Field("layout", layout), log.Instant("instant", int64(i)))
			return i, nil
		}
	}

	for _, layout := range localLayouts {
		t, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}
		f, err := e.zones.Get(s.Locale, s.Timezone)
		if err != nil {
			return 0, err
		}
		if f.IsUTC() {
			return FromTime(t), nil
		}
		i := Instant(f.LocalizeFields(zone.FieldsOf(t)))
		e.logger.Trace("parsed without offset, localized", log.Zone(s.Timezone), log.Field("layout", layout), log.Instant("instant", int64(i)))
		return i, nil
	}

	e.logger.Debug("no layout matched", log.Field("input", trimmed))
	return 0, invalidDate("chronal.ParseDate", text)
}

// IsValidDate reports whether ParseDate accepts text with the same options
func (e *Engine) IsValidDate(text string, opts ...CallOption) bool {
	_, err := e.ParseDate(text, opts...)
	return err == nil
}

// ParseDate uses the default engine
func ParseDate(text string, opts ...CallOption) (Instant, error) {
	return Default().ParseDate(text, opts...)
}

// IsValidDate uses the default engine
func IsValidDate(text string, opts ...CallOption) bool {
	return Default().IsValidDate(text, opts...)
}
