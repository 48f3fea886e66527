// File: format.go
// Title: Pattern Formatting
// Description: Compiles token patterns such as "YYYY-MM-DD HH:mm:ss" into a
//              program of literal and token segments, caches the program per
//              pattern and renders instants through it. Text inside [brackets]
//              is copied verbatim.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-03
// Modified: 2025-08-03
//
// Change History:
// - 2025-08-03 v0.1.0: Initial implementation

package chronal

import (
	"strconv"
	"strings"

	"github.com/msto63/chronal/internal/locale"
	"github.com/msto63/chronal/internal/zone"
)

// Common patterns
const (
	PatternISODate     = "YYYY-MM-DD"
	PatternISODateTime = "YYYY-MM-DD[T]HH:mm:ss"
	PatternDateTime    = "YYYY-MM-DD HH:mm:ss"
	PatternTime        = "HH:mm:ss"
	PatternLong        = "dddd, MMMM Do YYYY"
	PatternLog         = "YYYY-MM-DD HH:mm:ss.SSS"
)

// NameStyle selects long, short or narrow month and weekday names
type NameStyle = locale.Style

const (
	NameLong   = locale.Long
	NameShort  = locale.Short
	NameNarrow = locale.Narrow
)

// tokens in match order, longer spellings before their prefixes
var tokens = []string{
	"YYYY", "MMMM", "MMM", "YY", "MM", "M",
	"Do", "DD", "D",
	"dddd", "ddd",
	"HH", "H", "mm", "m", "ss", "s", "SSS",
}

type segment struct {
	literal string
	token   string
}

// program is a compiled pattern
type program struct {
	segments   []segment
	needsNames bool
}

func (p *program) appendLiteral(s string) {
	if s == "" {
		return
	}
	if n := len(p.segments); n > 0 && p.segments[n-1].token == "" {
		p.segments[n-1].literal += s
		return
	}
	p.segments = append(p.segments, segment{literal: s})
}

// scan splits unbracketed text into tokens and literals
func (p *program) scan(text string) {
	start := 0
	for i := 0; i < len(text); {
		matched := ""
		for _, tok := range tokens {
			if strings.HasPrefix(text[i:], tok) {
				matched = tok
				break
			}
		}
		if matched == "" {
			i++
			continue
		}
		p.appendLiteral(text[start:i])
		p.segments = append(p.segments, segment{token: matched})
		switch matched {
		case "MMM", "MMMM", "ddd", "dddd", "Do":
			p.needsNames = true
		}
		i += len(matched)
		start = i
	}
	p.appendLiteral(text[start:])
}

// compile builds the program of a pattern. "[" opens a literal run that the
// next "]" closes, brackets inside a run are kept as text, so
// "[[[x]]]" renders as "[[x]]". A run left open at the end is scanned for
// tokens.
func compile(pattern string) *program {
	p := &program{}
	if !strings.Contains(pattern, "[") {
		p.scan(pattern)
		return p
	}

	var current strings.Builder
	inBracket := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '[' && !inBracket:
			p.scan(current.String())
			current.Reset()
			inBracket = true
		case c == ']' && inBracket:
			p.appendLiteral(current.String())
			current.Reset()
			inBracket = false
		default:
			current.WriteByte(c)
		}
	}
	p.scan(current.String())
	return p
}

func pad2(n int) string {
	if n >= 0 && n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// render executes the program against wall-clock fields
func (p *program) render(w zone.Fields, names *locale.Data) string {
	var b strings.Builder
	for _, seg := range p.segments {
		if seg.token == "" {
			b.WriteString(seg.literal)
			continue
		}
		switch seg.token {
		case "YYYY":
			b.WriteString(pad(w.Year, 4))
		case "YY":
			b.WriteString(pad2(int(zone.FloorMod(int64(w.Year), 100))))
		case "M":
			b.WriteString(strconv.Itoa(w.Month))
		case "MM":
			b.WriteString(pad2(w.Month))
		case "MMM":
			b.WriteString(names.Months.Short[w.Month-1])
		case "MMMM":
			b.WriteString(names.Months.Long[w.Month-1])
		case "D":
			b.WriteString(strconv.Itoa(w.Day))
		case "DD":
			b.WriteString(pad2(w.Day))
		case "Do":
			b.WriteString(names.OrdinalOf(w.Day))
		case "ddd":
			b.WriteString(names.Weekdays.Short[zone.MondayIndex(int(w.Weekday))])
		case "dddd":
			b.WriteString(names.Weekdays.Long[zone.MondayIndex(int(w.Weekday))])
		case "H":
			b.WriteString(strconv.Itoa(w.Hour))
		case "HH":
			b.WriteString(pad2(w.Hour))
		case "m":
			b.WriteString(strconv.Itoa(w.Minute))
		case "mm":
			b.WriteString(pad2(w.Minute))
		case "s":
			b.WriteString(strconv.Itoa(w.Second))
		case "ss":
			b.WriteString(pad2(w.Second))
		case "SSS":
			b.WriteString(pad(w.Millisecond, 3))
		}
	}
	return b.String()
}

// compiled returns the cached program of a pattern
func (e *Engine) compiled(pattern string) *program {
	p, _, _ := e.programs.Get(pattern, func() (*program, error) {
		return compile(pattern), nil
	})
	return p
}

// FormatDate renders i with a token pattern in the call's timezone and
// locale. Fails only for an unknown timezone or a malformed locale.
func (e *Engine) FormatDate(i Instant, pattern string, opts ...CallOption) (string, error) {
	f, s, err := e.formatter(opts)
	if err != nil {
		return "", err
	}

	p := e.compiled(pattern)
	var names *locale.Data
	if p.needsNames {
		if names, _, err = e.catalog.Resolve(s.Locale); err != nil {
			return "", err
		}
	}
	return p.render(f.Fields(int64(i)), names), nil
}

// FormatDate uses the default engine
func FormatDate(i Instant, pattern string, opts ...CallOption) (string, error) {
	return Default().FormatDate(i, pattern, opts...)
}

// Months returns the twelve month names for style and locale
func (e *Engine) Months(style NameStyle, opts ...CallOption) ([]string, error) {
	s, _ := e.resolve(opts)
	return e.catalog.Names("month", style, s.Locale)
}

// Weekdays returns the seven weekday names starting with Monday
func (e *Engine) Weekdays(style NameStyle, opts ...CallOption) ([]string, error) {
	s, _ := e.resolve(opts)
	return e.catalog.Names("weekday", style, s.Locale)
}

// Months uses the default engine
func Months(style NameStyle, opts ...CallOption) ([]string, error) {
	return Default().Months(style, opts...)
}

// Weekdays uses the default engine
func Weekdays(style NameStyle, opts ...CallOption) ([]string, error) {
	return Default().Weekdays(style, opts...)
}
