// File: natural.go
// Title: Natural Language Dates
// Description: Resolves English expressions such as "tomorrow", "next monday"
//              or "in 3 days at 5pm" against the engine clock in the call's
//              timezone.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-03
// Modified: 2025-08-03
//
// Change History:
// - 2025-08-03 v0.1.0: Initial implementation on olebedev/when

package chronal

import (
	"strings"
	"sync"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	chronerror "github.com/msto63/chronal/core/error"
	"github.com/msto63/chronal/core/log"
)

var (
	naturalOnce   sync.Once
	naturalParser *when.Parser
	naturalMu     sync.Mutex
)

func natural() *when.Parser {
	naturalOnce.Do(func() {
		naturalParser = when.New(nil)
		naturalParser.Add(en.All...)
		naturalParser.Add(common.All...)
	})
	return naturalParser
}

// ParseNatural resolves a natural language expression relative to now. Text
// without a recognizable date is INVALID_DATE.
func (e *Engine) ParseNatural(text string, opts ...CallOption) (Instant, error) {
	f, _, err := e.formatter(opts)
	if err != nil {
		return 0, err
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, invalidDate("chronal.ParseNatural", text)
	}

	base := f.Time(int64(e.Now()))

	naturalMu.Lock()
	r, err := natural().Parse(trimmed, base)
	naturalMu.Unlock()

	if err != nil {
		return 0, chronerror.Wrap(err, "natural language parse failed").
			WithCode(chronerror.CodeInvalidDate).
			WithOperation("chronal.ParseNatural").
			WithDetail("input", text)
	}
	if r == nil {
		return 0, invalidDate("chronal.ParseNatural", text)
	}

	e.logger.Debug("natural date resolved", log.Field("input", trimmed), log.Field("matched", r.Text))
	return FromTime(r.Time), nil
}

// ParseNatural uses the default engine
func ParseNatural(text string, opts ...CallOption) (Instant, error) {
	return Default().ParseNatural(text, opts...)
}
