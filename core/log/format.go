// File: format.go
// Title: Log Format Definitions
// Description: Output formats for log messages: JSON for machines, plain text,
//              logfmt, and a console format with colored levels rendered by
//              lipgloss.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple output formats
// - 2025-08-02 v0.2.0: Console format uses lipgloss styles instead of raw ANSI codes

package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON outputs one JSON object per line
	FormatJSON Format = iota

	// FormatText outputs human-readable text logs
	FormatText

	// FormatConsole outputs colored logs for terminals
	FormatConsole

	// FormatLogfmt outputs key=value pairs
	FormatLogfmt
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatConsole:
		return "console"
	case FormatLogfmt:
		return "logfmt"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	case "console":
		return FormatConsole, nil
	case "logfmt":
		return FormatLogfmt, nil
	default:
		return FormatText, &ParseError{
			Input: format,
			Type:  "format",
		}
	}
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns the formatter for a format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	case FormatLogfmt:
		return &LogfmtFormatter{TimestampFormat: time.RFC3339}
	default:
		return &TextFormatter{TimestampFormat: time.RFC3339}
	}
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format formats a log entry as JSON
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+5)
	for k, v := range entry.Fields {
		data[k] = fieldValue(v)
	}

	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message
	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if entry.Error != nil {
		data["error"] = entry.Error.Error()
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// TextFormatter formats log entries as "time LVL [logger] message k=v"
type TextFormatter struct {
	TimestampFormat string
}

// Format formats a log entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder
	b.WriteString(entry.Timestamp.Format(f.TimestampFormat))
	b.WriteByte(' ')
	b.WriteString(entry.Level.ShortString())
	if entry.Logger != "" {
		fmt.Fprintf(&b, " [%s]", entry.Logger)
	}
	b.WriteByte(' ')
	b.WriteString(entry.Message)
	writePairs(&b, entry)
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// LogfmtFormatter formats log entries as logfmt
type LogfmtFormatter struct {
	TimestampFormat string
}

// Format formats a log entry as logfmt
func (f *LogfmtFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "time=%s level=%s", entry.Timestamp.Format(f.TimestampFormat), entry.Level)
	if entry.Logger != "" {
		fmt.Fprintf(&b, " logger=%s", quoteIfNeeded(entry.Logger))
	}
	fmt.Fprintf(&b, " msg=%s", quoteIfNeeded(entry.Message))
	writePairs(&b, entry)
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// ConsoleFormatter renders entries for interactive terminals
type ConsoleFormatter struct {
	TimestampFormat string
	levelStyles     map[Level]lipgloss.Style
	dim             lipgloss.Style
}

// NewConsoleFormatter creates a console formatter with the default palette
func NewConsoleFormatter() *ConsoleFormatter {
	base := lipgloss.NewStyle().Bold(true)
	return &ConsoleFormatter{
		TimestampFormat: "15:04:05.000",
		levelStyles: map[Level]lipgloss.Style{
			LevelTrace: base.Foreground(lipgloss.Color("8")),
			LevelDebug: base.Foreground(lipgloss.Color("6")),
			LevelInfo:  base.Foreground(lipgloss.Color("2")),
			LevelWarn:  base.Foreground(lipgloss.Color("3")),
			LevelError: base.Foreground(lipgloss.Color("1")),
		},
		dim: lipgloss.NewStyle().Faint(true),
	}
}

// Format formats a log entry for the console
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder
	b.WriteString(f.dim.Render(entry.Timestamp.Format(f.TimestampFormat)))
	b.WriteByte(' ')
	style, ok := f.levelStyles[entry.Level]
	if !ok {
		style = lipgloss.NewStyle()
	}
	b.WriteString(style.Render(entry.Level.ShortString()))
	if entry.Logger != "" {
		b.WriteByte(' ')
		b.WriteString(f.dim.Render(entry.Logger))
	}
	b.WriteByte(' ')
	b.WriteString(entry.Message)
	writePairs(&b, entry)
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func writePairs(b *strings.Builder, entry *Entry) {
	for _, k := range entry.Fields.SortedKeys() {
		fmt.Fprintf(b, " %s=%s", k, quoteIfNeeded(fmt.Sprint(fieldValue(entry.Fields[k]))))
	}
	if entry.Error != nil {
		fmt.Fprintf(b, " error=%s", quoteIfNeeded(entry.Error.Error()))
	}
}

func fieldValue(v interface{}) interface{} {
	switch val := v.(type) {
	case error:
		return val.Error()
	case time.Duration:
		return val.String()
	case time.Time:
		return val.Format(time.RFC3339Nano)
	default:
		return v
	}
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\"=") {
		return fmt.Sprintf("%q", s)
	}
	return s
}
