// File: catalog.go
// Title: Locale Catalog
// Description: Month and weekday names, ordinal formats and relative time
//              phrases per language, loaded from embedded TOML and YAML files
//              and optionally extended at runtime. Locale identifiers are
//              BCP 47 tags matched against the loaded languages, unknown
//              languages fall back to English.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

// Package locale provides month/weekday names and relative time phrases.
package locale

import (
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	chronerror "github.com/msto63/chronal/core/error"
)

//go:embed locales/*.toml locales/*.yaml
var embedded embed.FS

// Fallback is the language used when nothing better matches
const Fallback = "en"

// Style selects the width of month and weekday names
type Style string

const (
	Long   Style = "long"
	Short  Style = "short"
	Narrow Style = "narrow"
)

// ParseStyle parses "long", "short" or "narrow"; empty means long
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case "", Long:
		return Long, nil
	case Short:
		return Short, nil
	case Narrow:
		return Narrow, nil
	}
	return "", chronerror.New("unknown name style").
		WithCode(chronerror.CodeInvalidInput).
		WithOperation("locale.ParseStyle").
		WithDetail("style", s)
}

// NameSet holds the three widths of a name list
type NameSet struct {
	Long   []string `toml:"long" yaml:"long"`
	Short  []string `toml:"short" yaml:"short"`
	Narrow []string `toml:"narrow" yaml:"narrow"`
}

func (n NameSet) get(style Style) []string {
	switch style {
	case Short:
		return n.Short
	case Narrow:
		return n.Narrow
	default:
		return n.Long
	}
}

// Plural holds singular and plural printf templates with one %d verb
type Plural struct {
	One   string `toml:"one" yaml:"one"`
	Other string `toml:"other" yaml:"other"`
}

// RelativeData holds relative time phrasing
type RelativeData struct {
	Now    string                       `toml:"now" yaml:"now"`
	Past   string                       `toml:"past" yaml:"past"`
	Future string                       `toml:"future" yaml:"future"`
	Units  map[string]Plural            `toml:"units" yaml:"units"`
	Auto   map[string]map[string]string `toml:"auto" yaml:"auto"`
}

// Data is the catalog entry of one language
type Data struct {
	Tag      string       `toml:"tag" yaml:"tag"`
	Ordinal  string       `toml:"ordinal" yaml:"ordinal"`
	Months   NameSet      `toml:"months" yaml:"months"`
	Weekdays NameSet      `toml:"weekdays" yaml:"weekdays"`
	Relative RelativeData `toml:"relative" yaml:"relative"`
}

// Validate checks name list lengths and relative templates
func (d *Data) Validate() error {
	fail := func(msg string) error {
		return chronerror.New(msg).
			WithCode(chronerror.CodeInvalidLocale).
			WithOperation("locale.Data.Validate").
			WithDetail("tag", d.Tag)
	}

	if _, err := language.Parse(d.Tag); err != nil {
		return fail("malformed language tag")
	}
	for _, style := range []Style{Long, Short, Narrow} {
		if len(d.Months.get(style)) != 12 {
			return fail(fmt.Sprintf("%s month names must have 12 entries", style))
		}
		if len(d.Weekdays.get(style)) != 7 {
			return fail(fmt.Sprintf("%s weekday names must have 7 entries", style))
		}
	}
	if !strings.Contains(d.Relative.Past, "%s") || !strings.Contains(d.Relative.Future, "%s") {
		return fail("relative past/future templates need a %s verb")
	}
	return nil
}

// OrdinalOf renders n as an ordinal ("1st", "1.", "1º")
func (d *Data) OrdinalOf(n int) string {
	if d.Ordinal == "" {
		return humanize.Ordinal(n)
	}
	return fmt.Sprintf(d.Ordinal, n)
}

// Catalog is a set of languages with BCP 47 matching
type Catalog struct {
	mu      sync.RWMutex
	byTag   map[string]*Data
	tags    []language.Tag
	keys    []string
	matcher language.Matcher
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the shared catalog of embedded languages
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := NewCatalog()
		if err != nil {
			panic(fmt.Sprintf("locale: embedded catalog is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// NewCatalog returns a catalog holding the embedded languages
func NewCatalog() (*Catalog, error) {
	c := &Catalog{byTag: make(map[string]*Data)}

	entries, err := embedded.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		content, err := embedded.ReadFile(path.Join("locales", entry.Name()))
		if err != nil {
			return nil, err
		}
		data, err := decode(entry.Name(), content)
		if err != nil {
			return nil, err
		}
		if err := c.Register(data); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadFile adds or replaces a language from a TOML or YAML file
func (c *Catalog) LoadFile(filePath string) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return chronerror.Wrap(err, "reading locale file").
			WithCode(chronerror.CodeNotFound).
			WithOperation("locale.LoadFile").
			WithDetail("filePath", filePath)
	}
	data, err := decode(filepath.Base(filePath), content)
	if err != nil {
		return err
	}
	return c.Register(data)
}

func decode(name string, content []byte) (*Data, error) {
	data := &Data{}
	var err error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, data)
	default:
		err = toml.Unmarshal(content, data)
	}
	if err != nil {
		return nil, chronerror.Wrap(err, "decoding locale file").
			WithCode(chronerror.CodeInvalidLocale).
			WithOperation("locale.decode").
			WithDetail("file", name)
	}
	return data, nil
}

// Register adds or replaces a language
func (c *Catalog) Register(data *Data) error {
	if data == nil {
		return chronerror.New("nil locale data").
			WithCode(chronerror.CodeInvalidInput).
			WithOperation("locale.Register")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	tag := language.Make(data.Tag)
	key := tag.String()

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.byTag[key]; !exists {
		c.tags = append(c.tags, tag)
		c.keys = append(c.keys, key)
	}
	c.byTag[key] = data
	c.rebuildMatcher()
	return nil
}

// rebuildMatcher keeps the fallback language first so it wins ties
func (c *Catalog) rebuildMatcher() {
	ordered := make([]language.Tag, 0, len(c.tags))
	keys := make([]string, 0, len(c.keys))
	for i, k := range c.keys {
		if k == Fallback {
			ordered = append(ordered, c.tags[i])
			keys = append(keys, k)
		}
	}
	for i, k := range c.keys {
		if k != Fallback {
			ordered = append(ordered, c.tags[i])
			keys = append(keys, k)
		}
	}
	c.tags, c.keys = ordered, keys
	c.matcher = language.NewMatcher(c.tags)
}

// Resolve returns the language data best matching a BCP 47 locale. A
// malformed locale is INVALID_LOCALE. A well formed one with no match yields
// the fallback language with matched set to false.
func (c *Catalog) Resolve(locale string) (data *Data, matched bool, err error) {
	if strings.TrimSpace(locale) == "" {
		locale = Fallback
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, false, chronerror.Wrap(err, "malformed locale").
			WithCode(chronerror.CodeInvalidLocale).
			WithOperation("locale.Resolve").
			WithDetail("locale", locale)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	_, index, confidence := c.matcher.Match(tag)
	if confidence == language.No || index < 0 || index >= len(c.keys) {
		return c.byTag[Fallback], false, nil
	}
	return c.byTag[c.keys[index]], true, nil
}

// Names returns the 12 month or 7 weekday names (Monday first)
func (c *Catalog) Names(unit string, style Style, locale string) ([]string, error) {
	data, _, err := c.Resolve(locale)
	if err != nil {
		return nil, err
	}

	var set NameSet
	switch unit {
	case "month":
		set = data.Months
	case "weekday":
		set = data.Weekdays
	default:
		return nil, chronerror.New("names are only available for month and weekday").
			WithCode(chronerror.CodeUnsupportedUnit).
			WithOperation("locale.Names").
			WithDetail("unit", unit)
	}

	names := set.get(style)
	out := make([]string, len(names))
	copy(out, names)
	return out, nil
}

// Languages returns the loaded language tags, sorted
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, len(c.keys))
	copy(out, c.keys)
	sort.Strings(out)
	return out
}
