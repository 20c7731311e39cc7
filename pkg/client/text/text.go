// Package text resolves display strings from per-locale YAML tables.
package text

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var builtin embed.FS

// Catalog holds one string table per locale. Lookups go to the active
// locale first and then to the base locale (the first one loaded).
type Catalog struct {
	tags    []language.Tag
	tables  map[language.Tag]map[string]string
	matcher language.Matcher
	active  language.Tag
}

// Builtin loads the tables shipped with the client.
func Builtin() (*Catalog, error) {
	sub, err := fs.Sub(builtin, "locales")
	if err != nil {
		return nil, err
	}
	return Load(sub, "en")
}

// Load reads every <tag>.yaml file in fsys. base names the locale used
// for missing keys and must be present.
func Load(fsys fs.FS, base string) (*Catalog, error) {
	baseTag, err := language.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("base locale %q: %w", base, err)
	}

	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, err
	}
	c := &Catalog{tables: make(map[language.Tag]map[string]string)}
	c.tags = append(c.tags, baseTag)
	for _, name := range files {
		tag, err := language.Parse(strings.TrimSuffix(path.Base(name), ".yaml"))
		if err != nil {
			return nil, fmt.Errorf("locale file %s: %w", name, err)
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		table := make(map[string]string)
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		c.tables[tag] = table
		if tag != baseTag {
			c.tags = append(c.tags, tag)
		}
	}
	if _, ok := c.tables[baseTag]; !ok {
		return nil, fmt.Errorf("no table for base locale %s", baseTag)
	}
	c.matcher = language.NewMatcher(c.tags)
	c.active = baseTag
	return c, nil
}

// SetLanguage activates the best table for a comma separated preference
// list such as "de-AT,en;q=0.8" and returns the tag it settled on.
func (c *Catalog) SetLanguage(pref string) language.Tag {
	desired, _, err := language.ParseAcceptLanguage(pref)
	if err != nil || len(desired) == 0 {
		c.active = c.tags[0]
		return c.active
	}
	_, index, _ := c.matcher.Match(desired...)
	c.active = c.tags[index]
	return c.active
}

func (c *Catalog) Language() language.Tag { return c.active }

// Text returns the string for key, or the key itself when no table has it.
func (c *Catalog) Text(key string) string {
	if s, ok := c.tables[c.active][key]; ok {
		return s
	}
	if s, ok := c.tables[c.tags[0]][key]; ok {
		return s
	}
	return key
}
