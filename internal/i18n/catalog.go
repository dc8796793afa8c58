package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/recordsettings/recordsettings/internal/settings"
)

const catalogExt = ".yaml"

// Messages maps a flattened catalog key to its translation.
type Messages map[string]string

// Catalog holds the messages of every loaded language.
type Catalog struct {
	tags     []language.Tag
	messages []Messages
	matcher  language.Matcher
	fallback int
}

// New creates a catalog from messages keyed by language tag. defaultLang
// selects the catalog used when nothing matches.
func New(defaultLang string, byLang map[string]Messages) (*Catalog, error) {
	names := make([]string, 0, len(byLang))
	for name := range byLang {
		names = append(names, name)
	}
	sort.Strings(names)

	def, err := language.Parse(defaultLang)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid default language [%s]", defaultLang)
	}

	c := &Catalog{fallback: -1}

	// the default language goes first, the matcher falls back to index 0
	for _, name := range names {
		tag, err := language.Parse(name)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid catalog language [%s]", name)
		}

		if tag == def {
			c.tags = append([]language.Tag{tag}, c.tags...)
			c.messages = append([]Messages{byLang[name]}, c.messages...)
			c.fallback = 0

			continue
		}

		c.tags = append(c.tags, tag)
		c.messages = append(c.messages, byLang[name])
	}

	if c.fallback < 0 {
		return nil, errors.Wrapf(ErrUnknownDefaultLanguage, "language [%s]", defaultLang)
	}

	c.matcher = language.NewMatcher(c.tags)

	return c, nil
}

// LoadDir reads every <tag>.yaml file in dir.
func LoadDir(dir, defaultLang string) (*Catalog, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*"+catalogExt))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list catalogs")
	}
	if len(files) == 0 {
		return nil, errors.Wrapf(ErrNoCatalogs, "directory [%s]", dir)
	}

	byLang := make(map[string]Messages, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read catalog")
		}

		msgs, err := Parse(data)
		if err != nil {
			return nil, errors.Wrapf(err, "catalog [%s]", filepath.Base(file))
		}

		byLang[strings.TrimSuffix(filepath.Base(file), catalogExt)] = msgs
	}

	c, err := New(defaultLang, byLang)
	if err != nil {
		return nil, err
	}

	log.Debug().Int("languages", len(c.tags)).Str("dir", dir).Msg("translation catalogs loaded")

	return c, nil
}

// Parse decodes one yaml catalog and flattens nested mappings with ".".
func Parse(data []byte) (Messages, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, errors.Wrap(err, "failed to decode catalog")
	}

	out := Messages{}
	if err := flatten("", tree, out); err != nil {
		return nil, err
	}

	return out, nil
}

func flatten(prefix string, tree map[string]any, out Messages) error {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		case map[any]any:
			sub := make(map[string]any, len(val))
			for sk, sv := range val {
				sub[fmt.Sprint(sk)] = sv
			}
			if err := flatten(key, sub, out); err != nil {
				return err
			}
		case []any:
			return errors.Wrapf(ErrInvalidCatalogValue, "key [%s]", key)
		case nil:
			out[key] = ""
		case string:
			out[key] = val
		default:
			out[key] = yamlScalar(val)
		}
	}

	return nil
}

func yamlScalar(v any) string {
	out, err := yaml.Marshal(v)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(out))
}

// Languages returns the loaded language tags, default language first.
func (c *Catalog) Languages() []string {
	out := make([]string, 0, len(c.tags))
	for _, t := range c.tags {
		out = append(out, t.String())
	}

	return out
}

// Match picks the best catalog for the given preferences. Each preference may
// be a tag or a whole Accept-Language header.
func (c *Catalog) Match(prefs ...string) (string, int) {
	var wanted []language.Tag
	for _, p := range prefs {
		if p == "" {
			continue
		}

		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		wanted = append(wanted, tags...)
	}

	if len(wanted) == 0 {
		return c.tags[c.fallback].String(), c.fallback
	}

	_, idx, conf := c.matcher.Match(wanted...)
	if conf == language.No {
		idx = c.fallback
	}

	return c.tags[idx].String(), idx
}

// Translator returns the translator for the best match of prefs.
func (c *Catalog) Translator(prefs ...string) settings.Translator {
	_, idx := c.Match(prefs...)

	return translator{primary: c.messages[idx], fallback: c.messages[c.fallback]}
}

type translator struct {
	primary  Messages
	fallback Messages
}

// Translate returns the message of key in the matched language, then the
// default language, then fallback.
func (t translator) Translate(key, fallback string) string {
	if msg, ok := t.primary[key]; ok && msg != "" {
		return msg
	}
	if msg, ok := t.fallback[key]; ok && msg != "" {
		return msg
	}

	return fallback
}
