package i18n

import (
	"embed"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// Catalog resolves menu label ids to display text.
type Catalog struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
}

// New loads the embedded message files and selects lang, falling back to
// English for missing messages.
func New(lang string) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		name := path.Join("locales", e.Name())
		content, err := locales.ReadFile(name)
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(content, name); err != nil {
			return nil, err
		}
	}

	c := &Catalog{bundle: bundle}
	if err := c.SetLanguage(lang); err != nil {
		return nil, err
	}
	return c, nil
}

// SetLanguage switches to the language with the given BCP 47 code. An
// empty code selects English.
func (c *Catalog) SetLanguage(code string) error {
	tag := language.English
	if code != "" {
		parsed, err := language.Parse(code)
		if err != nil {
			return err
		}
		tag = parsed
	}
	c.localizer = i18n.NewLocalizer(c.bundle, tag.String(), language.English.String())
	return nil
}

// Localize returns the text for id, or fallback when the catalog has none.
func (c *Catalog) Localize(id, fallback string) string {
	return c.Format(id, fallback, nil)
}

// Format is Localize with template data.
func (c *Catalog) Format(id, fallback string, data map[string]any) string {
	if c == nil || c.localizer == nil {
		return fallback
	}
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
		TemplateData:   data,
	})
	if err != nil {
		return fallback
	}
	return msg
}
