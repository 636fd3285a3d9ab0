// Package locale maps symbolic message keys to display strings for
// human-facing log lines. Message catalogs are embedded TOML files, one
// per language; English is the fallback.
package locale

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/blum-tools/clicker-go/assets"
)

// Messages resolves message IDs for one configured language.
type Messages struct {
	loc *i18n.Localizer
}

// New builds a Messages for lang (BCP 47 tag or plain "en"/"ru").
// Unknown languages fall back to English per message.
func New(lang string) (*Messages, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	if _, err := bundle.ParseMessageFileBytes(assets.LocaleEN, "active.en.toml"); err != nil {
		return nil, fmt.Errorf("locale: parse en catalog: %w", err)
	}
	if _, err := bundle.ParseMessageFileBytes(assets.LocaleRU, "active.ru.toml"); err != nil {
		return nil, fmt.Errorf("locale: parse ru catalog: %w", err)
	}
	return &Messages{loc: i18n.NewLocalizer(bundle, lang, "en")}, nil
}

// T resolves a message ID with no template data. Unknown IDs resolve to
// the ID itself so log lines stay readable.
func (m *Messages) T(id string) string {
	s, err := m.loc.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return s
}

// TF resolves a message ID with template data, e.g. {"Key": "s"}.
func (m *Messages) TF(id string, data map[string]any) string {
	s, err := m.loc.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		return id
	}
	return s
}
