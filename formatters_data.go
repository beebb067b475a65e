package timestamps

import (
	"golang.org/x/text/language"
)

// TargetLocale is the locale every timestamp cell is rendered in.
const TargetLocale = "en-GB"

// formattingRulesData contains the built-in rules for supported locales
var formattingRulesData = map[string]FormattingRules{
	"en": {
		Locale:      "en",
		DatePattern: "{M}/{d}/{yyyy}",
		TimePattern: "{h}:{mm}:{ss} {a}",
		Separator:   ", ",
		Use24Hour:   false,
		AM:          "AM",
		PM:          "PM",
	},
	"en-GB": {
		Locale:      "en-GB",
		DatePattern: "{dd}/{MM}/{yyyy}",
		TimePattern: "{HH}:{mm}:{ss}",
		Separator:   ", ",
		Use24Hour:   true,
		AM:          "am",
		PM:          "pm",
	},
}

// FormattingRulesProvider provides formatting rules for locales
type FormattingRulesProvider struct {
	rules map[string]FormattingRules
}

// NewFormattingRulesProvider creates a provider seeded with the built-in
// rules. Overrides replace built-in entries with the same locale key.
func NewFormattingRulesProvider(overrides map[string]FormattingRules) *FormattingRulesProvider {
	rules := make(map[string]FormattingRules, len(formattingRulesData)+len(overrides))
	for k, v := range formattingRulesData {
		rules[k] = v
	}
	for k, v := range overrides {
		key := normalizeLocale(k)
		if key == "" {
			continue
		}
		if v.Locale == "" {
			v.Locale = key
		}
		rules[key] = v
	}

	return &FormattingRulesProvider{rules: rules}
}

// Get returns rules for a locale.
// It tries exact match, then the parent chain, then falls back to English.
func (p *FormattingRulesProvider) Get(locale string) *FormattingRules {
	if p == nil || p.rules == nil {
		rules := formattingRulesData["en"]
		return &rules
	}

	locale = normalizeLocale(locale)
	if rules, ok := p.rules[locale]; ok {
		return &rules
	}

	for _, candidate := range localeParentChain(locale) {
		if rules, ok := p.rules[candidate]; ok {
			return &rules
		}
	}

	// x/text parents skip the bare language for some regions (en-AU -> en-001)
	tag := language.Make(locale)
	base, _ := tag.Base()
	if rules, ok := p.rules[base.String()]; ok {
		return &rules
	}

	if rules, ok := p.rules["en"]; ok {
		return &rules
	}

	rules := formattingRulesData["en"]
	return &rules
}
