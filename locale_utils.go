package timestamps

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// localeParentChain walks x/text parents of locale, closest first, stopping
// before the root. Unparseable locales fall back to trimming "-" suffixes.
func localeParentChain(locale string) []string {
	if locale == "" {
		return nil
	}

	var chain []string
	tag, err := language.Parse(locale)
	if err != nil {
		for idx := strings.LastIndex(locale, "-"); idx > 0; idx = strings.LastIndex(locale, "-") {
			locale = locale[:idx]
			chain = append(chain, locale)
		}
		return chain
	}

	for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
		chain = append(chain, parent.String())
	}
	return chain
}

// normalizeLocale accepts "en_GB" style keys alongside BCP 47 ones.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// validateLocaleKey rejects rule keys that no lookup could ever reach.
func validateLocaleKey(key string) (string, error) {
	normalized := normalizeLocale(key)
	if normalized == "" {
		return "", fmt.Errorf("timestamps: empty formatting rules locale")
	}
	if _, err := language.Parse(normalized); err != nil {
		return "", fmt.Errorf("timestamps: formatting rules locale %q: %w", key, err)
	}
	return normalized, nil
}
