package enumset

import (
	"slices"

	"golang.org/x/text/language"
)

// MatchLocale picks the best entry of available for the preferred locale
// tags using BCP 47 matching, so "en-US" resolves against a plain "en".
// Entries that do not parse as locale tags are skipped. Reports false when
// nothing matches with any confidence.
func MatchLocale(available []string, preferred ...string) (string, bool) {
	if len(available) == 0 || len(preferred) == 0 {
		return "", false
	}

	tags := make([]language.Tag, 0, len(available))
	names := make([]string, 0, len(available))
	for _, code := range available {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, code)
	}
	if len(tags) == 0 {
		return "", false
	}

	desired := make([]language.Tag, 0, len(preferred))
	for _, code := range preferred {
		if tag, err := language.Parse(code); err == nil {
			desired = append(desired, tag)
		}
	}
	if len(desired) == 0 {
		return "", false
	}

	_, index, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return "", false
	}
	return names[index], true
}

// LocalizedLabel resolves the best display string for key: the translation
// whose locale best matches the preferred tags, else the configured label,
// else the key itself. It only fails when key is not a member.
func (e *Enum) LocalizedLabel(key string, preferred ...string) (string, error) {
	if err := e.AssertMember(key); err != nil {
		return "", err
	}
	if trs := e.translations[key]; len(trs) > 0 {
		locales := make([]string, 0, len(trs))
		for locale := range trs {
			locales = append(locales, locale)
		}
		slices.Sort(locales)
		if locale, ok := MatchLocale(locales, preferred...); ok {
			return trs[locale], nil
		}
	}
	if label, ok := e.labels[key]; ok {
		return label, nil
	}
	return key, nil
}
