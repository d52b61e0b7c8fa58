package enumset

import "maps"

// mergeLabels builds the label table for keys from zero or more base tables
// and an optional override. The override wins per key; otherwise the first
// base defining the key wins. Inputs are never mutated.
func mergeLabels(keys []string, bases []map[string]string, override map[string]string) map[string]string {
	merged := make(map[string]string)
	for _, k := range keys {
		if label, ok := override[k]; ok {
			merged[k] = label
			continue
		}
		for _, base := range bases {
			if label, ok := base[k]; ok {
				merged[k] = label
				break
			}
		}
	}
	return merged
}

// mergeTranslations builds the translation table for keys, per key and per
// locale. The override wins for any key/locale pair it defines; among bases
// the earliest one defining a locale wins. Locales are the union of whatever
// the bases and the override actually carry, so nothing is dropped during
// inheritance. Inputs are never mutated.
func mergeTranslations(keys []string, bases []map[string]map[string]string, override map[string]map[string]string) map[string]map[string]string {
	merged := make(map[string]map[string]string)
	for _, k := range keys {
		entry := make(map[string]string)
		maps.Copy(entry, override[k])
		for _, base := range bases {
			for locale, value := range base[k] {
				if _, ok := entry[locale]; !ok {
					entry[locale] = value
				}
			}
		}
		if len(entry) > 0 {
			merged[k] = entry
		}
	}
	return merged
}
