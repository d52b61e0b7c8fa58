package enumset

import "fmt"

// Compose derives a new enumeration from the disjoint union of the source
// enumerations' members, in source order then source-internal order.
// A key present in more than one source fails with an error wrapping
// ErrDuplicateKey. Labels and translations are aggregated from all sources,
// the earliest source defining a key (or key/locale pair) winning among
// sources and option-supplied values winning over all sources. The result
// holds no reference to any source.
func Compose(sources []*Enum, opts ...Option) (*Enum, error) {
	if len(sources) == 0 {
		return nil, ErrEmptyComposition
	}

	seen := make(map[string]*Enum)
	union := make([]string, 0, len(sources))
	labelBases := make([]map[string]string, 0, len(sources))
	translationBases := make([]map[string]map[string]string, 0, len(sources))

	for i, src := range sources {
		if src == nil {
			return nil, fmt.Errorf("%w: source %d", ErrNilSource, i)
		}
		for _, k := range src.keys {
			if prev, dup := seen[k]; dup {
				return nil, fmt.Errorf("%w: %q appears in both %s and %s", ErrDuplicateKey, k, prev.describe(), src.describe())
			}
			seen[k] = src
			union = append(union, k)
		}
		labelBases = append(labelBases, src.labels)
		translationBases = append(translationBases, src.translations)
	}

	cfg := &config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	cfg.labels = mergeLabels(union, labelBases, cfg.labels)
	cfg.translations = mergeTranslations(union, translationBases, cfg.translations)

	return build(union, cfg)
}
