package enumset

import "fmt"

// Subset derives a new enumeration restricted to the chosen members.
// Every member must belong to e; the first key that does not fails with an
// error wrapping ErrNotInParent. Labels and translations are inherited from
// e for the chosen keys, with option-supplied values winning per key and per
// key/locale. The result is fully independent of e and holds no reference
// to it.
func (e *Enum) Subset(members []string, opts ...Option) (*Enum, error) {
	for _, k := range members {
		if !e.IsMember(k) {
			return nil, fmt.Errorf("%w: %q is not a member of %s", ErrNotInParent, k, e.describe())
		}
	}

	cfg := &config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	cfg.labels = mergeLabels(members, []map[string]string{e.labels}, cfg.labels)
	cfg.translations = mergeTranslations(members, []map[string]map[string]string{e.translations}, cfg.translations)

	return build(members, cfg)
}
