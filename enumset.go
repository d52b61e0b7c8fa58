package enumset

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Enum is an immutable, validated set of unique string keys with optional
// display labels and per-locale translations. Member order is construction
// order and is preserved by Keys, the identity map, and the validator.
// An Enum never changes after construction, making it safe for concurrent
// use without synchronization.
type Enum struct {
	name         string
	keys         []string
	values       map[string]string
	labels       map[string]string
	translations map[string]map[string]string
	validator    Validator
}

// config collects construction inputs before validation. The same options
// act as overrides during Subset and Compose derivation.
type config struct {
	name         string
	labels       map[string]string
	translations map[string]map[string]string
	factory      ValidatorFactory
}

// Option configures enum construction.
type Option func(*config) error

// WithName sets a display name used in diagnostics. The name is not part of
// the enumeration's identity.
func WithName(name string) Option {
	return func(c *config) error {
		c.name = name
		return nil
	}
}

// WithLabels supplies human-readable labels for members. The map may be
// partial; entries for non-members are ignored. Repeated options merge,
// later values winning per key. The map is copied, never retained.
func WithLabels(labels map[string]string) Option {
	return func(c *config) error {
		if len(labels) == 0 {
			return nil
		}
		if c.labels == nil {
			c.labels = make(map[string]string, len(labels))
		}
		maps.Copy(c.labels, labels)
		return nil
	}
}

// WithTranslations supplies per-locale display strings for members, keyed by
// member then by locale code. Both levels may be partial; entries for
// non-members are ignored. Repeated options merge per key and locale, later
// values winning. The maps are copied, never retained.
func WithTranslations(translations map[string]map[string]string) Option {
	return func(c *config) error {
		if len(translations) == 0 {
			return nil
		}
		if c.translations == nil {
			c.translations = make(map[string]map[string]string, len(translations))
		}
		for key, trs := range translations {
			if len(trs) == 0 {
				continue
			}
			if c.translations[key] == nil {
				c.translations[key] = make(map[string]string, len(trs))
			}
			maps.Copy(c.translations[key], trs)
		}
		return nil
	}
}

// New creates an immutable enumeration from the given members. Members must
// be non-empty and duplicate-free; order is preserved. All configuration
// happens during construction.
func New(members []string, opts ...Option) (*Enum, error) {
	cfg := &config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return build(members, cfg)
}

// build runs key validation and assembles the entity. Subset and Compose
// funnel through here after preparing merged metadata in cfg.
func build(members []string, cfg *config) (*Enum, error) {
	if err := validateKeys(members); err != nil {
		return nil, err
	}

	e := &Enum{
		name:         cfg.name,
		keys:         slices.Clone(members),
		values:       make(map[string]string, len(members)),
		labels:       make(map[string]string),
		translations: make(map[string]map[string]string),
	}

	// Label and translation tables are restricted to the member set so they
	// are only ever indexed by valid keys.
	for _, k := range e.keys {
		e.values[k] = k
		if label, ok := cfg.labels[k]; ok {
			e.labels[k] = label
		}
		if trs := cfg.translations[k]; len(trs) > 0 {
			e.translations[k] = maps.Clone(trs)
		}
	}

	factory := cfg.factory
	if factory == nil {
		factory = NewSetValidator
	}
	e.validator = factory(slices.Clone(e.keys))

	return e, nil
}

// validateKeys confirms a candidate key list is non-empty and duplicate-free.
func validateKeys(keys []string) error {
	if len(keys) == 0 {
		return ErrEmptyKeySet
	}
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, dup := seen[k]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateKey, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}

// Name returns the diagnostic display name, or "" when none was configured.
func (e *Enum) Name() string {
	return e.name
}

// Keys returns the members in construction order. The returned slice is a
// copy and may be modified freely.
func (e *Enum) Keys() []string {
	return slices.Clone(e.keys)
}

// Values returns the identity map from each member to itself, so callers can
// reference members symbolically instead of retyping string literals.
// The returned map is a copy.
func (e *Enum) Values() map[string]string {
	return maps.Clone(e.values)
}

// Labels returns a copy of the configured label table.
func (e *Enum) Labels() map[string]string {
	return maps.Clone(e.labels)
}

// Translations returns a deep copy of the configured translation table.
func (e *Enum) Translations() map[string]map[string]string {
	out := make(map[string]map[string]string, len(e.translations))
	for key, trs := range e.translations {
		out[key] = maps.Clone(trs)
	}
	return out
}

// Len returns the number of members.
func (e *Enum) Len() int {
	return len(e.keys)
}

// IsMember reports whether input is one of the enumeration's keys.
// It never fails.
func (e *Enum) IsMember(input string) bool {
	_, ok := e.values[input]
	return ok
}

// AssertMember returns nil when input is a member, or an error wrapping
// ErrInvalidKey naming the input and the valid key set. An optional message
// is used as an error prefix.
func (e *Enum) AssertMember(input string, msg ...string) error {
	if e.IsMember(input) {
		return nil
	}
	err := fmt.Errorf("%w: %q is not one of %v", ErrInvalidKey, input, e.keys)
	if len(msg) > 0 && msg[0] != "" {
		return fmt.Errorf("%s: %w", msg[0], err)
	}
	return err
}

// Serialize returns the wire form of a member. Serialization is identity for
// string-backed enumerations; the value of Serialize is the membership check.
func (e *Enum) Serialize(key string) (string, error) {
	if err := e.AssertMember(key); err != nil {
		return "", err
	}
	return key, nil
}

// Deserialize parses input as a member, failing with ErrInvalidKey otherwise.
// Serialize and Deserialize are mutual inverses on the member set.
func (e *Enum) Deserialize(input string) (string, error) {
	if err := e.AssertMember(input); err != nil {
		return "", err
	}
	return input, nil
}

// Label returns the configured label for key. ok reports whether a label was
// configured, distinguishing an absent label from an empty one.
func (e *Enum) Label(key string) (label string, ok bool, err error) {
	if err := e.AssertMember(key); err != nil {
		return "", false, err
	}
	label, ok = e.labels[key]
	return label, ok, nil
}

// Translation returns the configured string for key in the given locale.
// ok reports whether that locale was configured for the key.
func (e *Enum) Translation(key, locale string) (value string, ok bool, err error) {
	if err := e.AssertMember(key); err != nil {
		return "", false, err
	}
	value, ok = e.translations[key][locale]
	return value, ok, nil
}

// String renders the enumeration for diagnostics.
func (e *Enum) String() string {
	members := strings.Join(e.keys, " ")
	if e.name == "" {
		return "[" + members + "]"
	}
	return e.name + "[" + members + "]"
}

// describe names the enumeration in error messages: the display name when
// set, otherwise the key list.
func (e *Enum) describe() string {
	if e.name != "" {
		return e.name
	}
	return fmt.Sprintf("%v", e.keys)
}
