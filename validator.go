package enumset

import "fmt"

// Validator parses candidate strings against a fixed key set. It is the
// capability an enumeration exposes for external validation pipelines; the
// enumeration itself never inspects the validator's internals.
type Validator interface {
	// Parse returns input when it is a valid key and fails otherwise.
	Parse(input string) (string, error)

	// ParseOrDefault substitutes fallback when input is absent (empty),
	// then parses the result.
	ParseOrDefault(input, fallback string) (string, error)
}

// ValidatorFactory builds a Validator from an ordered, duplicate-free key
// list. Supply one via WithValidatorFactory to plug in a validator from
// another validation library.
type ValidatorFactory func(keys []string) Validator

// WithValidatorFactory replaces the default set-backed validator with one
// produced by factory.
func WithValidatorFactory(factory ValidatorFactory) Option {
	return func(c *config) error {
		if factory == nil {
			return ErrNilValidatorFactory
		}
		c.factory = factory
		return nil
	}
}

// Validator returns the validator built for this enumeration's key set.
func (e *Enum) Validator() Validator {
	return e.validator
}

// NewSetValidator is the default ValidatorFactory: a membership-set
// validator that accepts exactly the given keys.
func NewSetValidator(keys []string) Validator {
	v := &setValidator{
		keys: keys,
		set:  make(map[string]struct{}, len(keys)),
	}
	for _, k := range keys {
		v.set[k] = struct{}{}
	}
	return v
}

type setValidator struct {
	keys []string
	set  map[string]struct{}
}

func (v *setValidator) Parse(input string) (string, error) {
	if _, ok := v.set[input]; !ok {
		return "", fmt.Errorf("%w: %q is not one of %v", ErrInvalidKey, input, v.keys)
	}
	return input, nil
}

func (v *setValidator) ParseOrDefault(input, fallback string) (string, error) {
	if input == "" {
		input = fallback
	}
	return v.Parse(input)
}
