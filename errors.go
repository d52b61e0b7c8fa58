package enumset

import "errors"

var (
	ErrEmptyKeySet         = errors.New("enumset: key set cannot be empty")
	ErrDuplicateKey        = errors.New("enumset: duplicate key")
	ErrInvalidKey          = errors.New("enumset: invalid key")
	ErrNotInParent         = errors.New("enumset: key not in parent enumeration")
	ErrEmptyComposition    = errors.New("enumset: composition requires at least one source")
	ErrNilSource           = errors.New("enumset: source enumeration cannot be nil")
	ErrNonExhaustive       = errors.New("enumset: non-exhaustive case analysis")
	ErrNilValidatorFactory = errors.New("enumset: validator factory cannot be nil")
	ErrInvalidDefinition   = errors.New("enumset: invalid enumeration definition")
)
