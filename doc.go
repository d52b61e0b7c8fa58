// Package enumset builds immutable, validated enumerations from unique
// string identifiers, with optional display labels and per-locale
// translations.
//
// An enumeration is constructed once, validated up front (non-empty,
// duplicate-free), and never mutated afterwards, making it safe for
// concurrent use without synchronization. Smaller enumerations can be
// derived as subsets of an existing one, and disjoint enumerations can be
// merged into a composition; both derivations copy their data and carry
// labels and translations along with deterministic override precedence.
//
// # Basic Usage
//
// Create an enumeration and use its lookup operations:
//
//	colors, err := enumset.New([]string{"RED", "GREEN", "BLUE"},
//		enumset.WithName("Color"),
//		enumset.WithLabels(map[string]string{"RED": "Red"}),
//		enumset.WithTranslations(map[string]map[string]string{
//			"RED": {"en": "Red", "fr": "Rouge"},
//		}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	colors.IsMember("RED") // true
//
//	v := colors.Values()
//	key, err := colors.Deserialize(input) // rejects non-members
//	label, ok, err := colors.Label(v["RED"])
//	rouge, ok, err := colors.Translation(v["RED"], "fr")
//
// # Subsets
//
// Subset derives an independent enumeration restricted to chosen members.
// Labels and translations are inherited from the parent; options act as
// overrides and win per key and per key/locale:
//
//	warm, err := colors.Subset([]string{"RED"},
//		enumset.WithLabels(map[string]string{"RED": "Warm Red"}),
//	)
//
// # Compositions
//
// Compose merges disjoint enumerations into one. A key appearing in more
// than one source is an error. Among sources the earliest definition of a
// label or translation wins; options win over all sources:
//
//	status, err := enumset.Compose([]*enumset.Enum{active, archived},
//		enumset.WithName("Status"),
//	)
//
// # Validators and Schemas
//
// Every enumeration exposes a Validator that accepts exactly its keys:
//
//	v := colors.Validator()
//	key, err := v.ParseOrDefault(input, "GREEN")
//
// The default is a set-backed validator; plug in another implementation with
// WithValidatorFactory. For schema-based pipelines, JSONSchema returns a
// {"type": "string", "enum": [...]} schema built with invopop/jsonschema.
//
// # Definition Files
//
// Enumerations can be declared in YAML or JSON files and loaded through an
// fs.FS:
//
//	//go:embed enums
//	var enumsFS embed.FS
//
//	subFS, _ := fs.Sub(enumsFS, "enums")
//	colors, err := enumset.Load(subFS, "color.yaml")
//	all, err := enumset.LoadDir(subFS)
//
// # Locale Matching
//
// Translation lookups are exact by locale code. LocalizedLabel resolves the
// best display string for a member using BCP 47 matching over the locales
// actually present, falling back to the label and then the key itself:
//
//	text, err := colors.LocalizedLabel("RED", "fr-CA", "en")
//	// "Rouge"
//
// # Errors
//
// All failures are immediate and synchronous, wrap a package sentinel
// (ErrEmptyKeySet, ErrDuplicateKey, ErrInvalidKey, ErrNotInParent,
// ErrEmptyComposition, ErrNonExhaustive, ...) and should be treated as
// programmer errors rather than transient conditions. Match them with
// errors.Is.
package enumset
