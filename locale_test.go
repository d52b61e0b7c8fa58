package enumset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enumset"
)

func TestMatchLocale(t *testing.T) {
	t.Parallel()

	t.Run("exact match", func(t *testing.T) {
		t.Parallel()
		locale, ok := enumset.MatchLocale([]string{"en", "fr"}, "fr")
		require.True(t, ok)
		require.Equal(t, "fr", locale)
	})

	t.Run("region resolves to base language", func(t *testing.T) {
		t.Parallel()
		locale, ok := enumset.MatchLocale([]string{"en", "fr"}, "en-US")
		require.True(t, ok)
		require.Equal(t, "en", locale)
	})

	t.Run("first preference wins", func(t *testing.T) {
		t.Parallel()
		locale, ok := enumset.MatchLocale([]string{"en", "fr"}, "fr-CA", "en")
		require.True(t, ok)
		require.Equal(t, "fr", locale)
	})

	t.Run("no match for unrelated language", func(t *testing.T) {
		t.Parallel()
		_, ok := enumset.MatchLocale([]string{"en"}, "ja")
		assert.False(t, ok)
	})

	t.Run("empty inputs never match", func(t *testing.T) {
		t.Parallel()
		_, ok := enumset.MatchLocale(nil, "en")
		assert.False(t, ok)
		_, ok = enumset.MatchLocale([]string{"en"})
		assert.False(t, ok)
	})

	t.Run("unparseable entries are skipped", func(t *testing.T) {
		t.Parallel()
		locale, ok := enumset.MatchLocale([]string{"!!!", "en"}, "en")
		require.True(t, ok)
		require.Equal(t, "en", locale)
	})
}

func TestLocalizedLabel(t *testing.T) {
	t.Parallel()

	e, err := enumset.New([]string{"RED", "GREEN", "BLUE"},
		enumset.WithLabels(map[string]string{"RED": "Red Label", "GREEN": "Green Label"}),
		enumset.WithTranslations(map[string]map[string]string{
			"RED": {"en": "Red", "fr": "Rouge"},
		}),
	)
	require.NoError(t, err)

	t.Run("best translation wins", func(t *testing.T) {
		t.Parallel()
		text, err := e.LocalizedLabel("RED", "fr-CA", "en")
		require.NoError(t, err)
		require.Equal(t, "Rouge", text)
	})

	t.Run("falls back to label", func(t *testing.T) {
		t.Parallel()
		text, err := e.LocalizedLabel("GREEN", "fr")
		require.NoError(t, err)
		require.Equal(t, "Green Label", text)
	})

	t.Run("falls back to the key itself", func(t *testing.T) {
		t.Parallel()
		text, err := e.LocalizedLabel("BLUE", "fr")
		require.NoError(t, err)
		require.Equal(t, "BLUE", text)
	})

	t.Run("fails for non-members", func(t *testing.T) {
		t.Parallel()
		_, err := e.LocalizedLabel("PURPLE", "en")
		require.ErrorIs(t, err, enumset.ErrInvalidKey)
	})
}
