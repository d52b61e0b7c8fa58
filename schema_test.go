package enumset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enumset"
)

func TestJSONSchema(t *testing.T) {
	t.Parallel()

	t.Run("enumerates the keys in order", func(t *testing.T) {
		t.Parallel()
		e, err := enumset.New([]string{"RED", "GREEN", "BLUE"}, enumset.WithName("Color"))
		require.NoError(t, err)

		schema := e.JSONSchema()
		require.NotNil(t, schema)
		require.Equal(t, "string", schema.Type)
		require.Equal(t, "Color", schema.Title)
		require.Equal(t, []any{"RED", "GREEN", "BLUE"}, schema.Enum)
	})

	t.Run("unnamed enumeration has no title", func(t *testing.T) {
		t.Parallel()
		e, err := enumset.New([]string{"A"})
		require.NoError(t, err)
		require.Empty(t, e.JSONSchema().Title)
	})
}
