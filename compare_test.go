package enumset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enumset"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{name: "a before b", a: "apple", b: "banana", expected: -1},
		{name: "equal", a: "carrot", b: "carrot", expected: 0},
		{name: "a after b", a: "banana", b: "apple", expected: 1},
		{name: "empty before non-empty", a: "", b: "a", expected: -1},
		{name: "prefix sorts first", a: "app", b: "apple", expected: -1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, enumset.Compare(tt.a, tt.b))
		})
	}
}

func TestUnreachable(t *testing.T) {
	t.Parallel()

	t.Run("always fails", func(t *testing.T) {
		t.Parallel()
		err := enumset.Unreachable("PURPLE")
		require.Error(t, err)
		require.ErrorIs(t, err, enumset.ErrNonExhaustive)
		assert.Contains(t, err.Error(), "unhandled value PURPLE")
	})

	t.Run("uses custom message", func(t *testing.T) {
		t.Parallel()
		err := enumset.Unreachable("PURPLE", "missing switch case")
		require.ErrorIs(t, err, enumset.ErrNonExhaustive)
		assert.Contains(t, err.Error(), "missing switch case")
		assert.NotContains(t, err.Error(), "PURPLE")
	})
}
