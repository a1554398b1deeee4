package guard_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard returns nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value guard returns supplied error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("entity not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero value guard falls back to default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuardEmbedded(t *testing.T) {
	errNotConstructed := errors.New("Money must be created via NewMoney")

	type money struct {
		amount int
		guard  guard.ConstructorGuard
	}

	newMoney := func(amount int) money {
		return money{amount: amount, guard: guard.NewConstructorGuard()}
	}

	t.Run("constructed object passes validation", func(t *testing.T) {
		m := newMoney(100)
		require.NoError(t, m.guard.Validate(errNotConstructed))
	})

	t.Run("zero value object fails validation", func(t *testing.T) {
		var m money
		err := m.guard.Validate(errNotConstructed)
		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})
}
