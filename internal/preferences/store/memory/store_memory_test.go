package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"companion/internal/preferences/models"
	"companion/pkg/platform/sentinel"
)

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store reports not found", func(t *testing.T) {
		_, err := New().Load(ctx)
		require.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("save then load", func(t *testing.T) {
		store := New()
		prefs := models.Defaults()
		prefs.MaxCOB = decimal.NewFromInt(100)
		require.NoError(t, store.Save(ctx, &prefs))

		got, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "100", got.MaxCOB.String())
	})

	t.Run("loaded copies are independent", func(t *testing.T) {
		store := NewWith(models.Defaults())
		got, err := store.Load(ctx)
		require.NoError(t, err)
		got.EnableUAM = true

		again, err := store.Load(ctx)
		require.NoError(t, err)
		assert.False(t, again.EnableUAM)
	})
}
