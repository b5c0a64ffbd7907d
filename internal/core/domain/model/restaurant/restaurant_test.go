package restaurant_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/restaurant"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRestaurant(t *testing.T) {
	t.Run("should create online restaurant", func(t *testing.T) {
		id := kernel.NewUUID()

		r, err := restaurant.NewRestaurant(id, "Trattoria", true)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.ID().IsEqual(id))
		assert.Equal(t, "Trattoria", r.Name())
		assert.True(t, r.IsOnline())
	})

	t.Run("should create offline restaurant", func(t *testing.T) {
		r, err := restaurant.NewRestaurant(kernel.NewUUID(), "Trattoria", false)

		require.NoError(t, err)
		assert.False(t, r.IsOnline())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		r, err := restaurant.NewRestaurant(kernel.NewUUID(), "", true)

		require.Error(t, err)
		assert.Nil(t, r)
		require.ErrorIs(t, err, restaurant.ErrNameIsRequired)
	})
}

func TestRestaurant_Updates(t *testing.T) {
	r, err := restaurant.NewRestaurant(kernel.NewUUID(), "Trattoria", true)
	require.NoError(t, err)

	t.Run("should rename", func(t *testing.T) {
		require.NoError(t, r.Rename("Osteria"))
		assert.Equal(t, "Osteria", r.Name())
	})

	t.Run("should reject empty name on rename", func(t *testing.T) {
		require.Error(t, r.Rename(""))
		assert.Equal(t, "Osteria", r.Name())
	})

	t.Run("should toggle online flag", func(t *testing.T) {
		r.SetOnline(false)
		assert.False(t, r.IsOnline())

		r.SetOnline(true)
		assert.True(t, r.IsOnline())
	})
}

func TestNewMenuItem(t *testing.T) {
	restaurantID := kernel.NewUUID()

	t.Run("should create menu item", func(t *testing.T) {
		id := kernel.NewUUID()
		description := "Tomato, mozzarella, basil"

		item, err := restaurant.NewMenuItem(
			id, restaurantID, "Margherita", &description,
			decimal.NewFromFloat(9.50), true,
		)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ID().IsEqual(id))
		assert.True(t, item.RestaurantID().IsEqual(restaurantID))
		assert.Equal(t, "Margherita", item.Name())
		require.NotNil(t, item.Description())
		assert.Equal(t, description, *item.Description())
		assert.True(t, item.Price().Equal(decimal.NewFromFloat(9.50)))
		assert.True(t, item.IsAvailable())
	})

	t.Run("should allow nil description", func(t *testing.T) {
		item, err := restaurant.NewMenuItem(
			kernel.NewUUID(), restaurantID, "Cola", nil,
			decimal.NewFromFloat(2.00), true,
		)

		require.NoError(t, err)
		assert.Nil(t, item.Description())
	})

	t.Run("should round price to two decimals", func(t *testing.T) {
		item, err := restaurant.NewMenuItem(
			kernel.NewUUID(), restaurantID, "Margherita", nil,
			decimal.NewFromFloat(9.499), true,
		)

		require.NoError(t, err)
		assert.True(t, item.Price().Equal(decimal.NewFromFloat(9.50)))
	})

	t.Run("should reject negative price", func(t *testing.T) {
		item, err := restaurant.NewMenuItem(
			kernel.NewUUID(), restaurantID, "Margherita", nil,
			decimal.NewFromFloat(-1), true,
		)

		require.Error(t, err)
		assert.Nil(t, item)
		require.ErrorIs(t, err, restaurant.ErrPriceIsNegative)
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := restaurant.NewMenuItem(
			kernel.NewUUID(), restaurantID, "", nil,
			decimal.NewFromFloat(1), true,
		)

		require.Error(t, err)
	})
}

func TestMenuItem_Updates(t *testing.T) {
	item, err := restaurant.NewMenuItem(
		kernel.NewUUID(), kernel.NewUUID(), "Margherita", nil,
		decimal.NewFromFloat(9.50), true,
	)
	require.NoError(t, err)

	t.Run("should reprice", func(t *testing.T) {
		require.NoError(t, item.Reprice(decimal.NewFromFloat(10.00)))
		assert.True(t, item.Price().Equal(decimal.NewFromFloat(10.00)))
	})

	t.Run("should reject negative price on reprice", func(t *testing.T) {
		require.Error(t, item.Reprice(decimal.NewFromFloat(-5)))
		assert.True(t, item.Price().Equal(decimal.NewFromFloat(10.00)))
	})

	t.Run("should replace and clear description", func(t *testing.T) {
		description := "Classic"
		item.Describe(&description)
		require.NotNil(t, item.Description())

		item.Describe(nil)
		assert.Nil(t, item.Description())
	})

	t.Run("should toggle availability", func(t *testing.T) {
		item.SetAvailable(false)
		assert.False(t, item.IsAvailable())
	})
}
