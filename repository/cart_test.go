package repository

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCart(t *testing.T) {
	repo := NewCartRepository(newTestDB(t))

	cart, err := repo.Create()
	require.NoError(t, err)
	assert.NotZero(t, cart.ID)
	assert.Equal(t, 0.0, cart.Price)
	assert.Empty(t, cart.Items)
}

func TestGetCartNotFound(t *testing.T) {
	repo := NewCartRepository(newTestDB(t))

	_, err := repo.Get(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddItem(t *testing.T) {
	db := newTestDB(t)
	items := NewItemRepository(db)
	carts := NewCartRepository(db)

	item, err := items.Create("Mug", 5.0)
	require.NoError(t, err)
	cart, err := carts.Create()
	require.NoError(t, err)

	updated, err := carts.AddItem(cart.ID, item.ID)
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, item.ID, updated.Items[0].ItemID)
	assert.Equal(t, cart.ID, updated.Items[0].CartID)
	assert.Equal(t, 1, updated.Items[0].Quantity)
	assert.True(t, updated.Items[0].Available)
	assert.Equal(t, 5.0, updated.Price)

	// A second add increments the existing line, never duplicates it.
	updated, err = carts.AddItem(cart.ID, item.ID)
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, 2, updated.Items[0].Quantity)
	assert.Equal(t, 10.0, updated.Price)

	var lineCount int64
	require.NoError(t, db.Table("cart_lines").Count(&lineCount).Error)
	assert.Equal(t, int64(1), lineCount)
}

func TestAddItemMissingCartOrItem(t *testing.T) {
	db := newTestDB(t)
	items := NewItemRepository(db)
	carts := NewCartRepository(db)

	item, err := items.Create("Mug", 5.0)
	require.NoError(t, err)
	cart, err := carts.Create()
	require.NoError(t, err)

	_, err = carts.AddItem(999, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = carts.AddItem(cart.ID, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddItemRejectsSoftDeleted(t *testing.T) {
	db := newTestDB(t)
	items := NewItemRepository(db)
	carts := NewCartRepository(db)

	item, err := items.Create("Mug", 5.0)
	require.NoError(t, err)
	cart, err := carts.Create()
	require.NoError(t, err)

	_, err = carts.AddItem(cart.ID, item.ID)
	require.NoError(t, err)
	require.NoError(t, items.SoftDelete(item.ID))

	// The existing line stays but is flagged unavailable.
	got, err := carts.Get(cart.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 1, got.Items[0].Quantity)
	assert.False(t, got.Items[0].Available)
	assert.Equal(t, 5.0, got.Price)

	// New adds of the deleted item fail.
	_, err = carts.AddItem(cart.ID, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddItemUsesCurrentPrice(t *testing.T) {
	db := newTestDB(t)
	items := NewItemRepository(db)
	carts := NewCartRepository(db)

	item, err := items.Create("Mug", 5.0)
	require.NoError(t, err)
	cart, err := carts.Create()
	require.NoError(t, err)

	_, err = carts.AddItem(cart.ID, item.ID)
	require.NoError(t, err)

	_, err = items.Patch(item.ID, nil, floatPtr(7.0))
	require.NoError(t, err)

	// The increment uses the price at add time, so the total mixes both.
	updated, err := carts.AddItem(cart.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Items[0].Quantity)
	assert.Equal(t, 12.0, updated.Price)
}

func TestAddItemConcurrent(t *testing.T) {
	db := newTestDB(t)
	items := NewItemRepository(db)
	carts := NewCartRepository(db)

	item, err := items.Create("Mug", 5.0)
	require.NoError(t, err)
	cart, err := carts.Create()
	require.NoError(t, err)

	const n = 25
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := carts.AddItem(cart.ID, item.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := carts.Get(cart.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, n, got.Items[0].Quantity)
	assert.Equal(t, float64(n)*5.0, got.Price)
}

func TestListCarts(t *testing.T) {
	db := newTestDB(t)
	items := NewItemRepository(db)
	carts := NewCartRepository(db)

	item, err := items.Create("Mug", 5.0)
	require.NoError(t, err)

	// Carts with totals 0, 5 and 10.
	_, err = carts.Create()
	require.NoError(t, err)
	one, err := carts.Create()
	require.NoError(t, err)
	two, err := carts.Create()
	require.NoError(t, err)
	_, err = carts.AddItem(one.ID, item.ID)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err = carts.AddItem(two.ID, item.ID)
		require.NoError(t, err)
	}

	t.Run("total price bounds", func(t *testing.T) {
		got, err := carts.List(CartListParams{Limit: 10, MinPrice: floatPtr(1.0), MaxPrice: floatPtr(7.0)})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, one.ID, got[0].ID)
	})

	t.Run("quantity bounds accepted but inert", func(t *testing.T) {
		got, err := carts.List(CartListParams{Limit: 10, MinQuantity: intPtr(100), MaxQuantity: intPtr(200)})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("offset and limit", func(t *testing.T) {
		got, err := carts.List(CartListParams{Offset: 1, Limit: 1})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, one.ID, got[0].ID)
	})
}

func TestCartTotalNeverDirectlySettable(t *testing.T) {
	db := newTestDB(t)
	items := NewItemRepository(db)
	carts := NewCartRepository(db)

	item, err := items.Create("Mug", 5.0)
	require.NoError(t, err)
	cart, err := carts.Create()
	require.NoError(t, err)
	_, err = carts.AddItem(cart.ID, item.ID)
	require.NoError(t, err)

	// The only write path to total_price is AddItem; the stored total always
	// matches the sum over lines of (price at add) x quantity.
	var total float64
	require.NoError(t, db.Table("carts").Where("id = ?", cart.ID).
		Select("total_price").Row().Scan(&total))
	assert.Equal(t, 5.0, total)

	var quantity int
	require.NoError(t, db.Table("cart_lines").Where("cart_id = ? AND item_id = ?", cart.ID, item.ID).
		Select("quantity").Row().Scan(&quantity))
	assert.Equal(t, 1, quantity)
}
