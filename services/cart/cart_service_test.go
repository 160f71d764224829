package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeshcse/shopnearme/models"
	"github.com/sandeshcse/shopnearme/services/notify"
)

var (
	electronicsHub = models.Shop{ID: "2", Name: "Electronics Hub", Category: "electronics"}
	fashionStore   = models.Shop{ID: "1", Name: "Fashion Store", Category: "fashion"}

	headphones = models.Product{ID: "p201", Name: "Wireless Headphones", Price: 2999, Category: "Audio"}
	smartWatch = models.Product{ID: "p202", Name: "Smart Watch", Price: 4999, Category: "Wearables"}
	tshirt     = models.Product{ID: "p101", Name: "Cotton T-Shirt", Price: 599, Category: "Topwear"}
)

func newTestStore() (*Store, *notify.Notifier) {
	notifier := notify.NewNotifier(nil)
	return NewStore(40, notifier), notifier
}

func TestAddItemMergesDuplicateLines(t *testing.T) {
	store, _ := newTestStore()

	require.NoError(t, store.AddItem(headphones, electronicsHub))
	require.NoError(t, store.AddItem(headphones, electronicsHub))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Electronics Hub", items[0].ShopName)
}

func TestAddItemSameProductIDFromDifferentShops(t *testing.T) {
	store, _ := newTestStore()

	sameID := models.Product{ID: "p1", Name: "Gift Card", Price: 500}
	require.NoError(t, store.AddItem(sameID, electronicsHub))
	require.NoError(t, store.AddItem(sameID, fashionStore))

	assert.Equal(t, 2, store.LineCount())
}

func TestUpdateQuantityBelowOneIsIgnored(t *testing.T) {
	store, _ := newTestStore()
	require.NoError(t, store.AddItem(headphones, electronicsHub))

	require.NoError(t, store.UpdateQuantity("p201", "2", 0))
	assert.Equal(t, 1, store.Items()[0].Quantity)

	require.NoError(t, store.UpdateQuantity("p201", "2", -3))
	assert.Equal(t, 1, store.Items()[0].Quantity)

	require.NoError(t, store.UpdateQuantity("p201", "2", 5))
	assert.Equal(t, 5, store.Items()[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	store, _ := newTestStore()
	require.NoError(t, store.AddItem(headphones, electronicsHub))
	require.NoError(t, store.AddItem(headphones, electronicsHub))

	require.Equal(t, 1, store.LineCount())

	require.NoError(t, store.RemoveItem("p201", "2"))
	assert.Equal(t, 0, store.LineCount())

	// Removing what is not there is not an error.
	require.NoError(t, store.RemoveItem("p201", "2"))
	assert.Equal(t, 0, store.LineCount())
}

func TestTotals(t *testing.T) {
	store, _ := newTestStore()

	assert.Equal(t, 0, store.Subtotal())
	assert.Equal(t, 0, store.DeliveryFee(), "empty cart carries no delivery fee")
	assert.Equal(t, 0, store.Total())

	require.NoError(t, store.AddItem(headphones, electronicsHub))
	assert.Equal(t, 2999, store.Subtotal())
	assert.Equal(t, 40, store.DeliveryFee())
	assert.Equal(t, 3039, store.Total())

	require.NoError(t, store.AddItem(smartWatch, electronicsHub))
	require.NoError(t, store.UpdateQuantity("p202", "2", 2))
	assert.Equal(t, 2999+2*4999, store.Subtotal())
	assert.Equal(t, store.Subtotal()+store.DeliveryFee(), store.Total())
}

func TestGroupByShop(t *testing.T) {
	store, _ := newTestStore()
	require.NoError(t, store.AddItem(headphones, electronicsHub))
	require.NoError(t, store.AddItem(tshirt, fashionStore))
	require.NoError(t, store.AddItem(smartWatch, electronicsHub))

	groups := store.GroupByShop()
	require.Len(t, groups, 2)
	require.Len(t, groups["2"], 2)
	require.Len(t, groups["1"], 1)
	assert.Equal(t, "Wireless Headphones", groups["2"][0].Product.Name)
	assert.Equal(t, "Smart Watch", groups["2"][1].Product.Name)

	// Grouping is a view, not a mutation.
	assert.Equal(t, 3, store.LineCount())
}

func TestItemCountSumsQuantities(t *testing.T) {
	store, _ := newTestStore()
	require.NoError(t, store.AddItem(headphones, electronicsHub))
	require.NoError(t, store.AddItem(headphones, electronicsHub))
	require.NoError(t, store.AddItem(tshirt, fashionStore))

	assert.Equal(t, 3, store.ItemCount())
	assert.Equal(t, 2, store.LineCount())
}

func TestFrozenCartRejectsMutations(t *testing.T) {
	store, _ := newTestStore()
	require.NoError(t, store.AddItem(headphones, electronicsHub))

	store.Freeze()
	assert.ErrorIs(t, store.AddItem(smartWatch, electronicsHub), ErrCartFrozen)
	assert.ErrorIs(t, store.RemoveItem("p201", "2"), ErrCartFrozen)
	assert.ErrorIs(t, store.UpdateQuantity("p201", "2", 3), ErrCartFrozen)
	assert.Equal(t, 1, store.LineCount())

	// The checkout flow clears the cart while it is still frozen.
	store.Clear()
	assert.Equal(t, 0, store.LineCount())

	store.Unfreeze()
	require.NoError(t, store.AddItem(smartWatch, electronicsHub))
	assert.Equal(t, 1, store.LineCount())
}

func TestAddItemNotifications(t *testing.T) {
	store, notifier := newTestStore()

	require.NoError(t, store.AddItem(headphones, electronicsHub))
	require.NoError(t, store.AddItem(headphones, electronicsHub))

	messages := notifier.Drain()
	require.Len(t, messages, 2)
	assert.Equal(t, "Wireless Headphones added to cart", messages[0].Message)
	assert.Equal(t, "Wireless Headphones quantity increased in cart", messages[1].Message)
	assert.Equal(t, notify.SeveritySuccess, messages[0].Severity)
}
