package impl

import (
	"testing"

	"petsfeed/internal/domain/entity"
	domainerrors "petsfeed/internal/domain/errors"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testProduct(id string) entity.Product {
	return entity.Product{
		ID:       id,
		Name:     gofakeit.ProductName(),
		Brand:    gofakeit.Company(),
		ImageURL: gofakeit.URL(),
		Category: "food",
	}
}

func testOffer(productID, storeID, price string) entity.StoreOffer {
	return entity.StoreOffer{
		ProductID:    productID,
		StoreID:      storeID,
		StoreName:    "Store " + storeID,
		Price:        decimal.RequireFromString(price),
		Availability: entity.AvailabilityInStock,
		Quantity:     25,
	}
}

func TestCartService_AddItem_NewLine(t *testing.T) {
	cart := NewCartService()

	product := testProduct("p1")
	offer := testOffer("p1", "s1", "25.50")

	item, err := cart.AddItem(product, offer, 2)
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "p1", item.ProductID)
	assert.Equal(t, product.Name, item.ProductName)
	assert.Equal(t, "s1", item.StoreID)
	assert.Equal(t, offer.StoreName, item.StoreName)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("25.50")))
	assert.Equal(t, 2, item.Quantity)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, item, items[0])
}

func TestCartService_AddItem_MergesSameProductAndStore(t *testing.T) {
	cart := NewCartService()

	product := testProduct("p1")
	offer := testOffer("p1", "s1", "10.00")

	first, err := cart.AddItem(product, offer, 1)
	require.NoError(t, err)

	// A later offer with a different price must not replace the snapshot.
	repriced := testOffer("p1", "s1", "12.00")
	merged, err := cart.AddItem(product, repriced, 2)
	require.NoError(t, err)

	assert.Equal(t, first.ID, merged.ID)
	assert.Equal(t, 3, merged.Quantity)
	assert.True(t, merged.Price.Equal(decimal.RequireFromString("10.00")))

	require.Len(t, cart.Items(), 1)
	assert.True(t, cart.TotalPrice().Equal(decimal.RequireFromString("30.00")))
}

func TestCartService_AddItem_SameProductDifferentStores(t *testing.T) {
	cart := NewCartService()

	product := testProduct("p1")

	_, err := cart.AddItem(product, testOffer("p1", "s1", "10.00"), 1)
	require.NoError(t, err)
	_, err = cart.AddItem(product, testOffer("p1", "s2", "9.00"), 1)
	require.NoError(t, err)

	items := cart.Items()
	require.Len(t, items, 2)
	assert.NotEqual(t, items[0].ID, items[1].ID)
}

func TestCartService_AddItem_InvalidQuantity(t *testing.T) {
	cart := NewCartService()

	_, err := cart.AddItem(testProduct("p1"), testOffer("p1", "s1", "10.00"), 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)

	_, err = cart.AddItem(testProduct("p1"), testOffer("p1", "s1", "10.00"), -3)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)

	assert.Empty(t, cart.Items())
}

func TestCartService_RemoveItem(t *testing.T) {
	cart := NewCartService()

	item, err := cart.AddItem(testProduct("p1"), testOffer("p1", "s1", "10.00"), 1)
	require.NoError(t, err)

	// Unknown IDs are ignored.
	cart.RemoveItem("no-such-line")
	require.Len(t, cart.Items(), 1)

	cart.RemoveItem(item.ID)
	assert.Empty(t, cart.Items())

	// Removing twice is a no-op.
	cart.RemoveItem(item.ID)
	assert.Empty(t, cart.Items())
}

func TestCartService_UpdateQuantity(t *testing.T) {
	cart := NewCartService()

	item, err := cart.AddItem(testProduct("p1"), testOffer("p1", "s1", "10.00"), 1)
	require.NoError(t, err)

	cart.UpdateQuantity(item.ID, 5)
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)

	// Unknown IDs are ignored.
	cart.UpdateQuantity("no-such-line", 3)
	require.Len(t, cart.Items(), 1)

	// Zero removes the line.
	cart.UpdateQuantity(item.ID, 0)
	assert.Empty(t, cart.Items())
}

func TestCartService_UpdateQuantity_NegativeRemoves(t *testing.T) {
	cart := NewCartService()

	item, err := cart.AddItem(testProduct("p1"), testOffer("p1", "s1", "10.00"), 2)
	require.NoError(t, err)

	cart.UpdateQuantity(item.ID, -1)
	assert.Empty(t, cart.Items())
}

func TestCartService_Totals(t *testing.T) {
	cart := NewCartService()

	_, err := cart.AddItem(testProduct("p1"), testOffer("p1", "s1", "25.00"), 2)
	require.NoError(t, err)
	_, err = cart.AddItem(testProduct("p2"), testOffer("p2", "s2", "37.50"), 2)
	require.NoError(t, err)

	assert.Equal(t, 4, cart.TotalItems())
	assert.True(t, cart.TotalPrice().Equal(decimal.RequireFromString("125.00")),
		"got %s", cart.TotalPrice())
}

func TestCartService_EmptyCartTotals(t *testing.T) {
	cart := NewCartService()

	assert.Equal(t, 0, cart.TotalItems())
	assert.True(t, cart.TotalPrice().IsZero())
	assert.Empty(t, cart.Items())
	assert.Empty(t, cart.GroupByStore())
}

func TestCartService_GroupByStore_PreservesInsertionOrder(t *testing.T) {
	cart := NewCartService()

	_, err := cart.AddItem(testProduct("p1"), testOffer("p1", "s1", "10.00"), 1)
	require.NoError(t, err)
	_, err = cart.AddItem(testProduct("p2"), testOffer("p2", "s2", "20.00"), 1)
	require.NoError(t, err)
	_, err = cart.AddItem(testProduct("p3"), testOffer("p3", "s1", "30.00"), 1)
	require.NoError(t, err)

	groups := cart.GroupByStore()
	require.Len(t, groups, 2)

	// Store s1 was seen first, so it leads even though s1's second line was
	// added last.
	assert.Equal(t, "s1", groups[0].StoreID)
	require.Len(t, groups[0].Items, 2)
	assert.Equal(t, "p1", groups[0].Items[0].ProductID)
	assert.Equal(t, "p3", groups[0].Items[1].ProductID)

	assert.Equal(t, "s2", groups[1].StoreID)
	require.Len(t, groups[1].Items, 1)

	assert.True(t, groups[0].Subtotal().Equal(decimal.RequireFromString("40.00")))
	assert.True(t, groups[1].Subtotal().Equal(decimal.RequireFromString("20.00")))
}

func TestCartService_Clear(t *testing.T) {
	cart := NewCartService()

	_, err := cart.AddItem(testProduct("p1"), testOffer("p1", "s1", "10.00"), 1)
	require.NoError(t, err)

	cart.Clear()
	assert.Empty(t, cart.Items())
	assert.Equal(t, 0, cart.TotalItems())
}

func TestCartService_Subscribe(t *testing.T) {
	cart := NewCartService()

	var notified int
	unsubscribe := cart.Subscribe(func() { notified++ })

	item, err := cart.AddItem(testProduct("p1"), testOffer("p1", "s1", "10.00"), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, notified)

	cart.UpdateQuantity(item.ID, 3)
	assert.Equal(t, 2, notified)

	// No-op mutations do not notify.
	cart.RemoveItem("no-such-line")
	assert.Equal(t, 2, notified)

	cart.RemoveItem(item.ID)
	assert.Equal(t, 3, notified)

	unsubscribe()
	cart.Clear()
	assert.Equal(t, 3, notified)
}

func TestCartService_SubscriberReadsCartWithoutDeadlock(t *testing.T) {
	cart := NewCartService()

	var seenTotal int
	cart.Subscribe(func() { seenTotal = cart.TotalItems() })

	_, err := cart.AddItem(testProduct("p1"), testOffer("p1", "s1", "10.00"), 4)
	require.NoError(t, err)

	assert.Equal(t, 4, seenTotal)
}
