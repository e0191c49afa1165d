package impl

import (
	"fmt"
	"sync"
	"time"

	"petsfeed/internal/domain/entity"
	domainerrors "petsfeed/internal/domain/errors"
	"petsfeed/internal/usecase"

	"github.com/shopspring/decimal"
)

// cartService is the in-memory cart aggregate for the current session. It is
// the single source of truth for cart state; the delivery layer and the
// checkout service both consume it through the CartUsecase interface.
type cartService struct {
	mu    sync.Mutex
	items []entity.CartItem

	subMu     sync.Mutex
	subs      map[int]func()
	nextSubID int
}

// NewCartService creates an empty session cart.
func NewCartService() usecase.CartUsecase {
	return &cartService{
		subs: make(map[int]func()),
	}
}

// AddItem merges into an existing line for the same (product, store) pair or
// appends a new line with a fresh composite ID. The snapshot of an existing
// line is never overwritten; only its quantity grows.
func (s *cartService) AddItem(product entity.Product, offer entity.StoreOffer, quantity int) (entity.CartItem, error) {
	if quantity <= 0 {
		return entity.CartItem{}, domainerrors.ErrInvalidQuantity
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ProductID == product.ID && s.items[i].StoreID == offer.StoreID {
			s.items[i].Quantity += quantity
			item := s.items[i]
			s.mu.Unlock()
			s.notify()

			return item, nil
		}
	}

	item := entity.CartItem{
		ID:           newLineID(product.ID, offer.StoreID),
		ProductID:    product.ID,
		ProductName:  product.Name,
		ProductBrand: product.Brand,
		ProductImage: product.ImageURL,
		StoreID:      offer.StoreID,
		StoreName:    offer.StoreName,
		Price:        offer.Price,
		Quantity:     quantity,
		Availability: offer.Availability,
	}
	s.items = append(s.items, item)
	s.mu.Unlock()
	s.notify()

	return item, nil
}

// RemoveItem removes the line with the given ID; unknown IDs are a no-op.
func (s *cartService) RemoveItem(itemID string) {
	s.mu.Lock()
	removed := s.removeLocked(itemID)
	s.mu.Unlock()

	if removed {
		s.notify()
	}
}

// UpdateQuantity sets the quantity of a line. Zero or negative quantities
// remove the line; unknown IDs are a no-op.
func (s *cartService) UpdateQuantity(itemID string, quantity int) {
	s.mu.Lock()

	var changed bool
	if quantity <= 0 {
		changed = s.removeLocked(itemID)
	} else {
		for i := range s.items {
			if s.items[i].ID == itemID {
				s.items[i].Quantity = quantity
				changed = true

				break
			}
		}
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

// Clear empties the cart.
func (s *cartService) Clear() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
	s.notify()
}

// Items returns a copy of all cart lines in insertion order.
func (s *cartService) Items() []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]entity.CartItem(nil), s.items...)
}

// TotalItems returns the sum of quantities across all lines.
func (s *cartService) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int
	for _, item := range s.items {
		total += item.Quantity
	}

	return total
}

// TotalPrice returns the sum of price x quantity across all lines.
func (s *cartService) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.LineTotal())
	}

	return total
}

// GroupByStore groups the cart lines per store, preserving the first-insertion
// order of stores and the insertion order of lines within each store.
func (s *cartService) GroupByStore() []entity.StoreGroup {
	s.mu.Lock()
	defer s.mu.Unlock()

	var groups []entity.StoreGroup
	index := make(map[string]int)

	for _, item := range s.items {
		i, ok := index[item.StoreID]
		if !ok {
			i = len(groups)
			index[item.StoreID] = i
			groups = append(groups, entity.StoreGroup{
				StoreID:   item.StoreID,
				StoreName: item.StoreName,
			})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	return groups
}

// Subscribe registers a change callback and returns its cancellation func.
func (s *cartService) Subscribe(fn func()) func() {
	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// removeLocked removes the line with the given ID. Caller must hold s.mu.
func (s *cartService) removeLocked(itemID string) bool {
	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items = append(s.items[:i], s.items[i+1:]...)

			return true
		}
	}

	return false
}

// notify invokes subscribers outside the cart lock so callbacks may read the
// cart without deadlocking.
func (s *cartService) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// newLineID builds the composite line identifier. The timestamp keeps IDs
// unique across remove/re-add cycles of the same product and store.
func newLineID(productID, storeID string) string {
	return fmt.Sprintf("%s-%s-%d", productID, storeID, time.Now().UnixMilli())
}
