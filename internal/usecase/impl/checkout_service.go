package impl

import (
	"context"
	"strings"

	"petsfeed/config"
	"petsfeed/internal/domain/entity"
	domainerrors "petsfeed/internal/domain/errors"
	"petsfeed/internal/domain/repository"
	"petsfeed/internal/errors"
	"petsfeed/internal/usecase"

	"golang.org/x/sync/errgroup"
)

type checkoutService struct {
	cart   usecase.CartUsecase
	orders repository.OrderRepository
	config *config.Config
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(cart usecase.CartUsecase, orders repository.OrderRepository, cfg *config.Config) usecase.CheckoutUsecase {
	// An unset or zero limit would stop errgroup from running anything.
	if cfg.Checkout == nil {
		cfg.Checkout = &config.CheckoutConfig{}
	}
	if cfg.Checkout.MaxConcurrentOrders <= 0 {
		cfg.Checkout.MaxConcurrentOrders = 4
	}

	return &checkoutService{
		cart:   cart,
		orders: orders,
		config: cfg,
	}
}

// PlaceOrder splits the cart into one order per store group and submits all of
// them concurrently. Every submission is attempted even if another one fails;
// the cart is cleared only when all of them succeed. Orders already created at
// other stores are not rolled back on partial failure.
func (s *checkoutService) PlaceOrder(ctx context.Context, input *usecase.CheckoutInput) (*usecase.CheckoutResult, error) {
	if err := validateCheckoutInput(input); err != nil {
		return nil, err
	}

	groups := s.cart.GroupByStore()
	if len(groups) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	requests := make([]repository.CreateOrderRequest, len(groups))
	for i, group := range groups {
		requests[i] = buildOrderRequest(group, input)
	}

	orders := make([]entity.Order, len(requests))
	errs := make([]error, len(requests))

	var g errgroup.Group
	g.SetLimit(s.config.Checkout.MaxConcurrentOrders)

	for i := range requests {
		g.Go(func() error {
			order, err := s.orders.CreateOrder(ctx, requests[i])
			if err != nil {
				errs[i] = errors.Wrapf(err, "failed to create order for store %s", requests[i].StoreID)

				return errs[i]
			}
			orders[i] = order

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// Do not clear the cart: the user retries without re-adding items.
		return nil, domainerrors.ErrCheckoutFailed.WithDetails(errors.Join(errs...).Error())
	}

	s.cart.Clear()

	return &usecase.CheckoutResult{Orders: orders}, nil
}

// buildOrderRequest turns one store group of the cart into an order creation
// request for that store.
func buildOrderRequest(group entity.StoreGroup, input *usecase.CheckoutInput) repository.CreateOrderRequest {
	items := make([]repository.OrderItemRequest, len(group.Items))
	for i, item := range group.Items {
		items[i] = repository.OrderItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	return repository.CreateOrderRequest{
		StoreID:       group.StoreID,
		Items:         items,
		TotalAmount:   group.Subtotal(),
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		CustomerEmail: input.CustomerEmail,
		Notes:         input.Notes,
		PickupTime:    input.PickupTime,
	}
}

// validateCheckoutInput mirrors the checks of the checkout form: name and a
// plausible phone number are required, email must look like one when present.
func validateCheckoutInput(input *usecase.CheckoutInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("checkout input is required")
	}
	if strings.TrimSpace(input.CustomerName) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("customer name is required")
	}
	if len(strings.TrimSpace(input.CustomerPhone)) < 10 {
		return domainerrors.ErrValidationFailed.WithDetails("customer phone must have at least 10 characters")
	}
	if input.CustomerEmail != "" && !strings.Contains(input.CustomerEmail, "@") {
		return domainerrors.ErrValidationFailed.WithDetails("customer email is invalid")
	}

	return nil
}
