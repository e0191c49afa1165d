package api

import (
	"time"

	"petsfeed/internal/domain/entity"
	"petsfeed/internal/domain/repository"

	"github.com/shopspring/decimal"
)

// Wire types mirror the upstream API's camelCase JSON, decoupled from the
// snake_case the service itself exposes.

type productDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	Brand       string   `json:"brand"`
	Unit        string   `json:"unit"`
	Tags        []string `json:"tags"`
}

func (d productDTO) toEntity() entity.Product {
	return entity.Product{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Category:    d.Category,
		ImageURL:    d.ImageURL,
		Brand:       d.Brand,
		Unit:        d.Unit,
		Tags:        d.Tags,
	}
}

type offerDTO struct {
	ProductID    string          `json:"productId"`
	StoreID      string          `json:"storeId"`
	StoreName    string          `json:"storeName"`
	Price        decimal.Decimal `json:"price"`
	Availability string          `json:"availability"`
	Quantity     int             `json:"quantity"`
}

func (d offerDTO) toEntity() entity.StoreOffer {
	return entity.StoreOffer{
		ProductID:    d.ProductID,
		StoreID:      d.StoreID,
		StoreName:    d.StoreName,
		Price:        d.Price,
		Availability: entity.Availability(d.Availability),
		Quantity:     d.Quantity,
	}
}

type storeDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Phone        string  `json:"phone"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	WorkingHours string  `json:"workingHours"`
	Rating       float64 `json:"rating"`
	Distance     float64 `json:"distance"`
}

func (d storeDTO) toEntity() entity.Store {
	return entity.Store{
		ID:           d.ID,
		Name:         d.Name,
		Address:      d.Address,
		Phone:        d.Phone,
		Latitude:     d.Latitude,
		Longitude:    d.Longitude,
		WorkingHours: d.WorkingHours,
		Rating:       d.Rating,
		DistanceKm:   d.Distance,
	}
}

type orderItemDTO struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type orderDTO struct {
	ID          string          `json:"id"`
	StoreID     string          `json:"storeId"`
	StoreName   string          `json:"storeName"`
	Status      string          `json:"status"`
	Items       []orderItemDTO  `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	PickupTime  *time.Time      `json:"pickupTime"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (d orderDTO) toEntity() entity.Order {
	items := make([]entity.OrderItem, len(d.Items))
	for i, item := range d.Items {
		items[i] = entity.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	return entity.Order{
		ID:          d.ID,
		StoreID:     d.StoreID,
		StoreName:   d.StoreName,
		Status:      entity.OrderStatus(d.Status),
		Items:       items,
		TotalAmount: d.TotalAmount,
		PickupTime:  d.PickupTime,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type createOrderDTO struct {
	StoreID       string          `json:"storeId"`
	Items         []orderItemDTO  `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	CustomerEmail string          `json:"customerEmail,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	PickupTime    *time.Time      `json:"pickupTime,omitempty"`
}

func toCreateOrderDTO(req repository.CreateOrderRequest) createOrderDTO {
	items := make([]orderItemDTO, len(req.Items))
	for i, item := range req.Items {
		items[i] = orderItemDTO{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	return createOrderDTO{
		StoreID:       req.StoreID,
		Items:         items,
		TotalAmount:   req.TotalAmount,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Notes:         req.Notes,
		PickupTime:    req.PickupTime,
	}
}
