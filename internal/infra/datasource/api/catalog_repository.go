package api

import (
	"context"
	"net/url"
	"strconv"

	"petsfeed/internal/domain/entity"
	"petsfeed/internal/domain/repository"
)

type catalogRepository struct {
	client *Client
}

// NewCatalogRepository creates a catalog data source backed by the upstream API.
func NewCatalogRepository(client *Client) repository.CatalogRepository {
	return &catalogRepository{client: client}
}

func (r *catalogRepository) SearchProducts(ctx context.Context, query, category string) ([]entity.Product, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	if category != "" {
		params.Set("category", category)
	}

	var dtos []productDTO
	if err := r.client.get(ctx, "/products/search", params, &dtos); err != nil {
		return nil, err
	}

	return toProducts(dtos), nil
}

func (r *catalogRepository) GetProduct(ctx context.Context, productID string) (entity.Product, error) {
	var dto productDTO
	if err := r.client.get(ctx, "/products/"+url.PathEscape(productID), nil, &dto); err != nil {
		if isNotFound(err) {
			return entity.Product{}, repository.ErrProductNotFound
		}

		return entity.Product{}, err
	}

	return dto.toEntity(), nil
}

func (r *catalogRepository) GetProductOffers(ctx context.Context, productID string, near *entity.Location) ([]entity.StoreOffer, error) {
	params := url.Values{}
	if near != nil {
		params.Set("lat", strconv.FormatFloat(near.Latitude, 'f', -1, 64))
		params.Set("lng", strconv.FormatFloat(near.Longitude, 'f', -1, 64))
	}

	var dtos []offerDTO
	if err := r.client.get(ctx, "/products/"+url.PathEscape(productID)+"/stores", params, &dtos); err != nil {
		if isNotFound(err) {
			return nil, repository.ErrProductNotFound
		}

		return nil, err
	}

	offers := make([]entity.StoreOffer, len(dtos))
	for i, dto := range dtos {
		offers[i] = dto.toEntity()
	}

	return offers, nil
}

func (r *catalogRepository) PopularProducts(ctx context.Context, limit int) ([]entity.Product, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var dtos []productDTO
	if err := r.client.get(ctx, "/products/popular", params, &dtos); err != nil {
		return nil, err
	}

	return toProducts(dtos), nil
}

func (r *catalogRepository) ProductsByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	params := url.Values{"category": []string{category}}

	var dtos []productDTO
	if err := r.client.get(ctx, "/products/category", params, &dtos); err != nil {
		return nil, err
	}

	return toProducts(dtos), nil
}

func toProducts(dtos []productDTO) []entity.Product {
	products := make([]entity.Product, len(dtos))
	for i, dto := range dtos {
		products[i] = dto.toEntity()
	}

	return products
}
