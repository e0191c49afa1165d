package api

import (
	"context"
	"net/url"
	"strconv"

	"petsfeed/internal/domain/entity"
	"petsfeed/internal/domain/repository"
)

type storeRepository struct {
	client *Client
}

// NewStoreRepository creates a store data source backed by the upstream API.
func NewStoreRepository(client *Client) repository.StoreRepository {
	return &storeRepository{client: client}
}

func (r *storeRepository) ListStores(ctx context.Context) ([]entity.Store, error) {
	var dtos []storeDTO
	if err := r.client.get(ctx, "/stores", nil, &dtos); err != nil {
		return nil, err
	}

	return toStores(dtos), nil
}

func (r *storeRepository) GetStore(ctx context.Context, storeID string) (entity.Store, error) {
	var dto storeDTO
	if err := r.client.get(ctx, "/stores/"+url.PathEscape(storeID), nil, &dto); err != nil {
		if isNotFound(err) {
			return entity.Store{}, repository.ErrStoreNotFound
		}

		return entity.Store{}, err
	}

	return dto.toEntity(), nil
}

func (r *storeRepository) NearbyStores(ctx context.Context, origin entity.Location, radiusKm float64) ([]entity.Store, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(origin.Latitude, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(origin.Longitude, 'f', -1, 64))
	params.Set("radius", strconv.FormatFloat(radiusKm, 'f', -1, 64))

	var dtos []storeDTO
	if err := r.client.get(ctx, "/stores/nearby", params, &dtos); err != nil {
		return nil, err
	}

	return toStores(dtos), nil
}

func toStores(dtos []storeDTO) []entity.Store {
	stores := make([]entity.Store, len(dtos))
	for i, dto := range dtos {
		stores[i] = dto.toEntity()
	}

	return stores
}
