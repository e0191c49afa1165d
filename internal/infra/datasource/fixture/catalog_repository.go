package fixture

import (
	"context"
	"slices"
	"sort"
	"strings"
	"time"

	"petsfeed/config"
	"petsfeed/internal/domain/entity"
	"petsfeed/internal/domain/repository"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

type catalogRepository struct {
	delay time.Duration
}

// NewCatalogRepository creates a fixture-backed catalog data source.
func NewCatalogRepository(cfg *config.Config) repository.CatalogRepository {
	return &catalogRepository{delay: cfg.DataSource.FixtureDelay}
}

func (r *catalogRepository) SearchProducts(ctx context.Context, query, category string) ([]entity.Product, error) {
	if err := simulateLatency(ctx, r.delay); err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))

	var result []entity.Product
	for _, p := range fixtureProducts {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if needle != "" && !matchesProduct(p, needle) {
			continue
		}
		result = append(result, p)
	}

	return result, nil
}

func (r *catalogRepository) GetProduct(ctx context.Context, productID string) (entity.Product, error) {
	if err := simulateLatency(ctx, r.delay); err != nil {
		return entity.Product{}, err
	}

	for _, p := range fixtureProducts {
		if p.ID == productID {
			return p, nil
		}
	}

	return entity.Product{}, repository.ErrProductNotFound
}

func (r *catalogRepository) GetProductOffers(ctx context.Context, productID string, near *entity.Location) ([]entity.StoreOffer, error) {
	if err := simulateLatency(ctx, r.delay); err != nil {
		return nil, err
	}

	if _, err := r.GetProductWithoutDelay(productID); err != nil {
		return nil, err
	}

	offers := slices.Clone(fixtureOffers[productID])

	if near != nil {
		origin := locationPoint(*near)
		sort.SliceStable(offers, func(i, j int) bool {
			return storeDistanceMeters(offers[i].StoreID, origin) < storeDistanceMeters(offers[j].StoreID, origin)
		})
	}

	return offers, nil
}

func (r *catalogRepository) PopularProducts(ctx context.Context, limit int) ([]entity.Product, error) {
	if err := simulateLatency(ctx, r.delay); err != nil {
		return nil, err
	}

	// Tagged products first, then the rest of the catalog.
	result := make([]entity.Product, 0, len(fixtureProducts))
	for _, p := range fixtureProducts {
		if slices.Contains(p.Tags, "popular") {
			result = append(result, p)
		}
	}
	for _, p := range fixtureProducts {
		if !slices.Contains(p.Tags, "popular") {
			result = append(result, p)
		}
	}

	if limit > 0 && limit < len(result) {
		result = result[:limit]
	}

	return result, nil
}

func (r *catalogRepository) ProductsByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	if err := simulateLatency(ctx, r.delay); err != nil {
		return nil, err
	}

	var result []entity.Product
	for _, p := range fixtureProducts {
		if strings.EqualFold(p.Category, category) {
			result = append(result, p)
		}
	}

	return result, nil
}

// GetProductWithoutDelay is the latency-free lookup shared by other fixture
// methods.
func (r *catalogRepository) GetProductWithoutDelay(productID string) (entity.Product, error) {
	for _, p := range fixtureProducts {
		if p.ID == productID {
			return p, nil
		}
	}

	return entity.Product{}, repository.ErrProductNotFound
}

func matchesProduct(p entity.Product, needle string) bool {
	if strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Brand), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}

	return false
}

func storeDistanceMeters(storeID string, origin orb.Point) float64 {
	for _, s := range fixtureStores {
		if s.ID == storeID {
			return geo.Distance(origin, locationPoint(s.Location()))
		}
	}

	return 0
}
