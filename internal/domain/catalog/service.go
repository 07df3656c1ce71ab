// internal/domain/catalog/service.go
package catalog

import (
	"strings"
)

// Provider supplies read-only menu and restaurant data to the rest of
// the application. Checkout treats the catalog as an injected
// collaborator; nothing outside this package mutates it.
type Provider interface {
	Restaurant() Restaurant
	Categories() []Category
	Product(id string) (Product, bool)
	Popular() []Product
	Search(query string) []Product
}

// StaticProvider serves the authored menu from memory
type StaticProvider struct {
	restaurant Restaurant
	categories []Category
	byID       map[string]Product
}

// NewStaticProvider creates a provider over the authored menu data
func NewStaticProvider() *StaticProvider {
	return newProvider(restaurantData, menuData)
}

// NewProviderWith creates a provider over caller-supplied data. Used by
// tests and by deployments that load the menu from elsewhere.
func NewProviderWith(restaurant Restaurant, categories []Category) *StaticProvider {
	return newProvider(restaurant, categories)
}

func newProvider(restaurant Restaurant, categories []Category) *StaticProvider {
	byID := make(map[string]Product)
	for _, cat := range categories {
		for _, p := range cat.Products {
			byID[p.ID] = p
		}
	}
	return &StaticProvider{
		restaurant: restaurant,
		categories: categories,
		byID:       byID,
	}
}

// Restaurant returns the store's display metadata
func (p *StaticProvider) Restaurant() Restaurant {
	return p.restaurant
}

// Categories returns the full menu grouped by category
func (p *StaticProvider) Categories() []Category {
	return p.categories
}

// Product returns a product by id
func (p *StaticProvider) Product(id string) (Product, bool) {
	prod, ok := p.byID[id]
	return prod, ok
}

// Popular returns the products flagged as popular, in menu order
func (p *StaticProvider) Popular() []Product {
	var popular []Product
	for _, cat := range p.categories {
		for _, prod := range cat.Products {
			if prod.IsPopular {
				popular = append(popular, prod)
			}
		}
	}
	return popular
}

// Search returns products whose name or description contains the query,
// case-insensitively, in menu order
func (p *StaticProvider) Search(query string) []Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var results []Product
	for _, cat := range p.categories {
		for _, prod := range cat.Products {
			if strings.Contains(strings.ToLower(prod.Name), query) ||
				strings.Contains(strings.ToLower(prod.Description), query) {
				results = append(results, prod)
			}
		}
	}
	return results
}
