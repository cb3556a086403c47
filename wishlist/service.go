package wishlist

import (
	"encoding/json"
	"fmt"
	"log"

	"gorm.io/datatypes"

	"github.com/oticaisis/storefront/catalog"
	entity "github.com/oticaisis/storefront/model/entity"
	wishlistrepo "github.com/oticaisis/storefront/model/repository/wishlist"
)

// Service keeps the saved-products collection. Items carry a snapshot of the
// product at save time, so the wishlist survives catalog outages, and every
// mutation persists immediately.
type Service struct {
	repo *wishlistrepo.WishlistRepository
}

func NewService(repo *wishlistrepo.WishlistRepository) *Service {
	return &Service{repo: repo}
}

// Add saves a product. Saving a product that is already present is a no-op.
func (s *Service) Add(p catalog.Product) error {
	if p.ID == "" {
		return fmt.Errorf("wishlist add: product without id")
	}
	snapshot, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("wishlist add: %w", err)
	}
	return s.repo.Save(entity.WishlistItem{
		ProductID: p.ID,
		Snapshot:  datatypes.JSON(snapshot),
	})
}

// Remove drops a product. Removing an absent product is a no-op.
func (s *Service) Remove(productID string) error {
	return s.repo.Delete(productID)
}

// Contains reports whether the product is saved.
func (s *Service) Contains(productID string) bool {
	return s.repo.Has(productID)
}

// Products returns the saved products, oldest first. Items whose snapshot no
// longer decodes are skipped rather than failing the whole list.
func (s *Service) Products() ([]catalog.Product, error) {
	items, err := s.repo.All()
	if err != nil {
		return nil, fmt.Errorf("wishlist load: %w", err)
	}
	products := make([]catalog.Product, 0, len(items))
	for _, item := range items {
		var p catalog.Product
		if err := json.Unmarshal(item.Snapshot, &p); err != nil {
			log.Printf("wishlist: dropping unreadable snapshot for %s: %v", item.ProductID, err)
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// Count returns how many products are saved.
func (s *Service) Count() int {
	items, err := s.repo.All()
	if err != nil {
		return 0
	}
	return len(items)
}

// Clear empties the wishlist.
func (s *Service) Clear() error {
	return s.repo.Clear()
}
