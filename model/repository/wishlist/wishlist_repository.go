package wishlist

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	entity "github.com/oticaisis/storefront/model/entity"
)

// WishlistRepository persists the wishlist collection. Every mutation writes
// through immediately.
type WishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) (*WishlistRepository, error) {
	if err := db.AutoMigrate(&entity.WishlistItem{}); err != nil {
		return nil, err
	}
	return &WishlistRepository{db: db}, nil
}

// Save upserts an item keyed by product identity.
func (r *WishlistRepository) Save(item entity.WishlistItem) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"snapshot"}),
	}).Create(&item).Error
}

// Delete removes an item. Absent products are a no-op.
func (r *WishlistRepository) Delete(productID string) error {
	return r.db.Delete(&entity.WishlistItem{}, "product_id = ?", productID).Error
}

// Has reports whether the product is saved.
func (r *WishlistRepository) Has(productID string) bool {
	var count int64
	r.db.Model(&entity.WishlistItem{}).Where("product_id = ?", productID).Count(&count)
	return count > 0
}

// All returns every saved item, oldest first.
func (r *WishlistRepository) All() ([]entity.WishlistItem, error) {
	var items []entity.WishlistItem
	err := r.db.Order("created_at").Find(&items).Error
	return items, err
}

// Clear empties the wishlist.
func (r *WishlistRepository) Clear() error {
	return r.db.Where("1 = 1").Delete(&entity.WishlistItem{}).Error
}
