package entity

import (
	"time"

	"gorm.io/datatypes"
)

// WishlistItem keys a saved product by identity and carries a JSON snapshot
// of its display record so the wishlist renders without a remote fetch.
type WishlistItem struct {
	ProductID string         `gorm:"column:product_id;primaryKey;type:varchar(128)"`
	Snapshot  datatypes.JSON `gorm:"column:snapshot"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
}

func (WishlistItem) TableName() string {
	return "wishlist_item"
}
