package entity

import "time"

// PrefEntry is one durable key-value preference (cart identity, newsletter
// flags). The only state this system owns besides the wishlist.
type PrefEntry struct {
	Key       string    `gorm:"column:pref_key;primaryKey;type:varchar(64)"`
	Value     string    `gorm:"column:pref_value;type:text"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (PrefEntry) TableName() string {
	return "pref_entry"
}

// Stable preference keys.
const (
	PrefCartID               = "cart_id"
	PrefNewsletterSubscribed = "newsletter_subscribed"
	PrefNewsletterEmail      = "newsletter_email"
	PrefNewsletterDismissed  = "newsletter_dismissed"
)
