package domain

import (
	"sort"
	"strings"
	"time"
)

// Item is a sellable catalog entry. Price is in minor currency units.
// Name never changes after creation: past sales reference items by name
// snapshot, and a retired item keeps its row with IsActive=false instead of
// being deleted.
type Item struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Price     int64     `gorm:"column:price;not null" json:"price"`
	Stock     int64     `gorm:"column:stock;not null" json:"stock"`
	IsActive  bool      `gorm:"column:is_active;not null" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Item) TableName() string {
	return "items"
}

// DisplayOrder returns a copy sorted the way the catalog is presented:
// active items first, then case-insensitive by name. Storage order is
// unspecified; this is the business rule callers apply before rendering.
func DisplayOrder(items []Item) []Item {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].IsActive != sorted[j].IsActive {
			return sorted[i].IsActive
		}
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})
	return sorted
}
