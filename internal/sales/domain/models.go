package domain

import "time"

// Sale is one completed transaction line. Item and Price are a snapshot of
// the catalog entry at the moment of sale, not a live reference: editing or
// disabling the item later must not change what history shows.
type Sale struct {
	Key   int64     `gorm:"column:key;primaryKey;autoIncrement" json:"key"`
	Item  string    `gorm:"column:item;not null" json:"item"`
	Price int64     `gorm:"column:price;not null" json:"price"`
	Date  time.Time `gorm:"column:date;not null" json:"date"`
}

func (Sale) TableName() string {
	return "sales"
}
