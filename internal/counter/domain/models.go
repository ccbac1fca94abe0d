package domain

import "time"

// Counter is the identity of this sales station. Each device holds at most
// one record. Name becomes write-once as soon as the first sale is
// recorded, so sales history always points back at the identity it was
// collected under.
type Counter struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"column:name;not null" json:"name"`
	OperatorName string    `gorm:"column:operator_name" json:"operator_name,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Counter) TableName() string {
	return "counter"
}
