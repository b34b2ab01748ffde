package models

import "time"

// Record is a key/value pair held in the backing store.
// The cache fronts reads of this table.
type Record struct {
	Key       string    `json:"key" gorm:"column:record_key;primaryKey"`
	Value     string    `json:"value" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for Record Model
func (Record) TableName() string {
	return "records"
}
