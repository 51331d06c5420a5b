package models

import "time"

// StorageBlob adalah key-value store sederhana pengganti localStorage dari
// demo aslinya. Satu key tetap menampung serialized order history.
type StorageBlob struct {
	Key       string    `gorm:"primaryKey;type:varchar(100)" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
