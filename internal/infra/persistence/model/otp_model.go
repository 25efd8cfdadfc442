package model

import "time"

// OneTimeCodeModel mirrors the 'otps' table. The unique email column is the
// upsert key that guarantees at most one live code per address.
type OneTimeCodeModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Email     string `gorm:"type:varchar(255);unique;not null"`
	Code      int    `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OneTimeCodeModel) TableName() string {
	return "otps"
}
