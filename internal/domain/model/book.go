package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Book struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title           string          `gorm:"type:varchar(255);not null" json:"title"`
	Author          string          `gorm:"type:varchar(255);not null" json:"author"`
	Genre           *string         `gorm:"type:varchar(100)" json:"genre,omitempty"`
	PublicationDate *time.Time      `gorm:"column:publication_date" json:"publication_date,omitempty"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt       time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
