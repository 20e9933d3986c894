package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文明細
// unit_priceは注文時点の価格スナップショット（後のカタログ価格変更の影響を受けない）
type OrderItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64           `gorm:"not null;index" json:"order_id"`
	BookID    int64           `gorm:"not null;index" json:"book_id"`
	Quantity  int64           `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null;column:unit_price" json:"unit_price"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
