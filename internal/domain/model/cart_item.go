package model

import "time"

// カートは (user_id, book_id) につき1行
// 同じ本の追加は数量加算、数量0以下は行削除（0の行は残さない）
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_cart_user_book" json:"user_id"`
	BookID    int64     `gorm:"not null;uniqueIndex:idx_cart_user_book" json:"book_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
