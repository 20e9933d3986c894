package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	FindByID(ctx context.Context, itemID int64) (model.CartItem, error)
	// 同一(user, book)は数量加算。加算はロック付きトランザクションで行う
	AddQuantity(ctx context.Context, userID int64, bookID int64, qty int64) error
	UpdateQuantity(ctx context.Context, itemID int64, qty int64) error
	DeleteByID(ctx context.Context, itemID int64) error
	// ユーザーの全行削除（空でも成功）
	DeleteByUserID(ctx context.Context, userID int64) error
}
