package usecase

import (
	"context"
	"errors"
	"net/http"

	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// CartUsecase は /shoppingCart の業務ロジックです。
type CartUsecase struct {
	cartRepo repo.CartRepository
	bookRepo repo.BookRepository
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	bookRepo repo.BookRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo: cartRepo,
		bookRepo: bookRepo,
	}
}

type AddToCartInput struct {
	UserID   int64
	BookID   int64
	Quantity int64
}

type UpdateCartInput struct {
	ItemID   int64
	Quantity int64
}

// カート行に載せる本の表示用フィールド
type CartBookOutput struct {
	ID     int64           `json:"id"`
	Title  string          `json:"title"`
	Author string          `json:"author"`
	Price  decimal.Decimal `json:"price"`
}

type CartEntryOutput struct {
	ID       int64           `json:"id"`
	UserID   int64           `json:"user_id"`
	BookID   int64           `json:"book_id"`
	Quantity int64           `json:"quantity"`
	Book     CartBookOutput  `json:"book"`
	Total    decimal.Decimal `json:"total"`
}

type MessageOutput struct {
	Message string `json:"message"`
}

// 行小計＝数量×現在価格（遅延取得のプロパティではなく普通の関数で計算する）
func lineTotal(qty int64, price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(qty))
}

// AddToCart はカートに追加（同一の本は数量加算）。
// 加算はrepo側のロック付きトランザクションなので、同時追加でも加算は消えない。
func (u *CartUsecase) AddToCart(ctx context.Context, in AddToCartInput) (MessageOutput, error) {
	if in.UserID <= 0 {
		return MessageOutput{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}
	if in.BookID <= 0 {
		return MessageOutput{}, NewHTTPError(http.StatusBadRequest, "invalid book_id")
	}
	if in.Quantity < 1 {
		return MessageOutput{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	// 本の存在チェック
	_, err := u.bookRepo.FindByID(ctx, in.BookID)
	if errors.Is(err, repo.ErrNotFound) {
		return MessageOutput{}, NewHTTPError(http.StatusNotFound, "book not found")
	}
	if err != nil {
		return MessageOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartRepo.AddQuantity(ctx, in.UserID, in.BookID, in.Quantity); err != nil {
		return MessageOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return MessageOutput{Message: "item added to cart"}, nil
}

// 数量変更（所有チェック付き）。0以下は行削除
func (u *CartUsecase) UpdateCart(ctx context.Context, userID int64, in UpdateCartInput) (MessageOutput, error) {
	if userID <= 0 {
		return MessageOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ItemID <= 0 {
		return MessageOutput{}, NewHTTPError(http.StatusBadRequest, "invalid item_id")
	}

	item, err := u.cartRepo.FindByID(ctx, in.ItemID)
	if errors.Is(err, repo.ErrNotFound) {
		return MessageOutput{}, NewHTTPError(http.StatusNotFound, "cart item not found")
	}
	if err != nil {
		return MessageOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//他人のカートは403
	if item.UserID != userID {
		return MessageOutput{}, NewHTTPError(http.StatusForbidden, "cannot update another user's cart")
	}

	if in.Quantity > 0 {
		if err := u.cartRepo.UpdateQuantity(ctx, in.ItemID, in.Quantity); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return MessageOutput{}, NewHTTPError(http.StatusNotFound, "cart item not found")
			}
			return MessageOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	} else {
		//0以下は削除（0の行は残さない）
		if err := u.cartRepo.DeleteByID(ctx, in.ItemID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return MessageOutput{}, NewHTTPError(http.StatusNotFound, "cart item not found")
			}
			return MessageOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	return MessageOutput{Message: "cart item updated"}, nil
}

// ClearCart は全行削除。空カートでも成功
func (u *CartUsecase) ClearCart(ctx context.Context, userID int64) (MessageOutput, error) {
	if userID <= 0 {
		return MessageOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := u.cartRepo.DeleteByUserID(ctx, userID); err != nil {
		return MessageOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return MessageOutput{Message: "cart cleared"}, nil
}

// GetCart は本の表示フィールド付きでカートを返す。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) ([]CartEntryOutput, error) {
	if userID <= 0 {
		return []CartEntryOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	items, err := u.cartRepo.ListByUserID(ctx, userID)
	if err != nil {
		return []CartEntryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	entries := make([]CartEntryOutput, 0, len(items))

	for _, it := range items {
		b, err := u.bookRepo.FindByID(ctx, it.BookID)
		if err != nil {
			continue
		}

		entries = append(entries, CartEntryOutput{
			ID:       it.ID,
			UserID:   it.UserID,
			BookID:   it.BookID,
			Quantity: it.Quantity,
			Book: CartBookOutput{
				ID:     b.ID,
				Title:  b.Title,
				Author: b.Author,
				Price:  b.Price,
			},
			Total: lineTotal(it.Quantity, b.Price),
		})
	}

	return entries, nil
}
