package usecase

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func bookOK(books *BookRepoMock, id int64, price string, t *testing.T) {
	t.Helper()
	books.On("FindByID", mock.Anything, id).Return(model.Book{
		ID: id, Title: "本", Author: "著者", Price: mustDecimal(t, price),
	}, nil)
}

// 同じ本を2回追加しても行は1つで数量が加算される
func TestAddToCart_SameBookAccumulates(t *testing.T) {
	cartRepo := newFakeCartRepo()
	books := new(BookRepoMock)
	bookOK(books, 1, "9.99", t)

	uc := NewCartUsecase(cartRepo, books)
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, AddToCartInput{UserID: 7, BookID: 1, Quantity: 2})
	require.NoError(t, err)

	_, err = uc.AddToCart(ctx, AddToCartInput{UserID: 7, BookID: 1, Quantity: 3})
	require.NoError(t, err)

	items, err := cartRepo.ListByUserID(ctx, 7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(5), items[0].Quantity)
}

func TestAddToCart_UnknownBook(t *testing.T) {
	cartRepo := newFakeCartRepo()
	books := new(BookRepoMock)
	books.On("FindByID", mock.Anything, int64(999)).Return(model.Book{}, repo.ErrNotFound)

	uc := NewCartUsecase(cartRepo, books)

	_, err := uc.AddToCart(context.Background(), AddToCartInput{UserID: 7, BookID: 999, Quantity: 1})

	require.Error(t, err)
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)

	//カートは空のまま
	items, _ := cartRepo.ListByUserID(context.Background(), 7)
	assert.Empty(t, items)
}

func TestAddToCart_RejectsNonPositiveQuantity(t *testing.T) {
	uc := NewCartUsecase(newFakeCartRepo(), new(BookRepoMock))

	_, err := uc.AddToCart(context.Background(), AddToCartInput{UserID: 7, BookID: 1, Quantity: 0})

	require.Error(t, err)
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

// 他人のカート行は更新できない
func TestUpdateCart_ForeignItemForbidden(t *testing.T) {
	cartRepo := newFakeCartRepo()
	books := new(BookRepoMock)
	bookOK(books, 1, "9.99", t)

	uc := NewCartUsecase(cartRepo, books)
	ctx := context.Background()

	//user 2の行を作る
	_, err := uc.AddToCart(ctx, AddToCartInput{UserID: 2, BookID: 1, Quantity: 1})
	require.NoError(t, err)

	items, err := cartRepo.ListByUserID(ctx, 2)
	require.NoError(t, err)
	require.Len(t, items, 1)

	//user 1が触ると403
	_, err = uc.UpdateCart(ctx, 1, UpdateCartInput{ItemID: items[0].ID, Quantity: 5})

	require.Error(t, err)
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Status)

	//数量は変わっていない
	after, _ := cartRepo.FindByID(ctx, items[0].ID)
	assert.Equal(t, int64(1), after.Quantity)
}

func TestUpdateCart_UnknownItem(t *testing.T) {
	uc := NewCartUsecase(newFakeCartRepo(), new(BookRepoMock))

	_, err := uc.UpdateCart(context.Background(), 1, UpdateCartInput{ItemID: 42, Quantity: 5})

	require.Error(t, err)
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

// 0以下は行削除（0の行は残さない）
func TestUpdateCart_NonPositiveQuantityDeletesRow(t *testing.T) {
	cartRepo := newFakeCartRepo()
	books := new(BookRepoMock)
	bookOK(books, 1, "9.99", t)

	uc := NewCartUsecase(cartRepo, books)
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, AddToCartInput{UserID: 7, BookID: 1, Quantity: 2})
	require.NoError(t, err)

	items, _ := cartRepo.ListByUserID(ctx, 7)
	require.Len(t, items, 1)

	_, err = uc.UpdateCart(ctx, 7, UpdateCartInput{ItemID: items[0].ID, Quantity: 0})
	require.NoError(t, err)

	after, _ := cartRepo.ListByUserID(ctx, 7)
	assert.Empty(t, after)
}

// 空カートに対するクリアも成功（冪等）
func TestClearCart_Idempotent(t *testing.T) {
	cartRepo := newFakeCartRepo()
	books := new(BookRepoMock)
	bookOK(books, 1, "9.99", t)

	uc := NewCartUsecase(cartRepo, books)
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, AddToCartInput{UserID: 7, BookID: 1, Quantity: 2})
	require.NoError(t, err)

	_, err = uc.ClearCart(ctx, 7)
	require.NoError(t, err)

	items, _ := cartRepo.ListByUserID(ctx, 7)
	assert.Empty(t, items)

	//2回目も成功
	_, err = uc.ClearCart(ctx, 7)
	require.NoError(t, err)
}

// カート取得は本の表示フィールドと行小計付き
func TestGetCart_JoinsBookFields(t *testing.T) {
	cartRepo := newFakeCartRepo()
	books := new(BookRepoMock)
	books.On("FindByID", mock.Anything, int64(1)).Return(model.Book{
		ID: 1, Title: "Go入門", Author: "A", Price: mustDecimal(t, "9.99"),
	}, nil)

	uc := NewCartUsecase(cartRepo, books)
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, AddToCartInput{UserID: 7, BookID: 1, Quantity: 3})
	require.NoError(t, err)

	entries, err := uc.GetCart(ctx, 7)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, int64(1), e.Book.ID)
	assert.Equal(t, "Go入門", e.Book.Title)
	assert.Equal(t, "A", e.Book.Author)
	assert.Equal(t, int64(3), e.Quantity)

	// 9.99*3 = 29.97
	assert.True(t, e.Total.Equal(mustDecimal(t, "29.97")), "total = %s", e.Total.String())
}

func TestGetCart_RequiresUser(t *testing.T) {
	uc := NewCartUsecase(newFakeCartRepo(), new(BookRepoMock))

	_, err := uc.GetCart(context.Background(), 0)

	require.Error(t, err)
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Status)
}
