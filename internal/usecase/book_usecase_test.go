package usecase

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBook_TrimsAndCreates(t *testing.T) {
	books := new(BookRepoMock)
	uc := NewBookUsecase(books)

	books.On("Create", mock.Anything, mock.MatchedBy(func(b model.Book) bool {
		return b.Title == "Go入門" && b.Author == "A"
	})).Return(model.Book{ID: 1, Title: "Go入門", Author: "A", Price: mustDecimal(t, "9.99")}, nil)

	out, err := uc.CreateBook(context.Background(), CreateBookInput{
		Title:  "  Go入門  ",
		Author: " A ",
		Price:  mustDecimal(t, "9.99"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	books.AssertExpectations(t)
}

func TestCreateBook_RejectsNonPositivePrice(t *testing.T) {
	books := new(BookRepoMock)
	uc := NewBookUsecase(books)

	for _, price := range []string{"0", "-1.50"} {
		_, err := uc.CreateBook(context.Background(), CreateBookInput{
			Title:  "Go入門",
			Author: "A",
			Price:  mustDecimal(t, price),
		})

		require.Error(t, err, "price=%s", price)
		he, ok := AsHTTPError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Status)
	}

	books.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBook_RequiresTitleAndAuthor(t *testing.T) {
	books := new(BookRepoMock)
	uc := NewBookUsecase(books)

	_, err := uc.CreateBook(context.Background(), CreateBookInput{
		Title:  "   ",
		Author: "A",
		Price:  mustDecimal(t, "9.99"),
	})
	require.Error(t, err)
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	_, err = uc.CreateBook(context.Background(), CreateBookInput{
		Title:  "Go入門",
		Author: "",
		Price:  mustDecimal(t, "9.99"),
	})
	require.Error(t, err)
}

// 検索条件なしは400
func TestSearchBooks_RequiresCriterion(t *testing.T) {
	books := new(BookRepoMock)
	uc := NewBookUsecase(books)

	_, err := uc.SearchBooks(context.Background(), SearchBooksInput{})

	require.Error(t, err)
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	books.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

// ヒット0件は404
func TestSearchBooks_NoMatches(t *testing.T) {
	books := new(BookRepoMock)
	uc := NewBookUsecase(books)

	books.On("Search", mock.Anything, repo.BookSearchQuery{Title: "zzz"}).Return([]model.Book{}, nil)

	_, err := uc.SearchBooks(context.Background(), SearchBooksInput{Title: "zzz"})

	require.Error(t, err)
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestSearchBooks_Found(t *testing.T) {
	books := new(BookRepoMock)
	uc := NewBookUsecase(books)

	books.On("Search", mock.Anything, repo.BookSearchQuery{Author: "A"}).Return([]model.Book{
		{ID: 1, Title: "Go入門", Author: "A", Price: decimal.New(999, -2)},
	}, nil)

	out, err := uc.SearchBooks(context.Background(), SearchBooksInput{Author: " A "})

	require.NoError(t, err)
	assert.Equal(t, "books found successfully", out.Message)
	require.Len(t, out.Books, 1)
	assert.Equal(t, "Go入門", out.Books[0].Title)
}

func TestGetBook_NotFound(t *testing.T) {
	books := new(BookRepoMock)
	uc := NewBookUsecase(books)

	books.On("FindByID", mock.Anything, int64(404)).Return(model.Book{}, repo.ErrNotFound)

	_, err := uc.GetBook(context.Background(), 404)

	require.Error(t, err)
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

// 存在しないIDの削除は404
func TestDeleteBook_NotFound(t *testing.T) {
	books := new(BookRepoMock)
	uc := NewBookUsecase(books)

	books.On("Delete", mock.Anything, int64(404)).Return(repo.ErrNotFound)

	err := uc.DeleteBook(context.Background(), 404)

	require.Error(t, err)
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

// 更新後の書籍が返る
func TestUpdateBook_ReturnsUpdatedRow(t *testing.T) {
	books := new(BookRepoMock)
	uc := NewBookUsecase(books)

	books.On("Update", mock.Anything, mock.Anything).Return(nil)
	books.On("FindByID", mock.Anything, int64(1)).Return(model.Book{
		ID: 1, Title: "改訂版", Author: "A", Price: mustDecimal(t, "12.00"),
	}, nil)

	out, err := uc.UpdateBook(context.Background(), 1, UpdateBookInput{
		Title:  "改訂版",
		Author: "A",
		Price:  mustDecimal(t, "12.00"),
	})

	require.NoError(t, err)
	assert.Equal(t, "改訂版", out.Title)
	assert.True(t, out.Price.Equal(mustDecimal(t, "12.00")))
}
