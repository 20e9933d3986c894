package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type BookUsecase struct {
	bookRepo repo.BookRepository
}

// DI
func NewBookUsecase(bookRepo repo.BookRepository) *BookUsecase {
	return &BookUsecase{bookRepo: bookRepo}
}

// POST /books/createBook の入力DTO
type CreateBookInput struct {
	Title           string
	Author          string
	Genre           *string
	PublicationDate *time.Time
	Price           decimal.Decimal
}

type UpdateBookInput struct {
	Title           string
	Author          string
	Genre           *string
	PublicationDate *time.Time
	Price           decimal.Decimal
}

type SearchBooksInput struct {
	Title  string
	Author string
	Genre  string
}

type SearchBooksOutput struct {
	Message string       `json:"message"`
	Books   []model.Book `json:"books"`
}

func (u *BookUsecase) CreateBook(ctx context.Context, in CreateBookInput) (model.Book, error) {
	if strings.TrimSpace(in.Title) == "" {
		return model.Book{}, NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if strings.TrimSpace(in.Author) == "" {
		return model.Book{}, NewHTTPError(http.StatusBadRequest, "author is required")
	}
	//価格は正の値のみ
	if in.Price.LessThanOrEqual(decimal.Zero) {
		return model.Book{}, NewHTTPError(http.StatusBadRequest, "price must be positive")
	}

	b, err := u.bookRepo.Create(ctx, model.Book{
		Title:           strings.TrimSpace(in.Title),
		Author:          strings.TrimSpace(in.Author),
		Genre:           in.Genre,
		PublicationDate: in.PublicationDate,
		Price:           in.Price,
	})
	if err != nil {
		return model.Book{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return b, nil
}

func (u *BookUsecase) ListBooks(ctx context.Context) ([]model.Book, error) {
	books, err := u.bookRepo.ListAll(ctx)
	if err != nil {
		return []model.Book{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return books, nil
}

func (u *BookUsecase) GetBook(ctx context.Context, id int64) (model.Book, error) {
	if id <= 0 {
		return model.Book{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	b, err := u.bookRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Book{}, NewHTTPError(http.StatusNotFound, "book not found")
	}
	if err != nil {
		return model.Book{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return b, nil
}

// 更新して、更新後の書籍を返す
func (u *BookUsecase) UpdateBook(ctx context.Context, id int64, in UpdateBookInput) (model.Book, error) {
	if id <= 0 {
		return model.Book{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.Title) == "" {
		return model.Book{}, NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if strings.TrimSpace(in.Author) == "" {
		return model.Book{}, NewHTTPError(http.StatusBadRequest, "author is required")
	}
	if in.Price.LessThanOrEqual(decimal.Zero) {
		return model.Book{}, NewHTTPError(http.StatusBadRequest, "price must be positive")
	}

	err := u.bookRepo.Update(ctx, model.Book{
		ID:              id,
		Title:           strings.TrimSpace(in.Title),
		Author:          strings.TrimSpace(in.Author),
		Genre:           in.Genre,
		PublicationDate: in.PublicationDate,
		Price:           in.Price,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return model.Book{}, NewHTTPError(http.StatusNotFound, "book not found")
	}
	if err != nil {
		return model.Book{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	b, err := u.bookRepo.FindByID(ctx, id)
	if err != nil {
		return model.Book{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return b, nil
}

func (u *BookUsecase) DeleteBook(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.bookRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "book not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 条件はどれか1つ以上必須。ヒット0件は404
func (u *BookUsecase) SearchBooks(ctx context.Context, in SearchBooksInput) (SearchBooksOutput, error) {
	title := strings.TrimSpace(in.Title)
	author := strings.TrimSpace(in.Author)
	genre := strings.TrimSpace(in.Genre)

	if title == "" && author == "" && genre == "" {
		return SearchBooksOutput{}, NewHTTPError(http.StatusBadRequest, "please provide at least one search criterion")
	}

	books, err := u.bookRepo.Search(ctx, repo.BookSearchQuery{
		Title:  title,
		Author: author,
		Genre:  genre,
	})
	if err != nil {
		return SearchBooksOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if len(books) == 0 {
		return SearchBooksOutput{}, NewHTTPError(http.StatusNotFound, "no books found matching your criteria")
	}

	return SearchBooksOutput{
		Message: "books found successfully",
		Books:   books,
	}, nil
}
