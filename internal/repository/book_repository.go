package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 検索条件（部分一致、全て任意）
type BookSearchQuery struct {
	Title  string
	Author string
	Genre  string
}

// 書籍の永続化（保存・取得）だけを約束。
type BookRepository interface {
	ListAll(ctx context.Context) ([]model.Book, error)
	FindByID(ctx context.Context, id int64) (model.Book, error)
	Search(ctx context.Context, q BookSearchQuery) ([]model.Book, error)

	Create(ctx context.Context, b model.Book) (model.Book, error)
	Update(ctx context.Context, b model.Book) error
	Delete(ctx context.Context, id int64) error
}
