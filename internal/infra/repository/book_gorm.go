package repository

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type BookGormRepository struct {
	db *gorm.DB
}

// DI
func NewBookGormRepository(db *gorm.DB) *BookGormRepository {
	return &BookGormRepository{db: db}
}

// 全書籍を返す
func (r *BookGormRepository) ListAll(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := r.db.WithContext(ctx).Order("id asc").Find(&books).Error; err != nil {
		return []model.Book{}, err
	}
	return books, nil
}

// IDで書籍を取得
func (r *BookGormRepository) FindByID(ctx context.Context, id int64) (model.Book, error) {
	var b model.Book
	err := r.db.WithContext(ctx).First(&b, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Book{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Book{}, err
	}
	return b, nil
}

// title/author/genreの部分一致検索（指定された条件だけ適用）
func (r *BookGormRepository) Search(ctx context.Context, q repo.BookSearchQuery) ([]model.Book, error) {
	tx := r.db.WithContext(ctx).Model(&model.Book{})

	if s := strings.TrimSpace(q.Title); s != "" {
		tx = tx.Where("title ILIKE ?", "%"+s+"%")
	}
	if s := strings.TrimSpace(q.Author); s != "" {
		tx = tx.Where("author ILIKE ?", "%"+s+"%")
	}
	if s := strings.TrimSpace(q.Genre); s != "" {
		tx = tx.Where("genre ILIKE ?", "%"+s+"%")
	}

	var books []model.Book
	if err := tx.Order("id asc").Find(&books).Error; err != nil {
		return []model.Book{}, err
	}
	return books, nil
}

// 書籍の作成
func (r *BookGormRepository) Create(ctx context.Context, b model.Book) (model.Book, error) {
	if err := r.db.WithContext(ctx).Create(&b).Error; err != nil {
		return model.Book{}, err
	}
	return b, nil
}

// 書籍の更新
func (r *BookGormRepository) Update(ctx context.Context, b model.Book) error {
	res := r.db.WithContext(ctx).Model(&model.Book{}).Where("id = ?", b.ID).Updates(map[string]interface{}{
		"title":            b.Title,
		"author":           b.Author,
		"genre":            b.Genre,
		"publication_date": b.PublicationDate,
		"price":            b.Price,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 書籍削除（0件なら対象なし）
func (r *BookGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Book{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
