package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"ezyvoyage/internal/models/db_models"
)

type BookmarkRepository interface {
	Insert(ctx context.Context, bookmark *db_models.Bookmark) error
	FindByTitleAndLocation(ctx context.Context, userID uuid.UUID, title, location string) (*db_models.Bookmark, error)
	// ListByUser returns the most recent bookmark first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Bookmark, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, bookmark *db_models.Bookmark) error
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	SaveEmbedding(ctx context.Context, embedding *db_models.BookmarkEmbedding) error
	FindSimilar(ctx context.Context, userID uuid.UUID, vector pgvector.Vector, excludeTitle, excludeLocation string, limit int) ([]BookmarkSimilarity, error)
}

type BookmarkSimilarity struct {
	db_models.Bookmark
	Similarity float64 `gorm:"column:similarity"`
}

type bookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

func (r *bookmarkRepository) Insert(ctx context.Context, bookmark *db_models.Bookmark) error {
	return r.db.WithContext(ctx).Create(bookmark).Error
}

func (r *bookmarkRepository) FindByTitleAndLocation(ctx context.Context, userID uuid.UUID, title, location string) (*db_models.Bookmark, error) {
	var bookmark db_models.Bookmark
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND title = ? AND location = ?", userID, title, location).
		First(&bookmark).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bookmark, nil
}

func (r *bookmarkRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Bookmark, error) {
	var bookmarks []db_models.Bookmark
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("bookmarked_at DESC").
		Find(&bookmarks).Error
	if err != nil {
		return nil, err
	}
	return bookmarks, nil
}

func (r *bookmarkRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Bookmark{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

// Delete removes the bookmark and its embedding.
func (r *bookmarkRepository) Delete(ctx context.Context, bookmark *db_models.Bookmark) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bookmark_id = ?", bookmark.ID).Delete(&db_models.BookmarkEmbedding{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(bookmark).Error
	})
}

func (r *bookmarkRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&db_models.BookmarkEmbedding{}).Error; err != nil {
			return err
		}
		res := tx.Unscoped().Where("user_id = ?", userID).Delete(&db_models.Bookmark{})
		deleted = res.RowsAffected
		return res.Error
	})
	return deleted, err
}

func (r *bookmarkRepository) SaveEmbedding(ctx context.Context, embedding *db_models.BookmarkEmbedding) error {
	return r.db.WithContext(ctx).Save(embedding).Error
}

func (r *bookmarkRepository) FindSimilar(ctx context.Context, userID uuid.UUID, vector pgvector.Vector, excludeTitle, excludeLocation string, limit int) ([]BookmarkSimilarity, error) {
	var results []BookmarkSimilarity

	query := `
        SELECT b.*, (1 - (e.embedding <=> ?)) AS similarity
        FROM bookmarks b
        JOIN bookmark_embeddings e ON e.bookmark_id = b.id
        WHERE b.user_id = ? AND b.deleted_at IS NULL
          AND NOT (b.title = ? AND b.location = ?)
        ORDER BY e.embedding <=> ?
        LIMIT ?
    `

	err := r.db.WithContext(ctx).
		Raw(query, vector, userID, excludeTitle, excludeLocation, vector, limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
