package repositories

import (
	"errors"

	"doulink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrDuplicateComment = errors.New("comment already exists for this contract and parent")

type CommentRepository interface {
	ExistsForContractAndParent(contractID, parentID string) (bool, error)
	FindByDoula(doulaID string) ([]models.Comment, error)

	// CreateWithRatingRecalc inserts the comment and recomputes the target
	// doula profile's rating and review count in one transaction.
	CreateWithRatingRecalc(comment *models.Comment) error
}

type CommentRepositoryImpl struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &CommentRepositoryImpl{db: db}
}

func (r *CommentRepositoryImpl) ExistsForContractAndParent(contractID, parentID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).
		Where("contract_id = ? AND parent_id = ?", contractID, parentID).
		Count(&count).Error
	return count > 0, err
}

func (r *CommentRepositoryImpl) FindByDoula(doulaID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("doula_id = ?", doulaID).Order("created_at DESC").Find(&comments).Error
	return comments, err
}

func (r *CommentRepositoryImpl) CreateWithRatingRecalc(comment *models.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			// The unique index on (contract_id, parent_id) backs the
			// one-review-per-contract invariant under concurrency.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateComment
			}
			return err
		}

		var stats struct {
			Count int64
			Avg   float64
		}
		err := tx.Model(&models.Comment{}).
			Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS avg").
			Where("doula_id = ?", comment.DoulaID).
			Scan(&stats).Error
		if err != nil {
			return err
		}

		result := tx.Model(&models.DoulaProfile{}).
			Where("user_id = ?", comment.DoulaID).
			Updates(map[string]interface{}{
				"rating":       stats.Avg,
				"review_count": stats.Count,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrProfileNotFound
		}
		return nil
	})
}
