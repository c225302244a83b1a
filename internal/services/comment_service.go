package services

import (
	"strings"

	"doulink_backend/internal/models"
	"doulink_backend/internal/repositories"
	"doulink_backend/pkg/apperrors"
)

const maxCommentLength = 160

type CreateCommentRequest struct {
	ContractID   string
	ParentUserID string
	Comment      string
	Rating       int
}

type CommentService interface {
	Create(req CreateCommentRequest) (*models.Comment, error)
	ListForDoula(doulaID string) ([]models.Comment, error)
}

type commentService struct {
	commentRepo  repositories.CommentRepository
	contractRepo repositories.ContractRepository
	profileRepo  repositories.ProfileRepository
}

func NewCommentService(
	commentRepo repositories.CommentRepository,
	contractRepo repositories.ContractRepository,
	profileRepo repositories.ProfileRepository,
) CommentService {
	return &commentService{
		commentRepo:  commentRepo,
		contractRepo: contractRepo,
		profileRepo:  profileRepo,
	}
}

// Create validates the review invariants and persists the comment with
// the doula's rating recalculation in one transaction.
func (s *commentService) Create(req CreateCommentRequest) (*models.Comment, error) {
	text := strings.TrimSpace(req.Comment)
	if text == "" {
		return nil, apperrors.NewBadRequestError("Comment text is required")
	}
	if len(text) > maxCommentLength {
		return nil, apperrors.NewBadRequestError("Comment must be at most 160 characters")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.NewBadRequestError("Rating must be between 1 and 5")
	}

	contract, err := s.contractRepo.FindByID(req.ContractID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrContractNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if contract.ParentID != req.ParentUserID {
		return nil, apperrors.NewForbiddenError("Only the contract's parent may leave a review")
	}
	if contract.Status != models.ContractStatusCompleted {
		return nil, apperrors.ErrContractNotCompleted
	}

	exists, err := s.commentRepo.ExistsForContractAndParent(req.ContractID, req.ParentUserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateReview
	}

	parent, err := s.profileRepo.FindParentProfileByUserID(req.ParentUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	comment := &models.Comment{
		ContractID: req.ContractID,
		ParentID:   req.ParentUserID,
		DoulaID:    contract.DoulaID,
		ParentName: parent.Name,
		Comment:    text,
		Rating:     req.Rating,
	}

	if err := s.commentRepo.CreateWithRatingRecalc(comment); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateComment) {
			return nil, apperrors.ErrDuplicateReview
		}
		return nil, apperrors.InternalError(err)
	}

	return comment, nil
}

func (s *commentService) ListForDoula(doulaID string) ([]models.Comment, error) {
	comments, err := s.commentRepo.FindByDoula(doulaID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return comments, nil
}
