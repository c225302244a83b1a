package services

import (
	"doulink_backend/internal/algorithms"
	"doulink_backend/internal/logger"
	"doulink_backend/internal/models"
	"doulink_backend/internal/repositories"
	"doulink_backend/pkg/apperrors"
)

type MatchingService interface {
	// MatchDoulasForParent returns every subscribed doula compatible with
	// the parent's profile, in candidate insertion order. A missing parent
	// profile is an error; zero matches is an empty success.
	MatchDoulasForParent(parentUserID string) ([]models.DoulaProfile, error)

	// MatchParentsForDoula is the symmetric lookup for doulas.
	MatchParentsForDoula(doulaUserID string) ([]models.ParentProfile, error)
}

type matchingService struct {
	profileRepo repositories.ProfileRepository
}

func NewMatchingService(profileRepo repositories.ProfileRepository) MatchingService {
	return &matchingService{profileRepo: profileRepo}
}

func (s *matchingService) MatchDoulasForParent(parentUserID string) ([]models.DoulaProfile, error) {
	parent, err := s.profileRepo.FindParentProfileByUserID(parentUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	// The candidate pool is recomputed from storage on every call; no
	// result caching.
	candidates, err := s.profileRepo.FindSubscribedDoulaProfiles()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	matches := make([]models.DoulaProfile, 0, len(candidates))
	for i := range candidates {
		if ok, reasons := algorithms.DoulaMatchesParent(parent, &candidates[i]); ok {
			logger.Debug("doula matched", "parent", parentUserID, "doula", candidates[i].UserID, "reasons", reasons)
			matches = append(matches, candidates[i])
		}
	}

	return matches, nil
}

func (s *matchingService) MatchParentsForDoula(doulaUserID string) ([]models.ParentProfile, error) {
	doula, err := s.profileRepo.FindDoulaProfileByUserID(doulaUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	candidates, err := s.profileRepo.FindSubscribedParentProfiles()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// The filter predicate is shared with the doula-for-parent direction,
	// so matching stays symmetric.
	matches := make([]models.ParentProfile, 0, len(candidates))
	for i := range candidates {
		if ok, _ := algorithms.DoulaMatchesParent(&candidates[i], doula); ok {
			matches = append(matches, candidates[i])
		}
	}

	return matches, nil
}
