package services

import (
	"testing"

	"doulink_backend/internal/models"
	"doulink_backend/internal/repositories"
	"doulink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchableParent(userID string) models.ParentProfile {
	p := models.ParentProfile{UserID: userID, State: "California", SubscriptionActive: true}
	p.SetServiceCategories([]string{models.ServiceCategoryBirth})
	p.SetFinancingType([]string{models.FinancingSelf})
	return p
}

func matchableDoula(userID string) models.DoulaProfile {
	d := models.DoulaProfile{UserID: userID, State: "California", SubscriptionActive: true}
	d.SetServiceCategories([]string{models.ServiceCategoryBirth})
	d.SetPaymentPreferences([]string{models.FinancingSelf})
	return d
}

func TestMatchDoulasForParent_MissingProfileIsNotFound(t *testing.T) {
	repo := &mockProfileRepo{
		FindParentProfileByUserIDFn: func(userID string) (*models.ParentProfile, error) {
			return nil, repositories.ErrProfileNotFound
		},
	}

	svc := NewMatchingService(repo)
	_, err := svc.MatchDoulasForParent("missing")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestMatchDoulasForParent_ZeroMatchesIsEmptySuccess(t *testing.T) {
	parent := matchableParent("parent-1")
	repo := &mockProfileRepo{
		FindParentProfileByUserIDFn: func(userID string) (*models.ParentProfile, error) {
			return &parent, nil
		},
		FindSubscribedDoulaProfilesFn: func() ([]models.DoulaProfile, error) {
			return nil, nil
		},
	}

	svc := NewMatchingService(repo)
	matches, err := svc.MatchDoulasForParent("parent-1")
	require.NoError(t, err)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestMatchDoulasForParent_FiltersAndPreservesOrder(t *testing.T) {
	parent := matchableParent("parent-1")

	first := matchableDoula("doula-1")
	wrongState := matchableDoula("doula-2")
	wrongState.State = "Nevada"
	second := matchableDoula("doula-3")

	repo := &mockProfileRepo{
		FindParentProfileByUserIDFn: func(userID string) (*models.ParentProfile, error) {
			return &parent, nil
		},
		FindSubscribedDoulaProfilesFn: func() ([]models.DoulaProfile, error) {
			return []models.DoulaProfile{first, wrongState, second}, nil
		},
	}

	svc := NewMatchingService(repo)
	matches, err := svc.MatchDoulasForParent("parent-1")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "doula-1", matches[0].UserID)
	assert.Equal(t, "doula-3", matches[1].UserID)
}

func TestMatchParentsForDoula_MissingProfileIsNotFound(t *testing.T) {
	repo := &mockProfileRepo{
		FindDoulaProfileByUserIDFn: func(userID string) (*models.DoulaProfile, error) {
			return nil, repositories.ErrProfileNotFound
		},
	}

	svc := NewMatchingService(repo)
	_, err := svc.MatchParentsForDoula("missing")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}

// The two directions share one predicate, so a pair that matches one way
// must match the other way too.
func TestMatching_IsSymmetric(t *testing.T) {
	parent := matchableParent("parent-1")
	doula := matchableDoula("doula-1")

	repo := &mockProfileRepo{
		FindParentProfileByUserIDFn: func(userID string) (*models.ParentProfile, error) {
			return &parent, nil
		},
		FindDoulaProfileByUserIDFn: func(userID string) (*models.DoulaProfile, error) {
			return &doula, nil
		},
		FindSubscribedDoulaProfilesFn: func() ([]models.DoulaProfile, error) {
			return []models.DoulaProfile{doula}, nil
		},
		FindSubscribedParentProfilesFn: func() ([]models.ParentProfile, error) {
			return []models.ParentProfile{parent}, nil
		},
	}

	svc := NewMatchingService(repo)

	doulas, err := svc.MatchDoulasForParent("parent-1")
	require.NoError(t, err)
	parents, err := svc.MatchParentsForDoula("doula-1")
	require.NoError(t, err)

	assert.Len(t, doulas, 1)
	assert.Len(t, parents, 1)
}
