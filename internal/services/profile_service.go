package services

import (
	"doulink_backend/internal/models"
	"doulink_backend/internal/repositories"
	"doulink_backend/pkg/apperrors"
)

const (
	maxCertificationDocs = 7
	maxReferees          = 3
)

type ProfileService interface {
	CreateParentProfile(profile *models.ParentProfile) error
	GetParentProfile(userID string) (*models.ParentProfile, error)
	UpdateParentProfile(profile *models.ParentProfile) error

	CreateDoulaProfile(profile *models.DoulaProfile) error
	GetDoulaProfile(userID string) (*models.DoulaProfile, error)
	UpdateDoulaProfile(profile *models.DoulaProfile) error
}

type profileService struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository, userRepo repositories.UserRepository) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

func (s *profileService) CreateParentProfile(profile *models.ParentProfile) error {
	user, err := s.userRepo.FindByID(profile.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if user.UserType != models.UserTypeParent {
		return apperrors.ErrInvalidOperation("profile", "User is not registered as a parent")
	}

	if err := validateParentProfile(profile); err != nil {
		return err
	}

	if err := s.profileRepo.CreateParentProfile(profile); err != nil {
		if apperrors.Is(err, repositories.ErrProfileAlreadyExists) {
			return apperrors.ErrAlreadyExists(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *profileService) GetParentProfile(userID string) (*models.ParentProfile, error) {
	profile, err := s.profileRepo.FindParentProfileByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *profileService) UpdateParentProfile(profile *models.ParentProfile) error {
	if err := validateParentProfile(profile); err != nil {
		return err
	}
	if err := s.profileRepo.UpdateParentProfile(profile); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *profileService) CreateDoulaProfile(profile *models.DoulaProfile) error {
	user, err := s.userRepo.FindByID(profile.UserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if user.UserType != models.UserTypeDoula {
		return apperrors.ErrInvalidOperation("profile", "User is not registered as a doula")
	}

	if err := validateDoulaProfile(profile); err != nil {
		return err
	}

	if err := s.profileRepo.CreateDoulaProfile(profile); err != nil {
		if apperrors.Is(err, repositories.ErrProfileAlreadyExists) {
			return apperrors.ErrAlreadyExists(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *profileService) GetDoulaProfile(userID string) (*models.DoulaProfile, error) {
	profile, err := s.profileRepo.FindDoulaProfileByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *profileService) UpdateDoulaProfile(profile *models.DoulaProfile) error {
	if err := validateDoulaProfile(profile); err != nil {
		return err
	}
	if err := s.profileRepo.UpdateDoulaProfile(profile); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// validateParentProfile enforces the invariants that cannot be expressed
// as struct tags on the DTO.
func validateParentProfile(profile *models.ParentProfile) error {
	if !profile.AcceptedTerms {
		return apperrors.ErrTermsNotAccepted
	}
	if profile.ServiceStart != nil && profile.ServiceEnd != nil && profile.ServiceEnd.Before(*profile.ServiceStart) {
		return apperrors.NewBadRequestError("Service period end must not be before its start")
	}
	if profile.DesiredTimeStart != nil && profile.DesiredTimeEnd != nil && *profile.DesiredTimeStart >= *profile.DesiredTimeEnd {
		return apperrors.NewBadRequestError("Desired time window start must be before its end")
	}
	return nil
}

func validateDoulaProfile(profile *models.DoulaProfile) error {
	if !profile.AcceptedTerms {
		return apperrors.ErrTermsNotAccepted
	}
	if profile.DriveDistance < 1 || profile.DriveDistance > 70 {
		return apperrors.NewBadRequestError("Drive distance must be between 1 and 70 miles")
	}
	if profile.HourlyRateMin < 0 || profile.HourlyRateMax < 0 {
		return apperrors.NewBadRequestError("Hourly rates must not be negative")
	}
	if profile.HourlyRateMin > profile.HourlyRateMax {
		return apperrors.NewBadRequestError("Minimum hourly rate must not exceed the maximum")
	}
	if len(profile.GetCertificationDocs()) > maxCertificationDocs {
		return apperrors.NewBadRequestError("At most 7 certification documents are allowed")
	}
	if len(profile.GetReferees()) > maxReferees {
		return apperrors.NewBadRequestError("At most 3 referees are allowed")
	}
	return nil
}
