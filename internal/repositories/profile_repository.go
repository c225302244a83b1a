package repositories

import (
	"errors"

	"doulink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
)

type ProfileRepository interface {
	// ParentProfile operations
	CreateParentProfile(profile *models.ParentProfile) error
	FindParentProfileByUserID(userID string) (*models.ParentProfile, error)
	UpdateParentProfile(profile *models.ParentProfile) error
	FindSubscribedParentProfiles() ([]models.ParentProfile, error)

	// DoulaProfile operations
	CreateDoulaProfile(profile *models.DoulaProfile) error
	FindDoulaProfileByUserID(userID string) (*models.DoulaProfile, error)
	UpdateDoulaProfile(profile *models.DoulaProfile) error
	FindSubscribedDoulaProfiles() ([]models.DoulaProfile, error)
	UpdateDoulaRating(userID string, rating float64, reviewCount int) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

// --- ParentProfile operations ---

func (r *ProfileRepositoryImpl) CreateParentProfile(profile *models.ParentProfile) error {
	var existing models.ParentProfile
	if err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	}
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindParentProfileByUserID(userID string) (*models.ParentProfile, error) {
	var profile models.ParentProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateParentProfile(profile *models.ParentProfile) error {
	result := r.db.Model(&models.ParentProfile{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]interface{}{
			"name":                 profile.Name,
			"state":                profile.State,
			"town":                 profile.Town,
			"zip_code":             profile.ZipCode,
			"service_categories":   profile.ServiceCategories,
			"financing_type":       profile.FinancingType,
			"preferred_languages":  profile.PreferredLanguages,
			"desired_days":         profile.DesiredDays,
			"service_start":        profile.ServiceStart,
			"service_end":          profile.ServiceEnd,
			"desired_time_start":   profile.DesiredTimeStart,
			"desired_time_end":     profile.DesiredTimeEnd,
			"accepted_terms":       profile.AcceptedTerms,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// FindSubscribedParentProfiles returns the matching candidate pool:
// only parents with an active subscription are eligible.
func (r *ProfileRepositoryImpl) FindSubscribedParentProfiles() ([]models.ParentProfile, error) {
	var profiles []models.ParentProfile
	err := r.db.Where("subscription_active = ?", true).
		Order("created_at ASC").
		Find(&profiles).Error
	return profiles, err
}

// --- DoulaProfile operations ---

func (r *ProfileRepositoryImpl) CreateDoulaProfile(profile *models.DoulaProfile) error {
	var existing models.DoulaProfile
	if err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	}
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindDoulaProfileByUserID(userID string) (*models.DoulaProfile, error) {
	var profile models.DoulaProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateDoulaProfile(profile *models.DoulaProfile) error {
	result := r.db.Model(&models.DoulaProfile{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]interface{}{
			"name":                profile.Name,
			"state":               profile.State,
			"town":                profile.Town,
			"zip_code":            profile.ZipCode,
			"payment_preferences": profile.PaymentPreferences,
			"service_categories":  profile.ServiceCategories,
			"spoken_languages":    profile.SpokenLanguages,
			"certifications":      profile.Certifications,
			"certification_docs":  profile.CertificationDocs,
			"referees":            profile.Referees,
			"drive_distance":      profile.DriveDistance,
			"hourly_rate_min":     profile.HourlyRateMin,
			"hourly_rate_max":     profile.HourlyRateMax,
			"profile_picture":     profile.ProfilePicture,
			"accepted_terms":      profile.AcceptedTerms,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) FindSubscribedDoulaProfiles() ([]models.DoulaProfile, error) {
	var profiles []models.DoulaProfile
	err := r.db.Where("subscription_active = ?", true).
		Order("created_at ASC").
		Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) UpdateDoulaRating(userID string, rating float64, reviewCount int) error {
	result := r.db.Model(&models.DoulaProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"rating":       rating,
			"review_count": reviewCount,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// setSubscriptionFlag flips the subscription_active flag on the profile
// table matching the user type. Runs on the supplied handle so callers
// can include it in a transaction.
func setSubscriptionFlag(db *gorm.DB, userType models.UserType, userID string, active bool) error {
	var model interface{}
	switch userType {
	case models.UserTypeParent:
		model = &models.ParentProfile{}
	case models.UserTypeDoula:
		model = &models.DoulaProfile{}
	default:
		return ErrProfileNotFound
	}

	result := db.Model(model).
		Where("user_id = ?", userID).
		Update("subscription_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
