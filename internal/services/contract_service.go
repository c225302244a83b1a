package services

import (
	"time"

	"doulink_backend/internal/models"
	"doulink_backend/internal/repositories"
	"doulink_backend/pkg/apperrors"
)

type CreateContractRequest struct {
	ParentID  string
	DoulaID   string
	StartDate time.Time
	EndDate   *time.Time
}

type ContractService interface {
	Create(req CreateContractRequest) (*models.Contract, error)
	UpdateStatus(contractID string, status models.ContractStatus) error
	ListForParent(parentID string) ([]models.Contract, error)
	ListForDoula(doulaID string) ([]models.Contract, error)
}

type contractService struct {
	contractRepo repositories.ContractRepository
	profileRepo  repositories.ProfileRepository
}

func NewContractService(contractRepo repositories.ContractRepository, profileRepo repositories.ProfileRepository) ContractService {
	return &contractService{
		contractRepo: contractRepo,
		profileRepo:  profileRepo,
	}
}

func (s *contractService) Create(req CreateContractRequest) (*models.Contract, error) {
	if _, err := s.profileRepo.FindParentProfileByUserID(req.ParentID); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if _, err := s.profileRepo.FindDoulaProfileByUserID(req.DoulaID); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, apperrors.NewBadRequestError("Contract end date must not be before its start date")
	}

	contract := &models.Contract{
		ParentID:  req.ParentID,
		DoulaID:   req.DoulaID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    models.ContractStatusActive,
	}

	if err := s.contractRepo.Create(contract); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return contract, nil
}

// UpdateStatus enforces one-directional transitions: active contracts may
// complete or cancel, terminal contracts never change again.
func (s *contractService) UpdateStatus(contractID string, status models.ContractStatus) error {
	contract, err := s.contractRepo.FindByID(contractID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrContractNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if !models.IsValidContractTransition(contract.Status, status) {
		return apperrors.ErrContractStatusFinal
	}

	if err := s.contractRepo.UpdateStatus(contractID, status); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *contractService) ListForParent(parentID string) ([]models.Contract, error) {
	contracts, err := s.contractRepo.FindByParent(parentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return contracts, nil
}

func (s *contractService) ListForDoula(doulaID string) ([]models.Contract, error) {
	contracts, err := s.contractRepo.FindByDoula(doulaID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return contracts, nil
}
