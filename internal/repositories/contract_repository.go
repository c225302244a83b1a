package repositories

import (
	"errors"

	"doulink_backend/internal/models"

	"gorm.io/gorm"
)

var ErrContractNotFound = errors.New("contract not found")

type ContractRepository interface {
	Create(contract *models.Contract) error
	FindByID(id string) (*models.Contract, error)
	UpdateStatus(id string, status models.ContractStatus) error
	FindByParent(parentID string) ([]models.Contract, error)
	FindByDoula(doulaID string) ([]models.Contract, error)
}

type ContractRepositoryImpl struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) ContractRepository {
	return &ContractRepositoryImpl{db: db}
}

func (r *ContractRepositoryImpl) Create(contract *models.Contract) error {
	return r.db.Create(contract).Error
}

func (r *ContractRepositoryImpl) FindByID(id string) (*models.Contract, error) {
	var contract models.Contract
	err := r.db.First(&contract, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}
	return &contract, nil
}

func (r *ContractRepositoryImpl) UpdateStatus(id string, status models.ContractStatus) error {
	result := r.db.Model(&models.Contract{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContractNotFound
	}
	return nil
}

func (r *ContractRepositoryImpl) FindByParent(parentID string) ([]models.Contract, error) {
	var contracts []models.Contract
	err := r.db.Where("parent_id = ?", parentID).Order("created_at DESC").Find(&contracts).Error
	return contracts, err
}

func (r *ContractRepositoryImpl) FindByDoula(doulaID string) ([]models.Contract, error) {
	var contracts []models.Contract
	err := r.db.Where("doula_id = ?", doulaID).Order("created_at DESC").Find(&contracts).Error
	return contracts, err
}
