package handlers

import (
	"net/http"
	"testing"
	"time"

	"doulink_backend/internal/models"
	"doulink_backend/internal/services"
	"doulink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDoulaID = "7b12a2de-0f35-4c1e-9d55-3d91c2a7b402"

func TestContractCreate_UsesAuthenticatedParent(t *testing.T) {
	var created services.CreateContractRequest
	contractSvc := &mockContractService{
		CreateFn: func(req services.CreateContractRequest) (*models.Contract, error) {
			created = req
			return &models.Contract{
				ParentID: req.ParentID,
				DoulaID:  req.DoulaID,
				Status:   models.ContractStatusActive,
			}, nil
		},
	}

	h := NewContractHandler(newTestBase(), contractSvc)
	router := newTestRouter("parent-1", h.RegisterRoutes)

	w := doJSON(router, http.MethodPost, "/api/v1/contracts",
		`{"doulaId":"`+testDoulaID+`","startDate":"2026-04-01T00:00:00Z"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "parent-1", created.ParentID)
	assert.Equal(t, testDoulaID, created.DoulaID)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), created.StartDate)
}

func TestContractCreate_RequiresAuthentication(t *testing.T) {
	h := NewContractHandler(newTestBase(), &mockContractService{})
	router := newTestRouter("", h.RegisterRoutes)

	w := doJSON(router, http.MethodPost, "/api/v1/contracts",
		`{"doulaId":"`+testDoulaID+`","startDate":"2026-04-01T00:00:00Z"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestContractUpdateStatus_FinalStateIs400(t *testing.T) {
	contractSvc := &mockContractService{
		UpdateStatusFn: func(id string, status models.ContractStatus) error {
			return apperrors.ErrContractStatusFinal
		},
	}

	h := NewContractHandler(newTestBase(), contractSvc)
	router := newTestRouter("parent-1", h.RegisterRoutes)

	w := doJSON(router, http.MethodPut, "/api/v1/contracts/contract-1/status", `{"status":"completed"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContractUpdateStatus_OnlyTerminalTargetsAccepted(t *testing.T) {
	h := NewContractHandler(newTestBase(), &mockContractService{})
	router := newTestRouter("parent-1", h.RegisterRoutes)

	// Reverting to active is not an accepted request value at all.
	w := doJSON(router, http.MethodPut, "/api/v1/contracts/contract-1/status", `{"status":"active"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContractLists(t *testing.T) {
	contractSvc := &mockContractService{
		ListForParentFn: func(parentID string) ([]models.Contract, error) {
			return []models.Contract{{ParentID: parentID}}, nil
		},
		ListForDoulaFn: func(doulaID string) ([]models.Contract, error) {
			return []models.Contract{}, nil
		},
	}

	h := NewContractHandler(newTestBase(), contractSvc)
	router := newTestRouter("parent-1", h.RegisterRoutes)

	w := doJSON(router, http.MethodGet, "/api/v1/contracts/parent/parent-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "parent-1")

	w = doJSON(router, http.MethodGet, "/api/v1/contracts/doula/doula-1", "")
	require.Equal(t, http.StatusOK, w.Code)
}
