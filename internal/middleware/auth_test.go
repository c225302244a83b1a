package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"doulink_backend/internal/models"
	"doulink_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	parseFn func(token string) (string, models.UserType, error)
}

func (s *stubAuthService) Register(req services.RegisterRequest) (*services.AuthResult, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) Login(email, password string) (*services.AuthResult, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) ParseToken(token string) (string, models.UserType, error) {
	return s.parseFn(token)
}

func newAuthTestRouter(authSvc services.AuthService, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/protected")
	group.Use(AuthMiddleware(authSvc))
	group.Use(extra...)
	group.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": GetUserID(c)})
	})
	return router
}

func get(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{})

	assert.Equal(t, http.StatusUnauthorized, get(router, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(router, "Basic abc").Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	authSvc := &stubAuthService{
		parseFn: func(token string) (string, models.UserType, error) {
			return "", "", errors.New("bad token")
		},
	}

	router := newAuthTestRouter(authSvc)
	assert.Equal(t, http.StatusUnauthorized, get(router, "Bearer bad").Code)
}

func TestAuthMiddleware_SetsIdentity(t *testing.T) {
	authSvc := &stubAuthService{
		parseFn: func(token string) (string, models.UserType, error) {
			assert.Equal(t, "good-token", token)
			return "user-1", models.UserTypeDoula, nil
		},
	}

	router := newAuthTestRouter(authSvc)
	w := get(router, "Bearer good-token")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestRequireUserType(t *testing.T) {
	authSvc := &stubAuthService{
		parseFn: func(token string) (string, models.UserType, error) {
			return "user-1", models.UserTypeParent, nil
		},
	}

	parentOnly := newAuthTestRouter(authSvc, RequireUserType(models.UserTypeParent))
	assert.Equal(t, http.StatusOK, get(parentOnly, "Bearer t").Code)

	doulaOnly := newAuthTestRouter(authSvc, RequireUserType(models.UserTypeDoula))
	assert.Equal(t, http.StatusForbidden, get(doulaOnly, "Bearer t").Code)
}
