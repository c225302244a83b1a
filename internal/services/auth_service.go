package services

import (
	"time"

	"doulink_backend/internal/models"
	"doulink_backend/internal/repositories"
	"doulink_backend/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Email    string
	Password string
	UserType models.UserType
}

type AuthResult struct {
	User        *models.User
	AccessToken string
}

type AuthService interface {
	// Register creates a user account. The email must have passed OTP
	// verification first.
	Register(req RegisterRequest) (*AuthResult, error)
	Login(email, password string) (*AuthResult, error)
	ParseToken(tokenString string) (userID string, userType models.UserType, err error)
}

type authService struct {
	userRepo  repositories.UserRepository
	otpRepo   repositories.OtpRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(userRepo repositories.UserRepository, otpRepo repositories.OtpRepository, jwtSecret string, jwtTTLMinutes int) AuthService {
	return &authService{
		userRepo:  userRepo,
		otpRepo:   otpRepo,
		jwtSecret: jwtSecret,
		jwtTTL:    time.Duration(jwtTTLMinutes) * time.Minute,
	}
}

func (s *authService) Register(req RegisterRequest) (*AuthResult, error) {
	if _, err := s.otpRepo.FindVerifiedByEmail(req.Email); err != nil {
		if apperrors.Is(err, repositories.ErrOtpNotFound) {
			return nil, apperrors.ErrEmailNotVerified
		}
		return nil, apperrors.InternalError(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hashed),
		UserType:     req.UserType,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrEmailTaken) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &AuthResult{User: user, AccessToken: token}, nil
}

func (s *authService) Login(email, password string) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid email or password", 401)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid email or password", 401)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &AuthResult{User: user, AccessToken: token}, nil
}

type accessClaims struct {
	UserType string `json:"userType"`
	jwt.RegisteredClaims
}

func (s *authService) issueToken(user *models.User) (string, error) {
	claims := accessClaims{
		UserType: string(user.UserType),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.jwtTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) ParseToken(tokenString string) (string, models.UserType, error) {
	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", "", apperrors.NewUnauthorizedError("Invalid or expired token")
	}

	return claims.Subject, models.UserType(claims.UserType), nil
}
