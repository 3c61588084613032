package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bookstore/internal/api/models"
	"bookstore/internal/api/repository"
	"bookstore/internal/auth"
	"bookstore/internal/config"
	"bookstore/internal/mailer"
)

var (
	ErrEmailInUse         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOTP         = errors.New("invalid OTP")
	ErrOTPExpired         = errors.New("OTP expired")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserInactive       = errors.New("account is inactive")
	ErrTooManyOTPRequests = errors.New("too many OTP requests, try again later")
)

// Claims is the bearer token payload: subject user id, role and active flag.
type Claims struct {
	UserID   string `json:"id"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	VerifyOTP(ctx context.Context, userID, code string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// OTPThrottle caps how often a single account may request codes.
type OTPThrottle interface {
	Allow(ctx context.Context, email string) (bool, error)
}

type authService struct {
	userRepo  repository.UserRepository
	otpRepo   repository.OneTimeCodeRepository
	mailer    mailer.Mailer
	throttle  OTPThrottle
	jwtSecret string
	jwtExpiry time.Duration
	otpExpiry time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	otpRepo repository.OneTimeCodeRepository,
	m mailer.Mailer,
	throttle OTPThrottle,
	cfg *config.Config,
) AuthService {
	return &authService{
		userRepo:  userRepo,
		otpRepo:   otpRepo,
		mailer:    m,
		throttle:  throttle,
		jwtSecret: cfg.JWTSecret,
		jwtExpiry: cfg.JWTExpiry,
		otpExpiry: cfg.OTPExpiry,
	}
}

// Register creates an inactive-session user and emails a one-time code.
// No token is issued until the code is verified.
func (s *authService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailInUse
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
		Role:     models.RoleUser,
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.issueOTP(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the password and emails a fresh one-time code. The
// caller still has to verify the code to obtain a token.
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		// Dummy compare to keep response time flat when the email is unknown.
		_ = auth.VerifyPassword("$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e", password)
		return nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.issueOTP(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) issueOTP(ctx context.Context, user *models.User) error {
	if s.throttle != nil {
		ok, err := s.throttle.Allow(ctx, user.Email)
		if err == nil && !ok {
			return ErrTooManyOTPRequests
		}
		// Throttle backend failures never block login.
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}

	otp := &models.OneTimeCode{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: time.Now().Add(s.otpExpiry),
	}
	if err := s.otpRepo.Create(ctx, otp); err != nil {
		return err
	}

	return s.mailer.SendOTP(user.Email, code)
}

// VerifyOTP consumes a pending code and returns a signed bearer token.
// Expired codes are reported distinctly from unknown ones.
func (s *authService) VerifyOTP(ctx context.Context, userID, code string) (string, error) {
	otp, err := s.otpRepo.FindByUserAndCode(ctx, userID, code)
	if err != nil {
		return "", ErrInvalidOTP
	}
	if time.Now().After(otp.ExpiresAt) {
		return "", ErrOTPExpired
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", ErrInvalidOTP
	}

	// Single use: the row goes away before the token is handed out.
	if err := s.otpRepo.Delete(ctx, otp.ID); err != nil {
		return "", err
	}

	return s.generateToken(user)
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Role:     user.Role,
		IsActive: user.IsActive,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiry)),
			Issuer:    "bookstore",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	if !claims.IsActive {
		return nil, ErrUserInactive
	}
	return claims, nil
}

// generateOTP returns a 6-digit numeric code.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
