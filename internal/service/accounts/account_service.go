package accounts

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sadmanCR7/aeropulse/internal/domain"
	"github.com/sadmanCR7/aeropulse/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// Registration is a three-step flow. Instead of staging partial data in a
// server-side session, each step returns a signed token carrying everything
// collected so far; the next step presents and extends it. The server stays
// stateless until the final step commits user and profile together.
const (
	stepNames   = 1
	stepContact = 2
)

type AccountUseCase interface {
	BeginRegistration(ctx context.Context, input NamesInput) (string, error)
	SubmitContact(ctx context.Context, token string, input ContactInput) (string, error)
	CompleteRegistration(ctx context.Context, token string, input CredentialsInput) (*domain.User, error)
	GetProfile(ctx context.Context, userID int64) (*domain.User, *domain.PassengerProfile, error)
	UpdateProfile(ctx context.Context, userID int64, input ContactInput) (*domain.PassengerProfile, error)
}

type NamesInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type ContactInput struct {
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	Gender      string `json:"gender"`
}

type CredentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type draftClaims struct {
	jwt.RegisteredClaims
	Step        int    `json:"step"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Address     string `json:"address,omitempty"`
	Gender      string `json:"gender,omitempty"`
}

type AccountService struct {
	users   repository.UserRepository
	secret  []byte
	stepTTL time.Duration
}

func NewAccountService(users repository.UserRepository, secret string, stepTTL time.Duration) *AccountService {
	return &AccountService{users: users, secret: []byte(secret), stepTTL: stepTTL}
}

func (s *AccountService) BeginRegistration(ctx context.Context, input NamesInput) (string, error) {
	if input.FirstName == "" || input.Email == "" {
		return "", errors.New("first name and email are required")
	}

	claims := &draftClaims{
		Step:      stepNames,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	}
	return s.sign(claims)
}

func (s *AccountService) SubmitContact(ctx context.Context, token string, input ContactInput) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}
	if claims.Step < stepNames {
		return "", domain.ErrRegistrationStep
	}
	if input.PhoneNumber == "" || input.Address == "" {
		return "", errors.New("phone number and address are required")
	}

	claims.Step = stepContact
	claims.PhoneNumber = input.PhoneNumber
	claims.Address = input.Address
	claims.Gender = input.Gender
	return s.sign(claims)
}

func (s *AccountService) CompleteRegistration(ctx context.Context, token string, input CredentialsInput) (*domain.User, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}
	if claims.Step < stepContact {
		return nil, domain.ErrRegistrationStep
	}
	if input.Username == "" || len(input.Password) < 8 {
		return nil, errors.New("username and a password of at least 8 characters are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		FirstName:    claims.FirstName,
		LastName:     claims.LastName,
		Email:        claims.Email,
	}
	profile := &domain.PassengerProfile{
		PhoneNumber: claims.PhoneNumber,
		Address:     claims.Address,
		Gender:      claims.Gender,
	}

	if err := s.users.CreateWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AccountService) GetProfile(ctx context.Context, userID int64) (*domain.User, *domain.PassengerProfile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return user, profile, nil
}

func (s *AccountService) UpdateProfile(ctx context.Context, userID int64, input ContactInput) (*domain.PassengerProfile, error) {
	profile := &domain.PassengerProfile{
		UserID:      userID,
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
		Gender:      input.Gender,
	}
	if err := s.users.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// sign re-stamps the draft with a fresh expiry, so each completed step
// restarts the clock.
func (s *AccountService) sign(claims *draftClaims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.stepTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *AccountService) parse(token string) (*draftClaims, error) {
	var claims draftClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrRegistrationToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrRegistrationToken
	}
	return &claims, nil
}

var _ AccountUseCase = (*AccountService)(nil)
