// Package user implements registration, login, sessions, the leaderboard,
// and OTP password reset.
package user

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"auction-platform/internal/auctionerrors"
	"auction-platform/internal/models"
	"auction-platform/internal/notify"
	"auction-platform/internal/objectstore"
	"auction-platform/internal/repository"
	"auction-platform/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// RegisterParams carries the registration form fields.
type RegisterParams struct {
	UserName       string
	Email          string
	Password       string
	Phone          string
	Address        string
	Role           models.Role
	PaymentMethods models.PaymentMethods
	ImageName      string
	ImageData      []byte
}

// UserService implements identity and account operations.
type UserService struct {
	store     repository.Store
	images    objectstore.Store
	notifier  notify.Notifier
	jwtSecret []byte
	jwtTTL    time.Duration
	otpTTL    time.Duration
	now       func() time.Time

	otpMu sync.Mutex
	otps  map[string]otpEntry // key: email
}

type otpEntry struct {
	code    string
	expires time.Time
}

// NewUserService creates a new UserService instance.
func NewUserService(store repository.Store, images objectstore.Store, notifier notify.Notifier,
	jwtSecret string, jwtTTL, otpTTL time.Duration) *UserService {
	return &UserService{
		store:     store,
		images:    images,
		notifier:  notifier,
		jwtSecret: []byte(jwtSecret),
		jwtTTL:    jwtTTL,
		otpTTL:    otpTTL,
		now:       time.Now,
		otps:      make(map[string]otpEntry),
	}
}

// WithClock overrides the service clock. For tests.
func (s *UserService) WithClock(now func() time.Time) *UserService {
	s.now = now
	return s
}

// Register validates the form, stores the profile image, hashes the
// password, and creates the account. Auctioneers must supply full payment
// methods so winners can be told where to pay.
func (s *UserService) Register(p RegisterParams) (models.User, error) {
	if p.UserName == "" || p.Email == "" || p.Password == "" || p.Phone == "" || p.Address == "" {
		return models.User{}, fmt.Errorf("service: %w: incomplete registration form", auctionerrors.ErrInvalidInput)
	}
	if len(p.UserName) < 3 || len(p.UserName) > 40 {
		return models.User{}, fmt.Errorf("service: %w: user name must be 3-40 characters", auctionerrors.ErrInvalidInput)
	}
	if len(p.Password) < 8 {
		return models.User{}, fmt.Errorf("service: %w: password must be at least 8 characters", auctionerrors.ErrInvalidInput)
	}
	if len(p.Phone) != 10 {
		return models.User{}, fmt.Errorf("service: %w: phone must be 10 digits", auctionerrors.ErrInvalidInput)
	}
	if !p.Role.Valid() || p.Role == models.RoleSuperAdmin {
		return models.User{}, fmt.Errorf("service: %w: role must be Auctioneer or Bidder", auctionerrors.ErrInvalidInput)
	}
	if len(p.ImageData) == 0 {
		return models.User{}, fmt.Errorf("service: %w: profile image required", auctionerrors.ErrInvalidInput)
	}
	if p.Role == models.RoleAuctioneer {
		pm := p.PaymentMethods
		if pm.BankTransfer.AccountNumber == "" || pm.BankTransfer.AccountName == "" || pm.BankTransfer.BankName == "" {
			return models.User{}, fmt.Errorf("service: %w: full bank details required for auctioneers", auctionerrors.ErrInvalidInput)
		}
		if pm.GooglePayNo == "" {
			return models.User{}, fmt.Errorf("service: %w: google pay account number required for auctioneers", auctionerrors.ErrInvalidInput)
		}
		if pm.PaypalEmail == "" {
			return models.User{}, fmt.Errorf("service: %w: paypal email required for auctioneers", auctionerrors.ErrInvalidInput)
		}
	}

	if _, err := s.store.GetUserByEmail(p.Email); err == nil {
		return models.User{}, fmt.Errorf("service: register %s: %w", p.Email, auctionerrors.ErrEmailTaken)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("service: register %s: hash password: %w", p.Email, err)
	}

	img, err := s.images.Save(p.ImageName, p.ImageData)
	if err != nil {
		return models.User{}, fmt.Errorf("service: register %s: %w", p.Email, err)
	}

	u := models.User{
		UserID:         utils.GenerateID(),
		UserName:       p.UserName,
		Email:          p.Email,
		PasswordHash:   string(hash),
		Phone:          p.Phone,
		Address:        p.Address,
		ProfileImage:   models.Image{ID: img.ID, URL: img.URL},
		PaymentMethods: p.PaymentMethods,
		Role:           p.Role,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.store.CreateUser(u); err != nil {
		return models.User{}, fmt.Errorf("service: register %s: %w", p.Email, err)
	}

	utils.Info("user registered", map[string]any{"user_id": u.UserID, "role": u.Role})
	return u, nil
}

// Login verifies credentials and returns the account.
func (s *UserService) Login(email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, fmt.Errorf("service: %w: email and password required", auctionerrors.ErrInvalidInput)
	}
	u, err := s.store.GetUserByEmail(email)
	if err != nil {
		return models.User{}, fmt.Errorf("service: login %s: %w", email, auctionerrors.ErrInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return models.User{}, fmt.Errorf("service: login %s: %w", email, auctionerrors.ErrInvalidCredentials)
	}
	return u, nil
}

// IssueToken returns a signed session token for the user.
func (s *UserService) IssueToken(u models.User) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   u.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("service: issue token for %s: %w", u.UserID, err)
	}
	return token, nil
}

// ResolveToken validates a session token and loads the account it names.
func (s *UserService) ResolveToken(token string) (models.User, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return models.User{}, fmt.Errorf("service: resolve token: %w", auctionerrors.ErrInvalidToken)
	}
	claims := parsed.Claims.(*jwt.RegisteredClaims)
	u, err := s.store.GetUser(claims.Subject)
	if err != nil {
		return models.User{}, fmt.Errorf("service: resolve token: %w", auctionerrors.ErrInvalidToken)
	}
	return u, nil
}

// Profile returns the account by id.
func (s *UserService) Profile(id string) (models.User, error) {
	u, err := s.store.GetUser(id)
	if err != nil {
		return models.User{}, fmt.Errorf("service: profile %s: %w", id, err)
	}
	return u, nil
}

// Leaderboard returns users with money spent, biggest spender first.
func (s *UserService) Leaderboard() ([]models.User, error) {
	users, err := s.store.ListBigSpenders()
	if err != nil {
		return nil, fmt.Errorf("service: leaderboard: %w", err)
	}
	return users, nil
}

// RequestPasswordReset issues a 6-digit OTP and emails it. An unknown
// email is reported the same as a known one so the endpoint does not leak
// which addresses are registered.
func (s *UserService) RequestPasswordReset(email string) error {
	u, err := s.store.GetUserByEmail(email)
	if err != nil {
		utils.Info("password reset requested for unknown email", map[string]any{"email": email})
		return nil
	}

	code, err := generateOTP()
	if err != nil {
		return fmt.Errorf("service: request password reset: %w", err)
	}
	s.otpMu.Lock()
	s.otps[strings.ToLower(email)] = otpEntry{code: code, expires: s.now().Add(s.otpTTL)}
	s.otpMu.Unlock()

	subject, text, html := notify.OTPMessage(u.UserName, code, s.otpTTL)
	if err := s.notifier.Send(u.Email, subject, text, html); err != nil {
		utils.Error("password reset email failed", map[string]any{"email": email, "error": err.Error()})
	}
	return nil
}

// ResetPassword verifies a single-use OTP and installs the new password.
func (s *UserService) ResetPassword(email, otp, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("service: %w: password must be at least 8 characters", auctionerrors.ErrInvalidInput)
	}

	key := strings.ToLower(email)
	s.otpMu.Lock()
	entry, ok := s.otps[key]
	if ok {
		delete(s.otps, key) // single use, even on failure below
	}
	s.otpMu.Unlock()

	if !ok || entry.code != otp || s.now().After(entry.expires) {
		return fmt.Errorf("service: reset password for %s: %w", email, auctionerrors.ErrOTPInvalid)
	}

	u, err := s.store.GetUserByEmail(email)
	if err != nil {
		return fmt.Errorf("service: reset password for %s: %w", email, err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("service: reset password for %s: %w", email, err)
	}
	if err := s.store.UpdateUserPassword(u.UserID, string(hash)); err != nil {
		return fmt.Errorf("service: reset password for %s: %w", email, err)
	}
	utils.Info("password reset", map[string]any{"user_id": u.UserID})
	return nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
