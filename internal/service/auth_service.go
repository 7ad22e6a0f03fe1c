package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tenx-mn/catering-service/internal/auth"
	"github.com/tenx-mn/catering-service/internal/domain"
	"github.com/tenx-mn/catering-service/internal/events"
	"github.com/tenx-mn/catering-service/internal/observability"
	"github.com/tenx-mn/catering-service/internal/ratelimit"
	"github.com/tenx-mn/catering-service/internal/repository"
	"github.com/tenx-mn/catering-service/pkg/util"
)

// AuthService coordinates signup, login and session hydration.
type AuthService struct {
	store      repository.Store
	hasher     *auth.Hasher
	limiter    ratelimit.Limiter
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
	now        func() time.Time

	// dummyHash is verified against when no account matches so that unknown
	// emails cost the same as wrong passwords.
	dummyHash string
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	Store      repository.Store
	Hasher     *auth.Hasher
	Limiter    ratelimit.Limiter
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	dummy, err := deps.Hasher.Hash("catering-dummy-password")
	if err != nil {
		logger.Warn("unable to precompute dummy hash", zap.Error(err))
	}
	return &AuthService{
		store:      deps.Store,
		hasher:     deps.Hasher,
		limiter:    deps.Limiter,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     logger,
		now:        time.Now,
		dummyHash:  dummy,
	}
}

// LoginResult is the authenticated account and the claims to mint.
type LoginResult struct {
	Claims    domain.SessionClaims
	Dashboard *domain.DashboardUser
	Customer  *domain.Customer
}

// Login checks credentials against dashboard users first, then customers.
func (s *AuthService) Login(ctx context.Context, email, password, ip string) (*LoginResult, error) {
	email = NormalizeEmail(email)
	key := ratelimit.LoginKey(email, ip)

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, key)
		if err != nil {
			s.logger.Warn("login throttle unavailable", zap.Error(err))
		}
		if !allowed {
			s.metrics.RecordLogin("", "throttled")
			return nil, util.NewTooManyRequests("Too many login attempts. Please try again later.")
		}
	}

	match, err := repository.DirectoryFor(s.store).FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		s.hasher.Verify(s.dummyHash, password)
		s.loginFailed(ctx, "", "", email, ip, "unknown_email")
		return nil, util.NewInvalidCredentials()
	}
	if err != nil {
		return nil, err
	}

	var result *LoginResult
	if match.Dashboard != nil {
		result, err = s.loginDashboard(ctx, match.Dashboard, email, password, ip)
	} else {
		result, err = s.loginCustomer(ctx, match.Customer, email, password, ip)
	}
	if err != nil {
		return nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, key); err != nil {
			s.logger.Warn("reset login throttle", zap.Error(err))
		}
	}
	s.metrics.RecordLogin(string(result.Claims.Category), "success")
	publish(ctx, s.dispatcher, s.logger, events.NewEvent(events.EventLoginSucceeded,
		result.Claims.UserID, result.Claims.Category, events.LoginPayload{Email: email, IP: ip}))
	return result, nil
}

func (s *AuthService) loginDashboard(ctx context.Context, user *domain.DashboardUser, email, password, ip string) (*LoginResult, error) {
	if !s.hasher.Verify(user.PasswordHash, password) {
		s.loginFailed(ctx, user.ID, domain.CategoryDashboard, email, ip, "bad_password")
		return nil, util.NewInvalidCredentials()
	}
	if !user.IsActive {
		s.loginFailed(ctx, user.ID, domain.CategoryDashboard, email, ip, "deactivated")
		return nil, util.NewDomainError(util.CodeAccountDeactivated, "Account is deactivated", http.StatusForbidden, nil)
	}

	now := s.now()
	if err := s.store.DashboardUsers().TouchLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLoginAt = &now

	return &LoginResult{
		Claims: domain.SessionClaims{
			UserID:   user.ID,
			Category: domain.CategoryDashboard,
			Role:     user.Role,
		},
		Dashboard: user,
	}, nil
}

func (s *AuthService) loginCustomer(ctx context.Context, user *domain.Customer, email, password, ip string) (*LoginResult, error) {
	if !user.HasPassword() {
		s.loginFailed(ctx, user.ID, domain.CategoryCustomer, email, ip, "password_not_set")
		return nil, util.NewDomainError(util.CodePasswordNotSet,
			"Please use social login or set a password", http.StatusUnauthorized, nil)
	}
	if !s.hasher.Verify(*user.PasswordHash, password) {
		s.loginFailed(ctx, user.ID, domain.CategoryCustomer, email, ip, "bad_password")
		return nil, util.NewInvalidCredentials()
	}
	return &LoginResult{
		Claims:   domain.SessionClaims{UserID: user.ID, Category: domain.CategoryCustomer},
		Customer: user,
	}, nil
}

func (s *AuthService) loginFailed(ctx context.Context, accountID string, category domain.AccountCategory, email, ip, reason string) {
	s.metrics.RecordLogin(string(category), reason)
	publish(ctx, s.dispatcher, s.logger, events.NewEvent(events.EventLoginFailed,
		accountID, category, events.LoginPayload{Email: email, IP: ip, Reason: reason}))
}

// SignupInput is a customer self-registration.
type SignupInput struct {
	UserType       domain.CustomerType
	Email          string
	Password       string
	Phone          string
	FirstName      string
	LastName       string
	CompanyName    string
	CompanyLegalNo string
}

// Signup registers a customer. It does not start a session.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*domain.Customer, error) {
	if !in.UserType.Valid() {
		return nil, util.NewValidationError("Validation failed", map[string]any{"userType": "unknown user type"})
	}
	email := NormalizeEmail(in.Email)

	taken, err := repository.DirectoryFor(s.store).EmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, util.NewEmailExists()
	}

	hash, err := hashPassword(s.hasher, in.Password)
	if err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		Email:        email,
		UserType:     in.UserType,
		Phone:        nullIfEmpty(in.Phone),
		PasswordHash: &hash,
	}
	switch in.UserType {
	case domain.CustomerTypeIndividual:
		first, last := strings.TrimSpace(in.FirstName), strings.TrimSpace(in.LastName)
		customer.Name = first + " " + last
		customer.FirstName = &first
		customer.LastName = &last
	case domain.CustomerTypeCorporate:
		company := strings.TrimSpace(in.CompanyName)
		customer.Name = company
		customer.OrganizationName = &company
		customer.CompanyLegalNo = nullIfEmpty(in.CompanyLegalNo)
	}

	if err := s.store.Users().Create(ctx, customer); err != nil {
		return nil, err
	}

	publish(ctx, s.dispatcher, s.logger, events.NewEvent(events.EventAccountRegistered,
		customer.ID, domain.CategoryCustomer, events.AccountRegisteredPayload{
			Email: customer.Email, Name: customer.Name, UserType: customer.UserType,
		}))
	return customer, nil
}

// CurrentAccount is the hydrated owner of a session.
type CurrentAccount struct {
	Category  domain.AccountCategory
	Dashboard domain.DashboardAccount
	Customer  *domain.Customer
}

// CurrentAccount loads the account behind session. Deleted or deactivated
// dashboard accounts are treated as signed out.
func (s *AuthService) CurrentAccount(ctx context.Context, session *domain.SessionClaims) (*CurrentAccount, error) {
	if session == nil {
		return nil, util.NewUnauthorized("Unauthorized")
	}

	if session.IsDashboard() {
		user, err := s.store.DashboardUsers().GetByID(ctx, session.UserID)
		if isNoRows(err) {
			return nil, util.NewUnauthorized("Account no longer exists")
		}
		if err != nil {
			return nil, err
		}
		if !user.IsActive {
			return nil, util.NewUnauthorized("Account is deactivated")
		}
		account, err := loadDashboardAccount(ctx, s.store, user)
		if err != nil {
			return nil, err
		}
		return &CurrentAccount{Category: domain.CategoryDashboard, Dashboard: account}, nil
	}

	customer, err := s.store.Users().GetByID(ctx, session.UserID)
	if isNoRows(err) {
		return nil, util.NewUnauthorized("Account no longer exists")
	}
	if err != nil {
		return nil, err
	}
	return &CurrentAccount{Category: domain.CategoryCustomer, Customer: customer}, nil
}
