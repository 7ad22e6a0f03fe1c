package service

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/tenx-mn/catering-service/internal/auth"
	"github.com/tenx-mn/catering-service/internal/domain"
	"github.com/tenx-mn/catering-service/internal/events"
	"github.com/tenx-mn/catering-service/internal/repository"
	"github.com/tenx-mn/catering-service/pkg/util"
)

const dashboardUserResource = "Dashboard user"

// DashboardUserService manages dashboard operators on behalf of administrators.
type DashboardUserService struct {
	store      repository.Store
	hasher     *auth.Hasher
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewDashboardUserService constructs the service.
func NewDashboardUserService(store repository.Store, hasher *auth.Hasher, dispatcher events.Dispatcher, logger *zap.Logger) *DashboardUserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardUserService{store: store, hasher: hasher, dispatcher: dispatcher, logger: logger}
}

// DashboardUserQuery define listing parameters.
type DashboardUserQuery struct {
	Page       int
	Limit      int
	Search     string
	Role       *domain.DashboardRole
	IsActive   *bool
	IsVerified *bool
	SortBy     string
	SortOrder  string
}

// DashboardUserPage is one page of dashboard users.
type DashboardUserPage struct {
	Items      []domain.DashboardUser
	Pagination Pagination
}

// List returns dashboard users matching q.
func (s *DashboardUserService) List(ctx context.Context, q DashboardUserQuery) (*DashboardUserPage, error) {
	page, limit := normalizePage(q.Page, q.Limit)
	items, total, err := s.store.DashboardUsers().List(ctx, repository.DashboardUserFilter{
		Search:     q.Search,
		Role:       q.Role,
		IsActive:   q.IsActive,
		IsVerified: q.IsVerified,
		SortBy:     q.SortBy,
		SortOrder:  sortOrder(q.SortOrder),
		Limit:      limit,
		Offset:     (page - 1) * limit,
	})
	if err != nil {
		return nil, err
	}
	return &DashboardUserPage{Items: items, Pagination: newPagination(page, limit, total)}, nil
}

// CreateDashboardUserInput describes a new dashboard operator.
type CreateDashboardUserInput struct {
	Name       string
	Email      string
	Password   string
	Phone      string
	Role       domain.DashboardRole
	Specialty  string
	HourlyRate float64
}

// Create adds a dashboard user plus the profile row its role requires.
func (s *DashboardUserService) Create(ctx context.Context, actor *domain.SessionClaims, in CreateDashboardUserInput) (domain.DashboardAccount, error) {
	if !in.Role.Valid() {
		return nil, util.NewValidationError("Validation failed", map[string]any{"role": "unknown role"})
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

	user := &domain.DashboardUser{
		Email:        email,
		Name:         strings.TrimSpace(in.Name),
		Phone:        nullIfEmpty(in.Phone),
		PasswordHash: hash,
		Role:         in.Role,
		IsVerified:   false,
		IsActive:     true,
	}

	var account domain.DashboardAccount
	err = s.store.WithTx(ctx, func(tx repository.Store) error {
		if err := tx.DashboardUsers().Create(ctx, user); err != nil {
			return err
		}
		var (
			chef    *domain.ChefProfile
			company *domain.CompanyProfile
			err     error
		)
		switch user.Role {
		case domain.RoleChef:
			chef, err = createChefProfile(ctx, tx, user, in.Specialty, in.HourlyRate)
		case domain.RoleCompany:
			company = &domain.CompanyProfile{
				DashboardUserID: user.ID,
				CompanyName:     user.Name,
				ApprovalStatus:  domain.ApprovalPending,
			}
			err = tx.CompanyProfiles().Create(ctx, company)
		}
		if err != nil {
			return err
		}
		account, err = domain.NewDashboardAccount(user, chef, company)
		return err
	})
	if err != nil {
		return nil, err
	}

	event := events.NewEvent(events.EventDashboardUserCreated, user.ID, domain.CategoryDashboard,
		events.DashboardUserCreatedPayload{Email: user.Email, Name: user.Name, Role: user.Role})
	publish(ctx, s.dispatcher, s.logger, event.WithActor(actorID(actor)))
	return account, nil
}

func createChefProfile(ctx context.Context, tx repository.Store, user *domain.DashboardUser, specialty string, hourlyRate float64) (*domain.ChefProfile, error) {
	slug, err := util.UniqueSlug(ctx, util.Slugify(user.Name), tx.ChefProfiles().SlugExists)
	if err != nil {
		return nil, err
	}
	profile := &domain.ChefProfile{
		DashboardUserID: user.ID,
		Slug:            slug,
		Specialty:       strings.TrimSpace(specialty),
		HourlyRate:      util.RoundToWholeAmount(hourlyRate),
		Certifications:  []string{},
	}
	if err := tx.ChefProfiles().Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Get returns a dashboard user with its profile.
func (s *DashboardUserService) Get(ctx context.Context, id string) (domain.DashboardAccount, error) {
	user, err := s.store.DashboardUsers().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, dashboardUserResource)
	}
	return loadDashboardAccount(ctx, s.store, user)
}

// UpdateDashboardUserInput holds optional changes; nil means unchanged and an
// empty Phone clears it.
type UpdateDashboardUserInput struct {
	Name       *string
	Phone      *string
	Specialty  *string
	HourlyRate *float64
}

// Update changes account fields and, for chefs, profile fields atomically.
func (s *DashboardUserService) Update(ctx context.Context, actor *domain.SessionClaims, id string, in UpdateDashboardUserInput) (domain.DashboardAccount, error) {
	var account domain.DashboardAccount
	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		user, err := tx.DashboardUsers().GetByID(ctx, id)
		if err != nil {
			return notFound(err, dashboardUserResource)
		}
		if in.Name != nil {
			user.Name = strings.TrimSpace(*in.Name)
		}
		if in.Phone != nil {
			user.Phone = nullIfEmpty(*in.Phone)
		}
		if err := tx.DashboardUsers().Update(ctx, user); err != nil {
			return err
		}

		if user.Role == domain.RoleChef && (in.Specialty != nil || in.HourlyRate != nil) {
			profile, err := tx.ChefProfiles().GetByDashboardUserID(ctx, user.ID)
			switch {
			case isNoRows(err):
				specialty, rate := "", 0.0
				if in.Specialty != nil {
					specialty = *in.Specialty
				}
				if in.HourlyRate != nil {
					rate = *in.HourlyRate
				}
				if _, err := createChefProfile(ctx, tx, user, specialty, rate); err != nil {
					return err
				}
			case err != nil:
				return err
			default:
				if in.Specialty != nil {
					profile.Specialty = strings.TrimSpace(*in.Specialty)
				}
				if in.HourlyRate != nil {
					profile.HourlyRate = util.RoundToWholeAmount(*in.HourlyRate)
				}
				if err := tx.ChefProfiles().Update(ctx, profile); err != nil {
					return err
				}
			}
		}

		account, err = loadDashboardAccount(ctx, tx, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, s.logger, events.NewEvent(events.EventDashboardUserUpdated,
		id, domain.CategoryDashboard, nil).WithActor(actorID(actor)))
	return account, nil
}

// Delete removes a dashboard user. Administrators cannot delete themselves.
func (s *DashboardUserService) Delete(ctx context.Context, actor *domain.SessionClaims, id string) error {
	if err := auth.ForbidSelfAction(actor, id, auth.SelfDelete); err != nil {
		return auth.ToAPIError(err, http.StatusUnauthorized)
	}
	if err := s.store.DashboardUsers().Delete(ctx, id); err != nil {
		return notFound(err, dashboardUserResource)
	}
	publish(ctx, s.dispatcher, s.logger, events.NewEvent(events.EventAccountDeleted,
		id, domain.CategoryDashboard, nil).WithActor(actorID(actor)))
	return nil
}

// SetActive activates or deactivates a dashboard user. Administrators cannot
// deactivate themselves.
func (s *DashboardUserService) SetActive(ctx context.Context, actor *domain.SessionClaims, id string, active bool) (*domain.DashboardUser, error) {
	if !active {
		if err := auth.ForbidSelfAction(actor, id, auth.SelfDeactivate); err != nil {
			return nil, auth.ToAPIError(err, http.StatusUnauthorized)
		}
	}
	user, err := s.store.DashboardUsers().SetActive(ctx, id, active)
	if err != nil {
		return nil, notFound(err, dashboardUserResource)
	}
	publish(ctx, s.dispatcher, s.logger, events.NewEvent(events.EventDashboardUserStatusChange,
		id, domain.CategoryDashboard, events.StatusChangedPayload{Field: "isActive", Value: active}).WithActor(actorID(actor)))
	return user, nil
}

// SetVerified marks a dashboard user verified or unverified.
func (s *DashboardUserService) SetVerified(ctx context.Context, actor *domain.SessionClaims, id string, verified bool) (*domain.DashboardUser, error) {
	user, err := s.store.DashboardUsers().SetVerified(ctx, id, verified)
	if err != nil {
		return nil, notFound(err, dashboardUserResource)
	}
	publish(ctx, s.dispatcher, s.logger, events.NewEvent(events.EventDashboardUserVerified,
		id, domain.CategoryDashboard, events.StatusChangedPayload{Field: "isVerified", Value: verified}).WithActor(actorID(actor)))
	return user, nil
}

func actorID(actor *domain.SessionClaims) string {
	if actor == nil {
		return ""
	}
	return actor.UserID
}
