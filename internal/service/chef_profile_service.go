package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/tenx-mn/catering-service/internal/domain"
	"github.com/tenx-mn/catering-service/internal/events"
	"github.com/tenx-mn/catering-service/internal/repository"
	"github.com/tenx-mn/catering-service/pkg/util"
)

// ChefProfileService lets a chef maintain their own profile.
type ChefProfileService struct {
	store      repository.Store
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewChefProfileService constructs the service.
func NewChefProfileService(store repository.Store, dispatcher events.Dispatcher, logger *zap.Logger) *ChefProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChefProfileService{store: store, dispatcher: dispatcher, logger: logger}
}

// Get returns the chef account of userID.
func (s *ChefProfileService) Get(ctx context.Context, userID string) (*domain.ChefAccount, error) {
	user, err := s.store.DashboardUsers().GetByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, "Chef")
	}
	return chefAccount(ctx, s.store, user)
}

func chefAccount(ctx context.Context, store repository.Store, user *domain.DashboardUser) (*domain.ChefAccount, error) {
	account, err := loadDashboardAccount(ctx, store, user)
	if err != nil {
		return nil, err
	}
	chef, ok := account.(*domain.ChefAccount)
	if !ok {
		return nil, util.NewNotFound("Chef", nil)
	}
	return chef, nil
}

// UpdateChefProfileInput holds optional changes to a chef's account and profile.
type UpdateChefProfileInput struct {
	Name            *string
	Phone           *string
	Avatar          *string
	CoverImage      *string
	Specialty       *string
	Bio             *string
	YearsExperience *int
	HourlyRate      *float64
	Certifications  []string
}

// Update writes account and profile changes in one transaction. The profile
// is created when the chef has none yet.
func (s *ChefProfileService) Update(ctx context.Context, userID string, in UpdateChefProfileInput) (*domain.ChefAccount, error) {
	var result *domain.ChefAccount
	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		user, err := tx.DashboardUsers().GetByID(ctx, userID)
		if err != nil {
			return notFound(err, "Chef")
		}
		if user.Role != domain.RoleChef {
			return util.NewNotFound("Chef", nil)
		}

		if in.Name != nil {
			user.Name = strings.TrimSpace(*in.Name)
		}
		if in.Phone != nil {
			user.Phone = nullIfEmpty(*in.Phone)
		}
		if in.Avatar != nil {
			user.Avatar = nullIfEmpty(*in.Avatar)
		}
		if err := tx.DashboardUsers().Update(ctx, user); err != nil {
			return err
		}

		profile, err := tx.ChefProfiles().GetByDashboardUserID(ctx, user.ID)
		if isNoRows(err) {
			profile, err = createChefProfile(ctx, tx, user, "", 0)
		}
		if err != nil {
			return err
		}
		if in.Specialty != nil {
			profile.Specialty = strings.TrimSpace(*in.Specialty)
		}
		if in.Bio != nil {
			profile.Bio = strings.TrimSpace(*in.Bio)
		}
		if in.YearsExperience != nil {
			profile.YearsExperience = *in.YearsExperience
		}
		if in.HourlyRate != nil {
			profile.HourlyRate = util.RoundToWholeAmount(*in.HourlyRate)
		}
		if in.CoverImage != nil {
			profile.CoverImage = nullIfEmpty(*in.CoverImage)
		}
		if in.Certifications != nil {
			profile.Certifications = cleanList(in.Certifications)
		}
		if err := tx.ChefProfiles().Update(ctx, profile); err != nil {
			return err
		}

		result = &domain.ChefAccount{User: user, Profile: profile}
		return nil
	})
	if err != nil {
		return nil, err
	}
	publish(ctx, s.dispatcher, s.logger, events.NewEvent(events.EventChefProfileUpdated,
		userID, domain.CategoryDashboard, nil).WithActor(userID))
	return result, nil
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
