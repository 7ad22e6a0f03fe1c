package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/tenx-mn/catering-service/internal/domain"
	"github.com/tenx-mn/catering-service/internal/events"
	"github.com/tenx-mn/catering-service/internal/repository"
)

const userResource = "User"

// UserService manages customer accounts on behalf of administrators.
type UserService struct {
	store      repository.Store
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewUserService constructs the service.
func NewUserService(store repository.Store, dispatcher events.Dispatcher, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{store: store, dispatcher: dispatcher, logger: logger}
}

// UserQuery define listing parameters.
type UserQuery struct {
	Page      int
	Limit     int
	Search    string
	UserType  *domain.CustomerType
	SortBy    string
	SortOrder string
}

// UserPage is one page of customers.
type UserPage struct {
	Items      []domain.Customer
	Pagination Pagination
}

// List returns customers matching q.
func (s *UserService) List(ctx context.Context, q UserQuery) (*UserPage, error) {
	page, limit := normalizePage(q.Page, q.Limit)
	items, total, err := s.store.Users().List(ctx, repository.UserFilter{
		Search:    q.Search,
		UserType:  q.UserType,
		SortBy:    q.SortBy,
		SortOrder: sortOrder(q.SortOrder),
		Limit:     limit,
		Offset:    (page - 1) * limit,
	})
	if err != nil {
		return nil, err
	}
	return &UserPage{Items: items, Pagination: newPagination(page, limit, total)}, nil
}

// Get returns one customer.
func (s *UserService) Get(ctx context.Context, id string) (*domain.Customer, error) {
	user, err := s.store.Users().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, userResource)
	}
	return user, nil
}

// UpdateUserInput holds optional changes; empty Phone or Address clears it.
type UpdateUserInput struct {
	Name      *string
	FirstName *string
	LastName  *string
	Phone     *string
	Address   *string
}

// Update applies in to the customer with id.
func (s *UserService) Update(ctx context.Context, id string, in UpdateUserInput) (*domain.Customer, error) {
	user, err := s.store.Users().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, userResource)
	}
	if in.Name != nil {
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.FirstName != nil {
		user.FirstName = nullIfEmpty(*in.FirstName)
	}
	if in.LastName != nil {
		user.LastName = nullIfEmpty(*in.LastName)
	}
	if in.Phone != nil {
		user.Phone = nullIfEmpty(*in.Phone)
	}
	if in.Address != nil {
		user.Address = nullIfEmpty(*in.Address)
	}
	if err := s.store.Users().Update(ctx, user); err != nil {
		return nil, notFound(err, userResource)
	}
	return user, nil
}

// Delete removes a customer.
func (s *UserService) Delete(ctx context.Context, actor *domain.SessionClaims, id string) error {
	if err := s.store.Users().Delete(ctx, id); err != nil {
		return notFound(err, userResource)
	}
	publish(ctx, s.dispatcher, s.logger, events.NewEvent(events.EventAccountDeleted,
		id, domain.CategoryCustomer, nil).WithActor(actorID(actor)))
	return nil
}
