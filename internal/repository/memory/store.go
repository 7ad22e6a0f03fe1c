// Package memory is an in-process repository.Store used when no Postgres DSN
// is configured outside production, and by tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tenx-mn/catering-service/internal/domain"
	"github.com/tenx-mn/catering-service/internal/repository"
)

type data struct {
	users     map[string]domain.Customer
	dashboard map[string]domain.DashboardUser
	chefs     map[string]domain.ChefProfile
	companies map[string]domain.CompanyProfile
}

func (d *data) clone() *data {
	out := &data{
		users:     make(map[string]domain.Customer, len(d.users)),
		dashboard: make(map[string]domain.DashboardUser, len(d.dashboard)),
		chefs:     make(map[string]domain.ChefProfile, len(d.chefs)),
		companies: make(map[string]domain.CompanyProfile, len(d.companies)),
	}
	for k, v := range d.users {
		out.users[k] = v
	}
	for k, v := range d.dashboard {
		out.dashboard[k] = v
	}
	for k, v := range d.chefs {
		v.Certifications = append([]string(nil), v.Certifications...)
		out.chefs[k] = v
	}
	for k, v := range d.companies {
		out.companies[k] = v
	}
	return out
}

// Store keeps every table in maps guarded by one mutex.
type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex
	data *data
	now  func() time.Time
	last time.Time

	// Calls counts repository method invocations by "Repo.Method".
	calls map[string]int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		data: &data{
			users:     map[string]domain.Customer{},
			dashboard: map[string]domain.DashboardUser{},
			chefs:     map[string]domain.ChefProfile{},
			companies: map[string]domain.CompanyProfile{},
		},
		now:   time.Now,
		calls: map[string]int{},
	}
}

// Calls returns how many times method was invoked.
func (s *Store) Calls(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method]
}

// TotalCalls returns the number of repository invocations of any kind.
func (s *Store) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		n += c
	}
	return n
}

func (s *Store) lock(method string) func() {
	s.mu.Lock()
	s.calls[method]++
	return s.mu.Unlock
}

func (s *Store) Users() repository.UserRepository {
	return &users{s}
}

func (s *Store) DashboardUsers() repository.DashboardUserRepository {
	return &dashboardUsers{s}
}

func (s *Store) ChefProfiles() repository.ChefProfileRepository {
	return &chefs{s}
}

func (s *Store) CompanyProfiles() repository.CompanyProfileRepository {
	return &companies{s}
}

// stamp returns a strictly increasing timestamp so ordering by creation time
// is deterministic. Callers hold mu.
func (s *Store) stamp() time.Time {
	t := s.now()
	if !t.After(s.last) {
		t = s.last.Add(time.Microsecond)
	}
	s.last = t
	return t
}

// WithTx serializes transactions and restores a snapshot when fn fails.
func (s *Store) WithTx(ctx context.Context, fn func(tx repository.Store) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.data.clone()
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.data = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func page[T any](items []T, limit, offset int) []T {
	if limit <= 0 {
		limit = 10
	}
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type users struct{ s *Store }

func (r *users) Create(_ context.Context, u *domain.Customer) error {
	defer r.s.lock("Users.Create")()
	for _, existing := range r.s.data.users {
		if existing.Email == u.Email {
			return uniqueViolation("users_email_key")
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = r.s.stamp()
	u.UpdatedAt = u.CreatedAt
	r.s.data.users[u.ID] = *u
	return nil
}

func (r *users) Update(_ context.Context, u *domain.Customer) error {
	defer r.s.lock("Users.Update")()
	existing, ok := r.s.data.users[u.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	existing.Name = u.Name
	existing.FirstName = u.FirstName
	existing.LastName = u.LastName
	existing.Phone = u.Phone
	existing.Address = u.Address
	existing.UpdatedAt = r.s.stamp()
	u.UpdatedAt = existing.UpdatedAt
	r.s.data.users[u.ID] = existing
	return nil
}

func (r *users) Delete(_ context.Context, id string) error {
	defer r.s.lock("Users.Delete")()
	if _, ok := r.s.data.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.s.data.users, id)
	return nil
}

func (r *users) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	defer r.s.lock("Users.GetByID")()
	u, ok := r.s.data.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &u, nil
}

func (r *users) GetByEmail(_ context.Context, email string) (*domain.Customer, error) {
	defer r.s.lock("Users.GetByEmail")()
	for _, u := range r.s.data.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *users) List(_ context.Context, f repository.UserFilter) ([]domain.Customer, int, error) {
	defer r.s.lock("Users.List")()
	var out []domain.Customer
	for _, u := range r.s.data.users {
		if f.UserType != nil && u.UserType != *f.UserType {
			continue
		}
		if f.Search != "" && !containsFold(u.Name, f.Search) && !containsFold(u.Email, f.Search) &&
			!containsFold(deref(u.FirstName), f.Search) && !containsFold(deref(u.LastName), f.Search) {
			continue
		}
		out = append(out, u)
	}
	less := func(a, b domain.Customer) bool {
		switch f.SortBy {
		case "name":
			return a.Name < b.Name
		case "email":
			return a.Email < b.Email
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if f.SortOrder == repository.SortAsc {
			return less(out[i], out[j])
		}
		return less(out[j], out[i])
	})
	return page(out, f.Limit, f.Offset), len(out), nil
}

type dashboardUsers struct{ s *Store }

func (r *dashboardUsers) Create(_ context.Context, u *domain.DashboardUser) error {
	defer r.s.lock("DashboardUsers.Create")()
	for _, existing := range r.s.data.dashboard {
		if existing.Email == u.Email {
			return uniqueViolation("dashboard_users_email_key")
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = r.s.stamp()
	u.UpdatedAt = u.CreatedAt
	r.s.data.dashboard[u.ID] = *u
	return nil
}

func (r *dashboardUsers) Update(_ context.Context, u *domain.DashboardUser) error {
	defer r.s.lock("DashboardUsers.Update")()
	existing, ok := r.s.data.dashboard[u.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	existing.Name = u.Name
	existing.Phone = u.Phone
	existing.Avatar = u.Avatar
	existing.UpdatedAt = r.s.stamp()
	u.UpdatedAt = existing.UpdatedAt
	r.s.data.dashboard[u.ID] = existing
	return nil
}

func (r *dashboardUsers) SetActive(_ context.Context, id string, active bool) (*domain.DashboardUser, error) {
	defer r.s.lock("DashboardUsers.SetActive")()
	u, ok := r.s.data.dashboard[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	u.IsActive = active
	u.UpdatedAt = r.s.stamp()
	r.s.data.dashboard[id] = u
	return &u, nil
}

func (r *dashboardUsers) SetVerified(_ context.Context, id string, verified bool) (*domain.DashboardUser, error) {
	defer r.s.lock("DashboardUsers.SetVerified")()
	u, ok := r.s.data.dashboard[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	u.IsVerified = verified
	u.UpdatedAt = r.s.stamp()
	r.s.data.dashboard[id] = u
	return &u, nil
}

func (r *dashboardUsers) TouchLastLogin(_ context.Context, id string, at time.Time) error {
	defer r.s.lock("DashboardUsers.TouchLastLogin")()
	u, ok := r.s.data.dashboard[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.LastLoginAt = &at
	r.s.data.dashboard[id] = u
	return nil
}

func (r *dashboardUsers) Delete(_ context.Context, id string) error {
	defer r.s.lock("DashboardUsers.Delete")()
	if _, ok := r.s.data.dashboard[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.s.data.dashboard, id)
	delete(r.s.data.chefs, id)
	delete(r.s.data.companies, id)
	return nil
}

func (r *dashboardUsers) GetByID(_ context.Context, id string) (*domain.DashboardUser, error) {
	defer r.s.lock("DashboardUsers.GetByID")()
	u, ok := r.s.data.dashboard[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &u, nil
}

func (r *dashboardUsers) GetByEmail(_ context.Context, email string) (*domain.DashboardUser, error) {
	defer r.s.lock("DashboardUsers.GetByEmail")()
	for _, u := range r.s.data.dashboard {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *dashboardUsers) List(_ context.Context, f repository.DashboardUserFilter) ([]domain.DashboardUser, int, error) {
	defer r.s.lock("DashboardUsers.List")()
	var out []domain.DashboardUser
	for _, u := range r.s.data.dashboard {
		if f.Role != nil && u.Role != *f.Role {
			continue
		}
		if f.IsActive != nil && u.IsActive != *f.IsActive {
			continue
		}
		if f.IsVerified != nil && u.IsVerified != *f.IsVerified {
			continue
		}
		if f.Search != "" && !containsFold(u.Name, f.Search) && !containsFold(u.Email, f.Search) {
			continue
		}
		out = append(out, u)
	}
	less := func(a, b domain.DashboardUser) bool {
		switch f.SortBy {
		case "name":
			return a.Name < b.Name
		case "email":
			return a.Email < b.Email
		case "role":
			return a.Role < b.Role
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if f.SortOrder == repository.SortAsc {
			return less(out[i], out[j])
		}
		return less(out[j], out[i])
	})
	return page(out, f.Limit, f.Offset), len(out), nil
}

// chefs and companies are keyed by dashboard user id.
type chefs struct{ s *Store }

func (r *chefs) Create(_ context.Context, p *domain.ChefProfile) error {
	defer r.s.lock("ChefProfiles.Create")()
	if _, ok := r.s.data.dashboard[p.DashboardUserID]; !ok {
		return &pgconn.PgError{Code: "23503", ConstraintName: "chef_profiles_dashboard_user_id_fkey"}
	}
	for _, existing := range r.s.data.chefs {
		if existing.Slug == p.Slug {
			return uniqueViolation("chef_profiles_slug_key")
		}
	}
	if _, ok := r.s.data.chefs[p.DashboardUserID]; ok {
		return uniqueViolation("chef_profiles_dashboard_user_id_key")
	}
	p.ID = uuid.NewString()
	p.CreatedAt = r.s.stamp()
	p.UpdatedAt = p.CreatedAt
	if p.Certifications == nil {
		p.Certifications = []string{}
	}
	r.s.data.chefs[p.DashboardUserID] = *p
	return nil
}

func (r *chefs) Update(_ context.Context, p *domain.ChefProfile) error {
	defer r.s.lock("ChefProfiles.Update")()
	existing, ok := r.s.data.chefs[p.DashboardUserID]
	if !ok {
		return pgx.ErrNoRows
	}
	existing.Specialty = p.Specialty
	existing.Bio = p.Bio
	existing.YearsExperience = p.YearsExperience
	existing.HourlyRate = p.HourlyRate
	existing.CoverImage = p.CoverImage
	existing.Certifications = append([]string{}, p.Certifications...)
	existing.UpdatedAt = r.s.stamp()
	p.UpdatedAt = existing.UpdatedAt
	r.s.data.chefs[p.DashboardUserID] = existing
	return nil
}

func (r *chefs) GetByDashboardUserID(_ context.Context, id string) (*domain.ChefProfile, error) {
	defer r.s.lock("ChefProfiles.GetByDashboardUserID")()
	p, ok := r.s.data.chefs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &p, nil
}

func (r *chefs) SlugExists(_ context.Context, slug string) (bool, error) {
	defer r.s.lock("ChefProfiles.SlugExists")()
	for _, p := range r.s.data.chefs {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

type companies struct{ s *Store }

func (r *companies) Create(_ context.Context, p *domain.CompanyProfile) error {
	defer r.s.lock("CompanyProfiles.Create")()
	if _, ok := r.s.data.dashboard[p.DashboardUserID]; !ok {
		return &pgconn.PgError{Code: "23503", ConstraintName: "company_profiles_dashboard_user_id_fkey"}
	}
	if p.ApprovalStatus == "" {
		p.ApprovalStatus = domain.ApprovalPending
	}
	p.ID = uuid.NewString()
	p.CreatedAt = r.s.stamp()
	p.UpdatedAt = p.CreatedAt
	r.s.data.companies[p.DashboardUserID] = *p
	return nil
}

func (r *companies) GetByDashboardUserID(_ context.Context, id string) (*domain.CompanyProfile, error) {
	defer r.s.lock("CompanyProfiles.GetByDashboardUserID")()
	p, ok := r.s.data.companies[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &p, nil
}
