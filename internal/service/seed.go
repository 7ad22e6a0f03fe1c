package service

import (
	"context"
	"strings"

	"github.com/tenx-mn/catering-service/internal/auth"
	"github.com/tenx-mn/catering-service/internal/config"
	"github.com/tenx-mn/catering-service/internal/domain"
	"github.com/tenx-mn/catering-service/internal/repository"
)

// Default administrator created by the seed command.
const (
	DefaultAdminEmail    = config.DefaultAdminEmail
	DefaultAdminPassword = config.DefaultAdminPassword
	DefaultAdminName     = config.DefaultAdminName
)

// SeedAdmin creates the initial ADMIN account unless the email is already in
// use. It reports whether an account was created.
func SeedAdmin(ctx context.Context, store repository.Store, hasher *auth.Hasher, email, password, name string) (bool, error) {
	email = NormalizeEmail(email)
	taken, err := repository.DirectoryFor(store).EmailTaken(ctx, email)
	if err != nil {
		return false, err
	}
	if taken {
		return false, nil
	}

	hash, err := hashPassword(hasher, password)
	if err != nil {
		return false, err
	}
	admin := &domain.DashboardUser{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		IsVerified:   true,
		IsActive:     true,
	}
	if err := store.DashboardUsers().Create(ctx, admin); err != nil {
		return false, err
	}
	return true, nil
}
