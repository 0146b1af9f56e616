package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/execsec/backoffice/internal/domain"
	"github.com/execsec/backoffice/internal/usecase"
	"github.com/execsec/backoffice/internal/usecase/mocks"
)

func seedLoginFixtures(t *testing.T) *usecase.UserUseCase {
	t.Helper()
	tenants := mocks.NewMockTenantRepository()
	users := mocks.NewMockUserRepository()
	uc := usecase.NewUserUseCase(users, tenants, &mocks.MockTokenIssuer{})

	_ = tenants.Create(context.Background(), &domain.Tenant{Name: "Secretariat", Slug: domain.ExecutiveTenantSlug})
	_ = tenants.Create(context.Background(), &domain.Tenant{Name: "Acme Ltda", Slug: "acme"})

	if _, err := uc.CreateUser(context.Background(), 1, usecase.CreateUserInput{
		Username: "root", Password: "Sup3rSecret", Role: "SUPERADMIN", Name: "Root",
	}); err != nil {
		t.Fatalf("seed superadmin: %v", err)
	}
	if _, err := uc.CreateUser(context.Background(), 2, usecase.CreateUserInput{
		Username: "ana", Password: "Passw0rdOk", Role: "ADMIN", Name: "Ana",
	}); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return uc
}

func TestUserUseCase_Login(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.LoginInput
		expectError error
	}{
		{
			name:  "tenant user logs into own tenant",
			input: usecase.LoginInput{TenantSlug: "acme", Username: "ana", Password: "Passw0rdOk"},
		},
		{
			name:  "superadmin logs into any tenant",
			input: usecase.LoginInput{TenantSlug: "acme", Username: "root", Password: "Sup3rSecret"},
		},
		{
			name:        "wrong password",
			input:       usecase.LoginInput{TenantSlug: "acme", Username: "ana", Password: "wrong"},
			expectError: domain.ErrInvalidCredentials,
		},
		{
			name:        "unknown tenant",
			input:       usecase.LoginInput{TenantSlug: "ghost", Username: "ana", Password: "Passw0rdOk"},
			expectError: domain.ErrInvalidCredentials,
		},
		{
			name:        "tenant user cannot cross tenants",
			input:       usecase.LoginInput{TenantSlug: domain.ExecutiveTenantSlug, Username: "ana", Password: "Passw0rdOk"},
			expectError: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := seedLoginFixtures(t)

			result, err := uc.Login(context.Background(), tt.input)
			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Errorf("expected %v, got %v", tt.expectError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Token == "" {
				t.Error("expected token")
			}
			if result.Tenant.Slug != tt.input.TenantSlug {
				t.Errorf("expected session tenant %q, got %q", tt.input.TenantSlug, result.Tenant.Slug)
			}
			if result.User.HashedPassword != "" {
				t.Error("hashed password must not leak")
			}
		})
	}
}

func TestUserUseCase_Login_InactiveUser(t *testing.T) {
	uc := seedLoginFixtures(t)

	active := false
	if _, err := uc.UpdateUser(context.Background(), 2, usecase.UpdateUserInput{Active: &active}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	if _, err := uc.Login(context.Background(), usecase.LoginInput{
		TenantSlug: "acme", Username: "ana", Password: "Passw0rdOk",
	}); !errors.Is(err, domain.ErrUserInactive) {
		t.Errorf("expected ErrUserInactive, got %v", err)
	}
}

func TestUserUseCase_CreateUser(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.CreateUserInput
		expectError bool
	}{
		{
			name:  "valid user",
			input: usecase.CreateUserInput{Username: "joao", Password: "Abcdef12", Name: "João"},
		},
		{
			name:        "weak password",
			input:       usecase.CreateUserInput{Username: "joao", Password: "short"},
			expectError: true,
		},
		{
			name:        "bad email",
			input:       usecase.CreateUserInput{Username: "joao", Password: "Abcdef12", Email: "nope"},
			expectError: true,
		},
		{
			name:        "bad role",
			input:       usecase.CreateUserInput{Username: "joao", Password: "Abcdef12", Role: "OVERLORD"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.NewUserUseCase(mocks.NewMockUserRepository(), mocks.NewMockTenantRepository(), &mocks.MockTokenIssuer{})
			user, err := uc.CreateUser(context.Background(), 1, tt.input)
			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.Role != domain.RoleUser {
				t.Errorf("expected default role USER, got %q", user.Role)
			}
			if user.HashedPassword != "" {
				t.Error("hashed password must not leak")
			}
		})
	}
}

func TestUserUseCase_CreateUser_DuplicateUsername(t *testing.T) {
	uc := usecase.NewUserUseCase(mocks.NewMockUserRepository(), mocks.NewMockTenantRepository(), &mocks.MockTokenIssuer{})

	if _, err := uc.CreateUser(context.Background(), 1, usecase.CreateUserInput{Username: "joao", Password: "Abcdef12"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.CreateUser(context.Background(), 1, usecase.CreateUserInput{Username: "joao", Password: "Abcdef12"}); !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Errorf("expected ErrDuplicateUsername, got %v", err)
	}
	// Same username in another tenant is fine.
	if _, err := uc.CreateUser(context.Background(), 2, usecase.CreateUserInput{Username: "joao", Password: "Abcdef12"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
