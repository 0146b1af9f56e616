package usecase

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/execsec/backoffice/internal/domain"
)

// UserUseCase handles user management and authentication.
type UserUseCase struct {
	userRepo   UserRepository
	tenantRepo TenantRepository
	tokens     TokenIssuer
}

// NewUserUseCase creates a new user use case.
func NewUserUseCase(userRepo UserRepository, tenantRepo TenantRepository, tokens TokenIssuer) *UserUseCase {
	return &UserUseCase{
		userRepo:   userRepo,
		tenantRepo: tenantRepo,
		tokens:     tokens,
	}
}

// LoginInput represents authentication input. TenantSlug selects which
// company scope the session operates on.
type LoginInput struct {
	TenantSlug string
	Username   string
	Password   string
}

// LoginResult carries the issued token and the authenticated user.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
	Tenant    *domain.Tenant
}

// Login verifies credentials against the tenant's users. Superadmin accounts
// live under the secretariat's own tenant and may log into any tenant.
func (uc *UserUseCase) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	tenant, err := uc.tenantRepo.GetBySlug(ctx, input.TenantSlug)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := uc.userRepo.GetByUsername(ctx, tenant.ID, input.Username)
	if errors.Is(err, domain.ErrUserNotFound) && !tenant.IsExecutive() {
		user, err = uc.lookupSuperadmin(ctx, input.Username)
	}
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.Active {
		return nil, domain.ErrUserInactive
	}
	if err := verifyPassword(user.HashedPassword, input.Password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := uc.tokens.Issue(user, tenant)
	if err != nil {
		return nil, err
	}

	user.HashedPassword = ""
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user, Tenant: tenant}, nil
}

func (uc *UserUseCase) lookupSuperadmin(ctx context.Context, username string) (*domain.User, error) {
	executive, err := uc.tenantRepo.GetBySlug(ctx, domain.ExecutiveTenantSlug)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	user, err := uc.userRepo.GetByUsername(ctx, executive.ID, username)
	if err != nil {
		return nil, err
	}
	if !user.IsSuperadmin() {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// CreateUserInput represents input for creating a user.
type CreateUserInput struct {
	Username   string
	Password   string
	Role       string
	Name       string
	JobTitle   string
	Profile    string
	Permission string
	Phone      string
	Email      string
}

// CreateUser creates a new user in the tenant with a hashed password.
func (uc *UserUseCase) CreateUser(ctx context.Context, tenantID int64, input CreateUserInput) (*domain.User, error) {
	if err := domain.ValidateName(input.Username); err != nil {
		return nil, err
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, err
	}
	if input.Email != "" {
		if err := domain.ValidateEmail(input.Email); err != nil {
			return nil, err
		}
	}

	role := domain.ParseRole(input.Role)
	if role == "" {
		role = domain.RoleUser
	}
	if !role.IsValid() {
		return nil, errors.New("invalid role")
	}

	existing, err := uc.userRepo.GetByUsername(ctx, tenantID, input.Username)
	if err == nil && existing != nil {
		return nil, domain.ErrDuplicateUsername
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:       input.Username,
		TenantID:       tenantID,
		Role:           role,
		Name:           input.Name,
		JobTitle:       input.JobTitle,
		Profile:        input.Profile,
		Permission:     input.Permission,
		Phone:          input.Phone,
		Email:          input.Email,
		HashedPassword: hashed,
		Active:         true,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	user.HashedPassword = ""
	return user, nil
}

// GetUser retrieves a user by ID.
func (uc *UserUseCase) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.HashedPassword = ""
	return user, nil
}

// UpdateUserInput represents input for updating a user. Nil fields are left
// untouched.
type UpdateUserInput struct {
	Name       *string
	JobTitle   *string
	Profile    *string
	Permission *string
	Phone      *string
	Email      *string
	Role       *string
	Active     *bool
	Password   *string
}

// UpdateUser updates user information.
func (uc *UserUseCase) UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.JobTitle != nil {
		user.JobTitle = *input.JobTitle
	}
	if input.Profile != nil {
		user.Profile = *input.Profile
	}
	if input.Permission != nil {
		user.Permission = *input.Permission
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Email != nil {
		if err := domain.ValidateEmail(*input.Email); err != nil {
			return nil, err
		}
		user.Email = *input.Email
	}
	if input.Role != nil {
		role := domain.ParseRole(*input.Role)
		if !role.IsValid() {
			return nil, errors.New("invalid role")
		}
		user.Role = role
	}
	if input.Active != nil {
		user.Active = *input.Active
	}
	if input.Password != nil {
		if err := domain.ValidatePassword(*input.Password); err != nil {
			return nil, err
		}
		hashed, err := hashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.HashedPassword = hashed
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	user.HashedPassword = ""
	return user, nil
}

// DeleteUser deletes a user.
func (uc *UserUseCase) DeleteUser(ctx context.Context, id int64) error {
	return uc.userRepo.Delete(ctx, id)
}

// ListUsers lists the tenant's users with pagination.
func (uc *UserUseCase) ListUsers(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.User, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	users, err := uc.userRepo.List(ctx, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		u.HashedPassword = ""
	}
	return users, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func verifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
