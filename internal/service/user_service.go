package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/asset-registry/internal/domain"
	"github.com/phrazzld/asset-registry/internal/service/auth"
	"github.com/phrazzld/asset-registry/internal/store"
)

// UserService owns the user lifecycle and role validation.
type UserService interface {
	// CreateUser validates req, rejects a taken email, hashes the password
	// and persists the user.
	CreateUser(ctx context.Context, req UserRequest) (*UserResponse, error)

	// ListUsers returns every user ordered by ID.
	ListUsers(ctx context.Context) ([]UserResponse, error)

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, id int64) (*UserResponse, error)

	// UpdateUser replaces all fields of a user. The password is always re-hashed.
	UpdateUser(ctx context.Context, id int64, req UserRequest) (*UserResponse, error)

	// DeleteUser removes a user that no asset references.
	DeleteUser(ctx context.Context, id int64) error
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	users  store.UserStore
	hasher auth.PasswordHasher
	opts   Options
	logger *slog.Logger
}

var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService
func NewUserService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	opts Options,
	logger *slog.Logger,
) UserService {
	return &UserServiceImpl{
		users:  users,
		hasher: hasher,
		opts:   opts.withDefaults(),
		logger: logger.With("component", "user_service"),
	}
}

// CreateUser implements UserService.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req UserRequest) (*UserResponse, error) {
	req = req.normalized()
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	conflict := domain.NewConflictError("user", "email", req.Email)
	if err := s.ensureEmailFree(ctx, "create", req.Email, 0, conflict); err != nil {
		return nil, err
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, NewServiceError("user", "create", err)
	}

	user := &domain.User{
		Name:           req.Name,
		Email:          req.Email,
		PasswordDigest: digest,
		Role:           role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if store.IsDuplicateError(err) {
			s.logger.Debug("attempted to create user with existing email", "email", req.Email)
		} else {
			s.logger.Error("failed to save user", "error", err, "email", req.Email)
		}
		return nil, translate("user", "create", err, on(store.ErrDuplicate, conflict))
	}

	s.logger.Info("user created", "user_id", user.ID, "role", user.Role)
	resp := newUserResponse(user)
	return &resp, nil
}

// ListUsers implements UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, translate("user", "list", err)
	}
	if len(users) == 0 && s.opts.EmptyListIsError {
		return nil, domain.NewNotFoundError("user", 0)
	}

	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}
	return out, nil
}

// GetUser implements UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, id int64) (*UserResponse, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail("get", id, err)
	}
	resp := newUserResponse(user)
	return &resp, nil
}

// UpdateUser implements UserService.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, id int64, req UserRequest) (*UserResponse, error) {
	req = req.normalized()
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail("update", id, err)
	}

	conflict := domain.NewConflictError("user", "email", req.Email)
	if err := s.ensureEmailFree(ctx, "update", req.Email, id, conflict); err != nil {
		return nil, err
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err, "user_id", id)
		return nil, NewServiceError("user", "update", err)
	}

	user.Name = req.Name
	user.Email = req.Email
	user.PasswordDigest = digest
	user.Role = role

	if err := s.users.Update(ctx, user); err != nil {
		return nil, s.fail("update", id, err, on(store.ErrDuplicate, conflict))
	}

	s.logger.Info("user updated", "user_id", id)
	resp := newUserResponse(user)
	return &resp, nil
}

// DeleteUser implements UserService.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	exists, err := s.users.Exists(ctx, id)
	if err != nil {
		return s.fail("delete", id, err)
	}
	if !exists {
		return domain.NewNotFoundError("user", id)
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return s.fail("delete", id, err, on(store.ErrReferenced, domain.NewReferencedError("user", id)))
	}

	s.logger.Info("user deleted", "user_id", id)
	return nil
}

// ensureEmailFree fails with conflict when email belongs to a user other than exceptID.
func (s *UserServiceImpl) ensureEmailFree(
	ctx context.Context,
	op, email string,
	exceptID int64,
	conflict *domain.ConflictError,
) error {
	existing, err := s.users.GetByEmail(ctx, email)
	switch {
	case store.IsNotFoundError(err):
		return nil
	case err != nil:
		s.logger.Error("failed to look up user by email", "error", err)
		return NewServiceError("user", op, err)
	case existing.ID != exceptID:
		s.logger.Debug("email already taken", "email", email, "owner_id", existing.ID)
		return conflict
	}
	return nil
}

// fail translates a store error for user id, logging anything unexpected.
func (s *UserServiceImpl) fail(op string, id int64, err error, cases ...errCase) error {
	cases = append(cases, on(store.ErrNotFound, domain.NewNotFoundError("user", id)))
	out := translate("user", op, err, cases...)
	var svcErr *ServiceError
	if errors.As(out, &svcErr) {
		s.logger.Error("user store operation failed", "error", err, "op", op, "user_id", id)
	}
	return out
}
