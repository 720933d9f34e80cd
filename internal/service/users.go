package service

import (
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/mkurbatov/social-network-api/internal/apperr"
	"github.com/mkurbatov/social-network-api/internal/auth"
	"github.com/mkurbatov/social-network-api/internal/models"
	"github.com/mkurbatov/social-network-api/internal/store"
)

// UserService handles accounts: registration, login, profile reads and
// partial edits, and the password-reset flow.
type UserService struct {
	users     store.UserStore
	tokens    *auth.Manager
	blacklist *auth.Blacklist
	log       *zap.Logger
}

func NewUserService(users store.UserStore, tokens *auth.Manager, blacklist *auth.Blacklist, log *zap.Logger) *UserService {
	return &UserService{
		users:     users,
		tokens:    tokens,
		blacklist: blacklist,
		log:       log,
	}
}

// Register creates an account and returns the new id with a signed access
// token. Taken logins and emails are validation errors, matching the
// uniqueness rules of the registration form.
func (s *UserService) Register(req models.RegisterRequest) (int, string, error) {
	if err := s.requireLoginFree(req.Login); err != nil {
		return 0, "", err
	}
	if err := s.requireEmailFree(req.Email); err != nil {
		return 0, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, "", apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}

	user := &models.User{
		FullName: req.FullName,
		Login:    req.Login,
		Email:    req.Email,
		Password: string(hash),
	}
	if err := s.users.Create(user); err != nil {
		return 0, "", apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}

	token, err := s.tokens.IssueAccessToken(user.ID)
	if err != nil {
		return 0, "", apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}

	s.log.Info("user registered", zap.Int("user_id", user.ID))
	return user.ID, token, nil
}

// Login verifies credentials and returns the user id with a signed access
// token.
func (s *UserService) Login(req models.LoginRequest) (int, string, error) {
	user, err := s.users.ByLogin(req.Login)
	if err != nil {
		return 0, "", apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	if user == nil {
		return 0, "", apperr.New(apperr.KindUnauthenticated, "Unauthorized")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return 0, "", apperr.New(apperr.KindUnauthenticated, "Unauthorized")
	}

	token, err := s.tokens.IssueAccessToken(user.ID)
	if err != nil {
		return 0, "", apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	return user.ID, token, nil
}

// Logout revokes the presented access token for the rest of its lifetime.
func (s *UserService) Logout(token string) {
	s.blacklist.Revoke(token)
}

// Get returns a user's public profile.
func (s *UserService) Get(userID int) (*models.User, error) {
	user, err := s.users.ByID(userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	if user == nil {
		return nil, apperr.New(apperr.KindNotFound, "User not found")
	}
	return user, nil
}

// Edit applies a partial profile update with the same falsy-as-absent
// semantics as post edits. Returns the change-set of fields that actually
// changed; password changes are reported without the stored hash.
func (s *UserService) Edit(userID int, req models.EditUserRequest) (map[string]any, error) {
	if req.FullName == "" && req.Login == "" && req.Email == "" && req.Password == "" {
		return nil, apperr.New(apperr.KindValidation, "Validation error")
	}

	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	if req.FullName != "" && req.FullName != user.FullName {
		user.FullName = req.FullName
		changes["full_name"] = req.FullName
	}
	if req.Login != "" && req.Login != user.Login {
		if err := s.requireLoginFree(req.Login); err != nil {
			return nil, err
		}
		user.Login = req.Login
		changes["login"] = req.Login
	}
	if req.Email != "" && req.Email != user.Email {
		if err := s.requireEmailFree(req.Email); err != nil {
			return nil, err
		}
		user.Email = req.Email
		changes["email"] = req.Email
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "Internal server error", err)
		}
		user.Password = string(hash)
		changes["password"] = true
	}
	if len(changes) == 0 {
		return changes, nil
	}

	if err := s.users.Update(user); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	changes["updated_at"] = user.UpdatedAt

	return changes, nil
}

// ForgotPassword issues a reset token for the account behind the email.
func (s *UserService) ForgotPassword(email string) (string, error) {
	user, err := s.users.ByEmail(email)
	if err != nil {
		return "", apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	if user == nil {
		return "", apperr.New(apperr.KindNotFound, "User not found")
	}

	token, err := s.tokens.IssueResetToken(user.ID)
	if err != nil {
		return "", apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	return token, nil
}

// ResetPassword validates the reset token against the email and replaces
// the password. Any verification failure is reported as a failed reset.
func (s *UserService) ResetPassword(req models.ResetPasswordRequest) error {
	userID, err := s.tokens.ParseResetToken(req.Token)
	if err != nil {
		return apperr.New(apperr.KindNotFound, "Reset password failed")
	}

	user, err := s.users.ByID(userID)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	if user == nil || user.Email != req.Email {
		return apperr.New(apperr.KindNotFound, "Reset password failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	user.Password = string(hash)

	if err := s.users.Update(user); err != nil {
		return apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}

	s.log.Info("password reset", zap.Int("user_id", user.ID))
	return nil
}

func (s *UserService) requireLoginFree(login string) error {
	existing, err := s.users.ByLogin(login)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	if existing != nil {
		return apperr.New(apperr.KindValidation, "Validation error")
	}
	return nil
}

func (s *UserService) requireEmailFree(email string) error {
	existing, err := s.users.ByEmail(email)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "Internal server error", err)
	}
	if existing != nil {
		return apperr.New(apperr.KindValidation, "Validation error")
	}
	return nil
}
