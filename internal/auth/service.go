package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/staffdesk/staffdesk/internal/rbac"
	"github.com/staffdesk/staffdesk/internal/shared"
	"github.com/staffdesk/staffdesk/internal/token"
)

// TokenIssuer mints a session token for a verified login.
type TokenIssuer interface {
	Issue(subjectID int64, role string) (string, error)
}

// Service wraps authentication business rules.
type Service struct {
	repo       Repository
	tokens     TokenIssuer
	bcryptCost int
}

// NewService constructs a Service. A cost of zero falls back to bcrypt's
// default.
func NewService(repo Repository, tokens TokenIssuer, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{repo: repo, tokens: tokens, bcryptCost: bcryptCost}
}

// SignUp hashes the password and creates the account with the named role.
func (s *Service) SignUp(ctx context.Context, username, password, role string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return err
	}
	return s.repo.CreateUser(ctx, username, string(hash), role)
}

// LogIn validates credentials and issues a session token. The role's
// permission document is returned alongside so clients can render without
// a second round trip.
func (s *Service) LogIn(ctx context.Context, username, password string) (string, rbac.PermissionSet, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, shared.Errorf(shared.ErrInvalidCredentials, "Invalid Credentials")
	}
	signed, err := s.tokens.Issue(user.ID, user.RoleName)
	if err != nil {
		return "", nil, err
	}
	return signed, user.Permissions, nil
}

// ListUsernames returns every account's username.
func (s *Service) ListUsernames(ctx context.Context) ([]string, error) {
	return s.repo.ListUsernames(ctx)
}

var _ TokenIssuer = (*token.Service)(nil)
