package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"furnish-shop/models"
	"furnish-shop/repositories"
	"furnish-shop/storage"
	"furnish-shop/utils"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthProvider decides whether a login or registration succeeds and
// supplies the resulting user record. The mock variant always succeeds
// after a simulated delay; the postgres variant checks real
// credentials.
type AuthProvider interface {
	SignIn(ctx context.Context, email, password string) (*models.User, error)
	SignUp(ctx context.Context, req models.RegisterRequest) (*models.User, error)
}

type MockAuthProvider struct {
	delay time.Duration
}

func NewMockAuthProvider(delay time.Duration) *MockAuthProvider {
	return &MockAuthProvider{delay: delay}
}

// SignIn ignores the credentials and returns the demo record.
func (m *MockAuthProvider) SignIn(ctx context.Context, _, _ string) (*models.User, error) {
	if err := sleepCtx(ctx, m.delay); err != nil {
		return nil, err
	}
	return DemoUser(), nil
}

// SignUp builds a fresh user with a generated id and empty address and
// order collections.
func (m *MockAuthProvider) SignUp(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if err := sleepCtx(ctx, m.delay); err != nil {
		return nil, err
	}
	return &models.User{
		ID:        uuid.NewString(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Addresses: []models.Address{},
		Orders:    []models.Order{},
	}, nil
}

// PostgresAuthProvider verifies credentials against the users table.
type PostgresAuthProvider struct {
	repo *repositories.UserRepository
}

func NewPostgresAuthProvider() *PostgresAuthProvider {
	return &PostgresAuthProvider{repo: repositories.NewUserRepository()}
}

func (p *PostgresAuthProvider) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	user, err := p.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := utils.VerifyPassword(user.Password, password)
	if err != nil || !ok {
		return nil, ErrInvalidCredentials
	}

	user.Password = ""
	if user.Addresses == nil {
		user.Addresses = []models.Address{}
	}
	if user.Orders == nil {
		user.Orders = []models.Order{}
	}
	return user, nil
}

func (p *PostgresAuthProvider) SignUp(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if existing, _ := p.repo.FindByEmail(ctx, req.Email); existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        uuid.NewString(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  hash,
		Addresses: []models.Address{},
		Orders:    []models.Order{},
	}
	if err := p.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	user.Password = ""
	return user, nil
}

// AuthState is the per-session authentication state machine:
// Unknown -> Checking -> {Authenticated, Unauthenticated}, flipping on
// login/register/logout.
type AuthState int

const (
	StateUnknown AuthState = iota
	StateChecking
	StateAuthenticated
	StateUnauthenticated
)

func (s AuthState) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// AuthService derives the authenticated flag from the user store and
// the persisted token marker. The token marker is the single persisted
// authentication signal: a present user re-issues it on load, and in
// every other case state is inferred strictly from marker validity.
type AuthService struct {
	mu    sync.Mutex
	users *UserService
	store storage.Store
	state AuthState
}

func NewAuthService(users *UserService, store storage.Store) *AuthService {
	return &AuthService{users: users, store: store, state: StateUnknown}
}

// CheckAuth resolves the initial state on load.
func (s *AuthService) CheckAuth(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateChecking

	if user := s.users.User(); user != nil {
		token, err := utils.GenerateToken(user.ID, user.Email)
		if err != nil {
			s.state = StateUnauthenticated
			return err
		}
		if err := s.store.Set(ctx, storage.KeyToken, []byte(token)); err != nil {
			s.state = StateUnauthenticated
			return err
		}
		s.state = StateAuthenticated
		return nil
	}

	data, err := s.store.Get(ctx, storage.KeyToken)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.state = StateUnauthenticated
			return nil
		}
		s.state = StateUnauthenticated
		return err
	}

	if _, err := utils.ValidateToken(string(data)); err != nil {
		// Stale or tampered marker; drop it.
		_ = s.store.Delete(ctx, storage.KeyToken)
		s.state = StateUnauthenticated
		return nil
	}
	s.state = StateAuthenticated
	return nil
}

// Login calls through to the user store and writes the token marker on
// success.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.Login(ctx, email, password)
	if err != nil {
		return "", nil, err
	}
	token, err := s.markAuthenticated(ctx, user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Register calls through to the user store and writes the token marker
// on success.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (string, *models.User, error) {
	user, err := s.users.Register(ctx, req)
	if err != nil {
		return "", nil, err
	}
	token, err := s.markAuthenticated(ctx, user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout calls through to the user store and erases the token marker.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.users.Logout(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateUnauthenticated
	return s.store.Delete(ctx, storage.KeyToken)
}

func (s *AuthService) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateAuthenticated
}

func (s *AuthService) State() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *AuthService) markAuthenticated(ctx context.Context, user *models.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", err
	}
	if err := s.store.Set(ctx, storage.KeyToken, []byte(token)); err != nil {
		return "", err
	}
	s.state = StateAuthenticated
	return token, nil
}
