package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"furnish-shop/models"
	"furnish-shop/storage"

	"github.com/google/uuid"
)

// UserService owns the current user profile, its address collection and
// the read-only order history. Mutations with no loaded user are silent
// no-ops so unauthenticated views never crash the flow. Every mutation
// re-serializes the whole user object to the store.
type UserService struct {
	mu    sync.Mutex
	store storage.Store
	auth  AuthProvider
	user  *models.User
}

func NewUserService(store storage.Store, auth AuthProvider) *UserService {
	return &UserService{store: store, auth: auth}
}

// Load reads the persisted user, seeding the fixed demo record when the
// key is absent or the blob is unreadable.
func (s *UserService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.store.Get(ctx, storage.KeyUser)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.user = DemoUser()
			return s.persist(ctx)
		}
		return err
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		log.Printf("Failed to parse saved user, seeding demo record: %v", err)
		s.user = DemoUser()
		return s.persist(ctx)
	}
	s.user = &user
	return nil
}

// User returns a detached copy of the current user, or nil when logged
// out.
func (s *UserService) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Clone()
}

// Login asks the auth provider to sign the credentials in and replaces
// the current user with the returned record.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.auth.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return s.user.Clone(), nil
}

// Register asks the auth provider to create an account and loads the
// new user into the store.
func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	user, err := s.auth.SignUp(ctx, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return s.user.Clone(), nil
}

// Logout clears the in-memory user and deletes the persisted entry.
func (s *UserService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return s.store.Delete(ctx, storage.KeyUser)
}

// UpdateUser shallow-merges the supplied fields into the current user.
func (s *UserService) UpdateUser(ctx context.Context, req models.UpdateProfileRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}

	if req.FirstName != "" {
		s.user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		s.user.LastName = req.LastName
	}
	if req.Email != "" {
		s.user.Email = req.Email
	}
	if req.Phone != "" {
		s.user.Phone = req.Phone
	}
	if req.Avatar != "" {
		s.user.Avatar = req.Avatar
	}
	return s.persist(ctx)
}

// AddAddress appends a new address with a generated id. The first
// address in the collection always becomes the default; an explicitly
// default address clears the flag on all others.
func (s *UserService) AddAddress(ctx context.Context, req models.AddressRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}

	addr := models.Address{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Country:   req.Country,
		IsDefault: req.IsDefault,
	}

	if addr.IsDefault {
		for i := range s.user.Addresses {
			s.user.Addresses[i].IsDefault = false
		}
	}
	s.user.Addresses = append(s.user.Addresses, addr)
	s.ensureDefaultAddress()
	return s.persist(ctx)
}

// UpdateAddress replaces the fields of the matching entry, preserving
// its id. An unknown id leaves the collection unchanged.
func (s *UserService) UpdateAddress(ctx context.Context, id string, req models.AddressRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}

	found := false
	for i := range s.user.Addresses {
		if s.user.Addresses[i].ID == id {
			s.user.Addresses[i] = models.Address{
				ID:        id,
				Name:      req.Name,
				Street:    req.Street,
				City:      req.City,
				State:     req.State,
				ZipCode:   req.ZipCode,
				Country:   req.Country,
				IsDefault: req.IsDefault,
			}
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	if req.IsDefault {
		for i := range s.user.Addresses {
			if s.user.Addresses[i].ID != id {
				s.user.Addresses[i].IsDefault = false
			}
		}
	}
	s.ensureDefaultAddress()
	return s.persist(ctx)
}

// RemoveAddress deletes the matching entry. Removing the default
// promotes the first remaining address.
func (s *UserService) RemoveAddress(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}

	kept := s.user.Addresses[:0]
	for _, addr := range s.user.Addresses {
		if addr.ID != id {
			kept = append(kept, addr)
		}
	}
	s.user.Addresses = kept
	s.ensureDefaultAddress()
	return s.persist(ctx)
}

// Orders returns the read-only order history.
func (s *UserService) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	return append([]models.Order(nil), s.user.Orders...)
}

// ensureDefaultAddress restores the single-default invariant: a
// non-empty collection holds exactly one default address. Callers must
// hold the lock.
func (s *UserService) ensureDefaultAddress() {
	addrs := s.user.Addresses
	if len(addrs) == 0 {
		return
	}
	defaultIdx := -1
	for i := range addrs {
		if addrs[i].IsDefault {
			if defaultIdx == -1 {
				defaultIdx = i
			} else {
				addrs[i].IsDefault = false
			}
		}
	}
	if defaultIdx == -1 {
		addrs[0].IsDefault = true
	}
}

func (s *UserService) persist(ctx context.Context) error {
	if s.user == nil {
		return s.store.Delete(ctx, storage.KeyUser)
	}
	data, err := json.Marshal(s.user)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, storage.KeyUser, data)
}
