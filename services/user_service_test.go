package services

import (
	"context"
	"testing"

	"furnish-shop/models"
	"furnish-shop/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUsers(t *testing.T) (*UserService, storage.Store) {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	users := NewUserService(store, NewMockAuthProvider(0))
	require.NoError(t, users.Load(context.Background()))
	return users, store
}

func defaultCount(addrs []models.Address) int {
	n := 0
	for _, a := range addrs {
		if a.IsDefault {
			n++
		}
	}
	return n
}

func TestLoadSeedsDemoUser(t *testing.T) {
	users, _ := newTestUsers(t)

	user := users.User()
	require.NotNil(t, user)
	assert.Equal(t, "John", user.FirstName)
	assert.Equal(t, "Doe", user.LastName)
	assert.Len(t, user.Addresses, 2)
	assert.Len(t, user.Orders, 3)
	assert.Equal(t, 1, defaultCount(user.Addresses))
}

func TestLoadCorruptUserSeedsDemoUser(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, storage.KeyUser, []byte("{broken")))

	users := NewUserService(store, NewMockAuthProvider(0))
	require.NoError(t, users.Load(ctx))

	user := users.User()
	require.NotNil(t, user)
	assert.Equal(t, "john.doe@example.com", user.Email)
}

func TestUserRoundTrip(t *testing.T) {
	users, store := newTestUsers(t)
	ctx := context.Background()

	require.NoError(t, users.UpdateUser(ctx, models.UpdateProfileRequest{FirstName: "Jane"}))

	reloaded := NewUserService(store, NewMockAuthProvider(0))
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, "Jane", reloaded.User().FirstName)
}

func TestUpdateUserMergesNonEmptyFields(t *testing.T) {
	users, _ := newTestUsers(t)
	ctx := context.Background()

	require.NoError(t, users.UpdateUser(ctx, models.UpdateProfileRequest{Phone: "+1 555 0000"}))

	user := users.User()
	assert.Equal(t, "+1 555 0000", user.Phone)
	assert.Equal(t, "John", user.FirstName)
	assert.Equal(t, "john.doe@example.com", user.Email)
}

func TestMutationsAfterLogoutAreSilentNoOps(t *testing.T) {
	users, store := newTestUsers(t)
	ctx := context.Background()
	require.NoError(t, users.Logout(ctx))

	require.NoError(t, users.UpdateUser(ctx, models.UpdateProfileRequest{FirstName: "Ghost"}))
	require.NoError(t, users.AddAddress(ctx, models.AddressRequest{Name: "Nowhere"}))
	require.NoError(t, users.UpdateAddress(ctx, "any", models.AddressRequest{}))
	require.NoError(t, users.RemoveAddress(ctx, "any"))

	assert.Nil(t, users.User())
	assert.Nil(t, users.Orders())
	_, err := store.Get(ctx, storage.KeyUser)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestLoginReplacesUserWithDemoRecord(t *testing.T) {
	users, _ := newTestUsers(t)
	ctx := context.Background()
	require.NoError(t, users.Logout(ctx))

	user, err := users.Login(ctx, "whoever@example.com", "whatever")
	require.NoError(t, err)
	assert.Equal(t, "John", user.FirstName)
	assert.NotNil(t, users.User())
}

func TestRegisterCreatesFreshUser(t *testing.T) {
	users, _ := newTestUsers(t)
	ctx := context.Background()

	user, err := users.Register(ctx, models.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Empty(t, user.Addresses)
	assert.Empty(t, user.Orders)

	current := users.User()
	assert.Equal(t, user.ID, current.ID)
}

func TestAddAddressFirstBecomesDefault(t *testing.T) {
	users, _ := newTestUsers(t)
	ctx := context.Background()
	require.NoError(t, users.Logout(ctx))
	_, err := users.Register(ctx, models.RegisterRequest{Email: "a@example.com"})
	require.NoError(t, err)

	// Explicitly not default: the invariant still promotes it.
	require.NoError(t, users.AddAddress(ctx, models.AddressRequest{Name: "Home", IsDefault: false}))

	addrs := users.User().Addresses
	require.Len(t, addrs, 1)
	assert.True(t, addrs[0].IsDefault)
	assert.NotEmpty(t, addrs[0].ID)
}

func TestAddDefaultAddressDemotesOthers(t *testing.T) {
	users, _ := newTestUsers(t)
	ctx := context.Background()

	require.NoError(t, users.AddAddress(ctx, models.AddressRequest{Name: "Cabin", IsDefault: true}))

	addrs := users.User().Addresses
	require.Len(t, addrs, 3)
	assert.Equal(t, 1, defaultCount(addrs))
	assert.True(t, addrs[2].IsDefault)
}

func TestUpdateAddressPreservesIDAndInvariant(t *testing.T) {
	users, _ := newTestUsers(t)
	ctx := context.Background()

	addrs := users.User().Addresses
	workID := addrs[1].ID

	require.NoError(t, users.UpdateAddress(ctx, workID, models.AddressRequest{
		Name:      "New Office",
		Street:    "789 Commerce Blvd",
		City:      "New York",
		State:     "NY",
		ZipCode:   "10002",
		Country:   "United States",
		IsDefault: true,
	}))

	addrs = users.User().Addresses
	require.Len(t, addrs, 2)
	assert.Equal(t, workID, addrs[1].ID)
	assert.Equal(t, "New Office", addrs[1].Name)
	assert.True(t, addrs[1].IsDefault)
	assert.False(t, addrs[0].IsDefault)
	assert.Equal(t, 1, defaultCount(addrs))
}

func TestUpdateAddressUnknownIDIsNoOp(t *testing.T) {
	users, _ := newTestUsers(t)
	ctx := context.Background()

	before := users.User().Addresses
	require.NoError(t, users.UpdateAddress(ctx, "no-such-id", models.AddressRequest{Name: "Phantom"}))
	assert.Equal(t, before, users.User().Addresses)
}

func TestRemoveDefaultAddressPromotesFirstRemaining(t *testing.T) {
	users, _ := newTestUsers(t)
	ctx := context.Background()

	addrs := users.User().Addresses
	require.True(t, addrs[0].IsDefault)

	require.NoError(t, users.RemoveAddress(ctx, addrs[0].ID))

	addrs = users.User().Addresses
	require.Len(t, addrs, 1)
	assert.True(t, addrs[0].IsDefault)
}

func TestRemoveLastAddressLeavesEmptyCollection(t *testing.T) {
	users, _ := newTestUsers(t)
	ctx := context.Background()

	for _, addr := range users.User().Addresses {
		require.NoError(t, users.RemoveAddress(ctx, addr.ID))
	}
	assert.Empty(t, users.User().Addresses)
}

func TestOrdersAreReadOnlyCopies(t *testing.T) {
	users, _ := newTestUsers(t)

	orders := users.Orders()
	require.Len(t, orders, 3)
	orders[0].Status = models.OrderCancelled

	assert.Equal(t, models.OrderDelivered, users.Orders()[0].Status)
}
