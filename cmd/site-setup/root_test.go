package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/mgfilms/site-service/internal/config"
	"github.com/mgfilms/site-service/internal/storage"
	"github.com/mgfilms/site-service/internal/types/admins"
	"github.com/mgfilms/site-service/internal/utils/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	tables  int
	admins  map[string]admins.Admin
	seoRows int
	closed  bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{admins: map[string]admins.Admin{}}
}

func (f *fakeStore) CreateTables(context.Context) error { f.tables++; return nil }

func (f *fakeStore) SeedAdmin(ctx context.Context, a config.Admin) (bool, error) {
	if len(f.admins) > 0 {
		return false, nil
	}
	_, err := f.CreateAdmin(ctx, a.Email, "hash", a.Name)
	return err == nil, err
}

func (f *fakeStore) SeedSEO(context.Context) (int, error) {
	if f.seoRows > 0 {
		return 0, nil
	}
	f.seoRows = 6
	return 6, nil
}

func (f *fakeStore) GetAdminByEmail(_ context.Context, email string) (admins.Admin, error) {
	a, ok := f.admins[email]
	if !ok {
		return admins.Admin{}, storage.ErrNotFound
	}
	return a, nil
}

func (f *fakeStore) CreateAdmin(_ context.Context, email, hash, name string) (int64, error) {
	id := int64(len(f.admins) + 1)
	f.admins[email] = admins.Admin{ID: id, Email: email, PasswordHash: hash, Name: name}
	return id, nil
}

func (f *fakeStore) Close() error { f.closed = true; return nil }

func run(t *testing.T, store *fakeStore, args ...string) (string, error) {
	t.Helper()
	t.Setenv("JWT_SECRET", "cli-secret")

	cmd := newRootCmd(func(context.Context, config.Database) (setupStore, error) { return store, nil })
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMigrate(t *testing.T) {
	store := newFakeStore()
	out, err := run(t, store, "migrate")
	require.NoError(t, err)
	assert.Equal(t, 1, store.tables)
	assert.True(t, store.closed)
	assert.Contains(t, out, "Tables ready.")
}

func TestSeedIsIdempotent(t *testing.T) {
	store := newFakeStore()

	out, err := run(t, store, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Default admin created: admin@mgfilms.com")
	assert.Contains(t, out, "SEO pages inserted: 6")

	out, err = run(t, store, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "Admins already exist")
	assert.Contains(t, out, "SEO pages inserted: 0")
}

func TestCreateAdmin(t *testing.T) {
	store := newFakeStore()

	out, err := run(t, store, "create-admin", "--email", "editor@mgfilms.com", "--password", "longenough", "--name", "Editor")
	require.NoError(t, err)
	assert.Contains(t, out, "created with id 1")

	a := store.admins["editor@mgfilms.com"]
	assert.Equal(t, "Editor", a.Name)
	assert.True(t, password.CheckPasswordHash("longenough", a.PasswordHash))

	_, err = run(t, store, "create-admin", "--email", "editor@mgfilms.com", "--password", "longenough")
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, store, "create-admin", "--email", "not-an-email", "--password", "longenough")
	assert.ErrorContains(t, err, "invalid admin")

	_, err = run(t, store, "create-admin", "--email", "x@mgfilms.com", "--password", "short")
	assert.ErrorContains(t, err, "invalid admin")
}

func TestResolveCommand(t *testing.T) {
	out, err := run(t, newFakeStore(), "resolve", "https://youtu.be/abc12345678")
	require.NoError(t, err)
	assert.Contains(t, out, `"kind": "youtube"`)
	assert.Contains(t, out, `"provider_id": "abc12345678"`)

	out, err = run(t, newFakeStore(), "resolve", "--type", "gdrive", "https://drive.google.com/open?id=XYZ")
	require.NoError(t, err)
	assert.Contains(t, out, `"provider_id": "XYZ"`)
}
