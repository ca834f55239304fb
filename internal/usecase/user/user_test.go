package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/incluiaqui/incluiaqui-api/internal/audit"
	domain "github.com/incluiaqui/incluiaqui-api/internal/domain/user"
	"github.com/incluiaqui/incluiaqui-api/internal/httperr"
	"github.com/incluiaqui/incluiaqui-api/internal/models"
	uc "github.com/incluiaqui/incluiaqui-api/internal/usecase/user"
)

// fakeUserRepo is an in-memory domain.Repository.
type fakeUserRepo struct {
	byID map[string]*models.User

	deleted []string
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	f := &fakeUserRepo{byID: map[string]*models.User{}}
	for _, u := range users {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, httperr.NotFound("user_not_found", "Usuário não encontrado.")
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *models.User) error {
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeUserRepo) List(_ context.Context, filter domain.ListFilter, _, _ int) ([]models.User, int64, error) {
	var items []models.User
	for _, u := range f.byID {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.Status != "" && u.Status != filter.Status {
			continue
		}
		items = append(items, *u)
	}
	return items, int64(len(items)), nil
}

var _ domain.Repository = (*fakeUserRepo)(nil)

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func activeUser(id string) *models.User {
	return &models.User{
		ID:     id,
		Name:   "Ana Souza",
		Email:  id + "@example.com",
		Role:   models.RoleUser,
		Status: models.StatusActive,
	}
}

// --------- UpdateProfile ---------

func TestUpdateProfile_ChangesNameOnly(t *testing.T) {
	avatar := "https://cdn.example.com/ana.png"
	u := activeUser("u1")
	u.AvatarURL = &avatar
	repo := newFakeUserRepo(u)

	update := uc.NewUpdateProfile(repo, testDispatcher())

	name := "  Ana Clara Souza "
	got, err := update.Execute(context.Background(), "u1", uc.UpdateProfileInput{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Ana Clara Souza", got.Name)
	require.NotNil(t, got.AvatarURL)
	assert.Equal(t, avatar, *got.AvatarURL)
}

func TestUpdateProfile_EmptyAvatarClearsIt(t *testing.T) {
	avatar := "https://cdn.example.com/ana.png"
	u := activeUser("u1")
	u.AvatarURL = &avatar
	repo := newFakeUserRepo(u)

	update := uc.NewUpdateProfile(repo, testDispatcher())

	empty := ""
	got, err := update.Execute(context.Background(), "u1", uc.UpdateProfileInput{AvatarURL: &empty})

	require.NoError(t, err)
	assert.Nil(t, got.AvatarURL)
	assert.Equal(t, "Ana Souza", got.Name)
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	update := uc.NewUpdateProfile(newFakeUserRepo(), testDispatcher())

	_, err := update.Execute(context.Background(), "ghost", uc.UpdateProfileInput{})

	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

// --------- ChangePassword ---------

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	u := activeUser("u1")
	u.PasswordHash = hashOf(t, "correta123")
	repo := newFakeUserRepo(u)

	change := uc.NewChangePassword(repo, testDispatcher())

	err := change.Execute(context.Background(), "u1", "errada999", "novasenha1")

	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	assert.True(t, httperr.IsCode(err, "incorrect_current_password"))
}

func TestChangePassword_RehashesNewPassword(t *testing.T) {
	u := activeUser("u1")
	u.PasswordHash = hashOf(t, "correta123")
	repo := newFakeUserRepo(u)

	change := uc.NewChangePassword(repo, testDispatcher())

	err := change.Execute(context.Background(), "u1", "correta123", "novasenha1")
	require.NoError(t, err)

	stored := repo.byID["u1"]
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte("novasenha1")))
	assert.Error(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte("correta123")))
}

// --------- Administration ---------

func TestAdminUpdateUser_ChangesRoleAndStatus(t *testing.T) {
	repo := newFakeUserRepo(activeUser("u1"))

	update := uc.NewAdminUpdateUser(repo, testDispatcher())

	role := models.RoleOwner
	status := models.StatusBanned
	got, err := update.Execute(context.Background(), "admin-1", "u1",
		uc.AdminUpdateUserInput{Role: &role, Status: &status})

	require.NoError(t, err)
	assert.Equal(t, models.RoleOwner, got.Role)
	assert.Equal(t, models.StatusBanned, got.Status)
}

func TestAdminUpdateUser_UnknownTarget(t *testing.T) {
	update := uc.NewAdminUpdateUser(newFakeUserRepo(), testDispatcher())

	_, err := update.Execute(context.Background(), "admin-1", "ghost", uc.AdminUpdateUserInput{})

	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestDeleteUser_RemovesAccount(t *testing.T) {
	repo := newFakeUserRepo(activeUser("u1"))

	del := uc.NewDeleteUser(repo, testDispatcher())

	require.NoError(t, del.Execute(context.Background(), "admin-1", "u1"))
	assert.Equal(t, []string{"u1"}, repo.deleted)
}

func TestDeleteUser_UnknownTarget(t *testing.T) {
	del := uc.NewDeleteUser(newFakeUserRepo(), testDispatcher())

	err := del.Execute(context.Background(), "admin-1", "ghost")

	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestListUsers_EmptyPageIsNotNil(t *testing.T) {
	list := uc.NewListUsers(newFakeUserRepo())

	result, err := list.Execute(context.Background(), domain.ListFilter{}, 1, 10)

	require.NoError(t, err)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
}

func TestListUsers_FiltersByRole(t *testing.T) {
	owner := activeUser("u2")
	owner.Role = models.RoleOwner
	repo := newFakeUserRepo(activeUser("u1"), owner)

	list := uc.NewListUsers(repo)

	result, err := list.Execute(context.Background(), domain.ListFilter{Role: models.RoleOwner}, 1, 10)

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "u2", result.Items[0].ID)
}
