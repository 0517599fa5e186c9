package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Marcos6585/Sistema-de-estoque/internal/domain"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/entity"
)

type fakeUserRepo struct {
	byID map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{byID: make(map[string]*entity.User)}
	for _, u := range users {
		r.byID[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.byID {
		if existing.Name == u.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByName(name string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Name == name {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeUserRepo) Count() (int, error) { return len(r.byID), nil }

func (r *fakeUserRepo) Delete(id string) error { delete(r.byID, id); return nil }

func TestUserCreate_HasheiaSenhaComBcrypt(t *testing.T) {
	uc := NewUserUseCase(newFakeUserRepo())

	user, err := uc.Create("maria", "s3nh4", entity.RoleFuncionario)
	require.NoError(t, err)
	assert.NotEqual(t, "s3nh4", user.PasswordHash, "a senha nunca é armazenada em claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3nh4")))
}

func TestUserCreate_ValidaEntrada(t *testing.T) {
	uc := NewUserUseCase(newFakeUserRepo())

	_, err := uc.Create("", "senha", entity.RoleFuncionario)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create("maria", "", entity.RoleFuncionario)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create("maria", "senha", "gerente")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "papel fora do conjunto válido")
}

func TestUserCreate_NomeDuplicado(t *testing.T) {
	uc := NewUserUseCase(newFakeUserRepo())

	_, err := uc.Create("maria", "senha", entity.RoleFuncionario)
	require.NoError(t, err)

	_, err = uc.Create("maria", "outra", entity.RoleAdministrador)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUserDelete_NaoRemoveASiMesmo(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{ID: "u1", Name: "maria", Role: entity.RoleAdministrador})
	uc := NewUserUseCase(repo)

	err := uc.Delete("u1", "u1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Contains(t, repo.byID, "u1")
}

func TestUserDelete_NaoRemoveAdminPadrao(t *testing.T) {
	repo := newFakeUserRepo(
		&entity.User{ID: "u1", Name: entity.DefaultAdminName, Role: entity.RoleAdministrador},
		&entity.User{ID: "u2", Name: "maria", Role: entity.RoleAdministrador},
	)
	uc := NewUserUseCase(repo)

	err := uc.Delete("u1", "u2")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Contains(t, repo.byID, "u1")
}

func TestUserDelete_DesconhecidoEhNoOp(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{ID: "u1", Name: "maria", Role: entity.RoleAdministrador})
	uc := NewUserUseCase(repo)

	assert.NoError(t, uc.Delete("fantasma", "u1"))
	assert.ErrorIs(t, uc.Delete("", "u1"), domain.ErrInvalidInput)
}

func TestUserDelete_RemoveFuncionario(t *testing.T) {
	repo := newFakeUserRepo(
		&entity.User{ID: "u1", Name: "admin2", Role: entity.RoleAdministrador},
		&entity.User{ID: "u2", Name: "joão", Role: entity.RoleFuncionario},
	)
	uc := NewUserUseCase(repo)

	require.NoError(t, uc.Delete("u2", "u1"))
	assert.NotContains(t, repo.byID, "u2")
}
