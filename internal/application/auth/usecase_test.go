package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Marcos6585/Sistema-de-estoque/internal/application/dto"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/entity"
	"github.com/Marcos6585/Sistema-de-estoque/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User // por nome
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.Name] = u; return nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByName(name string) (*entity.User, error) {
	u, ok := r.users[name]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) Count() (int, error)           { return len(r.users), nil }
func (r *fakeUserRepo) Delete(id string) error        { return nil }

func newTestUseCase(t *testing.T) *UseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3nh4"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"maria": {ID: "u1", Name: "maria", PasswordHash: string(hash), Role: entity.RoleAdministrador},
	}}
	return NewUseCase(repo, JWTConfig{Secret: "segredo-de-teste", ExpMinutes: 60, Issuer: "estoque-test"})
}

func TestAuthenticate_CredenciaisValidas(t *testing.T) {
	uc := newTestUseCase(t)

	user, err := uc.Authenticate("maria", "s3nh4")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, entity.RoleAdministrador, user.Role)
}

// Nome desconhecido e senha errada devolvem exatamente o mesmo erro:
// a resposta não pode revelar quais usuários existem.
func TestAuthenticate_ErroUniforme(t *testing.T) {
	uc := newTestUseCase(t)

	_, errUnknown := uc.Authenticate("ninguem", "s3nh4")
	_, errWrongPw := uc.Authenticate("maria", "errada")

	assert.ErrorIs(t, errUnknown, domain.ErrUnauthorized)
	assert.ErrorIs(t, errWrongPw, domain.ErrUnauthorized)
	assert.Equal(t, errUnknown, errWrongPw)
}

func TestAuthenticate_EntradaVazia(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.Authenticate("", "s3nh4")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Authenticate("maria", "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmiteTokenComClaims(t *testing.T) {
	uc := newTestUseCase(t)

	resp, err := uc.Login(dto.LoginRequest{Name: "maria", Password: "s3nh4"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "maria", resp.User.Name)

	userID, userName, role, err := jwt.Parse("segredo-de-teste", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, "maria", userName)
	assert.Equal(t, entity.RoleAdministrador, role)
}

func TestLogin_CredenciaisInvalidas(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Name: "maria", Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
