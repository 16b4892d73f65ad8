package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/almacen-wms/internal/application/auth"
	"github.com/tu-usuario/almacen-wms/internal/application/dto"
	"github.com/tu-usuario/almacen-wms/internal/domain"
	"github.com/tu-usuario/almacen-wms/internal/domain/entity"
	"github.com/tu-usuario/almacen-wms/pkg/jwt"
)

type memUserRepo struct{ byUsername map[string]*entity.User }

func newMemUserRepo() *memUserRepo { return &memUserRepo{byUsername: map[string]*entity.User{}} }

func (r *memUserRepo) Create(u *entity.User) error {
	c := *u
	r.byUsername[u.Username] = &c
	return nil
}
func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byUsername {
		if u.ID == id {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	if u, ok := r.byUsername[username]; ok {
		c := *u
		return &c, nil
	}
	return nil, nil
}
func (r *memUserRepo) Update(u *entity.User) error { c := *u; r.byUsername[u.Username] = &c; return nil }
func (r *memUserRepo) List(limit, offset int) ([]*entity.User, error) { return nil, nil }

var cfg = auth.JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "almacen-wms"}

func TestRegisterUser_HasheaYNormaliza(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, cfg)

	out, err := uc.RegisterUser(dto.RegisterRequest{Username: "  Ana ", Password: "sup3rsecreta"})
	require.NoError(t, err)
	assert.Equal(t, "ana", out.Username, "username se normaliza a minúsculas")
	assert.Equal(t, entity.RoleBodeguero, out.Role, "rol por defecto")

	stored := repo.byUsername["ana"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "sup3rsecreta", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("sup3rsecreta")))
}

func TestRegisterUser_UsernameDuplicado(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, cfg)
	_, err := uc.RegisterUser(dto.RegisterRequest{Username: "ana", Password: "sup3rsecreta"})
	require.NoError(t, err)
	_, err = uc.RegisterUser(dto.RegisterRequest{Username: "ANA", Password: "otraclave123"})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
}

func TestRegisterUser_RolInvalido(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), cfg)
	_, err := uc.RegisterUser(dto.RegisterRequest{Username: "ana", Password: "sup3rsecreta", Role: "gerente"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_EmiteTokenConClaims(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, cfg)
	_, err := uc.RegisterUser(dto.RegisterRequest{Username: "ana", Password: "sup3rsecreta", Role: entity.RoleAdmin})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "ana", Password: "sup3rsecreta"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, role, err := jwt.Parse(cfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, cfg)
	_, err := uc.RegisterUser(dto.RegisterRequest{Username: "ana", Password: "sup3rsecreta"})
	require.NoError(t, err)
	_, err = uc.Login(dto.LoginRequest{Username: "ana", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, cfg)
	_, err := uc.RegisterUser(dto.RegisterRequest{Username: "ana", Password: "sup3rsecreta"})
	require.NoError(t, err)
	repo.byUsername["ana"].IsActive = false
	_, err = uc.Login(dto.LoginRequest{Username: "ana", Password: "sup3rsecreta"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemUserRepo(), cfg)
	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
