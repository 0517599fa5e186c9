package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/Marcos6585/Sistema-de-estoque/internal/interfaces/http"
	"github.com/Marcos6585/Sistema-de-estoque/internal/domain/entity"
	pkgjwt "github.com/Marcos6585/Sistema-de-estoque/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testUserName  = "maria"
	testIssuer    = "sistema-de-estoque-test"
	testExpMin    = 60
)

// buildTestApp monta uma app Fiber mínima com:
//   - AuthMiddleware para validar o JWT e carregar os locals
//   - RequireRole para autorizar o acesso
//   - Um handler dummy que devolve 200 se passar pelos middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole gera um JWT com o cargo indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUserName, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

// doRequest faz um GET /protected e devolve a resposta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAcessaRotaAdmin(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleAdministrador))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleAdministrador, body["role"])
}

func TestRequireRole_FuncionarioAcessaRotaMultiCargo(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador, entity.RoleFuncionario)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleFuncionario))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_FuncionarioBloqueadoEmRotaAdmin(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleFuncionario))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireRole_TokenSemCargo_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUserName, "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

func TestRequireRole_SemAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestRequireRole_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_SecretErrado_Retorna401(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador)
	tok, err := pkgjwt.Generate("outro-segredo", testUserID, testUserName, entity.RoleAdministrador, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extração das claims
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraiClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":   apphttp.GetUserID(c),
			"user_name": apphttp.GetUserName(c),
			"role":      apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleAdministrador))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testUserName, body["user_name"])
	assert.Equal(t, entity.RoleAdministrador, body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests pkg/jwt — integridade do generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUserName, entity.RoleFuncionario, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, userName, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testUserName, userName)
	assert.Equal(t, entity.RoleFuncionario, role)
}
