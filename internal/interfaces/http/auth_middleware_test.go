package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/print3d-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/print3d-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testEmail     = "ana@taller.com"
	testAudience  = "authenticated"
)

func testVerifier(t *testing.T) *pkgjwt.Verifier {
	t.Helper()
	v, err := pkgjwt.NewVerifier(testJWTSecret, testAudience, "")
	require.NoError(t, err)
	return v
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(t *testing.T, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testVerifier(t)),
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

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, role, testAudience, time.Hour)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

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

func TestRequireRole_RolPermitidoAccede(t *testing.T) {
	app := buildTestApp(t, "authenticated", "service_role")
	resp := doRequest(t, app, tokenForRole(t, "authenticated"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "authenticated", body["role"])
}

func TestRequireRole_RolNoPermitido_Retorna403(t *testing.T) {
	app := buildTestApp(t, "service_role")
	resp := doRequest(t, app, tokenForRole(t, "anon"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireRole_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp(t, "authenticated")
	resp := doRequest(t, app, tokenForRole(t, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

func TestRequireRole_SinRolesNoRestringe(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, tokenForRole(t, ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	resp := doRequest(t, buildTestApp(t), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	for _, h := range []string{"Bearer token.invalido.aqui", "Basic abc", "Bearer   "} {
		resp := doRequest(t, buildTestApp(t), h)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, h)
		resp.Body.Close()
	}
}

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testVerifier(t)), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"email":   apphttp.GetEmail(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "authenticated"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testEmail, body["email"])
	assert.Equal(t, "authenticated", body["role"])
}
