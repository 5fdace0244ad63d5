package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/task-tracker/internal/utils"
)

func runGuard(t *testing.T, codec *utils.TokenCodec, authHeader string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenSubject string
	h := BearerAuth(codec)(func(c echo.Context) error {
		seenSubject, _ = c.Get("user_id").(string)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, seenSubject
}

func TestBearerAuth_MissingHeader(t *testing.T) {
	t.Parallel()

	codec := utils.NewTokenCodec("secret", time.Hour)
	rec, _ := runGuard(t, codec, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "NO_TOKEN")
}

func TestBearerAuth_NotBearer(t *testing.T) {
	t.Parallel()

	codec := utils.NewTokenCodec("secret", time.Hour)
	rec, _ := runGuard(t, codec, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "NO_TOKEN")
}

func TestBearerAuth_Garbage(t *testing.T) {
	t.Parallel()

	codec := utils.NewTokenCodec("secret", time.Hour)
	rec, _ := runGuard(t, codec, "Bearer not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestBearerAuth_ExpiredButCorrectlySigned(t *testing.T) {
	t.Parallel()

	// Valid signature, expiration in the past: the guard must still reject.
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	codec := utils.NewTokenCodec("secret", time.Hour)
	rec, _ := runGuard(t, codec, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestBearerAuth_ValidTokenInjectsSubject(t *testing.T) {
	t.Parallel()

	codec := utils.NewTokenCodec("secret", time.Hour)
	tok, err := codec.Issue("user-42")
	require.NoError(t, err)

	rec, subject := runGuard(t, codec, "Bearer "+tok)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", subject)
}
