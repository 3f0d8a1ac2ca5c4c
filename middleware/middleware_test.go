package middleware

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Modeva-Ecommerce/product-filter-api/models"
	"github.com/Modeva-Ecommerce/product-filter-api/utils"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(handlers...)
	r.GET("/Filter", func(c *gin.Context) {
		name, _ := GetUsernameFromContext(c)
		c.JSON(http.StatusOK, models.SuccessResponse(c, "ok", name))
	})
	return r
}

func do(r http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/Filter", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func basic(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func decode(t *testing.T, w *httptest.ResponseRecorder) models.ApiResponse {
	t.Helper()
	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// ── auth ─────────────────────────────────────────────────────────────────────

func TestAuth_AnyNonEmptyBasicPair(t *testing.T) {
	r := newRouter(AuthMiddleware(AuthOptions{}, zerolog.Nop()))

	w := do(r, basic("alice", "pw:with:colons"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", decode(t, w).Data)
}

func TestAuth_Rejections(t *testing.T) {
	r := newRouter(AuthMiddleware(AuthOptions{}, zerolog.Nop()))

	for _, header := range []string{
		"",
		"Basic",
		"Basic !!!not-base64",
		"Basic " + base64.StdEncoding.EncodeToString([]byte("nocolon")),
		basic("", "pw"),
		basic("alice", ""),
		"Bearer whatever",
		"Digest abc",
	} {
		w := do(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
		assert.Equal(t, "Basic", w.Header().Get("WWW-Authenticate"), header)
		assert.True(t, decode(t, w).Error, header)
	}
}

func TestAuth_ConfiguredCredentials(t *testing.T) {
	hash, err := utils.HashPassword("s3cret")
	require.NoError(t, err)
	r := newRouter(AuthMiddleware(AuthOptions{Username: "admin", PasswordHash: hash}, zerolog.Nop()))

	assert.Equal(t, http.StatusOK, do(r, basic("admin", "s3cret")).Code)
	assert.Equal(t, http.StatusOK, do(r, "basic "+base64.StdEncoding.EncodeToString([]byte("admin:s3cret"))).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, basic("admin", "wrong")).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, basic("eve", "s3cret")).Code)
}

func TestAuth_BearerToken(t *testing.T) {
	r := newRouter(AuthMiddleware(AuthOptions{JWTSecret: "jwt-secret"}, zerolog.Nop()))

	token, err := utils.GenerateJWT("jwt-secret", "storefront", time.Hour)
	require.NoError(t, err)

	w := do(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "storefront", decode(t, w).Data)

	bad, err := utils.GenerateJWT("other-secret", "storefront", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, do(r, "Bearer "+bad).Code)
}

func TestAuth_BearerHeaderForms(t *testing.T) {
	r := newRouter(AuthMiddleware(AuthOptions{JWTSecret: "jwt-secret"}, zerolog.Nop()))

	token, err := utils.GenerateJWT("jwt-secret", "storefront", time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, do(r, "bearer "+token).Code)
	assert.Equal(t, http.StatusOK, do(r, "Bearer   "+token+" ").Code)

	for _, header := range []string{"Bearer", "Bearer    "} {
		w := do(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
		assert.Equal(t, "Basic", w.Header().Get("WWW-Authenticate"), header)
	}
}

// ── rate limiter ─────────────────────────────────────────────────────────────

func TestRateLimiter_BlocksAfterMax(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	r := newRouter(RateLimiter(client, 2, time.Minute, zerolog.Nop()))

	first := do(r, "")
	require.Equal(t, http.StatusOK, first.Code)
	rate := decode(t, first).Rate
	require.NotNil(t, rate)
	assert.Equal(t, 2, rate.Limit)
	assert.Equal(t, 1, rate.Remaining)
	assert.Greater(t, rate.ResetInSeconds, 0)

	assert.Equal(t, http.StatusOK, do(r, "").Code)

	blocked := do(r, "")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	resp := decode(t, blocked)
	assert.True(t, resp.Error)
	assert.Equal(t, 0, resp.Rate.Remaining)

	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, do(r, "").Code)
}

func TestRateLimiter_NilClientPassesThrough(t *testing.T) {
	r := newRouter(RateLimiter(nil, 1, time.Minute, zerolog.Nop()))
	for i := 0; i < 3; i++ {
		w := do(r, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, decode(t, w).Rate)
	}
}

func TestRateLimiter_RedisDownAllows(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	r := newRouter(RateLimiter(client, 1, time.Minute, zerolog.Nop()))
	assert.Equal(t, http.StatusOK, do(r, "").Code)
	assert.Equal(t, http.StatusOK, do(r, "").Code)
}

// ── request logger ───────────────────────────────────────────────────────────

func TestRequestLogger_AssignsAndLogsRequestID(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(RequestLogger(zerolog.New(&buf)))

	w := do(r, "")
	id := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)
	assert.Equal(t, id, decode(t, w).RequestID)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, id, line["request_id"])
	assert.Equal(t, "/Filter", line["path"])
	assert.EqualValues(t, http.StatusOK, line["status"])
}

func TestRequestLogger_KeepsCallerID(t *testing.T) {
	r := newRouter(RequestLogger(zerolog.Nop()))

	req := httptest.NewRequest(http.MethodGet, "/Filter", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
