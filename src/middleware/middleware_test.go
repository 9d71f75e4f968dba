package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "segredo-de-teste"

func init() {
	gin.SetMode(gin.TestMode)
}

func signed(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.GET("/privado", AuthMiddleware(testSecret), func(c *gin.Context) {
		id, _ := CurrentIdentity(c)
		c.JSON(http.StatusOK, gin.H{"id": id.UserID, "username": id.Username})
	})
	r.GET("/configuracoes", AuthMiddleware(testSecret), RequireSettingsAccess(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func doGet(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newAuthRouter()

	w := doGet(r, "/privado", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := signed(t, NewClaims(Identity{UserID: 7, Username: "ana"}, time.Hour), testSecret)
	w = doGet(r, "/privado", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":7,"username":"ana"}`, w.Body.String())

	w = doGet(r, "/privado", signed(t, NewClaims(Identity{UserID: 7}, time.Hour), "outro"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doGet(r, "/privado", signed(t, NewClaims(Identity{UserID: 7}, -time.Minute), testSecret))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doGet(r, "/privado", signed(t, jwt.MapClaims{"id": 7}, testSecret))
	assert.Equal(t, http.StatusUnauthorized, w.Code, "tokens without expiry are rejected")
}

func TestCanAccessSettings(t *testing.T) {
	assert.False(t, CanAccessSettings(nil))
	assert.False(t, CanAccessSettings(&Identity{}))
	assert.True(t, CanAccessSettings(&Identity{UserID: 1}))
	assert.True(t, CanAccessSettings(&Identity{UserID: 1, IsSuperuser: true, Restricted: true}))
	assert.False(t, CanAccessSettings(&Identity{UserID: 1, Restricted: true}))
}

func TestRequireSettingsAccess(t *testing.T) {
	r := newAuthRouter()

	restricted := signed(t, NewClaims(Identity{UserID: 2, Restricted: true}, time.Hour), testSecret)
	assert.Equal(t, http.StatusForbidden, doGet(r, "/configuracoes", restricted).Code)

	super := signed(t, NewClaims(Identity{UserID: 1, IsSuperuser: true, Restricted: true}, time.Hour), testSecret)
	assert.Equal(t, http.StatusNoContent, doGet(r, "/configuracoes", super).Code)

	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/configuracoes", "").Code)
}

func TestSanitizeJSONInput(t *testing.T) {
	r := gin.New()
	r.Use(SanitizeJSONInput())
	r.POST("/eco", func(c *gin.Context) {
		b, _ := io.ReadAll(c.Request.Body)
		c.Data(http.StatusOK, "application/json", b)
	})

	body := `{"name":"<b>Memorial</b> Olhos D'Água","password":"<p>x</p>","ids":[1,2],"nested":{"t":"<script>x</script>ok"}}`
	req := httptest.NewRequest(http.MethodPost, "/eco", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"Memorial Olhos D'Água","password":"<p>x</p>","ids":[1,2],"nested":{"t":"ok"}}`, w.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/eco", strings.NewReader(`{broken`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
