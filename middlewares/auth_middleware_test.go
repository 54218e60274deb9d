package middlewares

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/qashsolutions/myhealthguide-sub011/config"
	"github.com/qashsolutions/myhealthguide-sub011/models"
	"github.com/qashsolutions/myhealthguide-sub011/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupMiddlewareTest(t *testing.T) *gorm.DB {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db
	return db
}

func testRouter() *gin.Engine {
	r := gin.New()
	authed := r.Group("/api")
	authed.Use(AuthMiddleware())
	authed.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetUint("userID")})
	})

	group := authed.Group("/groups/:groupID")
	group.Use(GroupAccessMiddleware())
	group.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"groupID": c.GetUint("groupID")})
	})
	return r
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingOrBadToken(t *testing.T) {
	setupMiddlewareTest(t)
	r := testRouter()

	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/api/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/api/me", "not-a-jwt").Code)

	// Token signed with the wrong secret.
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": 1, "exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte("other-secret"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/api/me", signed).Code)
}

func TestAuthMiddlewareAcceptsUserIDClaim(t *testing.T) {
	setupMiddlewareTest(t)
	r := testRouter()

	token, err := utils.GenerateJWT(42, "rose@example.com")
	require.NoError(t, err)

	w := doGet(r, "/api/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}

func TestAuthMiddlewareEmailFallback(t *testing.T) {
	db := setupMiddlewareTest(t)
	r := testRouter()

	user := models.User{Email: "rose@example.com", Password: "x", Role: "caregiver"}
	require.NoError(t, db.Create(&user).Error)

	// Legacy tokens carry only the email claim.
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "rose@example.com", "exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(os.Getenv("JWT_SECRET")))
	require.NoError(t, err)

	w := doGet(r, "/api/me", signed)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGroupAccessMiddleware(t *testing.T) {
	db := setupMiddlewareTest(t)
	r := testRouter()

	member := models.GroupMember{GroupID: 5, UserID: 42, Role: "caregiver"}
	require.NoError(t, db.Create(&member).Error)

	token, err := utils.GenerateJWT(42, "rose@example.com")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doGet(r, "/api/groups/5/ping", token).Code)
	assert.Equal(t, http.StatusForbidden, doGet(r, "/api/groups/6/ping", token).Code)
	assert.Equal(t, http.StatusBadRequest, doGet(r, "/api/groups/abc/ping", token).Code)

	outsider, err := utils.GenerateJWT(43, "mallory@example.com")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, doGet(r, "/api/groups/5/ping", outsider).Code)
}
