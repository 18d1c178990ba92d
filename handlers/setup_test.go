package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resto-menu-api/config"
	"resto-menu-api/handlers"
	"resto-menu-api/models"
	"resto-menu-api/routes"
	"resto-menu-api/session"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupRouter wires a fresh in-memory database and session store behind the
// real route table.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	config.DB = db

	store := session.NewMemoryStore(time.Hour)
	t.Cleanup(store.Close)
	handlers.Sessions = store

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

// client carries the visitor's session cookie between requests.
type client struct {
	t       *testing.T
	router  *gin.Engine
	cookies []*http.Cookie
	token   string // panel JWT, if logged in
}

func newClient(t *testing.T, router *gin.Engine) *client {
	return &client{t: t, router: router}
}

func (c *client) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		c.cookies = cookies
	}
	return w
}

func (c *client) doRaw(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		c.cookies = cookies
	}
	return w
}

func (c *client) login() {
	c.t.Helper()

	require.NoError(c.t, config.SeedStaff(config.DB))
	w := c.do(http.MethodPost, "/api/auth/login",
		gin.H{"username": "admin", "password": "admin123"})
	require.Equal(c.t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(c.t, resp.Token)
	c.token = resp.Token
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func seedCatalog(t *testing.T) (models.Category, models.Product, models.Product) {
	t.Helper()

	cat := models.Category{Name: "Hamburguesas", DisplayOrder: 1}
	require.NoError(t, config.DB.Create(&cat).Error)

	burger := models.Product{
		Name:       "Hamburguesa doble",
		Price:      decimal.RequireFromString("1000.00"),
		CategoryID: cat.ID,
		Available:  true,
		Featured:   true,
	}
	require.NoError(t, config.DB.Create(&burger).Error)

	drink := models.Product{
		Name:       "Gaseosa",
		Price:      decimal.RequireFromString("500.00"),
		CategoryID: cat.ID,
		Available:  true,
	}
	require.NoError(t, config.DB.Create(&drink).Error)

	return cat, burger, drink
}
