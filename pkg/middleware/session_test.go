package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/vanesatov/HotelesApi/internal/models"
	"github.com/vanesatov/HotelesApi/internal/sessions"
)

func sessionRig(t *testing.T) (*sessions.Service, func()) {
	t.Helper()
	m, err := mr.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	svc := sessions.NewService(sessions.NewRedisRepository(client, "test:session:"))
	return svc, func() { m.Close() }
}

func TestSessionMiddleware_AttachesUser(t *testing.T) {
	svc, done := sessionRig(t)
	defer done()

	u := models.User{ID: "u1", User: "alice", Email: "a@x.com"}
	id, err := svc.Create(context.Background(), u, time.Hour)
	require.NoError(t, err)

	g := gin.New()
	g.Use(SessionMiddleware(svc, "hoteles_session"))
	g.GET("/", func(c *gin.Context) {
		got, ok := UserFromContext(c)
		require.True(t, ok)
		require.Equal(t, "alice", got.User)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "hoteles_session", Value: id})
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestSessionMiddleware_NoCookiePassesThrough(t *testing.T) {
	svc, done := sessionRig(t)
	defer done()

	g := gin.New()
	g.Use(SessionMiddleware(svc, "hoteles_session"))
	g.GET("/", func(c *gin.Context) {
		_, ok := UserFromContext(c)
		require.False(t, ok)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestSessionMiddleware_UnknownSessionPassesThrough(t *testing.T) {
	svc, done := sessionRig(t)
	defer done()

	g := gin.New()
	g.Use(SessionMiddleware(svc, "hoteles_session"))
	g.GET("/", func(c *gin.Context) {
		_, ok := UserFromContext(c)
		require.False(t, ok)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "hoteles_session", Value: "bogus"})
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}
