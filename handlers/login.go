package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vanesatov/HotelesApi/internal/sessions"
	"github.com/vanesatov/HotelesApi/internal/users"
	"github.com/vanesatov/HotelesApi/pkg/logger"
	"github.com/vanesatov/HotelesApi/pkg/metrics"
)

// LoginHandler owns the session lifecycle: the login form, the login check
// and logout.
type LoginHandler struct {
	security   *users.Service
	sessions   *sessions.Service
	cookieName string
	ttl        time.Duration
}

func NewLoginHandler(security *users.Service, s *sessions.Service, cookieName string, ttl time.Duration) *LoginHandler {
	return &LoginHandler{security: security, sessions: s, cookieName: cookieName, ttl: ttl}
}

// Register routes under /login
func (h *LoginHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.Form)
	rg.POST("", h.Login)
	rg.GET("/exit", h.Exit)
}

func (h *LoginHandler) Form(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login checks the (user, email) pair against the user store. On success the
// full user record goes into a fresh session and the session id into the
// cookie. On failure the form is re-rendered without saying which field was
// wrong.
func (h *LoginHandler) Login(c *gin.Context) {
	user := c.PostForm("user")
	email := c.PostForm("email")

	u, err := h.security.Login(c.Request.Context(), user, email)
	if err != nil {
		fail(c, err)
		return
	}
	if u == nil {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		c.HTML(http.StatusOK, "login.html", gin.H{"error": true})
		return
	}

	id, err := h.sessions.Create(c.Request.Context(), *u, h.ttl)
	if err != nil {
		fail(c, err)
		return
	}
	metrics.LoginAttempts.WithLabelValues("success").Inc()
	logger.Infof("login: user=%s", u.User)
	c.SetCookie(h.cookieName, id, int(h.ttl.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/web/")
}

// Exit clears the session and its cookie; an unknown or missing session is
// not an error.
func (h *LoginHandler) Exit(c *gin.Context) {
	if id, err := c.Cookie(h.cookieName); err == nil && id != "" {
		if err := h.sessions.Delete(c.Request.Context(), id); err != nil {
			logger.Warnf("logout: failed to delete session: %v", err)
		}
	}
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/web/")
}
