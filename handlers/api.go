package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vanesatov/HotelesApi/internal/hotels"
	"github.com/vanesatov/HotelesApi/internal/models"
	"github.com/vanesatov/HotelesApi/internal/users"
	"github.com/vanesatov/HotelesApi/pkg/logger"
)

// APIHandler serves the stateless JSON surface: read-only projections over
// the hotel collection, token-gated delete and the upsert create.
type APIHandler struct {
	hotels   hotels.Repository
	security *users.Service
}

func NewAPIHandler(repo hotels.Repository, security *users.Service) *APIHandler {
	return &APIHandler{hotels: repo, security: security}
}

// Register routes under /api
func (h *APIHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/hoteles", h.All)
	rg.GET("/hoteles/id/:id", h.FindByID)
	rg.GET("/hoteles/provincia/:provinces", h.ByProvince)
	rg.GET("/hoteles/estrellas", h.Ranked)
	rg.GET("/hoteles/estrellas/:estrellas", h.ByStars)
	rg.GET("/hoteles/provincia/:provinces/estrellas", h.ByProvinceRanked)
	rg.GET("/hoteles/provincia/:provinces/estrellas/:estrellas", h.ByProvinceAndStars)
	rg.GET("/hoteles/lujo", h.Lujo)
	rg.GET("/hoteles/provincia/:provinces/lujo", h.LujoByProvince)
	rg.GET("/hoteles/modalidad/:modalities", h.ByModality)
	rg.GET("/hoteles/modalidad/:modalities/estrellas", h.ByModalityRanked)
	rg.GET("/hoteles/modalidad/:modalities/estrellas/:estrellas", h.ByModalityAndStars)
	rg.GET("/hoteles/provincia/:provinces/modalidad/:modalities", h.ByProvinceAndModality)
	rg.GET("/hoteles/provincia/:provinces/modalidad/:modalities/estrellas", h.ByProvinceAndModalityRanked)
	rg.GET("/hoteles/provincia/:provinces/modalidad/:modalities/estrellas/:estrellas", h.ByProvinceModalityAndStars)
	rg.GET("/hoteles/provincia/:provinces/modalidad/:modalities/lujo", h.LujoByProvinceAndModality)
	rg.DELETE("/hoteles/:id", h.Delete)
	rg.POST("/", h.Create)
}

func (h *APIHandler) All(c *gin.Context) {
	hs, err := h.hotels.FindAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hs)
}

func (h *APIHandler) FindByID(c *gin.Context) {
	hotel, err := h.hotels.FindByID(c.Request.Context(), c.Param("id"))
	if err == hotels.ErrNotFound {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

func (h *APIHandler) ByProvince(c *gin.Context) {
	hs, err := h.hotels.FindByProvince(c.Request.Context(), c.Param("provinces"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hs)
}

func (h *APIHandler) Ranked(c *gin.Context) {
	hs, err := h.hotels.FindAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels.SortByRank(hs))
}

func (h *APIHandler) ByStars(c *gin.Context) {
	stars, ok := starsParam(c)
	if !ok {
		return
	}
	hs, err := h.hotels.FindAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels.FilterByStars(hs, stars))
}

func (h *APIHandler) ByProvinceRanked(c *gin.Context) {
	hs, err := h.hotels.FindByProvince(c.Request.Context(), c.Param("provinces"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels.SortByRank(hs))
}

func (h *APIHandler) ByProvinceAndStars(c *gin.Context) {
	stars, ok := starsParam(c)
	if !ok {
		return
	}
	hs, err := h.hotels.FindByProvince(c.Request.Context(), c.Param("provinces"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels.FilterByStars(hs, stars))
}

func (h *APIHandler) Lujo(c *gin.Context) {
	hs, err := h.hotels.FindAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels.FilterLujo(hs))
}

func (h *APIHandler) LujoByProvince(c *gin.Context) {
	hs, err := h.hotels.FindByProvince(c.Request.Context(), c.Param("provinces"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels.FilterLujo(hs))
}

// ByModality answers with hotels whose modalities text contains the given
// label. The store query already narrows by the same containment test; the
// in-memory filter stays authoritative.
func (h *APIHandler) ByModality(c *gin.Context) {
	m := c.Param("modalities")
	hs, err := h.hotels.FindByModality(c.Request.Context(), m)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels.FilterByModality(hs, m))
}

func (h *APIHandler) ByModalityRanked(c *gin.Context) {
	m := c.Param("modalities")
	hs, err := h.hotels.FindByModality(c.Request.Context(), m)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels.SortByRank(hotels.FilterByModality(hs, m)))
}

func (h *APIHandler) ByModalityAndStars(c *gin.Context) {
	stars, ok := starsParam(c)
	if !ok {
		return
	}
	m := c.Param("modalities")
	hs, err := h.hotels.FindByModality(c.Request.Context(), m)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels.FilterByStars(hotels.FilterByModality(hs, m), stars))
}

func (h *APIHandler) ByProvinceAndModality(c *gin.Context) {
	hs, err := h.hotels.FindByProvince(c.Request.Context(), c.Param("provinces"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels.FilterByModality(hs, c.Param("modalities")))
}

func (h *APIHandler) ByProvinceAndModalityRanked(c *gin.Context) {
	hs, err := h.hotels.FindByProvince(c.Request.Context(), c.Param("provinces"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels.SortByRank(hotels.FilterByModality(hs, c.Param("modalities"))))
}

func (h *APIHandler) ByProvinceModalityAndStars(c *gin.Context) {
	stars, ok := starsParam(c)
	if !ok {
		return
	}
	hs, err := h.hotels.FindByProvince(c.Request.Context(), c.Param("provinces"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels.FilterByStars(hotels.FilterByModality(hs, c.Param("modalities")), stars))
}

func (h *APIHandler) LujoByProvinceAndModality(c *gin.Context) {
	hs, err := h.hotels.FindByProvince(c.Request.Context(), c.Param("provinces"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hotels.FilterLujo(hotels.FilterByModality(hs, c.Param("modalities"))))
}

// Delete removes a hotel by id when the ?token= query parameter matches a
// provisioned user token. An unknown id still reports success: the store
// delete is idempotent and does not signal absence.
func (h *APIHandler) Delete(c *gin.Context) {
	ok, err := h.security.ValidateToken(c.Request.Context(), c.Query("token"))
	if err != nil {
		fail(c, err)
		return
	}
	if !ok {
		c.Status(http.StatusUnauthorized)
		return
	}
	if err := h.hotels.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Create upserts a hotel document: no validation, no existence check, an id
// collision silently overwrites.
func (h *APIHandler) Create(c *gin.Context) {
	var hotel models.Hotel
	if err := c.ShouldBindJSON(&hotel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.hotels.Save(c.Request.Context(), &hotel); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, hotel)
}

func starsParam(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("estrellas"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "estrellas must be an integer"})
		return 0, false
	}
	return n, true
}

func fail(c *gin.Context, err error) {
	logger.Errorf("request failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
