package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vanesatov/HotelesApi/internal/hotels"
	"github.com/vanesatov/HotelesApi/internal/models"
	"github.com/vanesatov/HotelesApi/pkg/middleware"
)

// WebHandler serves the session-aware HTML surface. Creation is gated on a
// logged-in session; everything else is public.
type WebHandler struct {
	hotels hotels.Repository
}

func NewWebHandler(repo hotels.Repository) *WebHandler {
	return &WebHandler{hotels: repo}
}

// Register routes under /web. The wildcard single-hotel route goes last.
func (h *WebHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/", h.Index)
	rg.GET("/new", h.NewForm)
	rg.POST("/new", h.Create)
	rg.GET("/hoteles/provincias", h.Provinces)
	rg.GET("/hoteles/provincia/:provinces/modalidades", h.Modalities)
	rg.GET("/hoteles/provincia/:provinces/modalidad/:modalities/estrellas", h.FilteredRanked)
	rg.GET("/hoteles/lujo", h.Lujo)
	rg.GET("/:id", h.Single)
}

func (h *WebHandler) Index(c *gin.Context) {
	hs, err := h.hotels.FindAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	data := gin.H{"titulo": "Listado de hoteles", "hoteles": hs}
	if u, ok := middleware.UserFromContext(c); ok {
		data["usuario"] = u
	}
	c.HTML(http.StatusOK, "index.html", data)
}

func (h *WebHandler) Single(c *gin.Context) {
	hotel, err := h.hotels.FindByID(c.Request.Context(), c.Param("id"))
	if err == hotels.ErrNotFound {
		c.HTML(http.StatusNotFound, "404.html", gin.H{})
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "single.html", gin.H{"hotel": hotel})
}

func (h *WebHandler) NewForm(c *gin.Context) {
	if _, ok := middleware.UserFromContext(c); !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.HTML(http.StatusOK, "new.html", gin.H{})
}

func (h *WebHandler) Create(c *gin.Context) {
	if _, ok := middleware.UserFromContext(c); !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	hotel := models.Hotel{
		Categories:           c.PostForm("categories"),
		CategoryID:           c.PostForm("category_id"),
		CoordX:               c.PostForm("coord_x"),
		CoordY:               c.PostForm("coord_y"),
		EstablishmentAddress: c.PostForm("establishment_address"),
		Group:                c.PostForm("group"),
		Holder:               c.PostForm("holder"),
		IdentificationDocNum: c.PostForm("identification_doc_num"),
		Mobile:               c.PostForm("mobile"),
		Modalities:           c.PostForm("modalities"),
		Municipalities:       c.PostForm("municipalities"),
		Name:                 c.PostForm("name"),
		Phone:                c.PostForm("phone"),
		PostalCode:           c.PostForm("postal_code"),
		Provinces:            c.PostForm("provinces"),
		RegistrationCode:     c.PostForm("registration_code"),
		RoadName:             c.PostForm("road_name"),
	}
	if err := h.hotels.Save(c.Request.Context(), &hotel); err != nil {
		fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/web/")
}

func (h *WebHandler) Provinces(c *gin.Context) {
	hs, err := h.hotels.FindAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "provincias.html", gin.H{
		"titulo":     "Selecciona una Provincia",
		"provincias": hotels.Provinces(hs),
	})
}

func (h *WebHandler) Modalities(c *gin.Context) {
	p := c.Param("provinces")
	hs, err := h.hotels.FindByProvince(c.Request.Context(), p)
	if err != nil {
		fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "modalidades.html", gin.H{
		"titulo":      "Selecciona una Modalidad en " + p,
		"provincia":   p,
		"modalidades": hotels.Modalities(hs),
	})
}

// FilteredRanked mirrors the API's combined province+modality+ranked
// endpoint as an HTML page.
func (h *WebHandler) FilteredRanked(c *gin.Context) {
	p := c.Param("provinces")
	m := c.Param("modalities")
	hs, err := h.hotels.FindByProvince(c.Request.Context(), p)
	if err != nil {
		fail(c, err)
		return
	}
	filtered := hotels.SortByRank(hotels.FilterByModality(hs, m))
	c.HTML(http.StatusOK, "hoteles-filtrados.html", gin.H{
		"titulo":    "Hoteles en " + p + " - " + m + " - Ordenados por Estrellas",
		"hoteles":   filtered,
		"provincia": p,
		"modalidad": m,
	})
}

func (h *WebHandler) Lujo(c *gin.Context) {
	hs, err := h.hotels.FindAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "hoteles-lujo.html", gin.H{
		"titulo":  "Hoteles Gran Lujo",
		"hoteles": hotels.FilterLujo(hs),
	})
}
