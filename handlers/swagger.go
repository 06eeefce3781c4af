package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.JSON(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>hoteles-api Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the most used hotel endpoints. The
// filter/sort variants all share the same response shape, so only the
// representative paths are listed.
var swaggerJSON = gin.H{
	"openapi": "3.0.0",
	"info":    gin.H{"title": "hoteles-api", "version": "v1.0.0"},
	"paths": gin.H{
		"/api/hoteles": gin.H{
			"get": gin.H{
				"summary":   "List all hotels",
				"responses": gin.H{"200": gin.H{"description": "array of hotels"}},
			},
		},
		"/api/hoteles/id/{id}": gin.H{
			"get": gin.H{
				"summary": "Get one hotel by id",
				"responses": gin.H{
					"200": gin.H{"description": "the hotel"},
					"404": gin.H{"description": "unknown id, empty body"},
				},
			},
		},
		"/api/hoteles/estrellas": gin.H{
			"get": gin.H{
				"summary":   "List all hotels ordered by rank (Gran Lujo first, then stars descending)",
				"responses": gin.H{"200": gin.H{"description": "ordered array of hotels"}},
			},
		},
		"/api/hoteles/{id}": gin.H{
			"delete": gin.H{
				"summary": "Delete a hotel; requires a valid ?token=",
				"responses": gin.H{
					"200": gin.H{"description": "deleted (or id unknown; delete is idempotent)"},
					"401": gin.H{"description": "invalid token, nothing deleted"},
				},
			},
		},
		"/api/": gin.H{
			"post": gin.H{
				"summary":   "Create (upsert) a hotel document",
				"responses": gin.H{"201": gin.H{"description": "the stored hotel"}},
			},
		},
	},
}
