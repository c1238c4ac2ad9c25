package handler

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

var swaggerPage = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{.}} - API Docs</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: '/swagger/spec',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`))

// DocsHandler serves the OpenAPI document and a Swagger UI page for it.
type DocsHandler struct {
	title string
	spec  []byte
}

// NewDocsHandler creates a DocsHandler. A nil spec makes both endpoints 404.
func NewDocsHandler(title string, spec []byte) *DocsHandler {
	return &DocsHandler{title: title, spec: spec}
}

// Spec serves the raw OpenAPI YAML.
func (h *DocsHandler) Spec(c *gin.Context) {
	if h.spec == nil {
		c.String(http.StatusNotFound, "OpenAPI spec not loaded")
		return
	}
	c.Data(http.StatusOK, "application/x-yaml", h.spec)
}

// UI serves the Swagger UI page that loads /swagger/spec.
func (h *DocsHandler) UI(c *gin.Context) {
	if h.spec == nil {
		c.String(http.StatusNotFound, "OpenAPI spec not loaded")
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	_ = swaggerPage.Execute(c.Writer, h.title)
}
