package web

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handlers serves the server-rendered dashboard pages. Every page returns
// 200 with HTML, falling back to placeholder data on storage errors.
type Handlers struct {
	renderer *Renderer
}

func NewHandlers(renderer *Renderer) *Handlers {
	return &Handlers{renderer: renderer}
}

// Register mounts the page routes on e.
func (h *Handlers) Register(e *echo.Echo) {
	e.GET("/", h.page("index", "dashboard"))
	e.GET("/members", h.page("members", "members"))
	e.GET("/classes", h.page("classes", "classes"))
	e.GET("/leads", h.page("leads", "leads"))
	e.GET("/billing", h.page("billing", "billing"))
	e.GET("/reports", h.page("reports", "reports"))
}

func (h *Handlers) page(templateName, activePage string) echo.HandlerFunc {
	return func(c echo.Context) error {
		pc := h.renderer.PageContext(c.Request().Context(), activePage)

		var buf bytes.Buffer
		if err := h.renderer.templates[templateName].ExecuteTemplate(&buf, "layout.html", pc); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to render page")
		}
		return c.HTML(http.StatusOK, buf.String())
	}
}
