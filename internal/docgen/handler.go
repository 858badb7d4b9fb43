package docgen

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tailor-backend/internal/shared/server/respond"
	"tailor-backend/internal/shared/util"
)

const mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Handler serves on-demand document rendering. Nothing is stored server-side;
// each download regenerates the document and streams it to the browser.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents/render", h.render)
}

type renderRequest struct {
	Content     string `json:"content"`
	Kind        string `json:"kind"`
	JobTitle    string `json:"jobTitle"`
	CompanyName string `json:"companyName"`
}

func (h *Handler) render(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		respond.Error(c, http.StatusBadRequest, "Missing document content")
		return
	}

	kind := util.AlphaNumeric(req.Kind)
	if kind == "" {
		kind = "Document"
	}

	data, err := Render(req.Content)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to generate document.")
		return
	}

	name := FileName(kind, req.JobTitle, req.CompanyName)
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, mimeDOCX, data)
}
