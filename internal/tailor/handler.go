package tailor

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tailor-backend/internal/extract"
	"tailor-backend/internal/shared/metrics"
	"tailor-backend/internal/shared/server/respond"
)

const fallbackErrorMessage = "An unexpected error occurred."

// Handler wires the tailoring endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches tailoring routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/tailor", h.tailor)
}

func (h *Handler) tailor(c *gin.Context) {
	fileHeader, fileErr := c.FormFile("file")
	jobDescription := c.PostForm("jobDescription")
	if fileErr != nil || strings.TrimSpace(jobDescription) == "" {
		respond.Error(c, http.StatusBadRequest, "Missing file or job description")
		return
	}

	format, ok := extract.FormatFromFileName(fileHeader.Filename)
	if !ok {
		respond.Error(c, http.StatusBadRequest, "Unsupported file format. Please upload PDF or DOCX.")
		return
	}

	metrics.IncTailorStarted()
	started := time.Now()

	f, err := fileHeader.Open()
	if err != nil {
		metrics.IncTailorFailed()
		respond.Error(c, http.StatusInternalServerError, errorMessage(err))
		return
	}
	data, err := io.ReadAll(f)
	_ = f.Close()
	if err != nil {
		metrics.IncTailorFailed()
		respond.Error(c, http.StatusInternalServerError, errorMessage(err))
		return
	}

	resumeText, err := extract.ExtractText(data, format)
	if err != nil {
		metrics.IncTailorFailed()
		respond.Error(c, http.StatusInternalServerError, errorMessage(err))
		return
	}

	result, err := h.Svc.Tailor(c.Request.Context(), resumeText, jobDescription)
	if err != nil {
		metrics.IncTailorFailed()
		respond.Error(c, http.StatusInternalServerError, errorMessage(err))
		return
	}

	metrics.IncTailorCompleted()
	metrics.ObserveTailorDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)
	respond.JSON(c, http.StatusOK, result)
}

func errorMessage(err error) string {
	if err == nil || strings.TrimSpace(err.Error()) == "" {
		return fallbackErrorMessage
	}
	return err.Error()
}
