package handlers

import (
	"net/http"

	"github.com/alimgiray/contributor-registry/internal/services"
	"github.com/alimgiray/contributor-registry/pkg/logger"
	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	exportService      *services.ExportService
	contributorService *services.ContributorService
}

func NewExportHandler(
	exportService *services.ExportService,
	contributorService *services.ContributorService,
) *ExportHandler {
	return &ExportHandler{
		exportService:      exportService,
		contributorService: contributorService,
	}
}

// Contributors streams an xlsx report of all registered contributors
func (h *ExportHandler) Contributors(c *gin.Context) {
	f, err := h.exportService.ExportContributors()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	contributors, err := h.contributorService.ListContributors()
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+services.ExportFilename(len(contributors)))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		logger.WithError(err).Errorf("failed to stream contributor export")
		c.Status(http.StatusInternalServerError)
	}
}
