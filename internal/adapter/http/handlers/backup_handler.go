package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	response "paulocell_pdv/internal/adapter/http/dto/response"
	"paulocell_pdv/internal/infrastructure/logger"
	"paulocell_pdv/internal/usecase"
	"paulocell_pdv/pkg"

	"github.com/gin-gonic/gin"
)

// BackupHandler exports and restores every collection key at once.
type BackupHandler struct {
	usecase usecase.IBackupUseCase
}

func NewBackupHandler(uc usecase.IBackupUseCase) *BackupHandler {
	return &BackupHandler{usecase: uc}
}

// @Summary  Download a snapshot of every collection
// @Tags     backup
// @Produce  json
// @Success  200  {object}  map[string]interface{}
// @Security Bearer
// @Router   /backup [get]
func (h *BackupHandler) ExportBackup(c *gin.Context) {
	snap, err := h.usecase.Export(c.Request.Context())
	if err != nil {
		writeError(c, "backup", mapBackupError(err))
		return
	}
	name := fmt.Sprintf("backup_%s.json", time.Now().UTC().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.JSON(http.StatusOK, snap)
}

// RestoreBackup godoc
// @Summary      Restore a snapshot
// @Description  Every known key present in the snapshot is overwritten.
// @Tags         backup
// @Accept       json
// @Produce      json
// @Param        snapshot  body      map[string]interface{}  true  "Snapshot"
// @Success      200       {object}  response.RestoreResponse
// @Failure      400       {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /backup/restore [post]
func (h *BackupHandler) RestoreBackup(c *gin.Context) {
	var snap usecase.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		writeError(c, "backup", bindError(err))
		return
	}
	restored, err := h.usecase.Restore(c.Request.Context(), snap)
	if err != nil {
		writeError(c, "backup", mapBackupError(err))
		return
	}
	logger.For("backup", "handler").WithField("keys", restored).Warn("[backup][handler] snapshot restored")
	c.JSON(http.StatusOK, response.RestoreResponse{RestoredKeys: restored})
}

func mapBackupError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyBackup):
		return pkg.NewDomainErrorSimple("EMPTY_BACKUP", "Backup has no keys", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownBackupKey):
		return pkg.NewDomainError("UNKNOWN_BACKUP_KEY", "Backup contains an unknown key", err, http.StatusBadRequest).WithDetails(err.Error())
	case errors.Is(err, usecase.ErrInvalidBackupValue):
		return pkg.NewDomainError("INVALID_BACKUP_VALUE", "Backup contains an invalid value", err, http.StatusBadRequest).WithDetails(err.Error())
	default:
		return internalError(err)
	}
}
