package handlers

import (
	"encoding/hex"
	"net/http"

	"github.com/alimgiray/contributor-registry/internal/services"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService   *services.AdminService
	upgradeService *services.UpgradeService
}

func NewAdminHandler(adminService *services.AdminService, upgradeService *services.UpgradeService) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		upgradeService: upgradeService,
	}
}

type initializeRequest struct {
	Admin string `json:"admin" binding:"required"`
}

// Initialize sets the administrator exactly once
func (h *AdminHandler) Initialize(c *gin.Context) {
	var req initializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "admin is required"})
		return
	}

	if err := h.adminService.Initialize(c.Request.Context(), req.Admin); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"admin": req.Admin})
}

// GetAdmin returns the stored administrator
func (h *AdminHandler) GetAdmin(c *gin.Context) {
	admin, err := h.adminService.GetAdmin()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

type setAdminRequest struct {
	CurrentAdmin string `json:"current_admin" binding:"required"`
	NewAdmin     string `json:"new_admin" binding:"required"`
}

// SetAdmin transfers the administrator role
func (h *AdminHandler) SetAdmin(c *gin.Context) {
	var req setAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "current_admin and new_admin are required"})
		return
	}

	if err := h.adminService.SetAdmin(c.Request.Context(), req.CurrentAdmin, req.NewAdmin); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": req.NewAdmin})
}

type upgradeRequest struct {
	Caller      string `json:"caller" binding:"required"`
	NewCodeHash string `json:"new_code_hash" binding:"required"`
}

// Upgrade requests replacement of the running code. The hash must be a
// hex-encoded 32-byte digest; its content is not validated further.
func (h *AdminHandler) Upgrade(c *gin.Context) {
	var req upgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "caller and new_code_hash are required"})
		return
	}

	decoded, err := hex.DecodeString(req.NewCodeHash)
	if err != nil || len(decoded) != 32 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "new_code_hash must be 32 hex-encoded bytes"})
		return
	}

	if err := h.upgradeService.Upgrade(c.Request.Context(), req.Caller, req.NewCodeHash); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"new_code_hash": req.NewCodeHash})
}
