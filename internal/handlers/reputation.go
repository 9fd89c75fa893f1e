package handlers

import (
	"net/http"

	"github.com/alimgiray/contributor-registry/internal/services"
	"github.com/gin-gonic/gin"
)

type ReputationHandler struct {
	reputationService *services.ReputationService
}

func NewReputationHandler(reputationService *services.ReputationService) *ReputationHandler {
	return &ReputationHandler{
		reputationService: reputationService,
	}
}

type updateReputationRequest struct {
	Caller string `json:"caller" binding:"required"`
	Delta  *int64 `json:"delta" binding:"required"`
}

// Update applies an admin-signed delta to a contributor's score
func (h *ReputationHandler) Update(c *gin.Context) {
	target := c.Param("address")

	var req updateReputationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "caller and delta are required"})
		return
	}

	if err := h.reputationService.UpdateReputation(c.Request.Context(), req.Caller, target, *req.Delta); err != nil {
		respondError(c, err)
		return
	}

	score, err := h.reputationService.GetReputation(target)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"address": target, "reputation_score": score})
}

// Get returns a contributor's current score
func (h *ReputationHandler) Get(c *gin.Context) {
	address := c.Param("address")

	score, err := h.reputationService.GetReputation(address)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"address": address, "reputation_score": score})
}
