package handlers

import (
	"net/http"

	"github.com/alimgiray/contributor-registry/internal/services"
	"github.com/gin-gonic/gin"
)

type ContributorHandler struct {
	contributorService *services.ContributorService
	profileService     *services.GithubProfileService
}

func NewContributorHandler(
	contributorService *services.ContributorService,
	profileService *services.GithubProfileService,
) *ContributorHandler {
	return &ContributorHandler{
		contributorService: contributorService,
		profileService:     profileService,
	}
}

type registerRequest struct {
	Address      string `json:"address" binding:"required"`
	GithubHandle string `json:"github_handle"`
}

// Register creates a new contributor profile
func (h *ContributorHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "address is required"})
		return
	}

	if err := h.contributorService.Register(c.Request.Context(), req.Address, req.GithubHandle); err != nil {
		respondError(c, err)
		return
	}

	contributor, err := h.contributorService.GetContributor(req.Address)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contributor)
}

type updateRequest struct {
	GithubHandle string `json:"github_handle"`
}

// Update changes a contributor's github handle
func (h *ContributorHandler) Update(c *gin.Context) {
	address := c.Param("address")

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.contributorService.Update(c.Request.Context(), address, req.GithubHandle); err != nil {
		respondError(c, err)
		return
	}

	contributor, err := h.contributorService.GetContributor(address)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contributor)
}

// Get returns the profile stored for an address
func (h *ContributorHandler) Get(c *gin.Context) {
	contributor, err := h.contributorService.GetContributor(c.Param("address"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contributor)
}

// GetByGithub returns the profile a github handle points at
func (h *ContributorHandler) GetByGithub(c *gin.Context) {
	contributor, err := h.contributorService.GetContributorByGithub(c.Param("handle"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contributor)
}

// List returns all registered contributors
func (h *ContributorHandler) List(c *gin.Context) {
	contributors, err := h.contributorService.ListContributors()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contributors": contributors})
}

// GithubProfile returns live GitHub profile data for a registered
// contributor's handle
func (h *ContributorHandler) GithubProfile(c *gin.Context) {
	contributor, err := h.contributorService.GetContributor(c.Param("address"))
	if err != nil {
		respondError(c, err)
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), contributor.GithubHandle)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}
