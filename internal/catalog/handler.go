package catalog

import (
	"errors"
	"net/http"

	"fitcoach/internal/api"
	"fitcoach/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// @Summary      List gyms
// @Tags         catalog
// @Produce      json
// @Success      200 {array} catalog.Gym
// @Failure      500 {object} api.ErrorResponse
// @Router       /gyms [get]
func (h *Handler) ListGyms(c *gin.Context) {
	gyms, err := h.service.ListGyms(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch gyms")
		return
	}
	c.JSON(http.StatusOK, gyms)
}

// @Summary      Create a gym
// @Description  Admin-only: create a new gym
// @Tags         admin,catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body catalog.CreateGymRequest true "Gym payload"
// @Success      201 {object} catalog.Gym
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /admin/gyms [post]
func (h *Handler) CreateGym(c *gin.Context) {
	var req CreateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.BindError(err))
		return
	}

	gym, err := h.service.CreateGym(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create gym")
		return
	}
	c.JSON(http.StatusCreated, gym)
}

// @Summary      Delete a gym
// @Tags         admin,catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Gym ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/gyms/{id} [delete]
func (h *Handler) DeleteGym(c *gin.Context) {
	if err := h.service.DeleteGym(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete gym")
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Gym deleted"})
}

// @Summary      List programs
// @Tags         catalog
// @Produce      json
// @Success      200 {array} catalog.Program
// @Failure      500 {object} api.ErrorResponse
// @Router       /programs [get]
func (h *Handler) ListPrograms(c *gin.Context) {
	programs, err := h.service.ListPrograms(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch programs")
		return
	}
	c.JSON(http.StatusOK, programs)
}

// @Summary      Create a program
// @Tags         admin,catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body catalog.CreateProgramRequest true "Program payload"
// @Success      201 {object} catalog.Program
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /admin/programs [post]
func (h *Handler) CreateProgram(c *gin.Context) {
	var req CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.BindError(err))
		return
	}

	program, err := h.service.CreateProgram(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create program")
		return
	}
	c.JSON(http.StatusCreated, program)
}

// @Summary      Delete a program
// @Tags         admin,catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Program ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/programs/{id} [delete]
func (h *Handler) DeleteProgram(c *gin.Context) {
	if err := h.service.DeleteProgram(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete program")
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Program deleted"})
}

// @Summary      List donation options
// @Tags         catalog
// @Produce      json
// @Success      200 {array} catalog.DonationOption
// @Failure      500 {object} api.ErrorResponse
// @Router       /donation-options [get]
func (h *Handler) ListDonationOptions(c *gin.Context) {
	options, err := h.service.ListDonationOptions(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch donation options")
		return
	}
	c.JSON(http.StatusOK, options)
}

// @Summary      Create a donation option
// @Tags         admin,catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body catalog.CreateDonationOptionRequest true "Donation option payload"
// @Success      201 {object} catalog.DonationOption
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /admin/donation-options [post]
func (h *Handler) CreateDonationOption(c *gin.Context) {
	var req CreateDonationOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.BindError(err))
		return
	}

	option, err := h.service.CreateDonationOption(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create donation option")
		return
	}
	c.JSON(http.StatusCreated, option)
}

// @Summary      Delete a donation option
// @Tags         admin,catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Donation option ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/donation-options/{id} [delete]
func (h *Handler) DeleteDonationOption(c *gin.Context) {
	if err := h.service.DeleteDonationOption(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete donation option")
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Donation option deleted"})
}

func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, api.Err(api.CodeNotFound, err.Error()))
	case errors.Is(err, ErrAlreadyExists):
		c.JSON(http.StatusConflict, api.Err(api.CodeAlreadyExists, err.Error()))
	default:
		logger.Error("catalog request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, api.Err(api.CodeInternal, fallback))
	}
}
