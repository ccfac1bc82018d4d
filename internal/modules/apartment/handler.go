package apartment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"imobiliare/internal/domain"
	"imobiliare/internal/pkg/validator"
	"imobiliare/internal/repository"
)

// Handler serves the /api/apartments CRUD surface. Every operation is a
// direct pass-through to the apartment repository.
type Handler struct {
	apartments *repository.ApartmentRepository
}

func NewHandler(apartments *repository.ApartmentRepository) *Handler {
	return &Handler{apartments: apartments}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	apartments := rg.Group("/apartments")
	{
		apartments.GET("", h.List)
		apartments.GET("/:id", h.Get)
		apartments.GET("/getByOwner/:ownerId", h.ListByOwner)
		apartments.POST("", h.Create)
		apartments.PUT("", h.Update)
		apartments.DELETE("/:id", h.Delete)
	}
}

// List returns all apartments. No pagination, no filtering.
func (h *Handler) List(c *gin.Context) {
	apartments, err := h.apartments.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list apartments"})
		return
	}

	c.JSON(http.StatusOK, apartments)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid apartment id"})
		return
	}

	apartment, err := h.apartments.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "apartment with id " + strconv.FormatInt(id, 10) + " not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get apartment"})
		return
	}

	c.JSON(http.StatusOK, apartment)
}

// ListByOwner returns the owner's apartments. An unknown owner is not an
// error, just an empty list.
func (h *Handler) ListByOwner(c *gin.Context) {
	ownerID, err := strconv.ParseInt(c.Param("ownerId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid owner id"})
		return
	}

	apartments, err := h.apartments.GetByOwnerID(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list apartments by owner"})
		return
	}

	c.JSON(http.StatusOK, apartments)
}

// Create persists a new apartment. A nested owner is upserted in the same
// transaction, so a failing owner write fails the whole create instead of
// leaving the apartment pointing at a missing owner.
func (h *Handler) Create(c *gin.Context) {
	var apartment domain.Apartment

	if err := c.ShouldBindJSON(&apartment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validator.Validate(apartment); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": errs})
		return
	}

	if err := h.apartments.CreateWithOwner(c.Request.Context(), &apartment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create apartment"})
		return
	}

	c.JSON(http.StatusCreated, apartment)
}

// Update is a full-replace upsert: an unknown id creates a new row rather
// than failing.
func (h *Handler) Update(c *gin.Context) {
	var apartment domain.Apartment

	if err := c.ShouldBindJSON(&apartment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validator.Validate(apartment); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": errs})
		return
	}

	if err := h.apartments.Save(c.Request.Context(), &apartment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update apartment"})
		return
	}

	c.JSON(http.StatusOK, apartment)
}

// Delete removes an apartment and answers with a plain confirmation string,
// which is what the frontend expects.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid apartment id"})
		return
	}

	apartment, err := h.apartments.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "apartment with id " + strconv.FormatInt(id, 10) + " not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get apartment"})
		return
	}

	if err := h.apartments.Delete(c.Request.Context(), apartment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete apartment"})
		return
	}

	c.String(http.StatusOK, "Apartment with id %d was successfully deleted", id)
}
