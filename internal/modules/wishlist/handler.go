package wishlist

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"imobiliare/internal/repository"
)

const reportFilename = "KeepITsimple-Imobiliare.pdf"

// Handler serves /api/wishlist: entry CRUD, the per-user apartment listing,
// occurrence statistics, and the PDF report download.
type Handler struct {
	wishlists  repository.WishlistRepository
	apartments *repository.ApartmentRepository
	service    *Service
}

func NewHandler(
	wishlists repository.WishlistRepository,
	apartments *repository.ApartmentRepository,
	service *Service,
) *Handler {
	return &Handler{
		wishlists:  wishlists,
		apartments: apartments,
		service:    service,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	wishlist := rg.Group("/wishlist")
	{
		wishlist.GET("", h.List)
		wishlist.GET("/:id", h.ListApartmentsForUser)
		wishlist.POST("/:userId/:apartmentId", h.Add)
		wishlist.DELETE("/:id", h.Delete)
		wishlist.GET("/pdf/:id", h.Report)
		wishlist.DELETE("/user/:userId/apartment/:apId", h.RemovePair)
		wishlist.GET("/statistics", h.Statistics)
		wishlist.GET("/statistics/:apId", h.CountForApartment)
		wishlist.GET("/byOwner/:ownerId", h.CountForOwner)
	}
}

// List returns every wishlist entry with user and apartment inlined.
func (h *Handler) List(c *gin.Context) {
	entries, err := h.wishlists.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list wishlist entries"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// ListApartmentsForUser returns the apartments in user {id}'s wishlist.
func (h *Handler) ListApartmentsForUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	apartments, err := h.wishlists.GetApartmentsByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list wishlist apartments"})
		return
	}

	c.JSON(http.StatusOK, apartments)
}

// Add inserts the (user, apartment) pair. Succeeds with no body; adding a
// pair that is already present succeeds as well.
func (h *Handler) Add(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	apartmentID, err := strconv.ParseInt(c.Param("apartmentId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid apartment id"})
		return
	}

	if err := h.service.AddToWishlist(c.Request.Context(), userID, apartmentID); err != nil {
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrApartmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add to wishlist"})
		return
	}

	c.Status(http.StatusCreated)
}

// Delete removes one wishlist entry by its own id.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid wishlist id"})
		return
	}

	entry, err := h.wishlists.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "wishlist entry with id " + strconv.FormatInt(id, 10) + " not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get wishlist entry"})
		return
	}

	if err := h.wishlists.Delete(c.Request.Context(), entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete wishlist entry"})
		return
	}

	c.String(http.StatusOK, "Wishlist with id %d was successfully deleted", id)
}

// RemovePair deletes the specific (user, apartment) entry. Deleting a pair
// that is not there is a no-op.
func (h *Handler) RemovePair(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	apartmentID, err := strconv.ParseInt(c.Param("apId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid apartment id"})
		return
	}

	if err := h.service.RemoveFromWishlist(c.Request.Context(), userID, apartmentID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove from wishlist"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Statistics returns the two aggregate counts the frontend turns into a
// percentage pie chart.
func (h *Handler) Statistics(c *gin.Context) {
	inWishlist, err := h.wishlists.CountDistinctApartments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count wishlisted apartments"})
		return
	}

	total, err := h.apartments.CountAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count apartments"})
		return
	}

	c.JSON(http.StatusOK, map[string]float64{
		"apartmentsInWishlist": float64(inWishlist),
		"apartmentsTotal":      float64(total),
	})
}

// CountForApartment answers with the occurrence count as a plain string.
func (h *Handler) CountForApartment(c *gin.Context) {
	apartmentID, err := strconv.ParseInt(c.Param("apId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid apartment id"})
		return
	}

	count, err := h.wishlists.CountByApartmentID(c.Request.Context(), apartmentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count wishlist occurrences"})
		return
	}

	c.String(http.StatusOK, strconv.FormatInt(count, 10))
}

// CountForOwner counts wishlist rows across all of one owner's apartments.
func (h *Handler) CountForOwner(c *gin.Context) {
	ownerID, err := strconv.ParseInt(c.Param("ownerId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid owner id"})
		return
	}

	count, err := h.wishlists.CountByOwnerID(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count wishlist occurrences"})
		return
	}

	c.JSON(http.StatusOK, count)
}

// Report streams the user's wishlist as an inline PDF download.
func (h *Handler) Report(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	pdf, err := h.service.Report(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate report"})
		return
	}

	c.Header("Content-Disposition", "inline; filename="+reportFilename)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
