package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baspana/backend/internal/domain/model"
	"github.com/baspana/backend/internal/domain/repository"
	"github.com/baspana/backend/internal/server/http/dto"
)

// SocialHandler processes reviews, favorites and promotions.
type SocialHandler struct {
	reviews    ReviewFacade
	favorites  FavoriteFacade
	promotions PromotionFacade
}

// NewSocialHandler creates SocialHandler instance.
func NewSocialHandler(reviews ReviewFacade, favorites FavoriteFacade, promotions PromotionFacade) *SocialHandler {
	return &SocialHandler{reviews: reviews, favorites: favorites, promotions: promotions}
}

// PostReview handles POST /api/reviews. The author is the authenticated user;
// AuthorName is a display override for the public listing.
func (h *SocialHandler) PostReview(c *gin.Context) {
	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	userID := CurrentUserID(c)
	review, err := h.reviews.PostReview(c.Request.Context(), repository.NewReview{
		ComplexID:  req.ComplexID,
		UserID:     &userID,
		AuthorName: req.AuthorName,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewReviewResponse(review))
}

// ListReviews handles GET /api/complexes/:id/reviews.
func (h *SocialHandler) ListReviews(c *gin.Context) {
	complexID, ok := idParam(c, "id")
	if !ok {
		return
	}

	reviews, err := h.reviews.Reviews(c.Request.Context(), complexID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	items := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		items = append(items, dto.NewReviewResponse(&reviews[i]))
	}
	c.JSON(http.StatusOK, items)
}

// DeleteReview handles DELETE /api/manage/reviews/:id.
func (h *SocialHandler) DeleteReview(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.reviews.DeleteReview(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddFavorite handles POST /api/favorites.
func (h *SocialHandler) AddFavorite(c *gin.Context) {
	var req dto.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	fav, err := h.favorites.AddFavorite(c.Request.Context(), CurrentUserID(c), req.ObjectID, model.ObjectKind(req.ObjectKind))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewFavoriteResponse(fav))
}

// ListFavorites handles GET /api/favorites.
func (h *SocialHandler) ListFavorites(c *gin.Context) {
	favorites, err := h.favorites.Favorites(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	items := make([]dto.FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		items = append(items, dto.NewFavoriteResponse(&favorites[i]))
	}
	c.JSON(http.StatusOK, items)
}

// RemoveFavorite handles DELETE /api/favorites/:id.
func (h *SocialHandler) RemoveFavorite(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.favorites.RemoveFavorite(c.Request.Context(), CurrentUserID(c), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreatePromotion handles POST /api/manage/promotions.
func (h *SocialHandler) CreatePromotion(c *gin.Context) {
	var req dto.PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	promo, err := h.promotions.CreatePromotion(c.Request.Context(), req.ToPromotion(0))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewPromotionResponse(promo))
}

// GetPromotion handles GET /api/promotions/:id.
func (h *SocialHandler) GetPromotion(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	promo, err := h.promotions.Promotion(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPromotionResponse(promo))
}

// ListPromotions handles GET /api/promotions.
func (h *SocialHandler) ListPromotions(c *gin.Context) {
	promos, err := h.promotions.ActivePromotions(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	items := make([]dto.PromotionResponse, 0, len(promos))
	for i := range promos {
		items = append(items, dto.NewPromotionResponse(&promos[i]))
	}
	c.JSON(http.StatusOK, items)
}

// UpdatePromotion handles PUT /api/manage/promotions/:id.
func (h *SocialHandler) UpdatePromotion(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.promotions.UpdatePromotion(c.Request.Context(), req.ToPromotion(id)); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeletePromotion handles DELETE /api/manage/promotions/:id.
func (h *SocialHandler) DeletePromotion(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.promotions.DeletePromotion(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
