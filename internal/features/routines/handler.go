package routines

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/skincare/internal/middleware"
	"github.com/xyz-asif/skincare/internal/pkg/cache"
	"github.com/xyz-asif/skincare/internal/pkg/logger"
	"github.com/xyz-asif/skincare/internal/pkg/response"
	"github.com/xyz-asif/skincare/internal/pkg/validator"
	apperrors "github.com/xyz-asif/skincare/pkg/errors"
)

// Mutations bump topBrandsGenKey. A report is cached under the generation
// read before it was computed, so a write racing an invalidation lands on
// a key no later reader asks for.
const topBrandsGenKey = "stats:top_brands:gen"

// topBrandsKey holds the longest allowed report; shorter limits are prefixes of it.
func topBrandsKey(gen int64) string {
	return fmt.Sprintf("stats:top_brands:%d", gen)
}

// Store is the routine persistence used by the handler
type Store interface {
	Create(ctx context.Context, name, ownerEmail string) (primitive.ObjectID, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]Routine, error)
	AddStep(ctx context.Context, id primitive.ObjectID, ownerEmail string, ref ProductRef) error
	RemoveStep(ctx context.Context, id primitive.ObjectID, ownerEmail, productName string) (RemovalOutcome, error)
	TopBrands(ctx context.Context, limit int) ([]BrandCount, error)
}

// Recorder receives routine metrics
type Recorder interface {
	RoutineStep(operation, outcome string)
	CacheLookup(hit bool)
}

type Handler struct {
	store    Store
	cache    cache.Cache
	cacheTTL time.Duration
	metrics  Recorder
}

func NewHandler(store Store, statsCache cache.Cache, cacheTTL time.Duration, metrics Recorder) *Handler {
	if statsCache == nil {
		statsCache = cache.Noop{}
	}
	return &Handler{
		store:    store,
		cache:    statsCache,
		cacheTTL: cacheTTL,
		metrics:  metrics,
	}
}

// Create godoc
// @Summary Create a routine
// @Description Creates an empty routine owned by the caller. user_email must match the token subject.
// @Tags routines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRoutineRequest true "Routine data"
// @Success 200 {object} CreateRoutineResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /routines [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateCreateRoutine(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	if req.UserEmail != middleware.CurrentEmail(c) {
		response.AuthorizationError(c, "Cannot create routines for another user")
		return
	}

	id, err := h.store.Create(c.Request.Context(), req.Name, req.UserEmail)
	if err != nil {
		logger.Error("create routine: %v", err)
		response.DatabaseError(c, "Failed to create routine")
		return
	}

	response.OK(c, CreateRoutineResponse{ID: id.Hex()})
}

// List godoc
// @Summary List a user's routines
// @Tags routines
// @Produce json
// @Security BearerAuth
// @Param user_email path string true "Owner email"
// @Success 200 {array} Routine
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /routines/{user_email} [get]
func (h *Handler) List(c *gin.Context) {
	owner := c.Param("user_email")
	if owner != middleware.CurrentEmail(c) {
		response.AuthorizationError(c, "Cannot list routines of another user")
		return
	}

	routines, err := h.store.ListByOwner(c.Request.Context(), owner)
	if err != nil {
		logger.Error("list routines: %v", err)
		response.DatabaseError(c, "Failed to get routines")
		return
	}

	response.OK(c, routines)
}

// AddStep godoc
// @Summary Append a product to a routine
// @Tags routines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Routine ID"
// @Param request body AddStepRequest true "Product to append"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /routines/{id}/add_step [put]
func (h *Handler) AddStep(c *gin.Context) {
	var req AddStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateAddStep(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	id, ok := validator.ParseObjectID(c.Param("id"))
	if !ok {
		response.InvalidID(c)
		return
	}

	ctx := c.Request.Context()
	err := h.store.AddStep(ctx, id, middleware.CurrentEmail(c), ProductRef{Name: req.Name, Brand: req.Brand})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			h.metrics.RoutineStep("add", string(RoutineNotFound))
			response.NotFound(c, "Routine not found", "ROUTINE_NOT_FOUND")
			return
		}
		logger.Error("add step: %v", err)
		response.DatabaseError(c, "Failed to add step")
		return
	}

	h.metrics.RoutineStep("add", "STEP_ADDED")
	h.invalidateStats(ctx)
	response.Message(c, "Step added successfully")
}

// RemoveStep godoc
// @Summary Remove a product from a routine
// @Description Removes every entry with the given product name. A missing routine and a missing product are both reported with 200 and distinct outcomes.
// @Tags routines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Routine ID"
// @Param request body RemoveStepRequest true "Product name"
// @Success 200 {object} RemoveStepResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /routines/{id}/remove_step [put]
func (h *Handler) RemoveStep(c *gin.Context) {
	var req RemoveStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateRemoveStep(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	id, ok := validator.ParseObjectID(c.Param("id"))
	if !ok {
		response.InvalidID(c)
		return
	}

	ctx := c.Request.Context()
	outcome, err := h.store.RemoveStep(ctx, id, middleware.CurrentEmail(c), req.ProductName)
	if err != nil {
		logger.Error("remove step: %v", err)
		response.DatabaseError(c, "Failed to remove step")
		return
	}

	h.metrics.RoutineStep("remove", string(outcome))
	if outcome == StepRemoved {
		h.invalidateStats(ctx)
	}
	response.OK(c, RemoveStepResponse{Message: outcome.Message(), Outcome: outcome})
}

// TopBrands godoc
// @Summary Most used brands across all routines
// @Tags stats
// @Produce json
// @Param limit query int false "Number of brands (1-50, default 5)"
// @Success 200 {array} BrandCount
// @Failure 400 {object} response.ErrorResponse
// @Router /stats/top_brands [get]
func (h *Handler) TopBrands(c *gin.Context) {
	limit, err := ParseTopBrandsLimit(c.Query("limit"))
	if err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	ctx := c.Request.Context()

	var stats []BrandCount
	hit := false
	gen, genErr := h.cache.Generation(ctx, topBrandsGenKey)
	if genErr != nil {
		logger.Warn("read top brands generation: %v", genErr)
	} else if hit, err = h.cache.GetJSON(ctx, topBrandsKey(gen), &stats); err != nil {
		logger.Warn("read top brands cache: %v", err)
		hit = false
	}
	h.metrics.CacheLookup(hit)

	if !hit {
		stats, err = h.store.TopBrands(ctx, maxTopBrandsLimit)
		if err != nil {
			logger.Error("top brands: %v", err)
			response.DatabaseError(c, "Failed to compute brand stats")
			return
		}
		if genErr == nil {
			if err := h.cache.SetJSON(ctx, topBrandsKey(gen), stats, h.cacheTTL); err != nil {
				logger.Warn("write top brands cache: %v", err)
			}
		}
	}

	if stats == nil {
		stats = []BrandCount{}
	}
	if len(stats) > limit {
		stats = stats[:limit]
	}
	response.OK(c, stats)
}

func (h *Handler) invalidateStats(ctx context.Context) {
	gen, err := h.cache.Bump(ctx, topBrandsGenKey)
	if err != nil {
		logger.Warn("bump top brands generation: %v", err)
		return
	}
	// the old entry is unreachable now; dropping it early just frees memory
	if err := h.cache.Delete(ctx, topBrandsKey(gen-1)); err != nil {
		logger.Warn("invalidate top brands cache: %v", err)
	}
}
