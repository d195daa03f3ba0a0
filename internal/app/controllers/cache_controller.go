package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/utpgestion/academico/internal/app/models/dto"
	"github.com/utpgestion/academico/internal/middleware"
)

// CacheController exposes raw key-value access to the cache store for
// operational inspection. Admin-only.
type CacheController struct {
	client *redis.Client
}

// NewCacheController creates a new CacheController
func NewCacheController(client *redis.Client) *CacheController {
	return &CacheController{client: client}
}

type cacheEntry struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// SetKey stores a raw string value under a key
// @Summary Set a raw cache key
// @Tags cache
// @Accept json
// @Produce json
// @Param request body cacheEntry true "Key and value"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /cache/set [post]
func (c *CacheController) SetKey(ctx *gin.Context) {
	var entry cacheEntry
	if err := ctx.ShouldBindJSON(&entry); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid cache entry")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.client.Set(ctx.Request.Context(), entry.Key, entry.Value, 0).Err(); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "key stored"}})
}

// GetKey returns the raw string value stored under a key
// @Summary Get a raw cache key
// @Tags cache
// @Produce json
// @Param key query string true "Cache key"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Key not found"
// @Router /cache/get [get]
func (c *CacheController) GetKey(ctx *gin.Context) {
	key := ctx.Query("key")
	if key == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing key parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	value, err := c.client.Get(ctx.Request.Context(), key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Key not found")
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: cacheEntry{Key: key, Value: value}})
}

// DeleteKey removes a key from the cache store
// @Summary Delete a raw cache key
// @Tags cache
// @Produce json
// @Param key path string true "Cache key"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /cache/{key} [delete]
func (c *CacheController) DeleteKey(ctx *gin.Context) {
	if err := c.client.Del(ctx.Request.Context(), ctx.Param("key")).Err(); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "key deleted"}})
}
