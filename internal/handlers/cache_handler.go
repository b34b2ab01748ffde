package handlers

import (
	"errors"
	"log"
	"net/http"

	"lru-cache-api/internal/cache"
	"lru-cache-api/internal/service"

	"github.com/gin-gonic/gin"
)

// PutRecordRequest represents the request payload for storing a value
type PutRecordRequest struct {
	Value *string `json:"value" binding:"required"`
}

// CacheHandler serves the record and cache inspection endpoints.
type CacheHandler struct {
	svc *service.RecordService
}

// NewCacheHandler returns a handler backed by svc.
func NewCacheHandler(svc *service.RecordService) *CacheHandler {
	return &CacheHandler{svc: svc}
}

// GetRecord handles GET /api/records/:key
// Serves from the cache, loading from the store on a miss.
func (h *CacheHandler) GetRecord(c *gin.Context) {
	key := c.Param("key")

	value, source, err := h.svc.Lookup(key)
	if err != nil {
		h.writeError(c, err, "Failed to fetch record")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"key":    key,
		"value":  value,
		"source": source,
	})
}

// PutRecord handles PUT /api/records/:key
func (h *CacheHandler) PutRecord(c *gin.Context) {
	key := c.Param("key")

	var req PutRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.svc.Store(key, *req.Value); err != nil {
		h.writeError(c, err, "Failed to store record")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"key":   key,
		"value": *req.Value,
	})
}

// DeleteRecord handles DELETE /api/records/:key
func (h *CacheHandler) DeleteRecord(c *gin.Context) {
	key := c.Param("key")

	if err := h.svc.Delete(key); err != nil {
		h.writeError(c, err, "Failed to delete record")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Record deleted successfully",
		"key":     key,
	})
}

// Snapshot handles GET /api/cache
// Returns every cached entry; map order carries no meaning.
func (h *CacheHandler) Snapshot(c *gin.Context) {
	entries := h.svc.Snapshot()
	stats := h.svc.Stats()
	c.JSON(http.StatusOK, gin.H{
		"entries":  entries,
		"size":     len(entries),
		"capacity": stats.Capacity,
	})
}

// Keys handles GET /api/cache/keys
func (h *CacheHandler) Keys(c *gin.Context) {
	keys := h.svc.Keys()
	c.JSON(http.StatusOK, gin.H{
		"keys":  keys,
		"count": len(keys),
	})
}

// StatsResponse is the cache counters plus the number of stored records.
type StatsResponse struct {
	cache.Stats
	Records int64 `json:"records"`
}

// Stats handles GET /api/cache/stats
func (h *CacheHandler) Stats(c *gin.Context) {
	records, err := h.svc.RecordCount()
	if err != nil {
		h.writeError(c, err, "Failed to count records")
		return
	}
	c.JSON(http.StatusOK, StatsResponse{Stats: h.svc.Stats(), Records: records})
}

// Purge handles DELETE /api/cache
// Empties the cache without touching stored records.
func (h *CacheHandler) Purge(c *gin.Context) {
	h.svc.Purge()
	c.JSON(http.StatusOK, gin.H{"message": "Cache cleared"})
}

func (h *CacheHandler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case errors.Is(err, cache.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
