package api

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BraidFI-AI/sanctions-engine/internal/db"
	"github.com/BraidFI-AI/sanctions-engine/internal/index"
	"github.com/BraidFI-AI/sanctions-engine/internal/search"
	"github.com/BraidFI-AI/sanctions-engine/internal/trace"
	"github.com/BraidFI-AI/sanctions-engine/pkg/models"
)

// APIHandler holds every boundary collaborator the HTTP routes need.
// auditStore and traceHub are optional (nil-safe); the core search path
// never depends on either.
type APIHandler struct {
	engine     *search.Engine
	idx        *index.Index
	auditStore *db.AuditStore
	traceHub   *TraceHub
}

// SetupRouter builds the gin engine: CORS, public endpoints, and
// bearer-token-guarded/rate-limited protected endpoints, adapted from
// the teacher's route-group layout.
func SetupRouter(engine *search.Engine, idx *index.Index, auditStore *db.AuditStore, traceHub *TraceHub) *gin.Engine {
	r := gin.Default()

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if allowedOrigins == "" || allowedOrigins == "*" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else {
			for _, allowed := range strings.Split(allowedOrigins, ",") {
				if strings.TrimSpace(allowed) == origin {
					c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
					break
				}
			}
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	handler := &APIHandler{engine: engine, idx: idx, auditStore: auditStore, traceHub: traceHub}

	pub := r.Group("/api/v1")
	{
		pub.GET("/health", handler.handleHealth)
		pub.GET("/trace/stream", traceHub.Subscribe)
		pub.POST("/search", handler.handleSearch)
		pub.POST("/search/batch", handler.handleSearchBatch)
	}

	auth := r.Group("/api/v1")
	auth.Use(AuthMiddleware())
	auth.Use(NewRateLimiter(30, 5).Middleware())
	{
		auth.POST("/ingest", handler.handleIngest)
	}

	return r
}

func requestID(provided string) string {
	if provided != "" {
		return provided
	}
	return uuid.NewString()
}

func (h *APIHandler) handleSearch(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.RequestID = requestID(req.RequestID)

	var tc trace.Context = trace.Disabled()
	if req.Trace {
		tc = trace.NewEnabled()
	}

	result := h.engine.Search(req.Query, req.Limit, req.MinScore, req.ConfigOverride, tc)

	resp := models.SearchResponse{
		RequestID: req.RequestID,
		Hits:      result.Hits,
		Total:     len(result.Hits),
	}
	if req.Trace {
		resp.ReportURL = "/api/v1/trace/stream"
		if h.traceHub != nil {
			h.traceHub.BroadcastEvents(req.RequestID, tc.Events())
		}
	}

	h.recordAudit(c, req.RequestID, req.Query.Name, resp)

	c.JSON(http.StatusOK, resp)
}

func (h *APIHandler) handleSearchBatch(c *gin.Context) {
	var req models.BatchSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.RequestID = requestID(req.RequestID)
	for i := range req.Items {
		if req.Items[i].Limit == 0 {
			req.Items[i].Limit = req.Limit
		}
		if req.Items[i].MinScore == 0 {
			req.Items[i].MinScore = req.MinScore
		}
	}

	results, err := h.engine.SearchBatch(c.Request.Context(), req.Items)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for i, r := range results {
		if r.Response != nil {
			h.recordAudit(c, r.Response.RequestID, req.Items[i].Query.Name, *r.Response)
		}
	}

	c.JSON(http.StatusOK, models.BatchSearchResponse{RequestID: req.RequestID, Results: results})
}

func (h *APIHandler) handleIngest(c *gin.Context) {
	var req models.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	count := h.ingest(req)

	c.JSON(http.StatusCreated, models.IngestResponse{
		Source:     req.Source,
		Mode:       req.Mode,
		EntitiesIn: count,
		IndexSize:  h.idx.Current().Size(),
	})
}

func (h *APIHandler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "operational",
		IndexSize: h.idx.Current().Size(),
	})
}

func (h *APIHandler) recordAudit(c *gin.Context, requestID, queryName string, resp models.SearchResponse) {
	if h.auditStore == nil {
		return
	}
	topScore := 0.0
	matched := ""
	if len(resp.Hits) > 0 {
		topScore = resp.Hits[0].Score
		matched = resp.Hits[0].EntityID
	}
	go func() {
		if err := h.auditStore.RecordDecision(c.Request.Context(), auditDecision(requestID, queryName, topScore, matched)); err != nil {
			// fire-and-forget: a logging failure never affects the response already sent
			_ = err
		}
	}()
}

func auditDecision(requestID, queryName string, topScore float64, matched string) db.Decision {
	return db.Decision{
		RequestID:     requestID,
		QueryName:     queryName,
		TopScore:      topScore,
		MatchedEntity: matched,
		DecidedAt:     time.Now(),
	}
}
