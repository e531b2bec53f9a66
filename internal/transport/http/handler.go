package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/eventbus/internal/domain"
	"github.com/Gunvolt24/eventbus/internal/ports"
	"github.com/Gunvolt24/eventbus/pkg/httpx"
)

const (
	maxBodyBytes = 1 << 20
	defaultLimit = 20
	maxLimit     = 100
)

type Handler struct {
	ingest  ports.MediaIngestService
	poison  ports.PoisonReadService
	health  ports.HealthReporter
	log     ports.Logger
	timeout time.Duration
}

// NewHandler: timeout <= 0 означает «без собственного дедлайна» (только контекст запроса).
func NewHandler(
	ingest ports.MediaIngestService,
	poison ports.PoisonReadService,
	health ports.HealthReporter,
	log ports.Logger,
	timeout time.Duration,
) *Handler {
	return &Handler{ingest: ingest, poison: poison, health: health, log: log, timeout: timeout}
}

func (h *Handler) reqContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

type healthResponse struct {
	Status            string `json:"status"`
	Consumer          string `json:"consumer"`
	ProducerConnected bool   `json:"producer_connected"`
}

// healthz: 200, пока консьюмер не в терминальном состоянии и продьюсер на связи.
func (h *Handler) healthz(c *gin.Context) {
	state := h.health.ConsumerState()
	resp := healthResponse{
		Status:            "ok",
		Consumer:          state.String(),
		ProducerConnected: h.health.ProducerConnected(),
	}
	code := http.StatusOK
	if state.Terminal() || !resp.ProducerConnected {
		resp.Status = "degraded"
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, resp)
}

func (h *Handler) publishUploaded(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	var ev domain.MediaUploaded
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json: " + err.Error()})
		return
	}

	ctx, cancel := h.reqContext(c)
	defer cancel()

	err := h.ingest.PublishUploaded(ctx, &ev)
	var (
		serr *domain.SerializationError
		cerr *domain.ConnectionError
	)
	switch {
	case err == nil:
		c.JSON(http.StatusAccepted, gin.H{"status": "accepted", "media_id": ev.MediaID})
	case errors.As(err, &serr):
		c.JSON(http.StatusBadRequest, gin.H{"error": serr.Err.Error()})
	case errors.As(err, &cerr), errors.Is(err, domain.ErrNotConnected):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "broker unavailable"})
	default:
		h.log.Errorf(ctx, "PublishUploaded failed media_id=%s err=%v", ev.MediaID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func (h *Handler) listPoison(c *gin.Context) {
	page, err := httpx.ParsePage(c, defaultLimit, maxLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	topic := c.Query("topic")

	ctx, cancel := h.reqContext(c)
	defer cancel()

	recs, err := h.poison.ListPoison(ctx, topic, page.Limit, page.Offset)
	if err != nil {
		h.log.Errorf(ctx, "ListPoison failed topic=%q err=%v", topic, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, recs)
}
