package http

import (
	"net/http"

	"github.com/dkeye/ShareBridge/internal/app/orch"
	"github.com/dkeye/ShareBridge/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ShareRequest is a share intent as forwarded by the platform shim.
// Text stays nil when the text extra is absent.
type ShareRequest struct {
	Lifecycle string  `json:"lifecycle" form:"lifecycle"`
	Action    string  `json:"action" form:"action"`
	Type      string  `json:"type" form:"type"`
	Text      *string `json:"text" form:"text"`
}

func (r ShareRequest) Event() domain.ShareEvent {
	return domain.ShareEvent{Action: r.Action, MimeType: r.Type, Text: r.Text}
}

// shareHandler always answers 202 for a well-formed request, including one
// dropped by the rate limiter: the host has no way to act on a dropped share,
// so it is never told. Limits are per client address, since platform shims
// usually post without cookies.
func shareHandler(o *orch.Orchestrator, limiter *ShareRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetString("client_token")
		if !limiter.Allow(c.ClientIP()) {
			log.Warn().Str("module", "adapters.http").Str("ip", c.ClientIP()).Msg("share rate limited, dropped")
			c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
			return
		}

		var req ShareRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad_payload"})
			return
		}
		lc, err := domain.ParseLifecycle(req.Lifecycle)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := o.Deliver(c.Request.Context(), lc, req.Event()); err != nil {
			log.Error().Err(err).Str("module", "adapters.http").Msg("deliver share")
			status := http.StatusServiceUnavailable
			if c.Request.Context().Err() != nil {
				status = http.StatusRequestTimeout
			}
			c.JSON(status, gin.H{"error": "unavailable"})
			return
		}
		log.Debug().Str("module", "adapters.http").Str("sid", token).Str("lifecycle", lc.String()).Msg("share intake")
		c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
	}
}
