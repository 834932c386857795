package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"remitscan/internal/domain"
	"remitscan/internal/metrics"
	"remitscan/internal/relay"
	"remitscan/internal/upstream"
)

// ExtractHandler relays document extraction requests to the upstream model.
type ExtractHandler struct {
	client  *upstream.Client
	profile relay.Profile
	keySet  bool
}

// NewExtractHandler creates an ExtractHandler bound to one platform profile.
func NewExtractHandler(client *upstream.Client, profile relay.Profile, keySet bool) *ExtractHandler {
	return &ExtractHandler{client: client, profile: profile, keySet: keySet}
}

// Extract handles POST /extract. Each request is an independent transaction:
// validate, issue exactly one upstream call under the profile deadline, and
// map the outcome. On success the upstream JSON body is returned unmodified.
func (h *ExtractHandler) Extract(c *gin.Context) {
	// No call can succeed without a credential, so this precedes validation.
	if !h.keySet {
		metrics.ObserveRequest("config_error")
		HandleError(c, domain.ErrMissingAPIKey)
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		metrics.ObserveRequest("transport_error")
		HandleError(c, err)
		return
	}

	block, err := relay.Validate(body, h.profile.MaxUploadBytes)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			metrics.ObserveRequest("rejected")
		} else {
			metrics.ObserveRequest("transport_error")
		}
		HandleError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.profile.Deadline)
	defer cancel()

	start := time.Now()
	result, err := h.client.Extract(ctx, block, relay.BuildCouponPrompt())
	metrics.ObserveUpstream(h.client.Model(), time.Since(start))

	if err != nil {
		observeFailure(err)
		HandleError(c, err)
		return
	}

	metrics.ObserveRequest("success")
	c.Data(http.StatusOK, "application/json", result)
}

func observeFailure(err error) {
	switch {
	case errors.Is(err, domain.ErrUpstreamTimeout):
		metrics.ObserveRequest("timeout")
		metrics.ObserveUpstreamError("timeout")
	case errors.Is(err, domain.ErrTransport):
		metrics.ObserveRequest("transport_error")
		metrics.ObserveUpstreamError("transport")
	case errors.Is(err, domain.ErrUpstreamAuth):
		metrics.ObserveRequest("upstream_error")
		metrics.ObserveUpstreamError("auth")
	case errors.Is(err, domain.ErrUpstreamRateLimited):
		metrics.ObserveRequest("upstream_error")
		metrics.ObserveUpstreamError("rate_limited")
	case errors.Is(err, domain.ErrUpstreamBadRequest):
		metrics.ObserveRequest("upstream_error")
		metrics.ObserveUpstreamError("bad_request")
	default:
		metrics.ObserveRequest("upstream_error")
		metrics.ObserveUpstreamError("other")
	}
}
