package http

import (
	"encoding/json"
	"net/http"

	"tweet-insights-srv/internal/chat"
	"tweet-insights-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const contentTypeNDJSON = "application/x-ndjson"

// Chat - Stream a grounded answer as newline-delimited JSON
// @Summary Chat over indexed tweets
// @Tags Chat
// @Accept json
// @Produce application/x-ndjson
// @Param body body chatReq true "Conversation so far, last message from the user"
// @Success 200 {object} chunkResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/chat [post]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processChatRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "chat.delivery.http.Chat: processChatRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Stream events; the status line is committed on the first event
	started := false
	enc := json.NewEncoder(c.Writer)
	emit := func(ev chat.Event) error {
		if !started {
			c.Header("Content-Type", contentTypeNDJSON)
			c.Header("Cache-Control", "no-cache")
			c.Status(http.StatusOK)
			started = true
		}
		if err := enc.Encode(newChunkResp(ev)); err != nil {
			return err
		}
		c.Writer.Flush()
		return nil
	}

	// 3. Call UseCase
	if err := h.uc.Stream(ctx, req.toInput(), emit); err != nil {
		if !started {
			h.l.Warnf(ctx, "chat.delivery.http.Chat: usecase Stream rejected input: %v", err)
			response.Error(c, h.mapError(err), h.discord)
			return
		}
		h.l.Errorf(ctx, "chat.delivery.http.Chat: stream ended with error: %v", err)
	}
}
