package handlers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/biosecret/go-tasks/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

const (
	sseRetryMillis    = 15000
	sseKeepAlive      = 15 * time.Second
	sseKeepAliveFrame = ":keepalive\n\n"
)

func formatSSEMessage(eventType string, data any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)

	if err := enc.Encode(map[string]any{"data": data}); err != nil {
		return "", err
	}

	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("event: %s\n", eventType))
	sb.WriteString(fmt.Sprintf("retry: %d\n", sseRetryMillis))
	sb.WriteString(fmt.Sprintf("data: %s\n\n", strings.TrimRight(buf.String(), "\n")))
	return sb.String(), nil
}

// HandleEvents godoc
// @Summary Luồng Server-Sent Events của các thay đổi user/task
// @Tags misc
// @Produce text/event-stream
// @Security ApiKeyAuth
// @Success 200 {string} string
// @Router /events [get]
func (h *Handler) HandleEvents(c *fiber.Ctx) error {
	if h.hub == nil {
		return utils.SendResponse(c, utils.Empty(), "Event stream disabled.", utils.CodeBusiness, fiber.StatusServiceUnavailable)
	}

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("Transfer-Encoding", "chunked")

	id, err := utils.ClientID("sse")
	if err != nil {
		return utils.SendErrorResponse(c, err)
	}
	sub := h.hub.Subscribe(id)
	log := h.log.With().Str("subscriber", id).Logger()
	log.Info().Msg("event stream opened")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		keepAlive := time.NewTicker(sseKeepAlive)
		defer keepAlive.Stop()
		defer h.hub.Unsubscribe(sub)

		for {
			select {
			case ev, ok := <-sub.C:
				if !ok {
					log.Info().Msg("event stream closed by server")
					return
				}
				msg, err := formatSSEMessage(ev.Type, ev)
				if err != nil {
					log.Error().Err(err).Msg("format sse message")
					continue
				}
				if _, err := w.WriteString(msg); err != nil {
					log.Debug().Err(err).Msg("write sse message")
					return
				}
				if err := w.Flush(); err != nil {
					log.Debug().Err(err).Msg("event stream closed by client")
					return
				}
			case <-keepAlive.C:
				if _, err := w.WriteString(sseKeepAliveFrame); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					log.Debug().Err(err).Msg("event stream closed by client")
					return
				}
			}
		}
	}))

	return nil
}
