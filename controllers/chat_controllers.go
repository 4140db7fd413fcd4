package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flexipack-labs/order-portal/chatstream"
	"github.com/flexipack-labs/order-portal/upstream"
	"github.com/flexipack-labs/order-portal/utils"
)

type ChatController struct {
	Upstream *upstream.Client
}

func NewChatController(client *upstream.Client) *ChatController {
	return &ChatController{Upstream: client}
}

// Relay forwards a chat query upstream and re-emits its event stream to
// the browser in arrival order. The exchange state machine enforces the
// terminal guarantee: once a complete or error event has gone out, nothing
// else follows, and any transport failure still surfaces as an error
// event. Concurrent sends from one client are not guarded against.
func (cc *ChatController) Relay(c *gin.Context) {
	var req struct {
		Query string `json:"query" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	log := chatstream.NewConversationLog()
	exchange := chatstream.NewExchange(log)
	exchange.Send(req.Query)

	body, err := cc.Upstream.Chat(c.Request.Context(), req.Query)
	if err != nil {
		utils.ErrorLogger.Printf("chat: upstream: %v", err)
		exchange.Fail()
		writeChatEvent(c, chatstream.Event{Type: chatstream.EventError})
		return
	}
	defer body.Close()

	parser := &chatstream.Parser{}
	buf := make([]byte, 4096)

	for {
		n, readErr := body.Read(buf)
		if n > 0 {
			for _, ev := range parser.Feed(buf[:n]) {
				cc.apply(c, exchange, ev)
			}
		}
		if readErr == io.EOF {
			for _, ev := range parser.Flush() {
				cc.apply(c, exchange, ev)
			}
			break
		}
		if readErr != nil {
			utils.ErrorLogger.Printf("chat: reading stream: %v", readErr)
			break
		}
		if exchange.Done() {
			break
		}
	}

	// A stream that ended without a terminal event still resolves the
	// placeholder.
	if !exchange.Done() {
		exchange.Fail()
		writeChatEvent(c, chatstream.Event{Type: chatstream.EventError})
	}
}

func (cc *ChatController) apply(c *gin.Context, exchange *chatstream.Exchange, ev chatstream.Event) {
	if exchange.Done() {
		return
	}
	exchange.Apply(ev)
	writeChatEvent(c, ev)
}

func writeChatEvent(c *gin.Context, ev chatstream.Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}
	fmt.Fprintf(c.Writer, "data: %s\n\n", payload)
	c.Writer.Flush()
}
