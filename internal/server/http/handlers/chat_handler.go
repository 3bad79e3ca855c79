package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snacksprint/storefront/internal/server/http/dto"
)

// ChatHandler processes support chat questions.
type ChatHandler struct {
	facade ChatFacade
}

// NewChatHandler creates ChatHandler instance.
func NewChatHandler(facade ChatFacade) *ChatHandler {
	return &ChatHandler{facade: facade}
}

// Ask handles POST /api/chat. Empty questions are answered by the resolver,
// not rejected.
func (h *ChatHandler) Ask(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	msg, err := h.facade.Ask(c.Request.Context(), CurrentUserID(c), req.Question)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.NewChatMessageResponse(*msg))
}

// History handles GET /api/chat/history.
func (h *ChatHandler) History(c *gin.Context) {
	messages, err := h.facade.ChatHistory(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(messages) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.NewChatMessageResponses(messages))
}
