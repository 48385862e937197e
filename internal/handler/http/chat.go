package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/attendly/attendly-backend/internal/domain/auth"
	"github.com/attendly/attendly-backend/internal/domain/chat"
	"github.com/attendly/attendly-backend/internal/handler/http/middleware"
	"github.com/attendly/attendly-backend/internal/handler/http/response"
)

type ChatHandler interface {
	Query(w http.ResponseWriter, r *http.Request)
}

type chatHandlerImpl struct {
	chatService chat.ChatService
}

func NewChatHandler(chatService chat.ChatService) ChatHandler {
	return &chatHandlerImpl{
		chatService: chatService,
	}
}

// Query implements ChatHandler.
func (h *chatHandlerImpl) Query(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.UserID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var req chat.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.chatService.Query(r.Context(), employeeID, req, time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
