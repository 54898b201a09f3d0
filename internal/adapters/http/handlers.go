package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"matchlobby/internal/app"
	"matchlobby/internal/domain"
)

type JoinResponse struct {
	Message string `json:"message"`
	RoomID  string `json:"roomId"`
}

type handlers struct {
	alloc *app.Allocator
}

func sessionID(c *gin.Context) domain.SessionID {
	return domain.SessionID(c.GetString("session_id"))
}

func (h *handlers) join(c *gin.Context) {
	out := h.alloc.Join(sessionID(c))
	c.JSON(http.StatusOK, JoinResponse{Message: out.Kind.Message(), RoomID: string(out.Room)})
}

func (h *handlers) joinRoom(c *gin.Context) {
	roomID := domain.RoomID(c.Param("roomId"))
	out, err := h.alloc.JoinRoom(sessionID(c), roomID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found."})
		case errors.Is(err, domain.ErrRoomClosed):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Room is already full. You can't join."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get response"})
		}
		return
	}
	c.JSON(http.StatusOK, JoinResponse{Message: out.Kind.Message(), RoomID: string(out.Room)})
}

func (h *handlers) reset(c *gin.Context) {
	h.alloc.Reset()
	c.JSON(http.StatusOK, gin.H{"message": "Server state reset"})
}

func (h *handlers) rooms(c *gin.Context) {
	c.JSON(http.StatusOK, h.alloc.Rooms())
}
