package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenepidemic/greenepidemic-api/external/ai"
)

// assistantChat relays a conversation turn to the AI health assistant.
func (s *Server) assistantChat(c *gin.Context) {
	var params struct {
		Message string       `json:"message" binding:"required"`
		History []ai.Message `json:"history"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	answer, err := s.aiClient.Chat(c.Request.Context(), params.History, params.Message)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": answer})
}
