package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/greenepidemic/greenepidemic-api/schema"
)

func (s *Server) accountRegister(c *gin.Context) {
	var params struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Name     string `json:"name"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if len(params.Password) < 8 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	account, err := s.store.CreateAccount(strings.ToLower(params.Email), string(digest), params.Name)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			abortWithEncoding(c, http.StatusConflict, errorAccountTaken)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": account})
}

func (s *Server) accountDetail(c *gin.Context) {
	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": account})
}

func (s *Server) accountUpdateProfile(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		HomeLocation      *schema.HomeLocation      `json:"home_location"`
		ClearHomeLocation bool                      `json:"clear_home_location"`
		Channels          schema.ChannelPreferences `json:"channels"`
		MessengerChatID   *string                   `json:"messenger_chat_id"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := s.store.UpdateAccountProfile(principal.AccountID,
		params.HomeLocation, params.ClearHomeLocation, params.Channels, params.MessengerChatID); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
