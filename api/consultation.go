package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/greenepidemic/greenepidemic-api/store"
)

func (s *Server) createConsultation(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		DoctorName   string    `json:"doctor_name" binding:"required"`
		ScheduledAt  time.Time `json:"scheduled_at" binding:"required"`
		Reason       string    `json:"reason"`
		AssessmentID string    `json:"assessment_id"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.ScheduledAt.Before(time.Now()) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	consultation, err := s.store.CreateConsultation(principal.AccountID,
		params.DoctorName, params.ScheduledAt, params.Reason, params.AssessmentID)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": consultation})
}

func (s *Server) listConsultations(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	consultations, err := s.store.ListConsultations(principal.AccountID)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"consultations": consultations})
}

func (s *Server) cancelConsultation(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	consultationID, err := uuid.Parse(c.Param("consultationID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	var params struct {
		Action string `json:"action" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Action != "cancel" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.store.CancelConsultation(principal.AccountID, consultationID); err != nil {
		switch err {
		case store.ErrConsultationNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorConsultationNotFound)
		case store.ErrConsultationFinalized:
			abortWithEncoding(c, http.StatusBadRequest, errorConsultationFinalized)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
