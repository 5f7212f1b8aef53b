package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/greenepidemic/greenepidemic-api/schema"
	"github.com/greenepidemic/greenepidemic-api/store"
)

func (s *Server) createSurveillancePoint(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		Name     string           `json:"name" binding:"required"`
		Location *schema.Location `json:"location" binding:"required"`
		Radius   float64          `json:"radius" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Radius <= 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	point, err := s.mongoStore.CreateSurveillancePoint(
		principal.AccountID.String(), params.Name, *params.Location, params.Radius)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": point})
}

func (s *Server) listSurveillancePoints(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	points, err := s.mongoStore.ListSurveillancePoints(principal.AccountID.String())
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"points": points})
}

func (s *Server) updateSurveillancePoint(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	pointID, err := primitive.ObjectIDFromHex(c.Param("pointID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	var params struct {
		Name     *string          `json:"name"`
		Location *schema.Location `json:"location"`
		Radius   *float64         `json:"radius"`
		Active   *bool            `json:"active"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Radius != nil && *params.Radius <= 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	err = s.mongoStore.UpdateSurveillancePoint(principal.AccountID.String(), pointID,
		store.SurveillancePointUpdate{
			Name:     params.Name,
			Location: params.Location,
			Radius:   params.Radius,
			Active:   params.Active,
		})
	if err != nil {
		if err == store.ErrSurveillancePointNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorUnknownSurveillancePoint)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) deleteSurveillancePoint(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	pointID, err := primitive.ObjectIDFromHex(c.Param("pointID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.mongoStore.DeleteSurveillancePoint(principal.AccountID.String(), pointID); err != nil {
		if err == store.ErrSurveillancePointNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorUnknownSurveillancePoint)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
