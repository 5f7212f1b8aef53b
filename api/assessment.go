package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/greenepidemic/greenepidemic-api/schema"
	"github.com/greenepidemic/greenepidemic-api/score"
	"github.com/greenepidemic/greenepidemic-api/store"
)

func (s *Server) createRiskAssessment(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		Symptoms []string         `json:"symptoms"`
		Severity int              `json:"severity" binding:"required"`
		Age      int              `json:"age"`
		Gender   string           `json:"gender"`
		Location *schema.Location `json:"location"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Severity < 1 || params.Severity > 5 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}
	// age 0 is a valid newborn case, so presence cannot be enforced
	// through binding
	if params.Age < 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	result := score.AssessRisk(params.Symptoms, params.Severity, params.Age)

	assessment := &schema.RiskAssessment{
		AccountID:      principal.AccountID.String(),
		Age:            params.Age,
		Gender:         params.Gender,
		Symptoms:       params.Symptoms,
		Severity:       params.Severity,
		Score:          result.Score,
		RiskLevel:      result.RiskLevel,
		Priority:       result.Priority,
		Recommendation: result.Recommendation,
	}
	if params.Location != nil {
		point := schema.NewPoint(*params.Location)
		assessment.Location = &point
	}

	assessment, err := s.mongoStore.CreateRiskAssessment(assessment)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": assessment})
}

func (s *Server) listRiskAssessments(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	assessments, err := s.mongoStore.ListRiskAssessments(principal.AccountID.String(), 0)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"assessments": assessments})
}

func (s *Server) adminAnnotateAssessment(c *gin.Context) {
	assessmentID, err := primitive.ObjectIDFromHex(c.Param("assessmentID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	var params struct {
		Note string `json:"note" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := s.mongoStore.AnnotateRiskAssessment(assessmentID, params.Note); err != nil {
		if err == store.ErrAssessmentNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAssessmentNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
