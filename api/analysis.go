package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenepidemic/greenepidemic-api/schema"
)

func (s *Server) listAnalyses(c *gin.Context) {
	var params struct {
		Limit int64 `form:"limit"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	analyses, err := s.mongoStore.ListAnalyses(params.Limit)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"analyses": analyses})
}

// adminGenerateAnalysis produces a fresh analysis, or answers with the
// cached latest one when the cooldown has not elapsed and the request
// does not force regeneration.
func (s *Server) adminGenerateAnalysis(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		HoursBack int  `json:"hours_back"`
		Force     bool `json:"force"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if !params.Force {
		due, err := s.analyzer.ShouldGenerate()
		if shouldInterupt(err, c) {
			return
		}
		if !due {
			latest, err := s.mongoStore.GetLatestAnalysis()
			if shouldInterupt(err, c) {
				return
			}
			c.JSON(http.StatusOK, gin.H{"result": latest, "generated": false})
			return
		}
	}

	originator := fmt.Sprintf("admin:%s", principal.AccountID)
	generated, err := s.analyzer.Generate(c.Request.Context(), originator, params.HoursBack)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": generated, "generated": true})
}

// cronGenerateAnalysis is the scheduler entrypoint. A generation
// within the cooldown window is skipped, not an error.
func (s *Server) cronGenerateAnalysis(c *gin.Context) {
	due, err := s.analyzer.ShouldGenerate()
	if shouldInterupt(err, c) {
		return
	}

	if !due {
		c.JSON(http.StatusOK, gin.H{"result": "skipped"})
		return
	}

	generated, err := s.analyzer.Generate(c.Request.Context(), schema.AnalysisOriginCron, 0)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": generated})
}
