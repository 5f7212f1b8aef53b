package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/greenepidemic/greenepidemic-api/external/geoinfo"
	"github.com/greenepidemic/greenepidemic-api/fanout"
	"github.com/greenepidemic/greenepidemic-api/schema"
	"github.com/greenepidemic/greenepidemic-api/store"
)

func validCategory(category string) bool {
	for _, c := range schema.ReportCategories {
		if c == category {
			return true
		}
	}
	return false
}

func (s *Server) createReport(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var params struct {
		Category    string   `json:"category" binding:"required"`
		Latitude    float64  `json:"latitude"`
		Longitude   float64  `json:"longitude"`
		Title       string   `json:"title" binding:"required"`
		Description string   `json:"description"`
		Symptoms    []string `json:"symptoms"`
		Severity    int      `json:"severity" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if !validCategory(params.Category) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidReportCategory)
		return
	}
	if params.Severity < 1 || params.Severity > 5 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	loc := schema.Location{Latitude: params.Latitude, Longitude: params.Longitude}

	report := &schema.Report{
		AccountID:   principal.AccountID.String(),
		Category:    params.Category,
		Title:       params.Title,
		Description: params.Description,
		Symptoms:    params.Symptoms,
		Severity:    params.Severity,
		Location:    schema.NewPoint(loc),
	}

	// tag the region when the geocoder is configured; a failure only
	// loses the tags
	if s.geoClient != nil {
		if results, err := s.geoClient.Get(loc); err == nil {
			report.Country, report.County = geoinfo.ExtractPolitical(results)
		} else {
			log.WithError(err).Warn("report region tagging failed")
		}
	}

	report, err := s.mongoStore.CreateReport(report)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	// best effort: a fan-out failure never fails the submission
	fanout.Run(s.store, report)
	s.enqueueNotificationDelivery()

	c.JSON(http.StatusOK, gin.H{"result": report})
}

// listReportParams are the typed query filters for report listing.
type listReportParams struct {
	Category string `form:"category"`
	Limit    int64  `form:"limit"`
}

func (s *Server) listReports(c *gin.Context) {
	var params listReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	// non-admin callers only see approved reports
	reports, err := s.mongoStore.ListReports(store.ReportQueryParams{
		Status:   schema.ReportStatusApproved,
		Category: params.Category,
		Limit:    params.Limit,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

func (s *Server) getReport(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	reportID, err := primitive.ObjectIDFromHex(c.Param("reportID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	report, err := s.mongoStore.GetReport(reportID)
	if err != nil {
		if err == store.ErrReportNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorReportNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	// unapproved reports stay visible to their submitter and admins only
	if report.Status != schema.ReportStatusApproved &&
		report.AccountID != principal.AccountID.String() &&
		principal.Role != schema.RoleAdmin {
		abortWithEncoding(c, http.StatusNotFound, errorReportNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": report})
}

// enqueueNotificationDelivery asks the background worker to flush the
// unsent notification queue. Losing the task only delays delivery
// until the next trigger.
func (s *Server) enqueueNotificationDelivery() {
	if s.background == nil {
		return
	}
	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "deliver_notifications",
	}); err != nil {
		log.WithError(err).Error("enqueue notification delivery")
	}
}
