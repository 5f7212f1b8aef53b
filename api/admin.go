package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/greenepidemic/greenepidemic-api/fanout"
	"github.com/greenepidemic/greenepidemic-api/schema"
	"github.com/greenepidemic/greenepidemic-api/store"
)

// adminListReportParams are the typed query filters for moderation.
type adminListReportParams struct {
	Status   string `form:"status"`
	Category string `form:"category"`
	Limit    int64  `form:"limit"`
}

func (s *Server) adminListReports(c *gin.Context) {
	var params adminListReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	reports, err := s.mongoStore.ListReports(store.ReportQueryParams{
		Status:   params.Status,
		Category: params.Category,
		Limit:    params.Limit,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// moderationStatus translates an action or a raw status into the
// resulting report status.
func moderationStatus(action, status string) (string, bool) {
	switch action {
	case "approve":
		return schema.ReportStatusApproved, true
	case "reject":
		return schema.ReportStatusRejected, true
	case "":
	default:
		return "", false
	}

	switch status {
	case schema.ReportStatusApproved, schema.ReportStatusRejected:
		return status, true
	}
	return "", false
}

func (s *Server) adminModerateReport(c *gin.Context) {
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

	var params struct {
		Action string `json:"action"`
		Status string `json:"status"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	status, ok := moderationStatus(params.Action, params.Status)
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidModeration)
		return
	}

	report, err := s.mongoStore.UpdateReportStatus(reportID, status, principal.AccountID.String())
	if err != nil {
		if err == store.ErrReportNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorReportNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	// approval republishes the report to nearby watchers, best effort
	if status == schema.ReportStatusApproved {
		fanout.Run(s.store, report)
		s.enqueueNotificationDelivery()
	}

	c.JSON(http.StatusOK, gin.H{"result": report})
}
