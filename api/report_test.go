package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/greenepidemic/greenepidemic-api/api/mocks"
	"github.com/greenepidemic/greenepidemic-api/schema"
	"github.com/greenepidemic/greenepidemic-api/store"
)

func reportRouter(s *Server, account *schema.Account) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withPrincipal(account))
	router.GET("/reports", s.listReports)
	router.GET("/reports/:reportID", s.getReport)
	return router
}

func TestGetReportPendingHiddenFromOthers(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	reportID := primitive.NewObjectID()
	m.EXPECT().GetReport(reportID).Return(&schema.Report{
		ID:        reportID,
		AccountID: "someone-else",
		Status:    schema.ReportStatusPending,
	}, nil).Times(1)

	router := reportRouter(&s, testAccount(schema.RoleUser))

	req := httptest.NewRequest("GET", "/reports/"+reportID.Hex(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}

func TestGetReportPendingVisibleToSubmitter(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	account := testAccount(schema.RoleUser)
	reportID := primitive.NewObjectID()
	m.EXPECT().GetReport(reportID).Return(&schema.Report{
		ID:        reportID,
		AccountID: account.ID.String(),
		Status:    schema.ReportStatusPending,
	}, nil).Times(1)

	router := reportRouter(&s, account)

	req := httptest.NewRequest("GET", "/reports/"+reportID.Hex(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestListReportsForcesApprovedStatus(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	m.EXPECT().ListReports(store.ReportQueryParams{
		Status:   schema.ReportStatusApproved,
		Category: schema.ReportCategoryFire,
		Limit:    10,
	}).Return([]schema.Report{}, nil).Times(1)

	router := reportRouter(&s, testAccount(schema.RoleUser))

	req := httptest.NewRequest("GET", "/reports?category=FIRE&limit=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string][]schema.Report
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, jResp["reports"], 0)
}
