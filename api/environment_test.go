package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/greenepidemic/greenepidemic-api/external/firms"
	extmocks "github.com/greenepidemic/greenepidemic-api/external/mocks"
	"github.com/greenepidemic/greenepidemic-api/external/weather"
	"github.com/greenepidemic/greenepidemic-api/schema"
)

func environmentRouter(s *Server, account *schema.Account) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withPrincipal(account))
	router.GET("/", s.environmentSnapshot)
	return router
}

// the equator/prime meridian intersection is a reachable coordinate
// and must not be rejected as a missing parameter
func TestEnvironmentSnapshotNullIsland(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := extmocks.NewMockAQI(ctl)
	w := extmocks.NewMockSource(ctl)
	f := extmocks.NewMockFIRMS(ctl)
	s := Server{aqiClient: a, weatherClient: w, firmsClient: f}

	a.EXPECT().Get(0.0, 0.0).Return(42, nil).Times(1)
	w.EXPECT().Current(gomock.Any(), 0.0, 0.0).Return(&weather.Observation{
		Temperature: 27.5,
		Code:        800,
	}, nil).Times(1)
	f.EXPECT().Hotspots(gomock.Any(), -0.5, -0.5, 0.5, 0.5, 1).
		Return([]firms.Hotspot{}, nil).Times(1)

	router := environmentRouter(&s, testAccount(schema.RoleUser))

	req := httptest.NewRequest("GET", "/?latitude=0&longitude=0", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, map[string]interface{}{"aqi": float64(42)}, response["air_quality"])
}

func TestEnvironmentSnapshotRejectsOutOfRangeCoordinates(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{}
	router := environmentRouter(&s, testAccount(schema.RoleUser))

	for _, query := range []string{
		"latitude=91&longitude=0",
		"latitude=-91&longitude=0",
		"latitude=0&longitude=181",
		"latitude=0&longitude=-181",
	} {
		req := httptest.NewRequest("GET", "/?"+query, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}
