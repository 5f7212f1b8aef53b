package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/greenepidemic/greenepidemic-api/api/mocks"
	"github.com/greenepidemic/greenepidemic-api/schema"
)

func profileRouter(s *Server, account *schema.Account) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withPrincipal(account))
	router.PATCH("/", s.accountUpdateProfile)
	return router
}

func TestAccountUpdateProfileSetsHomeLocation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockGreenEpidemicCore(ctl)
	s := Server{store: a}

	account := testAccount(schema.RoleUser)
	home := &schema.HomeLocation{Latitude: 1.2, Longitude: 3.4, Address: "12 river bank"}

	a.EXPECT().UpdateAccountProfile(account.ID, home, false, gomock.Nil(), gomock.Nil()).
		Return(nil).Times(1)

	body, _ := json.Marshal(map[string]interface{}{
		"home_location": home,
	})
	req := httptest.NewRequest("PATCH", "/", bytes.NewReader(body))
	w := httptest.NewRecorder()
	profileRouter(&s, account).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

// a home address must be removable, not only replaceable, or the
// account stays a home fan-out target forever
func TestAccountUpdateProfileClearsHomeLocation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockGreenEpidemicCore(ctl)
	s := Server{store: a}

	account := testAccount(schema.RoleUser)

	a.EXPECT().UpdateAccountProfile(account.ID, gomock.Nil(), true, gomock.Nil(), gomock.Nil()).
		Return(nil).Times(1)

	body, _ := json.Marshal(map[string]interface{}{
		"clear_home_location": true,
	})
	req := httptest.NewRequest("PATCH", "/", bytes.NewReader(body))
	w := httptest.NewRecorder()
	profileRouter(&s, account).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}
