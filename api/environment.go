package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const hotspotBBoxDegrees = 0.5

// environmentSnapshot aggregates air quality, current weather and fire
// hotspots around a location. Each upstream is best effort; a failing
// source is returned as null instead of failing the whole snapshot.
func (s *Server) environmentSnapshot(c *gin.Context) {
	var params struct {
		Latitude  float64 `form:"latitude"`
		Longitude float64 `form:"longitude"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	// 0,0 is a reachable coordinate, so validate range rather than
	// presence
	if params.Latitude < -90 || params.Latitude > 90 ||
		params.Longitude < -180 || params.Longitude > 180 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	response := gin.H{
		"air_quality":   nil,
		"weather":       nil,
		"fire_hotspots": nil,
	}

	if index, err := s.aqiClient.Get(params.Latitude, params.Longitude); err == nil {
		response["air_quality"] = gin.H{"aqi": index}
	} else {
		log.WithError(err).Warn("air quality lookup failed")
	}

	if observation, err := s.weatherClient.Current(c.Request.Context(),
		params.Latitude, params.Longitude); err == nil {
		response["weather"] = observation
	} else {
		log.WithError(err).Warn("weather lookup failed")
	}

	hotspots, err := s.firmsClient.Hotspots(c.Request.Context(),
		params.Longitude-hotspotBBoxDegrees,
		params.Latitude-hotspotBBoxDegrees,
		params.Longitude+hotspotBBoxDegrees,
		params.Latitude+hotspotBBoxDegrees,
		1)
	if err == nil {
		response["fire_hotspots"] = hotspots
	} else {
		log.WithError(err).Warn("fire hotspot lookup failed")
	}

	c.JSON(http.StatusOK, response)
}
