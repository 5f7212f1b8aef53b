package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/greenepidemic/greenepidemic-api/analysis"
	"github.com/greenepidemic/greenepidemic-api/external/ai"
	"github.com/greenepidemic/greenepidemic-api/external/aqi"
	"github.com/greenepidemic/greenepidemic-api/external/firms"
	"github.com/greenepidemic/greenepidemic-api/external/geoinfo"
	"github.com/greenepidemic/greenepidemic-api/external/weather"
	"github.com/greenepidemic/greenepidemic-api/logmodule"
	"github.com/greenepidemic/greenepidemic-api/schema"
	"github.com/greenepidemic/greenepidemic-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.GreenEpidemicCore
	mongoStore store.MongoStore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// AI analysis generator
	analyzer *analysis.Generator

	// External services
	aiClient      ai.AI
	aqiClient     aqi.AQI
	weatherClient weather.Source
	firmsClient   firms.FIRMS
	geoClient     geoinfo.GeoInfo

	// job pool enqueuer
	background *machinery.Server
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	backgroundEnqueuer *machinery.Server,
	jwtKey *rsa.PrivateKey,
	aiClient ai.AI,
	aqiClient aqi.AQI,
	weatherClient weather.Source,
	firmsClient firms.FIRMS,
	geoClient geoinfo.GeoInfo) *Server {

	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))
	coreStore := store.NewGreenEpidemicStore(ormDB, mongoStore)

	monitors := make([]schema.Location, 0)
	if err := viper.UnmarshalKey("analysis.monitors", &monitors); err != nil {
		log.WithError(err).Error("invalid analysis monitor list")
	}

	return &Server{
		store:         coreStore,
		mongoStore:    mongoStore,
		jwtPrivateKey: jwtKey,
		analyzer:      analysis.NewGenerator(mongoStore, aiClient, weatherClient, monitors),
		aiClient:      aiClient,
		aqiClient:     aqiClient,
		weatherClient: weatherClient,
		firmsClient:   firmsClient,
		geoClient:     geoClient,
		background:    backgroundEnqueuer,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	apiRoute.POST("/auth", s.requestJWT)
	apiRoute.POST("/accounts", s.accountRegister)

	cronRoute := apiRoute.Group("/cron")
	cronRoute.Use(s.cronAuthentication(viper.GetString("server.cron_secret")))
	{
		cronRoute.POST("/ai-analysis", s.cronGenerateAnalysis)
	}

	// api routes other than auth, register and cron require a session
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.recognizeAccountMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.PATCH("/me", s.accountUpdateProfile)
	}

	reportRoute := apiRoute.Group("/reports")
	{
		reportRoute.POST("", s.createReport)
		reportRoute.GET("", s.listReports)
		reportRoute.GET("/:reportID", s.getReport)
	}

	apiRoute.POST("/risk-assessment", s.createRiskAssessment)
	apiRoute.GET("/risk-assessments", s.listRiskAssessments)

	surveillanceRoute := apiRoute.Group("/surveillance-points")
	{
		surveillanceRoute.POST("", s.createSurveillancePoint)
		surveillanceRoute.GET("", s.listSurveillancePoints)
		surveillanceRoute.PATCH("/:pointID", s.updateSurveillancePoint)
		surveillanceRoute.DELETE("/:pointID", s.deleteSurveillancePoint)
	}

	apiRoute.GET("/notifications", s.listNotifications)
	apiRoute.POST("/assistant", s.assistantChat)
	apiRoute.GET("/environment", s.environmentSnapshot)
	apiRoute.GET("/ai-analyses", s.listAnalyses)

	consultationRoute := apiRoute.Group("/consultations")
	{
		consultationRoute.POST("", s.createConsultation)
		consultationRoute.GET("", s.listConsultations)
		consultationRoute.PATCH("/:consultationID", s.cancelConsultation)
	}

	adminRoute := apiRoute.Group("/admin")
	adminRoute.Use(s.adminRequired())
	{
		adminRoute.GET("/reports", s.adminListReports)
		adminRoute.PATCH("/reports/:reportID", s.adminModerateReport)
		adminRoute.PATCH("/risk-assessments/:assessmentID", s.adminAnnotateAssessment)
		adminRoute.POST("/ai-analysis", s.adminGenerateAnalysis)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping both stores
	if err := s.store.Ping(); shouldInterupt(err, c) {
		return
	}
	if err := s.mongoStore.Ping(); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
