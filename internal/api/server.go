package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/rifa-online/rifa-api/docs"
	v1 "github.com/rifa-online/rifa-api/internal/api/handler/v1"
	"github.com/rifa-online/rifa-api/internal/api/middleware"
	"github.com/rifa-online/rifa-api/internal/config"
	"github.com/rifa-online/rifa-api/internal/repository"
	"github.com/rifa-online/rifa-api/internal/repository/dao"
	"github.com/rifa-online/rifa-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	adminSvc := service.NewAdminService(conf.API.AdminSenha)
	adminHandler := v1.NewAdminHandler(adminSvc)
	settingHandler := s.initSettingHandler(db)
	reservationHandler := s.initReservationHandler(db)
	s.MountHandlers(adminSvc, adminHandler, settingHandler, reservationHandler)

	return s
}

func (s *Server) initSettingHandler(db *gorm.DB) *v1.SettingHandler {
	settingDAO := dao.NewSettingDAO(db)
	repo := repository.NewSettingRepository(settingDAO)
	svc := service.NewSettingService(repo)
	handler := v1.NewSettingHandler(svc)

	return handler
}

func (s *Server) initReservationHandler(db *gorm.DB) *v1.ReservationHandler {
	reservationDAO := dao.NewReservationDAO(db)
	repo := repository.NewReservationRepository(reservationDAO)
	svc := service.NewReservationService(repo)
	handler := v1.NewReservationHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	adminSvc middleware.AdminService,
	adminHandler *v1.AdminHandler,
	settingHandler *v1.SettingHandler,
	reservationHandler *v1.ReservationHandler,
) {
	gate := middleware.NewAdminGate(adminSvc)

	s.Router.POST("/admin/login", adminHandler.HandleLogin)
	s.Router.GET("/api/verificar-admin", adminHandler.HandleVerify)

	s.Router.GET("/configuracoes", settingHandler.HandleGetSettings)
	s.Router.PUT("/configuracoes", gate.Require(), settingHandler.HandleUpdateSettings)

	reservas := s.Router.Group("/reservas")
	{
		reservas.POST("", reservationHandler.HandleCreate)
		reservas.GET("", reservationHandler.HandleList)
		reservas.PUT("/:numero/pago", reservationHandler.HandleMarkPago)
		reservas.PUT("/:numero/nao-pago", reservationHandler.HandleMarkNaoPago)
		reservas.DELETE("/:numero", gate.Require(), reservationHandler.HandleDelete)
		reservas.DELETE("", gate.Require(), reservationHandler.HandleClear)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.Title = "Rifa API"
	docs.SwaggerInfo.Description = "Reservation and configuration API for a numbered-entry raffle."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
