package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/fixhive/fixhive/internal/pkg/auth"
	"github.com/fixhive/fixhive/internal/server/http/handlers"
	"github.com/fixhive/fixhive/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MarketplaceFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)
	assignmentHandler := handlers.NewAssignmentHandler(facade)
	partnerHandler := handlers.NewPartnerHandler(facade)

	orders := engine.Group("/orders")

	customerOrders := orders.Group("")
	customerOrders.Use(middleware.AuthRequired(facade, auth.RoleCustomer))
	customerOrders.POST("", orderHandler.Create)
	customerOrders.POST("/place", orderHandler.Place)
	customerOrders.GET("/my-orders", orderHandler.MyOrders)
	customerOrders.DELETE("/:id", orderHandler.Cancel)

	adminOrders := orders.Group("")
	adminOrders.Use(middleware.AuthRequired(facade, auth.RoleAdmin))
	adminOrders.GET("/AllOrders", orderHandler.AllOrders)
	adminOrders.POST("/assign-partner/:orderId", assignmentHandler.AssignAuto)
	adminOrders.POST("/assign-partner-manual/:orderId", assignmentHandler.AssignManual)

	partnerOrders := orders.Group("")
	partnerOrders.Use(middleware.AuthRequired(facade, auth.RolePartner))
	partnerOrders.POST("/respond/:orderId", assignmentHandler.Respond)
	partnerOrders.GET("/partner-orders", assignmentHandler.PartnerOrders)

	partners := engine.Group("/partners")

	partnerSelf := partners.Group("")
	partnerSelf.Use(middleware.AuthRequired(facade, auth.RolePartner))
	partnerSelf.GET("/dashboard-stats", partnerHandler.DashboardStats)

	adminPartners := partners.Group("")
	adminPartners.Use(middleware.AuthRequired(facade, auth.RoleAdmin))
	adminPartners.GET("", partnerHandler.List)
	adminPartners.PUT("/:id/approval", partnerHandler.SetApproval)

	return engine
}
