package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/antarcticanco/storefront-app/cart"
	"github.com/antarcticanco/storefront-app/catalog"
	"github.com/antarcticanco/storefront-app/config"
	"github.com/antarcticanco/storefront-app/controllers"
	"github.com/antarcticanco/storefront-app/events"
	"github.com/antarcticanco/storefront-app/middlewares"
	"github.com/antarcticanco/storefront-app/services"
)

// Deps adalah seluruh collaborator yang dimiliki sesi aplikasi; router
// tinggal menyambungkannya ke endpoint (tidak ada state global).
type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Catalog *catalog.Store
	Carts   *cart.Manager
	Hub     *events.DashboardHub
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	historySvc := services.NewHistoryService(deps.DB)
	recommenderSvc := services.NewRecommendationService(&services.RecommenderConfig{
		BaseURL: deps.Config.RecommenderURL,
		APIKey:  deps.Config.RecommenderAPIKey,
		Model:   deps.Config.RecommenderModel,
	})

	menuCtrl := controllers.NewMenuController(deps.Catalog, deps.Hub)
	cartCtrl := controllers.NewCartController(deps.Catalog, deps.Carts)
	checkoutCtrl := controllers.NewCheckoutController(deps.DB, deps.Config, deps.Carts, deps.Hub)
	orderCtrl := controllers.NewOrderController(deps.DB, historySvc, deps.Hub)
	historyCtrl := controllers.NewHistoryController(historySvc)
	recommendationCtrl := controllers.NewRecommendationController(deps.Catalog, recommenderSvc)
	employeeCtrl := controllers.NewEmployeeController(deps.Config)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES (storefront)
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Katalog
	r.GET("/menus", menuCtrl.GetAllMenus)
	r.GET("/menus/by-category", menuCtrl.GetMenuByCategory)
	r.GET("/menus/:menu_id", menuCtrl.GetMenuByID)

	// Cart (per sesi, via header X-Session-ID)
	r.GET("/cart", cartCtrl.GetCart)
	r.POST("/cart/items", cartCtrl.AddToCart)
	r.PATCH("/cart/items/:item_id", cartCtrl.UpdateCartItem)
	r.DELETE("/cart/items/:item_id", cartCtrl.RemoveCartItem)
	r.DELETE("/cart", cartCtrl.ClearCart)

	// Checkout
	r.GET("/checkout/summary", checkoutCtrl.GetSummary)
	r.POST("/checkout", checkoutCtrl.SubmitOrder)

	// Rekomendasi dish
	r.GET("/recommendations/history", recommendationCtrl.GetMockHistory)
	r.POST("/recommendations", recommendationCtrl.Recommend)

	// Login employee dibatasi rate ketat (shared access code)
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/employee/login", employeeCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      EMPLOYEE ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/employee")
	auth.Use(middlewares.EmployeeAuthMiddleware())

	auth.POST("/logout", employeeCtrl.Logout)

	// ORDERS (dashboard)
	auth.GET("/orders", orderCtrl.GetAllOrders)
	auth.PATCH("/orders/:order_code/status", orderCtrl.UpdateOrderStatus)
	auth.POST("/orders/:order_code/cancel", orderCtrl.CancelOrder)
	auth.PATCH("/orders/:order_code/payment-status", orderCtrl.UpdatePaymentStatus)
	auth.POST("/orders/archive", orderCtrl.ArchiveOrders)

	// ORDER HISTORY
	auth.GET("/history", historyCtrl.GetHistory)
	auth.DELETE("/history", historyCtrl.ClearHistory)

	// MENU MANAGEMENT (in-memory, tidak dipersist)
	auth.POST("/menus", menuCtrl.CreateMenu)
	auth.PATCH("/menus/:menu_id", menuCtrl.UpdateMenu)
	auth.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)

	// WebSocket dashboard
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.WebSocketAuthMiddleware())
	{
		wsGroup.GET("/dashboard", controllers.DashboardWSHandler(deps.Hub))
	}

	return r
}
