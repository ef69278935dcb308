package routes

import (
	"github.com/Dung-L3/SEP490-G20-sub000/configs"
	"github.com/Dung-L3/SEP490-G20-sub000/controllers"
	"github.com/Dung-L3/SEP490-G20-sub000/middlewares"
	"github.com/Dung-L3/SEP490-G20-sub000/pkg/otp"
	"github.com/Dung-L3/SEP490-G20-sub000/repository"
	"github.com/Dung-L3/SEP490-G20-sub000/services"
	"github.com/Dung-L3/SEP490-G20-sub000/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Services wires the whole dependency graph once so main can also reach the
// pieces that run outside HTTP (the sweeper, the OTP janitor).
type Services struct {
	Auth         *services.AuthService
	Catalog      *services.CatalogService
	Orders       *services.OrderService
	Tables       *services.TableService
	Promotions   *services.PromotionService
	Billing      *services.BillingService
	Reservations *services.ReservationService
	Shifts       *services.ShiftService
	Reports      *services.ReportService
	Codes        *otp.Store
}

func BuildServices(db *gorm.DB, cfg *configs.Config, hub *ws.KitchenHub) *Services {
	catalogRepo := repository.NewCatalogRepository(db)
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	promoRepo := repository.NewPromotionRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	reportRepo := repository.NewReportRepository(db)

	codes := otp.NewStore()
	orders := services.NewOrderService(db, orderRepo, catalogRepo, tableRepo, hub)

	return &Services{
		Auth:         services.NewAuthService(staffRepo, codes, nil, cfg.JWTSecret, cfg.JWTTTL, cfg.OTPTTL),
		Catalog:      services.NewCatalogService(catalogRepo),
		Orders:       orders,
		Tables:       services.NewTableService(db, tableRepo),
		Promotions:   services.NewPromotionService(db, promoRepo, orderRepo),
		Billing:      services.NewBillingService(db, invoiceRepo, orderRepo, tableRepo, catalogRepo, hub),
		Reservations: services.NewReservationService(db, reservationRepo, tableRepo, orders, cfg.SweepGrace),
		Shifts:       services.NewShiftService(staffRepo),
		Reports:      services.NewReportService(reportRepo),
		Codes:        codes,
	}
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.KitchenHub, svc *Services) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	tableRepo := repository.NewTableRepository(db)

	// Controllers
	authCtrl := controllers.NewAuthController(svc.Auth)
	catalogCtrl := controllers.NewCatalogController(svc.Catalog)
	orderCtrl := controllers.NewOrderController(svc.Orders)
	tableCtrl := controllers.NewTableController(svc.Tables)
	promoCtrl := controllers.NewPromotionController(svc.Promotions)
	billingCtrl := controllers.NewBillingController(svc.Billing)
	reservationCtrl := controllers.NewReservationController(svc.Reservations)
	shiftCtrl := controllers.NewShiftController(svc.Shifts)
	reportCtrl := controllers.NewReportController(svc.Reports)
	qrCtrl := controllers.NewQRController(tableRepo, svc.Catalog, svc.Orders)

	secret := cfg.JWTSecret

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.POST("/password-reset/request", authCtrl.RequestReset)
		a.POST("/password-reset", authCtrl.Reset)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(secret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
		aAuth.POST("/register", middlewares.AuthMiddleware(secret, "admin"), authCtrl.Register)
	}

	// Guest QR surface (public, token-scoped)
	qr := r.Group("/qr/:token")
	{
		qr.GET("", qrCtrl.Menu)
		qr.POST("/orders", qrCtrl.CreateOrder)
		qr.GET("/orders/:id", qrCtrl.OrderStatus)
	}

	// Menu (any authenticated staff)
	menu := r.Group("/menu", middlewares.AuthMiddleware(secret))
	{
		menu.GET("/categories", catalogCtrl.ListCategories)
		menu.GET("/dishes", catalogCtrl.ListDishes)
		menu.GET("/dishes/:id", catalogCtrl.GetDish)
		menu.GET("/combos", catalogCtrl.ListCombos)
		menu.GET("/combos/:id", catalogCtrl.GetCombo)
	}

	// Catalog management (manager)
	mgr := r.Group("/catalog", middlewares.AuthMiddleware(secret, "manager"))
	{
		mgr.POST("/categories", catalogCtrl.CreateCategory)
		mgr.DELETE("/categories/:id", catalogCtrl.DeleteCategory)
		mgr.POST("/dishes", catalogCtrl.CreateDish)
		mgr.PATCH("/dishes/:id", catalogCtrl.UpdateDish)
		mgr.DELETE("/dishes/:id", catalogCtrl.DeleteDish)
		mgr.POST("/combos", catalogCtrl.CreateCombo)
		mgr.PATCH("/combos/:id", catalogCtrl.UpdateCombo)
		mgr.DELETE("/combos/:id", catalogCtrl.DeleteCombo)
	}

	// Tables (waiter, receptionist)
	tables := r.Group("/tables", middlewares.AuthMiddleware(secret, "waiter", "receptionist", "manager"))
	{
		tables.GET("", tableCtrl.List)
		tables.GET("/:id", tableCtrl.Get)
		tables.PATCH("/:id/status", tableCtrl.UpdateStatus)
		tables.GET("/:id/orders", orderCtrl.ByTable)
		tables.POST("/groups", tableCtrl.Merge)
		tables.GET("/groups/:id", tableCtrl.GroupTables)
		tables.DELETE("/groups/:id", tableCtrl.Disband)
	}

	// Orders (waiter runs the floor; chef flips item status)
	orders := r.Group("/orders", middlewares.AuthMiddleware(secret, "waiter", "manager"))
	{
		orders.POST("", orderCtrl.Create)
		orders.GET("/active", orderCtrl.Active)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PATCH("/:id/status", orderCtrl.UpdateStatus)
		orders.POST("/:id/items", orderCtrl.AddItem)
		orders.PATCH("/:id/items/:itemId", orderCtrl.UpdateItem)
		orders.DELETE("/:id/items/:itemId", orderCtrl.RemoveItem)

		orders.POST("/:id/promotion", promoCtrl.Apply)
		orders.POST("/:id/invoice", billingCtrl.GenerateInvoice)
		orders.POST("/:id/payments", billingCtrl.ProcessPayment)
		orders.POST("/:id/settle", billingCtrl.Settle)
	}
	r.PATCH("/orders/:id/items/:itemId/status",
		middlewares.AuthMiddleware(secret, "chef", "waiter"), orderCtrl.UpdateItemStatus)
	r.POST("/orders/:id/discount",
		middlewares.AuthMiddleware(secret, "manager"), billingCtrl.ApplyDiscount)

	r.GET("/invoices/:id/pdf", middlewares.AuthMiddleware(secret, "waiter", "manager"), billingCtrl.ExportPDF)

	// Promotions (manager manages; floor staff can browse what's redeemable)
	r.GET("/promotions", middlewares.AuthMiddleware(secret), promoCtrl.List)
	promos := r.Group("/promotions", middlewares.AuthMiddleware(secret, "manager"))
	{
		promos.POST("", promoCtrl.Create)
		promos.GET("/:id", promoCtrl.Get)
		promos.PATCH("/:id", promoCtrl.Update)
		promos.DELETE("/:id", promoCtrl.Delete)
	}

	// Reservations (receptionist)
	reservations := r.Group("/reservations", middlewares.AuthMiddleware(secret, "receptionist", "waiter", "manager"))
	{
		reservations.POST("", reservationCtrl.Create)
		reservations.GET("", reservationCtrl.List)
		reservations.GET("/:id", reservationCtrl.Get)
		reservations.POST("/:id/confirm", reservationCtrl.Confirm)
		reservations.POST("/:id/cancel", reservationCtrl.Cancel)
		reservations.POST("/:id/check-in", reservationCtrl.CheckIn)
	}

	// Shifts (any staff; listing others is gated inside the controller)
	shifts := r.Group("/shifts", middlewares.AuthMiddleware(secret))
	{
		shifts.POST("/clock-in", shiftCtrl.ClockIn)
		shifts.POST("/clock-out", shiftCtrl.ClockOut)
		shifts.GET("", shiftCtrl.List)
	}

	// Reports (manager)
	r.GET("/reports/sales", middlewares.AuthMiddleware(secret, "manager"), reportCtrl.Sales)

	// Kitchen display feed
	r.GET("/ws/kitchen", middlewares.WSAuthMiddleware(secret), hub.Serve)
}
