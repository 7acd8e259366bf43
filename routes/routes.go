package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotelops-backend/controllers"
	"hotelops-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires every controller into the route tree. Everything
// under /api except /api/auth/register and /api/auth/login requires a
// Bearer token.
func SetupRouter(
	ac *controllers.AuthController,
	hc *controllers.HotelController,
	bc *controllers.BillingController,
	cc *controllers.CatalogController,
	rtc *controllers.RoomTypeController,
	fc *controllers.FoodController,
	svc *controllers.ServiceController,
	sc *controllers.StaffController,
	ic *controllers.InventoryController,
	crc *controllers.CrashReportController,
	dc *controllers.DashboardController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", ac.Register)
		auth.POST("/login", ac.Login)
	}

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("/auth/me", ac.Me)

		hotel := api.Group("/hotel")
		{
			hotel.GET("", hc.GetMyHotel)
			hotel.POST("/setup", hc.Setup)
			hotel.PUT("/profile", hc.UpdateProfile)
			hotel.POST("/logo", hc.UploadLogo)
		}

		bills := api.Group("/bills")
		{
			bills.GET("", bc.GetAll)
			bills.POST("", bc.Create)
			bills.POST("/preview", bc.Preview)
			bills.GET("/:id", bc.GetByID)
			bills.DELETE("/:id", bc.Delete)
		}

		catalog := api.Group("/catalog")
		{
			catalog.GET("", cc.Get)
			catalog.GET("/food", cc.GetFood)
		}

		roomTypes := api.Group("/room-types")
		{
			roomTypes.GET("", rtc.GetAll)
			roomTypes.POST("", rtc.Create)
			roomTypes.PUT("/:id", rtc.Update)
			roomTypes.PATCH("/:id/availability", rtc.ToggleAvailability)
			roomTypes.DELETE("/:id", rtc.Delete)
		}

		food := api.Group("/food-items")
		{
			food.GET("", fc.GetAll)
			food.POST("", fc.Create)
			food.PUT("/:id", fc.Update)
			food.PATCH("/:id/availability", fc.ToggleAvailability)
			food.DELETE("/:id", fc.Delete)
		}

		servicesGroup := api.Group("/services")
		{
			servicesGroup.GET("", svc.GetAll)
			servicesGroup.POST("", svc.Create)
			servicesGroup.PUT("/:id", svc.Update)
			servicesGroup.DELETE("/:id", svc.Delete)
		}

		staff := api.Group("/staff")
		{
			// static paths before /:id
			staff.GET("/stats", sc.AttendanceStats)
			staff.GET("/top-performers", sc.TopPerformers)
			staff.GET("/trend", sc.WeeklyTrend)

			staff.GET("", sc.GetAll)
			staff.POST("", sc.Create)
			staff.GET("/:id", sc.GetByID)
			staff.PATCH("/:id/status", sc.SetStatus)
			staff.POST("/:id/attendance", sc.MarkAttendance)
			staff.DELETE("/:id", sc.Delete)
		}

		inventory := api.Group("/inventory")
		{
			inventory.GET("", ic.GetAll)
			inventory.POST("", ic.Create)
			inventory.PUT("/:id", ic.Update)
			inventory.DELETE("/:id", ic.Delete)
		}

		crashReports := api.Group("/crash-reports")
		{
			crashReports.GET("", crc.GetAll)
			crashReports.POST("", crc.Create)
		}

		api.GET("/dashboard", dc.Get)
	}

	return r
}
