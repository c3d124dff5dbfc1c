package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yptkiasma/admin-backend/internal/handlers"
	"github.com/yptkiasma/admin-backend/internal/middleware"
	"github.com/yptkiasma/admin-backend/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authRequired := middleware.AuthMiddleware()

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/stats", handlers.GetStats)

		auth := api.Group("/auth")
		{
			auth.POST("/login", handlers.LoginUser)
			auth.POST("/logout", handlers.LogoutUser)
			auth.GET("/me", authRequired, handlers.Me)
		}

		public := api.Group("/public")
		{
			public.GET("/news", handlers.PublicNews)
			public.GET("/programs", handlers.PublicPrograms)
			public.GET("/albums", handlers.PublicAlbums)
		}

		// Reads are open to the dashboard; every mutation requires a session.
		donors := api.Group("/donors")
		{
			donors.GET("", handlers.ListDonors)
			donors.POST("", authRequired, handlers.CreateDonor)
			donors.GET("/:id", handlers.GetDonor)
			donors.PUT("/:id", authRequired, handlers.UpdateDonor)
			donors.DELETE("/:id", authRequired, handlers.DeleteDonor)
		}

		donations := api.Group("/donations")
		{
			donations.GET("", handlers.ListDonations)
			donations.POST("", authRequired, handlers.CreateDonation)
			donations.GET("/:id", handlers.GetDonation)
			donations.PUT("/:id", authRequired, handlers.UpdateDonation)
			donations.DELETE("/:id", authRequired, handlers.DeleteDonation)
		}

		news := api.Group("/news")
		{
			news.GET("", handlers.ListNews)
			news.POST("", authRequired, handlers.CreateNews)
			news.GET("/:id", handlers.GetNews)
			news.PUT("/:id", authRequired, handlers.UpdateNews)
			news.DELETE("/:id", authRequired, handlers.DeleteNews)
		}

		programs := api.Group("/programs")
		{
			programs.GET("", handlers.ListPrograms)
			programs.POST("", authRequired, handlers.CreateProgram)
			programs.GET("/:id", handlers.GetProgram)
			programs.PUT("/:id", authRequired, handlers.UpdateProgram)
			programs.DELETE("/:id", authRequired, handlers.DeleteProgram)
		}
	}

	return r
}
