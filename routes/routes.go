package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"invoice-backend/config"
	"invoice-backend/controllers"
	"invoice-backend/services"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Authorization", "Content-Type"}
	r.Use(cors.New(corsConfig))

	r.Use(config.PerformanceLogger())

	auth := controllers.AuthController{DB: db}
	chat := controllers.ChatController{DB: db}
	invoice := controllers.InvoiceController{
		DB:      db,
		Numbers: services.NewInvoiceNumberService(db),
	}

	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)
	r.GET("/user", auth.GetUser)

	// Chat routes
	r.POST("/save-chat", chat.SaveChat)
	r.GET("/chat-history/:mobile", chat.GetChatHistory)
	r.DELETE("/chat-history/:mobile", chat.DeleteChatHistory)

	admin := r.Group("/admin")
	{
		admin.GET("/all-chats", chat.GetAllChats)
	}

	api := r.Group("/api")
	{
		invoices := api.Group("/invoices")
		{
			invoices.POST("", invoice.CreateInvoice)
			invoices.POST("/next-number", invoice.NextNumber)
		}
	}

	return r
}
