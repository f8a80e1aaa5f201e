package routes

import (
	"scriptstudio/controllers"
	"scriptstudio/middlewares"
	"scriptstudio/websocket"

	"github.com/gin-gonic/gin"
)

// SetupScriptRoutes sets up the script generation, editing and export routes
func SetupScriptRoutes(router *gin.RouterGroup) {
	scripts := router.Group("/scripts")
	{
		scripts.POST("/generate", middlewares.RateLimit(), controllers.GenerateScript)
		scripts.GET("/:id", controllers.GetScript)
		scripts.POST("/:id/refine", middlewares.RateLimit(), controllers.RefineScript)
		scripts.PATCH("/:id/questions/:questionId", controllers.UpdateQuestionText)

		scripts.GET("/:id/export/text", controllers.ExportText)
		scripts.GET("/:id/export/survey", controllers.ExportSurvey)
		scripts.GET("/:id/export/pdf", controllers.ExportPDF)

		// WebSocket chat for conversational refinement
		scripts.GET("/:id/chat", websocket.RefineChatHandler)
	}
}
