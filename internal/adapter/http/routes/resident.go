package routes

import (
	"resident_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions       = "/sessions"
	PathPasswordResets = "/password-resets"
	PathCatalog        = "/catalog"
	PathWorkflow       = "/workflow"
	PathOrders         = "/orders"
)

func addSessionRoutes(public, authed *gin.RouterGroup, sessionHandler *handlers.SessionHandler, resetHandler *handlers.PasswordResetHandler) {
	public.POST(PathSessions, sessionHandler.SignIn)
	public.POST(PathPasswordResets, resetHandler.CreateReset)
	authed.DELETE(PathSessions+"/current", sessionHandler.SignOut)
}

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/categories", h.ListCategories)
		catalog.GET("/fixtures", h.ListFixtures)
		catalog.GET("/fixtures/:key", h.GetFixture)
	}
}

func addWorkflowRoutes(rg *gin.RouterGroup, h *handlers.WorkflowHandler) {
	workflow := rg.Group(PathWorkflow)
	{
		workflow.GET("", h.GetState)

		// Intake fields
		workflow.PUT("/area", h.SelectArea)
		workflow.POST("/photos", h.AddPhotos)
		workflow.DELETE("/photos/last", h.RemoveLastPhoto)
		workflow.PUT("/conditions", h.UpdateConditions)
		workflow.PUT("/schedule", h.UpdateSchedule)
		workflow.PATCH("/preferences", h.UpdatePreferences)

		// Navigation
		workflow.POST("/next", h.Next)
		workflow.POST("/back", h.Back)
		workflow.POST("/cancel", h.Cancel)
		workflow.POST("/finish", h.Finish)
		workflow.POST("/orders", h.ViewOrders)
		workflow.POST("/new", h.NewRequest)
		workflow.POST("/orders/:id/edit", h.Edit)
		workflow.POST("/save", h.Save)
		workflow.POST("/cancel-order", h.CancelOrder)
	}

	rg.GET(PathOrders, h.ListOrders)
}
