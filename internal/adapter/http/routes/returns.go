package routes

import (
	"boomerang/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWorkflows = "/workflows"
	PathReturns   = "/returns"
)

func addReturnRoutes(rg *gin.RouterGroup, workflowHandler *handlers.WorkflowHandler, returnHandler *handlers.ReturnHandler) {
	workflows := rg.Group(PathWorkflows)
	{
		workflows.POST("", workflowHandler.StartWorkflow)
		workflows.GET("/:id", workflowHandler.GetWorkflow)
		workflows.PUT("/:id/draft", workflowHandler.UpdateDraft)
		workflows.POST("/:id/attachments/:kind", workflowHandler.UploadAttachment)
		workflows.DELETE("/:id/attachments/:kind", workflowHandler.RemoveAttachment)
		workflows.POST("/:id/advance", workflowHandler.Advance)
		workflows.POST("/:id/retreat", workflowHandler.Retreat)
		workflows.GET("/:id/quote", workflowHandler.Quote)
		workflows.POST("/:id/submit", workflowHandler.Submit)
		workflows.POST("/:id/abandon", workflowHandler.Abandon)
	}

	returns := rg.Group(PathReturns)
	{
		returns.GET("", returnHandler.ListReturns)
		returns.GET("/:id", returnHandler.GetReturn)
		returns.PATCH("/:id/status", returnHandler.UpdateStatus)
	}
}
