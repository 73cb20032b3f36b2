package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelwise/internal/services"
	"travelwise/pkg/utils"
)

type ConversationController struct {
	convoService services.ConversationServiceInterface
}

func NewConversationController(convoService services.ConversationServiceInterface) *ConversationController {
	return &ConversationController{
		convoService: convoService,
	}
}

// ListConversations godoc
// @Summary List the authenticated user's saved conversations, newest first
// @Tags Conversations
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /conversations [get]
func (cc *ConversationController) ListConversations(c *gin.Context) {
	email := c.GetString("user_email")

	convos, err := cc.convoService.ListForOwner(c.Request.Context(), email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, convos, "")
}

// DeleteConversation godoc
// @Summary Delete one of the authenticated user's saved conversations
// @Tags Conversations
// @Produce json
// @Param id path int true "Conversation ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /conversations/{id} [delete]
func (cc *ConversationController) DeleteConversation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid conversation id")
		return
	}

	email := c.GetString("user_email")
	if err := cc.convoService.Delete(c.Request.Context(), uint(id), email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Conversation deleted")
}
