package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelwise/internal/models/request_models"
	"travelwise/internal/services"
	"travelwise/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// SendMessage godoc
// @Summary Send a chat message to the travel assistant
// @Description Off-topic messages get a canned reply; accepted exchanges are saved to chat history
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.ChatMessageRequest true "Chat payload"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat/message [post]
func (ch *ChatController) SendMessage(c *gin.Context) {
	var req request_models.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	email := c.GetString("user_email")
	reply, err := ch.chatService.SendMessage(c.Request.Context(), email, req.Destination, req.TripDate, req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reply, "")
}

// DestinationInfo godoc
// @Summary Brief AI-generated overview of a destination
// @Tags Chat
// @Produce json
// @Param destination query string true "Destination name"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat/destination-info [get]
func (ch *ChatController) DestinationInfo(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	info, err := ch.chatService.DescribeDestination(c.Request.Context(), destination)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"destination": destination, "info": info}, "")
}

// TravelTips godoc
// @Summary Personalized trip tips for a destination and date
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.TravelTipsRequest true "Tips payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chat/travel-tips [post]
func (ch *ChatController) TravelTips(c *gin.Context) {
	var req request_models.TravelTipsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	email := c.GetString("user_email")
	tips, err := ch.chatService.SuggestTravelTips(c.Request.Context(), email, req.Destination, req.TripDate)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"tips": tips}, "")
}
