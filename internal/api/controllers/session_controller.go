package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"travelwise/internal/models/response_models"
	mem "travelwise/pkg/memcache"
	"travelwise/pkg/utils"
)

// Pages beyond landing and account settings stay hidden until login. This is
// presentation state for the sidebar; the auth middleware is what actually
// protects the routes.
var (
	publicNavItems = []string{"Home", "Account Settings"}
	memberNavItems = []string{"Budget Planner", "Currency Converter", "Dashboard", "AI Chatbot", "Chat History"}
)

type SessionController struct {
	sessions mem.UserSessionStore
}

func NewSessionController(sessions mem.UserSessionStore) *SessionController {
	return &SessionController{
		sessions: sessions,
	}
}

// VisibleNavItems godoc
// @Summary Navigation entries for the current visitor
// @Tags Session
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /session/nav [get]
func (s *SessionController) VisibleNavItems(c *gin.Context) {
	items := publicNavItems
	loggedIn := false

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if _, err := utils.ValidateToken(token); err == nil {
			loggedIn = true
			items = append(append([]string{}, publicNavItems...), memberNavItems...)
		}
	}

	utils.RespondSuccess(c, response_models.NavResponse{
		LoggedIn: loggedIn,
		Items:    items,
	}, "")
}

// Logout godoc
// @Summary Log out and reset the session
// @Description Clears the in-memory expense ledger and chat session for the user
// @Tags Session
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /session/logout [post]
func (s *SessionController) Logout(c *gin.Context) {
	email := c.GetString("user_email")
	s.sessions.Clear(email)
	utils.RespondSuccess(c, nil, "Logged out")
}
