package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"travelwise/cmd/fx/account_fx"
	"travelwise/cmd/fx/budget_fx"
	"travelwise/cmd/fx/chat_fx"
	"travelwise/cmd/fx/controllers_fx"
	"travelwise/cmd/fx/conversation_fx"
	"travelwise/cmd/fx/currency_fx"
	"travelwise/cmd/fx/db_fx"
	"travelwise/cmd/fx/session_fx"
	"travelwise/internal/api/controllers"
	"travelwise/pkg/logger"
	"travelwise/pkg/middleware"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	if err := logger.Init(os.Getenv("GIN_MODE") != "release", logger.InfoLevel); err != nil {
		panic(err)
	}
	defer logger.Sync()

	app := fx.New(
		db_fx.Module,
		session_fx.Module,
		account_fx.Module,
		conversation_fx.Module,
		budget_fx.Module,
		currency_fx.Module,
		chat_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				logger.Get().Info("starting HTTP server on :" + port)
				if err := engine.Run(":" + port); err != nil {
					logger.Get().Fatal("failed to start server", logger.Err(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Get().Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	sessionController *controllers.SessionController,
	budgetController *controllers.BudgetController,
	currencyController *controllers.CurrencyController,
	chatController *controllers.ChatController,
	conversationController *controllers.ConversationController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		sessionController,
		budgetController,
		currencyController,
		chatController,
		conversationController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	sessionController *controllers.SessionController,
	budgetController *controllers.BudgetController,
	currencyController *controllers.CurrencyController,
	chatController *controllers.ChatController,
	conversationController *controllers.ConversationController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", middleware.AuthRateLimit(), accountController.Register)
	accounts.POST("/login", middleware.AuthRateLimit(), accountController.Login)

	admin := r.Group("/accounts", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	admin.GET("/all", accountController.GetAllAccounts)
	admin.DELETE("/:email", accountController.DeleteAccount)

	session := r.Group("/session")
	session.GET("/nav", sessionController.VisibleNavItems)
	session.POST("/logout", middleware.JWTAuthMiddleware(), sessionController.Logout)

	authed := r.Group("/", middleware.JWTAuthMiddleware())
	authed.POST("/budget/allocate", budgetController.Allocate)

	authed.POST("/expenses", budgetController.AddExpense)
	authed.PUT("/expenses/limit", budgetController.SetLimit)
	authed.GET("/expenses/summary", budgetController.ExpenseSummary)
	authed.DELETE("/expenses", budgetController.ClearExpenses)

	authed.GET("/currency/convert", currencyController.Convert)

	authed.POST("/chat/message", chatController.SendMessage)
	authed.GET("/chat/destination-info", chatController.DestinationInfo)
	authed.POST("/chat/travel-tips", chatController.TravelTips)

	authed.GET("/conversations", conversationController.ListConversations)
	authed.DELETE("/conversations/:id", conversationController.DeleteConversation)
}
