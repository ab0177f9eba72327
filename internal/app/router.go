package app

import (
	"github.com/DmytroRudikov/Meduzzen-internship/internal/config"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/middleware"
	"github.com/DmytroRudikov/Meduzzen-internship/pkg/monitoring"
	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.Use(middleware.RequestID())

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/sign-up", c.auth.SignUp)
		public.POST("/sign-in", c.auth.SignIn)
	}

	// Everything below requires a valid token
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		me := api.Group("/me")
		{
			me.GET("", c.auth.Me)
			me.GET("/results", c.results.MyResults)
			me.GET("/results/average", c.results.MyAverage)
			me.GET("/results/export", c.export.MyData)
			me.GET("/invites", c.invite.ListMine)
			me.GET("/requests", c.request.ListMine)
			me.GET("/notifications", c.notification.ListUnread)
			me.PATCH("/notifications/:notification_id", c.notification.MarkRead)
		}

		users := api.Group("/users")
		{
			users.GET("", c.user.List)
			users.GET("/:user_id", c.user.Get)
			users.PATCH("/:user_id", c.user.Update)
			users.DELETE("/:user_id", c.user.Delete)
		}

		companies := api.Group("/companies")
		{
			companies.POST("", c.company.Create)
			companies.GET("", c.company.List)
			companies.GET("/:company_id", c.company.Get)
			companies.PATCH("/:company_id", c.company.Update)
			companies.DELETE("/:company_id", c.company.Delete)

			companies.GET("/:company_id/members", c.member.List)
			companies.POST("/:company_id/members/:member_id/admin", c.member.AppointAdmin)
			companies.DELETE("/:company_id/members/:member_id/admin", c.member.RemoveAdmin)
			companies.DELETE("/:company_id/members/:member_id", c.member.Kick)
			companies.DELETE("/:company_id/members", c.member.Leave)

			companies.POST("/:company_id/invites", c.invite.Create)
			companies.GET("/:company_id/invites", c.invite.ListForCompany)
			companies.GET("/:company_id/requests", c.request.ListForCompany)

			companies.POST("/:company_id/quizzes", c.quiz.Create)
			companies.GET("/:company_id/quizzes", c.quiz.List)
			companies.GET("/:company_id/quizzes/:quiz_id", c.quiz.Get)
			companies.PATCH("/:company_id/quizzes/:quiz_id", c.quiz.Update)
			companies.DELETE("/:company_id/quizzes/:quiz_id", c.quiz.Delete)
			companies.PATCH("/:company_id/quizzes/:quiz_id/questions", c.quiz.UpdateQuestion)
			companies.POST("/:company_id/quizzes/:quiz_id/questions", c.quiz.AddQuestions)
			companies.DELETE("/:company_id/quizzes/:quiz_id/questions", c.quiz.DeleteQuestions)

			companies.POST("/:company_id/quizzes/:quiz_id/results", c.results.Record)
			companies.GET("/:company_id/results", c.results.CompanyResults)
			companies.GET("/:company_id/quizzes/:quiz_id/results", c.results.CompanyResultsByQuiz)
			companies.GET("/:company_id/members/:member_id/results", c.results.MemberResults)
			companies.GET("/:company_id/members/:member_id/quizzes/:quiz_id/results", c.results.MemberResultsByQuiz)
			companies.GET("/:company_id/members/:member_id/results/average", c.results.MemberAverage)

			companies.GET("/:company_id/results/export", c.export.CompanyData)
			companies.GET("/:company_id/quizzes/:quiz_id/results/export", c.export.QuizData)
			companies.GET("/:company_id/members/:member_id/results/export", c.export.MemberData)

			companies.GET("/:company_id/analytics/members", c.analytics.MembersRatingDynamics)
			companies.GET("/:company_id/analytics/members/:member_id", c.analytics.MemberRatingDynamics)
			companies.GET("/:company_id/analytics/members-passed", c.analytics.MembersPassed)
		}

		invites := api.Group("/invites")
		{
			invites.POST("/:invite_id/accept", c.invite.Accept)
			invites.POST("/:invite_id/decline", c.invite.Decline)
			invites.DELETE("/:invite_id", c.invite.Cancel)
		}

		requests := api.Group("/requests")
		{
			requests.POST("", c.request.Create)
			requests.POST("/:request_id/accept", c.request.Accept)
			requests.POST("/:request_id/decline", c.request.Decline)
			requests.DELETE("/:request_id", c.request.Cancel)
		}

		analytics := api.Group("/analytics")
		{
			analytics.GET("/my/rating", c.analytics.MyRating)
			analytics.GET("/my/dynamics", c.analytics.MyRatingDynamics)
			analytics.GET("/my/quizzes-passed", c.analytics.MyQuizzesPassed)
		}
	}
}
