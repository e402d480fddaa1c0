package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "roadmap-dashboard-api/docs"
	"roadmap-dashboard-api/internal/event"
	"roadmap-dashboard-api/internal/handler"
	"roadmap-dashboard-api/internal/metrics"
	"roadmap-dashboard-api/internal/middleware"
	"roadmap-dashboard-api/internal/response"
)

// Config holds router dependencies
type Config struct {
	DB             *gorm.DB
	Redis          *redis.Client
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	Publisher      event.Publisher
	Services       *Services
	BasePath       string
	AllowedOrigins []string
	DefaultYear    int
	IdempotencyTTL time.Duration
}

// Setup builds the gin engine with middleware, API routes, docs and probes
func Setup(cfg Config) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.New()
	}
	if cfg.Services == nil {
		cfg.Services = NewServices(cfg.DB, cfg.Metrics, cfg.Publisher, cfg.DefaultYear, cfg.Logger)
	}

	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Metrics(cfg.Metrics))

	svc := cfg.Services
	goalHandler := handler.NewGoalHandler(svc.Goal, cfg.Logger)
	milestoneHandler := handler.NewMilestoneHandler(svc.Milestone, cfg.Logger)
	taskHandler := handler.NewTaskHandler(svc.Task, cfg.Logger)
	memberHandler := handler.NewMemberHandler(svc.Member, cfg.Logger)
	ideaHandler := handler.NewIdeaHandler(svc.Idea, cfg.Logger)
	scheduleHandler := handler.NewScheduleHandler(svc.Schedule, cfg.Logger)
	timelineHandler := handler.NewTimelineHandler(svc.Timeline, cfg.Logger)
	dashboardHandler := handler.NewDashboardHandler(svc.Dashboard, cfg.Logger)
	surfaceHandler := handler.NewSurfaceHandler(svc.Schedule, svc.Timeline, cfg.Logger)
	healthHandler := handler.NewHealthHandler(cfg.DB, cfg.Redis)

	metricsHandler := gin.WrapH(promhttp.Handler())
	if cfg.Gatherer != nil {
		metricsHandler = gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", metricsHandler)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.NoRoute(func(c *gin.Context) {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Route not found")
	})

	api := r.Group(cfg.BasePath)
	if cfg.BasePath != "" && cfg.BasePath != "/" {
		api.GET("/health", healthHandler.Health)
		api.GET("/metrics", metricsHandler)
	}
	api.Use(middleware.Idempotency(deduperFor(cfg)))
	{
		goals := api.Group("/goals")
		{
			goals.GET("", goalHandler.ListGoals)
			goals.POST("", goalHandler.CreateGoal)
			goals.GET("/:id", goalHandler.GetGoal)
			goals.PUT("/:id", goalHandler.UpdateGoal)
			goals.DELETE("/:id", goalHandler.DeleteGoal)
		}

		milestones := api.Group("/milestones")
		{
			milestones.GET("", milestoneHandler.ListMilestones)
			milestones.POST("", milestoneHandler.CreateMilestone)
			milestones.GET("/:id", milestoneHandler.GetMilestone)
			milestones.PUT("/:id", milestoneHandler.UpdateMilestone)
			milestones.DELETE("/:id", milestoneHandler.DeleteMilestone)
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		members := api.Group("/members")
		{
			members.GET("", memberHandler.ListMembers)
			members.POST("", memberHandler.CreateMember)
			members.GET("/summary", memberHandler.GetMemberSummary)
			members.GET("/:id", memberHandler.GetMember)
			members.PUT("/:id", memberHandler.UpdateMember)
			members.DELETE("/:id", memberHandler.DeleteMember)
		}

		ideas := api.Group("/ideas")
		{
			ideas.GET("", ideaHandler.ListIdeas)
			ideas.POST("", ideaHandler.CreateIdea)
			ideas.DELETE("/comments/:commentId", ideaHandler.DeleteComment)
			ideas.GET("/:id", ideaHandler.GetIdea)
			ideas.PUT("/:id", ideaHandler.UpdateIdea)
			ideas.DELETE("/:id", ideaHandler.DeleteIdea)
			ideas.POST("/:id/approve", ideaHandler.ApproveIdea)
			ideas.POST("/:id/reject", ideaHandler.RejectIdea)
			ideas.POST("/:id/convert", ideaHandler.ConvertIdea)
			ideas.GET("/:id/comments", ideaHandler.ListComments)
			ideas.POST("/:id/comments", ideaHandler.AddComment)
		}

		api.GET("/schedule/board", scheduleHandler.GetBoard)
		api.POST("/schedule/relocate", scheduleHandler.Relocate)

		api.GET("/timeline", timelineHandler.GetTimeline)
		api.POST("/timeline/progress", timelineHandler.UpdateProgress)
		api.GET("/timeline/open/:barId", timelineHandler.OpenBar)
		api.GET("/timeline/scroll", timelineHandler.ScrollTarget)

		api.GET("/dashboard/summary", dashboardHandler.GetSummary)
		api.GET("/years", dashboardHandler.GetYears)

		api.GET("/surface/ws", surfaceHandler.HandleWebSocket)
	}

	return r
}

// deduperFor returns nil when redis is not configured so Idempotency passes requests through
func deduperFor(cfg Config) middleware.Deduper {
	if cfg.Redis == nil {
		return nil
	}
	ttl := cfg.IdempotencyTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return middleware.NewRedisDeduper(cfg.Redis, ttl, cfg.Logger)
}
