package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/xiebiao/bookcatalog/internal/application"
	appauthor "github.com/xiebiao/bookcatalog/internal/application/author"
	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	appcategory "github.com/xiebiao/bookcatalog/internal/application/category"
	appcomment "github.com/xiebiao/bookcatalog/internal/application/comment"
	apppublisher "github.com/xiebiao/bookcatalog/internal/application/publisher"
	appsearch "github.com/xiebiao/bookcatalog/internal/application/search"
	appuser "github.com/xiebiao/bookcatalog/internal/application/user"
	"github.com/xiebiao/bookcatalog/internal/domain/author"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/category"
	"github.com/xiebiao/bookcatalog/internal/domain/comment"
	"github.com/xiebiao/bookcatalog/internal/domain/publisher"
	"github.com/xiebiao/bookcatalog/internal/domain/search"
	"github.com/xiebiao/bookcatalog/internal/domain/user"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/postgres"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/internal/interface/http/middleware"
	"github.com/xiebiao/bookcatalog/pkg/jwt"
	"github.com/xiebiao/bookcatalog/pkg/logger"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// main 主程序入口（手动依赖注入，wire.go提供编译期生成的等价版本）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志与指标
	if err := logger.Init(cfg.Server.Mode); err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer logger.Sync()
	metrics.Init()

	logger.L().Info("配置加载成功",
		zap.Int("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.Ints("partition_years", cfg.Catalog.PartitionYears))

	// 3. 初始化数据库连接并迁移（含分区表DDL）
	db, err := postgres.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}
	if err := postgres.Migrate(db, cfg.Catalog.PartitionYears); err != nil {
		log.Fatalf("数据库迁移失败: %v", err)
	}

	// 4. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 5. 依赖注入（手动组装）
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层
	authorRepo := postgres.NewAuthorRepository(db)
	publisherRepo := postgres.NewPublisherRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	bookRepo := postgres.NewBookRepository(db)
	formatRepo := postgres.NewFormatRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	userRepo := postgres.NewUserRepository(db)
	refChecker := postgres.NewReferenceChecker(db)
	searchQuerier := postgres.NewSearchQuerier(db)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
	partitionRouter := book.NewPartitionRouter(cfg.Catalog.PartitionYears)

	// 领域层
	authorService := author.NewService(authorRepo)
	publisherService := publisher.NewService(publisherRepo)
	categoryService := category.NewService(categoryRepo)
	bookService := book.NewService(bookRepo, formatRepo, refChecker, partitionRouter)
	commentService := comment.NewService(commentRepo, refChecker)
	searchService := search.NewService(searchQuerier)
	userService := user.NewService(userRepo)

	// 应用层
	limits := application.PageLimits{
		Default: cfg.Catalog.DefaultPageSize,
		Max:     cfg.Catalog.MaxPageSize,
	}
	authorUseCase := appauthor.NewUseCase(authorService, limits)
	publisherUseCase := apppublisher.NewUseCase(publisherService, limits)
	categoryUseCase := appcategory.NewUseCase(categoryService, limits)
	bookUseCase := appbook.NewUseCase(bookService, limits)
	commentUseCase := appcomment.NewUseCase(commentService, limits)
	searchUseCase := appsearch.NewUseCase(searchService, limits)
	registerUseCase := appuser.NewRegisterUseCase(userService)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore, cfg.JWT.RefreshTokenExpire)
	logoutUseCase := appuser.NewLogoutUseCase(sessionStore, cfg.JWT.AccessTokenExpire)
	refreshUseCase := appuser.NewRefreshUseCase(jwtManager)

	// 接口层
	authorHandler := handler.NewAuthorHandler(authorUseCase)
	publisherHandler := handler.NewPublisherHandler(publisherUseCase)
	categoryHandler := handler.NewCategoryHandler(categoryUseCase)
	bookHandler := handler.NewBookHandler(bookUseCase)
	commentHandler := handler.NewCommentHandler(commentUseCase)
	searchHandler := handler.NewSearchHandler(searchUseCase)
	userHandler := handler.NewUserHandler(registerUseCase, loginUseCase, logoutUseCase, refreshUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 6. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(), middleware.Recovery(), middleware.Metrics())

	registerRoutes(r, authorHandler, publisherHandler, categoryHandler,
		bookHandler, commentHandler, searchHandler, userHandler, authMiddleware)

	// 7. 启动服务（优雅退出：等待在途请求完成后关闭）
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.L().Info("服务启动", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("启动服务失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("收到退出信号，开始优雅关闭")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Error("优雅关闭失败", zap.Error(err))
	}
	logger.L().Info("服务已退出")
}

// registerRoutes 注册路由
// 鉴权边界：写操作（POST/PUT/DELETE）要求登录，读操作公开
func registerRoutes(
	r *gin.Engine,
	authorHandler *handler.AuthorHandler,
	publisherHandler *handler.PublisherHandler,
	categoryHandler *handler.CategoryHandler,
	bookHandler *handler.BookHandler,
	commentHandler *handler.CommentHandler,
	searchHandler *handler.SearchHandler,
	userHandler *handler.UserHandler,
	auth *middleware.AuthMiddleware,
) {
	// 健康检查与指标
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"message": "pong", "status": "healthy"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// 用户模块
		users := v1.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.POST("/refresh", userHandler.Refresh)
			users.POST("/logout", auth.RequireAuth(), userHandler.Logout)
		}

		// 作者模块
		authors := v1.Group("/authors")
		{
			authors.GET("", authorHandler.List)
			authors.GET("/:id", authorHandler.Get)
			authors.POST("", auth.RequireAuth(), authorHandler.Create)
			authors.PUT("/:id", auth.RequireAuth(), authorHandler.Update)
			authors.DELETE("/:id", auth.RequireAuth(), authorHandler.Delete)
			authors.POST("/:id/restore", auth.RequireAuth(), authorHandler.Restore)
		}

		// 出版社模块
		publishers := v1.Group("/publishers")
		{
			publishers.GET("", publisherHandler.List)
			publishers.GET("/:id", publisherHandler.Get)
			publishers.POST("", auth.RequireAuth(), publisherHandler.Create)
			publishers.PUT("/:id", auth.RequireAuth(), publisherHandler.Update)
			publishers.DELETE("/:id", auth.RequireAuth(), publisherHandler.Delete)
			publishers.POST("/:id/restore", auth.RequireAuth(), publisherHandler.Restore)
		}

		// 分类模块（没有删除/恢复）
		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.GET("/:id", categoryHandler.Get)
			categories.GET("/:id/children", categoryHandler.Subcategories)
			categories.POST("", auth.RequireAuth(), categoryHandler.Create)
			categories.PUT("/:id", auth.RequireAuth(), categoryHandler.Update)
		}

		// 图书模块（含版本与评论子资源）
		books := v1.Group("/books")
		{
			books.GET("", bookHandler.List)
			books.GET("/:id", bookHandler.Get)
			books.GET("/:id/formats", bookHandler.ListFormats)
			books.GET("/:id/comments", commentHandler.ListByBook)
			books.POST("", auth.RequireAuth(), bookHandler.Create)
			books.PUT("/:id", auth.RequireAuth(), bookHandler.Update)
			books.DELETE("/:id", auth.RequireAuth(), bookHandler.Delete)
			books.POST("/:id/restore", auth.RequireAuth(), bookHandler.Restore)
			books.POST("/:id/formats", auth.RequireAuth(), bookHandler.AddFormat)
		}

		// 图书版本模块
		formats := v1.Group("/formats")
		{
			formats.GET("/:id", bookHandler.GetFormat)
			formats.PUT("/:id", auth.RequireAuth(), bookHandler.UpdateFormat)
			formats.DELETE("/:id", auth.RequireAuth(), bookHandler.DeleteFormat)
			formats.POST("/:id/restore", auth.RequireAuth(), bookHandler.RestoreFormat)
		}

		// 评论模块
		comments := v1.Group("/comments")
		{
			comments.GET("/:id", commentHandler.Get)
			comments.GET("/:id/replies", commentHandler.Replies)
			comments.POST("", auth.RequireAuth(), commentHandler.Create)
			comments.PUT("/:id", auth.RequireAuth(), commentHandler.Update)
			comments.DELETE("/:id", auth.RequireAuth(), commentHandler.Delete)
			comments.POST("/:id/restore", auth.RequireAuth(), commentHandler.Restore)
		}

		// 搜索模块（公开）
		v1.GET("/search", searchHandler.Search)
	}
}
