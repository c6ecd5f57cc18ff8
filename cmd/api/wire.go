//go:build wireinject
// +build wireinject

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"gorm.io/gorm"

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
)

// 基础设施Provider集合
var infrastructureSet = wire.NewSet(
	config.Load,
	provideDB,
	redis.NewClient,
	redis.NewSessionStore,
	provideJWTManager,
	providePartitionRouter,
	providePageLimits,
)

// 仓储Provider集合（构造函数返回领域接口，无需wire.Bind）
var repositorySet = wire.NewSet(
	postgres.NewAuthorRepository,
	postgres.NewPublisherRepository,
	postgres.NewCategoryRepository,
	postgres.NewBookRepository,
	postgres.NewFormatRepository,
	postgres.NewCommentRepository,
	postgres.NewUserRepository,
	postgres.NewSearchQuerier,
	postgres.NewReferenceChecker,
	wire.Bind(new(book.ReferenceChecker), new(*postgres.ReferenceChecker)),
	wire.Bind(new(comment.BookChecker), new(*postgres.ReferenceChecker)),
)

// 领域服务Provider集合
var domainSet = wire.NewSet(
	author.NewService,
	publisher.NewService,
	category.NewService,
	book.NewService,
	comment.NewService,
	search.NewService,
	user.NewService,
)

// 应用用例Provider集合
var applicationSet = wire.NewSet(
	appauthor.NewUseCase,
	apppublisher.NewUseCase,
	appcategory.NewUseCase,
	appbook.NewUseCase,
	appcomment.NewUseCase,
	appsearch.NewUseCase,
	appuser.NewRegisterUseCase,
	provideLoginUseCase,
	provideLogoutUseCase,
	appuser.NewRefreshUseCase,
)

// 接口层Provider集合
var interfaceSet = wire.NewSet(
	handler.NewAuthorHandler,
	handler.NewPublisherHandler,
	handler.NewCategoryHandler,
	handler.NewBookHandler,
	handler.NewCommentHandler,
	handler.NewSearchHandler,
	handler.NewUserHandler,
	middleware.NewAuthMiddleware,
	provideGinEngine,
)

// provideDB 创建数据库连接并执行迁移
func provideDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := postgres.NewDB(cfg)
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(db, cfg.Catalog.PartitionYears); err != nil {
		return nil, err
	}
	return db, nil
}

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpire, cfg.JWT.RefreshTokenExpire)
}

// providePartitionRouter 从配置创建分区路由器
func providePartitionRouter(cfg *config.Config) *book.PartitionRouter {
	return book.NewPartitionRouter(cfg.Catalog.PartitionYears)
}

// providePageLimits 从配置提取分页参数
func providePageLimits(cfg *config.Config) application.PageLimits {
	return application.PageLimits{
		Default: cfg.Catalog.DefaultPageSize,
		Max:     cfg.Catalog.MaxPageSize,
	}
}

// provideLoginUseCase Login与Logout用例各依赖一个time.Duration，
// 同一类型wire无法区分，所以在这里手工传参
func provideLoginUseCase(
	userService user.Service,
	jwtManager *jwt.Manager,
	sessionStore *redis.SessionStore,
	cfg *config.Config,
) *appuser.LoginUseCase {
	return appuser.NewLoginUseCase(userService, jwtManager, sessionStore, cfg.JWT.RefreshTokenExpire)
}

func provideLogoutUseCase(sessionStore *redis.SessionStore, cfg *config.Config) *appuser.LogoutUseCase {
	return appuser.NewLogoutUseCase(sessionStore, cfg.JWT.AccessTokenExpire)
}

// provideGinEngine 组装Gin引擎（中间件 + 路由）
func provideGinEngine(
	cfg *config.Config,
	authorHandler *handler.AuthorHandler,
	publisherHandler *handler.PublisherHandler,
	categoryHandler *handler.CategoryHandler,
	bookHandler *handler.BookHandler,
	commentHandler *handler.CommentHandler,
	searchHandler *handler.SearchHandler,
	userHandler *handler.UserHandler,
	auth *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(), middleware.Recovery(), middleware.Metrics())

	registerRoutes(r, authorHandler, publisherHandler, categoryHandler,
		bookHandler, commentHandler, searchHandler, userHandler, auth)
	return r
}

// InitializeApp 编译期依赖注入入口（go generate时由wire生成wire_gen.go）
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		interfaceSet,
	)
	return nil, nil
}
