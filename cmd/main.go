package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	v1 "blogr/api/v1"
	"blogr/config"
	"blogr/dao"
	"blogr/internal/storage"
	myvalidator "blogr/internal/validator"
	"blogr/middleware"
	"blogr/model"
	"blogr/service"
)

func main() {
	// 初始化配置
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../"
	}
	config.InitConfig(configPath)
	config.InitRedis()

	// 初始化数据库
	db, err := gorm.Open(mysql.Open(config.GlobalConfig.MySQL.DSN), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	// 自动迁移（包含 username 唯一索引）
	if err := db.AutoMigrate(&model.User{}, &model.Profile{}, &model.Post{}, &model.Comment{}); err != nil {
		panic(err)
	}

	// 初始化 DAO 和 Service
	userDAO := dao.NewUserDAO(db)
	profileDAO := dao.NewProfileDAO(db)
	postDAO := dao.NewPostDAO(db)
	commentDAO := dao.NewCommentDAO(db)

	photoStore := storage.NewDiskStore(config.GlobalConfig.Upload.Dir)

	authService := service.NewAuthService(userDAO, config.RedisClient)
	postService := service.NewPostService(postDAO, commentDAO)
	commentService := service.NewCommentService(commentDAO, postDAO)
	profileService := service.NewProfileService(profileDAO, userDAO, photoStore)

	authAPI := v1.NewAuthAPI(authService)
	postAPI := v1.NewPostAPI(postService)
	commentAPI := v1.NewCommentAPI(commentService)
	profileAPI := v1.NewProfileAPI(profileService)

	// 初始化路由
	r := gin.Default()
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 注册自定义校验器
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("notblank", myvalidator.NotBlank); err != nil {
			panic(err)
		}
	}

	// 每个请求先解析当前用户
	r.Use(middleware.CurrentUser(authService.Session, userDAO))

	// 公共路由
	public := r.Group("/api/v1")
	{
		public.POST("/auth/register", authAPI.Register)
		public.POST("/auth/login", authAPI.Login)
		public.GET("/posts", postAPI.List)
		public.GET("/posts/:id", postAPI.Show)
		public.GET("/users/:username", profileAPI.View)
	}

	// 私有路由
	private := r.Group("/api/v1")
	private.Use(middleware.RequireLogin())
	{
		private.POST("/auth/logout", authAPI.Logout)
		private.POST("/posts", postAPI.Create)
		private.PUT("/posts/:id", postAPI.Update)
		private.DELETE("/posts/:id", postAPI.Delete)
		private.POST("/posts/:id/comments", commentAPI.Add)
		private.PUT("/posts/:id/comments/:commentID", commentAPI.Edit)
		private.DELETE("/posts/:id/comments/:commentID", commentAPI.Delete)
		private.PUT("/users/:username", profileAPI.Update)
	}

	// 启动服务
	if err := r.Run(config.GlobalConfig.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
