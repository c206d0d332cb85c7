package main

import (
	"context"
	"fmt"

	interhandlers "VideoTube.com/cmd/api/handlers/interaction"
	userhandlers "VideoTube.com/cmd/api/handlers/user"
	videohandlers "VideoTube.com/cmd/api/handlers/video"
	"VideoTube.com/cmd/api/router"
	interdb "VideoTube.com/cmd/interaction/dal/db"
	interredis "VideoTube.com/cmd/interaction/infras/redis"
	interservice "VideoTube.com/cmd/interaction/service"
	userdb "VideoTube.com/cmd/user/dal/db"
	userservice "VideoTube.com/cmd/user/service"
	videodb "VideoTube.com/cmd/video/dal/db"
	videoservice "VideoTube.com/cmd/video/service"
	"VideoTube.com/config"
	"VideoTube.com/pkg/database"
	"VideoTube.com/pkg/errno"
	jwt "VideoTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	config.Init()

	conn, err := database.Open()
	if err != nil {
		logrus.Fatalf("failed to open mysql: %v", err)
	}

	rdb := interredis.NewClient(config.ConfigInfo.Redis.Addr, config.ConfigInfo.Redis.Password)
	likeCache := interredis.NewLikeCountCache(rdb)

	interactionDB := interdb.NewInteractionDB(conn)
	likeService := interservice.NewLikeService(interactionDB, likeCache)
	commentService := interservice.NewCommentService(interactionDB)

	videoListService := videoservice.NewVideoListService(videodb.NewVideoDB(conn))

	userDB := userdb.NewUserDB(conn)
	profileService := userservice.NewChannelProfileService(userDB)
	historyService := userservice.NewWatchHistoryService(userDB)

	if err := jwt.Init(config.ConfigInfo.Jwt.Secret); err != nil {
		logrus.Fatalf("failed to init jwt middleware: %v", err)
	}

	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigInfo.Server.CorsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": fmt.Sprintf("[Recovery] err=%v", err),
			})
		})))

	router.Register(r,
		interhandlers.NewHandler(likeService, commentService),
		videohandlers.NewHandler(videoListService),
		userhandlers.NewHandler(profileService, historyService),
	)

	r.Spin()
}
