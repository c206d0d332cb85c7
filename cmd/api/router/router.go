package router

import (
	interhandlers "VideoTube.com/cmd/api/handlers/interaction"
	userhandlers "VideoTube.com/cmd/api/handlers/user"
	videohandlers "VideoTube.com/cmd/api/handlers/video"
	jwt "VideoTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app/server"
)

// Register wires the thin HTTP surface to the services; every route is a
// bind-call-respond passthrough.
func Register(r *server.Hertz,
	interaction *interhandlers.Handler,
	video *videohandlers.Handler,
	user *userhandlers.Handler) {

	interGroup := r.Group("/interaction")
	{
		interGroup.GET("/comment/list", interaction.ListComment)
		interGroup.GET("/like/count", interaction.LikeCount)
		interGroup.POST("/like/action", jwt.MiddlewareFunc(), interaction.LikeAction)
	}

	videoGroup := r.Group("/video")
	{
		videoGroup.GET("/list", video.VideoList)
	}

	userGroup := r.Group("/user")
	{
		userGroup.GET("/channel/:handle", jwt.OptionalMiddlewareFunc(), user.ChannelProfile)
		userGroup.GET("/history", jwt.MiddlewareFunc(), user.WatchHistory)
	}
}
