package handlers

import (
	"VideoTube.com/cmd/user/service"
	"VideoTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(consts.StatusOK, Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

type Handler struct {
	profile *service.ChannelProfileService
	history *service.WatchHistoryService
}

func NewHandler(profile *service.ChannelProfileService, history *service.WatchHistoryService) *Handler {
	return &Handler{profile: profile, history: history}
}
