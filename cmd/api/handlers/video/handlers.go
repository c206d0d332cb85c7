package handlers

import (
	"VideoTube.com/cmd/video/service"
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

type VideoListParam struct {
	UserId   int64  `form:"user_id" query:"user_id"`
	Query    string `form:"query" query:"query"`
	SortBy   string `form:"sort_by" query:"sort_by"`
	SortDir  string `form:"sort_dir" query:"sort_dir"`
	PageNum  int64  `form:"page_num" query:"page_num"`
	PageSize int64  `form:"page_size" query:"page_size"`
}

type Handler struct {
	videoList *service.VideoListService
}

func NewHandler(videoList *service.VideoListService) *Handler {
	return &Handler{videoList: videoList}
}
