package handlers

import (
	"VideoTube.com/cmd/interaction/service"
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

type LikeParam struct {
	VideoId   int64 `form:"video_id" query:"video_id"`
	CommentId int64 `form:"comment_id" query:"comment_id"`
}

type ListCommentParam struct {
	VideoId  int64 `form:"video_id" query:"video_id"`
	PageNum  int64 `form:"page_num" query:"page_num"`
	PageSize int64 `form:"page_size" query:"page_size"`
}

type Handler struct {
	like    *service.LikeService
	comment *service.CommentService
}

func NewHandler(like *service.LikeService, comment *service.CommentService) *Handler {
	return &Handler{like: like, comment: comment}
}
