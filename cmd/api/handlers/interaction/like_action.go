package handlers

import (
	"context"

	"VideoTube.com/pkg/errno"
	jwt "VideoTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func (h *Handler) LikeAction(ctx context.Context, c *app.RequestContext) {
	var like LikeParam
	if err := c.BindAndValidate(&like); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	userId := jwt.ViewerId(c)

	resp, err := h.like.ToggleLike(ctx, like.VideoId, like.CommentId, userId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func (h *Handler) LikeCount(ctx context.Context, c *app.RequestContext) {
	var like LikeParam
	if err := c.BindAndValidate(&like); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	resp, err := h.like.CountLikes(ctx, like.VideoId, like.CommentId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}
