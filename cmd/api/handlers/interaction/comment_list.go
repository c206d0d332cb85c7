package handlers

import (
	"context"

	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/pagination"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func (h *Handler) ListComment(ctx context.Context, c *app.RequestContext) {
	var comment ListCommentParam
	if err := c.BindAndValidate(&comment); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	resp, err := h.comment.ListComments(ctx, comment.VideoId, pagination.Params{
		PageNum:  comment.PageNum,
		PageSize: comment.PageSize,
	})
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}
