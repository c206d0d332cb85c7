package handlers

import (
	"context"

	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/pagination"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func (h *Handler) VideoList(ctx context.Context, c *app.RequestContext) {
	var param VideoListParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	resp, err := h.videoList.ListVideos(ctx, param.UserId, param.Query, param.SortBy, param.SortDir, pagination.Params{
		PageNum:  param.PageNum,
		PageSize: param.PageSize,
	})
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}
