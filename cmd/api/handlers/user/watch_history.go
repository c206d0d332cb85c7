package handlers

import (
	"context"

	"VideoTube.com/pkg/errno"
	jwt "VideoTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

func (h *Handler) WatchHistory(ctx context.Context, c *app.RequestContext) {
	userId := jwt.ViewerId(c)

	resp, err := h.history.GetWatchHistory(ctx, userId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}
