package handlers

import (
	"context"

	"VideoTube.com/pkg/errno"
	jwt "VideoTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

func (h *Handler) ChannelProfile(ctx context.Context, c *app.RequestContext) {
	handle := c.Param("handle")
	viewerId := jwt.ViewerId(c)

	resp, err := h.profile.GetChannelProfile(ctx, handle, viewerId)
	if err != nil {
		SendResponse(c, err, nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}
