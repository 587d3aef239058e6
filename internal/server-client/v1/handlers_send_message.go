package clientv1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	internalerrors "github.com/gatherly/community-service/internal/errors"
	"github.com/gatherly/community-service/internal/middlewares"
	sendmessage "github.com/gatherly/community-service/internal/usecases/client/send-message"
	"github.com/gatherly/community-service/pkg/pointer"
)

func (h Handlers) PostSendMessage(eCtx echo.Context, params PostSendMessageParams) error {
	ctx := eCtx.Request().Context()
	authorID := middlewares.MustUserID(eCtx)

	var req SendMessageRequest
	if err := eCtx.Bind(&req); err != nil {
		return internalerrors.NewServerError(http.StatusBadRequest, "bind request", err)
	}

	result, err := h.sendMessage.Handle(ctx, sendmessage.Request{
		ID:            params.XRequestID,
		AuthorID:      authorID,
		ChannelID:     req.ChannelId,
		MessageBody:   req.MessageBody,
		AttachmentIDs: pointer.Indirect(req.AttachmentIds),
	})

	if errors.Is(err, sendmessage.ErrInvalidRequest) {
		return internalerrors.NewServerError(http.StatusBadRequest, "invalid request", err)
	}
	if errors.Is(err, sendmessage.ErrChannelNotFound) {
		return internalerrors.NewServerError(ErrorCodeChannelNotFoundError, "channel not found", err)
	}
	if errors.Is(err, sendmessage.ErrNotAMember) {
		return internalerrors.NewServerError(ErrorCodeNotAMemberError, "not a channel member", err)
	}
	if err != nil {
		return err
	}

	return eCtx.JSON(http.StatusOK, &SendMessageResponse{
		Data: &MessageHeader{
			AuthorId:  result.AuthorID.AsPointer(),
			CreatedAt: result.CreatedAt,
			Id:        result.MessageID,
		},
	})
}
