package clientv1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	internalerrors "github.com/gatherly/community-service/internal/errors"
	"github.com/gatherly/community-service/internal/middlewares"
	deletemessage "github.com/gatherly/community-service/internal/usecases/client/delete-message"
)

func (h Handlers) PostDeleteMessage(eCtx echo.Context, params PostDeleteMessageParams) error {
	ctx := eCtx.Request().Context()
	actorID := middlewares.MustUserID(eCtx)

	var req DeleteMessageRequest
	if err := eCtx.Bind(&req); err != nil {
		return internalerrors.NewServerError(http.StatusBadRequest, "bind request", err)
	}

	result, err := h.deleteMessage.Handle(ctx, deletemessage.Request{
		ID:        params.XRequestID,
		ActorID:   actorID,
		MessageID: req.MessageId,
	})

	if errors.Is(err, deletemessage.ErrInvalidRequest) {
		return internalerrors.NewServerError(http.StatusBadRequest, "invalid request", err)
	}
	if errors.Is(err, deletemessage.ErrMsgNotFound) {
		return internalerrors.NewServerError(ErrorCodeMessageNotFoundError, "message not found", err)
	}
	if errors.Is(err, deletemessage.ErrNotAuthor) {
		return internalerrors.NewServerError(ErrorCodeNotMessageAuthorError, "not a message author", err)
	}
	if err != nil {
		return err
	}

	return eCtx.JSON(http.StatusOK, &DeleteMessageResponse{
		Data: &DeletedMessage{
			ChannelId: result.ChannelID,
			MessageId: result.MessageID,
		},
	})
}
