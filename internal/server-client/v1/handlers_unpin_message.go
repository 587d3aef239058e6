package clientv1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	internalerrors "github.com/gatherly/community-service/internal/errors"
	"github.com/gatherly/community-service/internal/middlewares"
	unpinmessage "github.com/gatherly/community-service/internal/usecases/client/unpin-message"
)

func (h Handlers) PostUnpinMessage(eCtx echo.Context, params PostUnpinMessageParams) error {
	ctx := eCtx.Request().Context()
	actorID := middlewares.MustUserID(eCtx)

	var req UnpinMessageRequest
	if err := eCtx.Bind(&req); err != nil {
		return internalerrors.NewServerError(http.StatusBadRequest, "bind request", err)
	}

	result, err := h.unpinMessage.Handle(ctx, unpinmessage.Request{
		ID:        params.XRequestID,
		ActorID:   actorID,
		MessageID: req.MessageId,
	})

	if errors.Is(err, unpinmessage.ErrInvalidRequest) {
		return internalerrors.NewServerError(http.StatusBadRequest, "invalid request", err)
	}
	if errors.Is(err, unpinmessage.ErrMsgNotFound) {
		return internalerrors.NewServerError(ErrorCodeMessageNotFoundError, "message not found", err)
	}
	if errors.Is(err, unpinmessage.ErrNotAMember) {
		return internalerrors.NewServerError(ErrorCodeNotAMemberError, "not a channel member", err)
	}
	if errors.Is(err, unpinmessage.ErrNotPinned) {
		return internalerrors.NewServerError(ErrorCodeNotPinnedError, "message is not pinned", err)
	}
	if err != nil {
		return err
	}

	return eCtx.JSON(http.StatusOK, &UnpinMessageResponse{
		Data: &RemovedPin{
			PinId: result.PinID,
		},
	})
}
