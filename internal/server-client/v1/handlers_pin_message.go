package clientv1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	internalerrors "github.com/gatherly/community-service/internal/errors"
	"github.com/gatherly/community-service/internal/middlewares"
	pinmessage "github.com/gatherly/community-service/internal/usecases/client/pin-message"
)

func (h Handlers) PostPinMessage(eCtx echo.Context, params PostPinMessageParams) error {
	ctx := eCtx.Request().Context()
	actorID := middlewares.MustUserID(eCtx)

	var req PinMessageRequest
	if err := eCtx.Bind(&req); err != nil {
		return internalerrors.NewServerError(http.StatusBadRequest, "bind request", err)
	}

	result, err := h.pinMessage.Handle(ctx, pinmessage.Request{
		ID:        params.XRequestID,
		ActorID:   actorID,
		MessageID: req.MessageId,
	})

	if errors.Is(err, pinmessage.ErrInvalidRequest) {
		return internalerrors.NewServerError(http.StatusBadRequest, "invalid request", err)
	}
	if errors.Is(err, pinmessage.ErrMsgNotFound) {
		return internalerrors.NewServerError(ErrorCodeMessageNotFoundError, "message not found", err)
	}
	if errors.Is(err, pinmessage.ErrNotAMember) {
		return internalerrors.NewServerError(ErrorCodeNotAMemberError, "not a channel member", err)
	}
	if errors.Is(err, pinmessage.ErrAlreadyPinned) {
		return internalerrors.NewServerError(ErrorCodeAlreadyPinnedError, "message already pinned", err)
	}
	if err != nil {
		return err
	}

	return eCtx.JSON(http.StatusOK, &PinMessageResponse{
		Data: &Pin{
			PinId:    result.PinID,
			PinnedAt: result.PinnedAt,
		},
	})
}
