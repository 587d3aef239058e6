package clientv1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	internalerrors "github.com/gatherly/community-service/internal/errors"
	"github.com/gatherly/community-service/internal/middlewares"
	removereaction "github.com/gatherly/community-service/internal/usecases/client/remove-reaction"
)

func (h Handlers) PostRemoveReaction(eCtx echo.Context, params PostRemoveReactionParams) error {
	ctx := eCtx.Request().Context()
	actorID := middlewares.MustUserID(eCtx)

	var req RemoveReactionRequest
	if err := eCtx.Bind(&req); err != nil {
		return internalerrors.NewServerError(http.StatusBadRequest, "bind request", err)
	}

	result, err := h.removeReaction.Handle(ctx, removereaction.Request{
		ID:        params.XRequestID,
		ActorID:   actorID,
		MessageID: req.MessageId,
		Emoji:     req.Emoji,
	})

	if errors.Is(err, removereaction.ErrInvalidRequest) {
		return internalerrors.NewServerError(http.StatusBadRequest, "invalid request", err)
	}
	if errors.Is(err, removereaction.ErrMsgNotFound) {
		return internalerrors.NewServerError(ErrorCodeMessageNotFoundError, "message not found", err)
	}
	if errors.Is(err, removereaction.ErrNotAMember) {
		return internalerrors.NewServerError(ErrorCodeNotAMemberError, "not a channel member", err)
	}
	if errors.Is(err, removereaction.ErrReactionNotFound) {
		return internalerrors.NewServerError(ErrorCodeReactionNotFoundError, "reaction not found", err)
	}
	if err != nil {
		return err
	}

	return eCtx.JSON(http.StatusOK, &RemoveReactionResponse{
		Data: &RemovedReaction{
			ReactionId: result.ReactionID,
		},
	})
}
