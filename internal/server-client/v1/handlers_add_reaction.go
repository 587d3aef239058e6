package clientv1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	internalerrors "github.com/gatherly/community-service/internal/errors"
	"github.com/gatherly/community-service/internal/middlewares"
	addreaction "github.com/gatherly/community-service/internal/usecases/client/add-reaction"
)

func (h Handlers) PostAddReaction(eCtx echo.Context, params PostAddReactionParams) error {
	ctx := eCtx.Request().Context()
	actorID := middlewares.MustUserID(eCtx)

	var req AddReactionRequest
	if err := eCtx.Bind(&req); err != nil {
		return internalerrors.NewServerError(http.StatusBadRequest, "bind request", err)
	}

	result, err := h.addReaction.Handle(ctx, addreaction.Request{
		ID:        params.XRequestID,
		ActorID:   actorID,
		MessageID: req.MessageId,
		Emoji:     req.Emoji,
	})

	if errors.Is(err, addreaction.ErrInvalidRequest) {
		return internalerrors.NewServerError(http.StatusBadRequest, "invalid request", err)
	}
	if errors.Is(err, addreaction.ErrMsgNotFound) {
		return internalerrors.NewServerError(ErrorCodeMessageNotFoundError, "message not found", err)
	}
	if errors.Is(err, addreaction.ErrNotAMember) {
		return internalerrors.NewServerError(ErrorCodeNotAMemberError, "not a channel member", err)
	}
	if errors.Is(err, addreaction.ErrAlreadyReacted) {
		return internalerrors.NewServerError(ErrorCodeAlreadyReactedError, "already reacted", err)
	}
	if err != nil {
		return err
	}

	return eCtx.JSON(http.StatusOK, &AddReactionResponse{
		Data: &Reaction{
			CreatedAt:  result.CreatedAt,
			ReactionId: result.ReactionID,
		},
	})
}
