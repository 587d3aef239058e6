package clientv1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	internalerrors "github.com/gatherly/community-service/internal/errors"
	"github.com/gatherly/community-service/internal/middlewares"
	gethistory "github.com/gatherly/community-service/internal/usecases/client/get-history"
	"github.com/gatherly/community-service/pkg/pointer"
)

func (h Handlers) PostGetHistory(eCtx echo.Context, params PostGetHistoryParams) error {
	ctx := eCtx.Request().Context()
	userID := middlewares.MustUserID(eCtx)

	var req GetHistoryRequest
	if err := eCtx.Bind(&req); err != nil {
		return fmt.Errorf("bind request: %w", err)
	}

	resp, err := h.getHistory.Handle(ctx, gethistory.Request{
		ID:        params.XRequestID,
		UserID:    userID,
		ChannelID: req.ChannelId,
		Cursor:    pointer.Indirect(req.Cursor),
		PageSize:  pointer.Indirect(req.PageSize),
	})
	if err != nil {
		if errors.Is(err, gethistory.ErrInvalidRequest) {
			return internalerrors.NewServerError(http.StatusBadRequest, "invalid request", err)
		}

		if errors.Is(err, gethistory.ErrInvalidCursor) {
			return internalerrors.NewServerError(http.StatusBadRequest, "invalid cursor", err)
		}

		if errors.Is(err, gethistory.ErrNotAMember) {
			return internalerrors.NewServerError(ErrorCodeNotAMemberError, "not a channel member", err)
		}

		return fmt.Errorf("handle `get history`: %v", err)
	}

	page := make([]Message, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		page = append(page, Message{
			AuthorId:  m.AuthorID,
			Body:      m.Body,
			CreatedAt: m.CreatedAt,
			EditedAt:  m.EditedAt,
			Id:        m.ID,
			IsDeleted: m.IsDeleted,
		})
	}

	return eCtx.JSON(http.StatusOK, GetHistoryResponse{Data: &MessagesPage{
		Messages: page,
		Next:     resp.NextCursor,
	}})
}
