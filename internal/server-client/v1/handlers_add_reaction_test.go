package clientv1_test

import (
	"fmt"
	"net/http"
	"time"

	internalerrors "github.com/gatherly/community-service/internal/errors"
	clientv1 "github.com/gatherly/community-service/internal/server-client/v1"
	"github.com/gatherly/community-service/internal/types"
	addreaction "github.com/gatherly/community-service/internal/usecases/client/add-reaction"
)

func (s *HandlersSuite) TestAddReaction_BindRequestError() {
	// Arrange.
	reqID := types.NewRequestID()
	resp, eCtx := s.newEchoCtx(reqID, "/v1/addReaction", `{"emoji": "👍`)

	// Action.
	err := s.handlers.PostAddReaction(eCtx, clientv1.PostAddReactionParams{XRequestID: reqID})

	// Assert.
	s.Require().Error(err)
	s.Equal(http.StatusBadRequest, internalerrors.GetServerErrorCode(err))
	s.Empty(resp.Body)
}

func (s *HandlersSuite) TestAddReaction_Usecase_AlreadyReactedError() {
	// Arrange.
	reqID := types.NewRequestID()
	msgID := types.NewMessageID()
	resp, eCtx := s.newEchoCtx(reqID, "/v1/addReaction",
		fmt.Sprintf(`{"messageId": %q, "emoji": "👍"}`, msgID))
	s.addReactionUseCase.EXPECT().Handle(eCtx.Request().Context(), addreaction.Request{
		ID:        reqID,
		ActorID:   s.userID,
		MessageID: msgID,
		Emoji:     "👍",
	}).Return(addreaction.Response{}, addreaction.ErrAlreadyReacted)

	// Action.
	err := s.handlers.PostAddReaction(eCtx, clientv1.PostAddReactionParams{XRequestID: reqID})

	// Assert.
	s.Require().Error(err)
	s.EqualValues(clientv1.ErrorCodeAlreadyReactedError, internalerrors.GetServerErrorCode(err))
	s.Empty(resp.Body)
}

func (s *HandlersSuite) TestAddReaction_Usecase_Success() {
	// Arrange.
	reqID := types.NewRequestID()
	msgID := types.NewMessageID()
	reactionID := types.NewReactionID()

	resp, eCtx := s.newEchoCtx(reqID, "/v1/addReaction",
		fmt.Sprintf(`{"messageId": %q, "emoji": "👍"}`, msgID))
	s.addReactionUseCase.EXPECT().Handle(eCtx.Request().Context(), addreaction.Request{
		ID:        reqID,
		ActorID:   s.userID,
		MessageID: msgID,
		Emoji:     "👍",
	}).Return(addreaction.Response{
		ReactionID: reactionID,
		CreatedAt:  time.Unix(1, 1).UTC(),
	}, nil)

	// Action.
	err := s.handlers.PostAddReaction(eCtx, clientv1.PostAddReactionParams{XRequestID: reqID})

	// Assert.
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.Code)
	s.JSONEq(fmt.Sprintf(`
{
    "data":
    {
        "createdAt": "1970-01-01T00:00:01.000000001Z",
        "reactionId": "%s"
    }
}`, reactionID), resp.Body.String())
}
