package clientv1_test

import (
	"fmt"
	"net/http"
	"time"

	internalerrors "github.com/gatherly/community-service/internal/errors"
	clientv1 "github.com/gatherly/community-service/internal/server-client/v1"
	"github.com/gatherly/community-service/internal/types"
	pinmessage "github.com/gatherly/community-service/internal/usecases/client/pin-message"
)

func (s *HandlersSuite) TestPinMessage_BindRequestError() {
	// Arrange.
	reqID := types.NewRequestID()
	resp, eCtx := s.newEchoCtx(reqID, "/v1/pinMessage", `{"messageId": "not`)

	// Action.
	err := s.handlers.PostPinMessage(eCtx, clientv1.PostPinMessageParams{XRequestID: reqID})

	// Assert.
	s.Require().Error(err)
	s.Equal(http.StatusBadRequest, internalerrors.GetServerErrorCode(err))
	s.Empty(resp.Body)
}

func (s *HandlersSuite) TestPinMessage_Usecase_MessageNotFoundError() {
	// Arrange.
	reqID := types.NewRequestID()
	msgID := types.NewMessageID()
	resp, eCtx := s.newEchoCtx(reqID, "/v1/pinMessage", fmt.Sprintf(`{"messageId": %q}`, msgID))
	s.pinMessageUseCase.EXPECT().Handle(eCtx.Request().Context(), pinmessage.Request{
		ID:        reqID,
		ActorID:   s.userID,
		MessageID: msgID,
	}).Return(pinmessage.Response{}, pinmessage.ErrMsgNotFound)

	// Action.
	err := s.handlers.PostPinMessage(eCtx, clientv1.PostPinMessageParams{XRequestID: reqID})

	// Assert.
	s.Require().Error(err)
	s.EqualValues(clientv1.ErrorCodeMessageNotFoundError, internalerrors.GetServerErrorCode(err))
	s.Empty(resp.Body)
}

func (s *HandlersSuite) TestPinMessage_Usecase_AlreadyPinnedError() {
	// Arrange.
	reqID := types.NewRequestID()
	msgID := types.NewMessageID()
	resp, eCtx := s.newEchoCtx(reqID, "/v1/pinMessage", fmt.Sprintf(`{"messageId": %q}`, msgID))
	s.pinMessageUseCase.EXPECT().Handle(eCtx.Request().Context(), pinmessage.Request{
		ID:        reqID,
		ActorID:   s.userID,
		MessageID: msgID,
	}).Return(pinmessage.Response{}, pinmessage.ErrAlreadyPinned)

	// Action.
	err := s.handlers.PostPinMessage(eCtx, clientv1.PostPinMessageParams{XRequestID: reqID})

	// Assert.
	s.Require().Error(err)
	s.EqualValues(clientv1.ErrorCodeAlreadyPinnedError, internalerrors.GetServerErrorCode(err))
	s.Empty(resp.Body)
}

func (s *HandlersSuite) TestPinMessage_Usecase_Success() {
	// Arrange.
	reqID := types.NewRequestID()
	msgID := types.NewMessageID()
	pinID := types.NewPinID()

	resp, eCtx := s.newEchoCtx(reqID, "/v1/pinMessage", fmt.Sprintf(`{"messageId": %q}`, msgID))
	s.pinMessageUseCase.EXPECT().Handle(eCtx.Request().Context(), pinmessage.Request{
		ID:        reqID,
		ActorID:   s.userID,
		MessageID: msgID,
	}).Return(pinmessage.Response{
		PinID:    pinID,
		PinnedAt: time.Unix(1, 1).UTC(),
	}, nil)

	// Action.
	err := s.handlers.PostPinMessage(eCtx, clientv1.PostPinMessageParams{XRequestID: reqID})

	// Assert.
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.Code)
	s.JSONEq(fmt.Sprintf(`
{
    "data":
    {
        "pinId": "%s",
        "pinnedAt": "1970-01-01T00:00:01.000000001Z"
    }
}`, pinID), resp.Body.String())
}
