package clientv1_test

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	internalerrors "github.com/gatherly/community-service/internal/errors"
	clientv1 "github.com/gatherly/community-service/internal/server-client/v1"
	"github.com/gatherly/community-service/internal/types"
	sendmessage "github.com/gatherly/community-service/internal/usecases/client/send-message"
)

func (s *HandlersSuite) TestSendMessage_BindRequestError() {
	// Arrange.
	reqID := types.NewRequestID()
	resp, eCtx := s.newEchoCtx(reqID, "/v1/sendMessage", `{"messageBody": "Hel`)

	// Action.
	err := s.handlers.PostSendMessage(eCtx, clientv1.PostSendMessageParams{XRequestID: reqID})

	// Assert.
	s.Require().Error(err)
	s.Equal(http.StatusBadRequest, internalerrors.GetServerErrorCode(err))
	s.Empty(resp.Body)
}

func (s *HandlersSuite) TestSendMessage_Usecase_InvalidRequest() {
	// Arrange.
	reqID := types.NewRequestID()
	channelID := types.NewChannelID()
	msgBody := strings.Repeat("!", 3001)

	resp, eCtx := s.newEchoCtx(reqID, "/v1/sendMessage",
		fmt.Sprintf(`{"channelId": %q, "messageBody": "%s"}`, channelID, msgBody))
	s.sendMessageUseCase.EXPECT().Handle(eCtx.Request().Context(), sendmessage.Request{
		ID:          reqID,
		AuthorID:    s.userID,
		ChannelID:   channelID,
		MessageBody: msgBody,
	}).Return(sendmessage.Response{}, sendmessage.ErrInvalidRequest)

	// Action.
	err := s.handlers.PostSendMessage(eCtx, clientv1.PostSendMessageParams{XRequestID: reqID})

	// Assert.
	s.Require().Error(err)
	s.Equal(http.StatusBadRequest, internalerrors.GetServerErrorCode(err))
	s.Empty(resp.Body)
}

func (s *HandlersSuite) TestSendMessage_Usecase_ChannelNotFoundError() {
	// Arrange.
	reqID := types.NewRequestID()
	channelID := types.NewChannelID()
	resp, eCtx := s.newEchoCtx(reqID, "/v1/sendMessage",
		fmt.Sprintf(`{"channelId": %q, "messageBody": "Hello!"}`, channelID))
	s.sendMessageUseCase.EXPECT().Handle(eCtx.Request().Context(), sendmessage.Request{
		ID:          reqID,
		AuthorID:    s.userID,
		ChannelID:   channelID,
		MessageBody: "Hello!",
	}).Return(sendmessage.Response{}, sendmessage.ErrChannelNotFound)

	// Action.
	err := s.handlers.PostSendMessage(eCtx, clientv1.PostSendMessageParams{XRequestID: reqID})

	// Assert.
	s.Require().Error(err)
	s.EqualValues(clientv1.ErrorCodeChannelNotFoundError, internalerrors.GetServerErrorCode(err))
	s.Empty(resp.Body)
}

func (s *HandlersSuite) TestSendMessage_Usecase_NotAMemberError() {
	// Arrange.
	reqID := types.NewRequestID()
	channelID := types.NewChannelID()
	resp, eCtx := s.newEchoCtx(reqID, "/v1/sendMessage",
		fmt.Sprintf(`{"channelId": %q, "messageBody": "Hello!"}`, channelID))
	s.sendMessageUseCase.EXPECT().Handle(eCtx.Request().Context(), sendmessage.Request{
		ID:          reqID,
		AuthorID:    s.userID,
		ChannelID:   channelID,
		MessageBody: "Hello!",
	}).Return(sendmessage.Response{}, sendmessage.ErrNotAMember)

	// Action.
	err := s.handlers.PostSendMessage(eCtx, clientv1.PostSendMessageParams{XRequestID: reqID})

	// Assert.
	s.Require().Error(err)
	s.EqualValues(clientv1.ErrorCodeNotAMemberError, internalerrors.GetServerErrorCode(err))
	s.Empty(resp.Body)
}

func (s *HandlersSuite) TestSendMessage_Usecase_Success() {
	// Arrange.
	reqID := types.NewRequestID()
	channelID := types.NewChannelID()
	msgID := types.NewMessageID()

	resp, eCtx := s.newEchoCtx(reqID, "/v1/sendMessage",
		fmt.Sprintf(`{"channelId": %q, "messageBody": "Hello!"}`, channelID))
	s.sendMessageUseCase.EXPECT().Handle(eCtx.Request().Context(), sendmessage.Request{
		ID:          reqID,
		AuthorID:    s.userID,
		ChannelID:   channelID,
		MessageBody: "Hello!",
	}).Return(sendmessage.Response{
		MessageID: msgID,
		AuthorID:  s.userID,
		CreatedAt: time.Unix(1, 1).UTC(),
	}, nil)

	// Action.
	err := s.handlers.PostSendMessage(eCtx, clientv1.PostSendMessageParams{XRequestID: reqID})

	// Assert.
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.Code)
	s.JSONEq(fmt.Sprintf(`
{
    "data":
    {
        "authorId": "%s",
        "createdAt": "1970-01-01T00:00:01.000000001Z",
        "id": "%s"
    }
}`, s.userID, msgID), resp.Body.String())
}
