package clientv1_test

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	internalerrors "github.com/gatherly/community-service/internal/errors"
	clientv1 "github.com/gatherly/community-service/internal/server-client/v1"
	"github.com/gatherly/community-service/internal/types"
	gethistory "github.com/gatherly/community-service/internal/usecases/client/get-history"
)

func (s *HandlersSuite) TestGetHistory_BindRequestError() {
	// Arrange.
	reqID := types.NewRequestID()
	resp, eCtx := s.newEchoCtx(reqID, "/v1/getHistory", `{"pageSize":`)

	// Action.
	err := s.handlers.PostGetHistory(eCtx, clientv1.PostGetHistoryParams{XRequestID: reqID})

	// Assert.
	s.Require().Error(err)
	s.Empty(resp.Body)
}

func (s *HandlersSuite) TestGetHistory_Usecase_InvalidRequest() {
	// Arrange.
	reqID := types.NewRequestID()
	channelID := types.NewChannelID()
	resp, eCtx := s.newEchoCtx(reqID, "/v1/getHistory",
		fmt.Sprintf(`{"channelId": %q, "pageSize": 9}`, channelID))
	s.getHistoryUseCase.EXPECT().Handle(eCtx.Request().Context(), gethistory.Request{
		ID:        reqID,
		UserID:    s.userID,
		ChannelID: channelID,
		PageSize:  9,
		Cursor:    "",
	}).Return(gethistory.Response{}, gethistory.ErrInvalidRequest)

	// Action.
	err := s.handlers.PostGetHistory(eCtx, clientv1.PostGetHistoryParams{XRequestID: reqID})

	// Assert.
	s.Require().Error(err)
	s.Equal(http.StatusBadRequest, internalerrors.GetServerErrorCode(err))
	s.Empty(resp.Body)
}

func (s *HandlersSuite) TestGetHistory_Usecase_InvalidCursor() {
	// Arrange.
	reqID := types.NewRequestID()
	channelID := types.NewChannelID()
	resp, eCtx := s.newEchoCtx(reqID, "/v1/getHistory",
		fmt.Sprintf(`{"channelId": %q, "cursor": "abracadabra"}`, channelID))
	s.getHistoryUseCase.EXPECT().Handle(eCtx.Request().Context(), gethistory.Request{
		ID:        reqID,
		UserID:    s.userID,
		ChannelID: channelID,
		PageSize:  0,
		Cursor:    "abracadabra",
	}).Return(gethistory.Response{}, gethistory.ErrInvalidCursor)

	// Action.
	err := s.handlers.PostGetHistory(eCtx, clientv1.PostGetHistoryParams{XRequestID: reqID})

	// Assert.
	s.Require().Error(err)
	s.Equal(http.StatusBadRequest, internalerrors.GetServerErrorCode(err))
	s.Empty(resp.Body)
}

func (s *HandlersSuite) TestGetHistory_Usecase_NotAMemberError() {
	// Arrange.
	reqID := types.NewRequestID()
	channelID := types.NewChannelID()
	resp, eCtx := s.newEchoCtx(reqID, "/v1/getHistory",
		fmt.Sprintf(`{"channelId": %q, "pageSize": 10}`, channelID))
	s.getHistoryUseCase.EXPECT().Handle(eCtx.Request().Context(), gethistory.Request{
		ID:        reqID,
		UserID:    s.userID,
		ChannelID: channelID,
		PageSize:  10,
	}).Return(gethistory.Response{}, gethistory.ErrNotAMember)

	// Action.
	err := s.handlers.PostGetHistory(eCtx, clientv1.PostGetHistoryParams{XRequestID: reqID})

	// Assert.
	s.Require().Error(err)
	s.EqualValues(clientv1.ErrorCodeNotAMemberError, internalerrors.GetServerErrorCode(err))
	s.Empty(resp.Body)
}

func (s *HandlersSuite) TestGetHistory_Usecase_UnknownError() {
	// Arrange.
	reqID := types.NewRequestID()
	channelID := types.NewChannelID()
	resp, eCtx := s.newEchoCtx(reqID, "/v1/getHistory",
		fmt.Sprintf(`{"channelId": %q, "pageSize": 10}`, channelID))
	s.getHistoryUseCase.EXPECT().Handle(eCtx.Request().Context(), gethistory.Request{
		ID:        reqID,
		UserID:    s.userID,
		ChannelID: channelID,
		PageSize:  10,
	}).Return(gethistory.Response{}, errors.New("something went wrong"))

	// Action.
	err := s.handlers.PostGetHistory(eCtx, clientv1.PostGetHistoryParams{XRequestID: reqID})

	// Assert.
	s.Require().Error(err)
	s.Empty(resp.Body)
}

func (s *HandlersSuite) TestGetHistory_Usecase_Success() {
	// Arrange.
	reqID := types.NewRequestID()
	channelID := types.NewChannelID()
	resp, eCtx := s.newEchoCtx(reqID, "/v1/getHistory",
		fmt.Sprintf(`{"channelId": %q, "pageSize": 10}`, channelID))

	msgs := []gethistory.Message{
		{
			ID:        types.NewMessageID(),
			AuthorID:  types.NewUserID(),
			Body:      "hello!",
			CreatedAt: time.Unix(1, 1).UTC(),
		},
		{
			ID:        types.NewMessageID(),
			AuthorID:  types.NewUserID(),
			Body:      "",
			CreatedAt: time.Unix(2, 2).UTC(),
			IsDeleted: true,
		},
	}
	s.getHistoryUseCase.EXPECT().Handle(eCtx.Request().Context(), gethistory.Request{
		ID:        reqID,
		UserID:    s.userID,
		ChannelID: channelID,
		PageSize:  10,
	}).Return(gethistory.Response{
		Messages:   msgs,
		NextCursor: "",
	}, nil)

	// Action.
	err := s.handlers.PostGetHistory(eCtx, clientv1.PostGetHistoryParams{XRequestID: reqID})

	// Assert.
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.Code)
	s.JSONEq(fmt.Sprintf(`
{
    "data":
    {
        "messages":
        [
            {
                "authorId": %q,
                "body": "hello!",
                "createdAt": "1970-01-01T00:00:01.000000001Z",
                "id": %q,
                "isDeleted": false
            },
            {
                "authorId": %q,
                "body": "",
                "createdAt": "1970-01-01T00:00:02.000000002Z",
                "id": %q,
                "isDeleted": true
            }
        ],
        "next": ""
    }
}`, msgs[0].AuthorID, msgs[0].ID, msgs[1].AuthorID, msgs[1].ID), resp.Body.String())
}
