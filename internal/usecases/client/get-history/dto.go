package gethistory

import (
	"errors"
	"time"

	"github.com/gatherly/community-service/internal/types"
	"github.com/gatherly/community-service/internal/validator"
)

type Request struct {
	ID        types.RequestID `validate:"required"`
	UserID    types.UserID    `validate:"required"`
	ChannelID types.ChannelID `validate:"required"`
	PageSize  int             `validate:"omitempty,gte=10,lte=100"`
	Cursor    string          `validate:"omitempty,base64url"`
}

func (r Request) Validate() error {
	if r.Cursor == "" && r.PageSize == 0 {
		return errors.New("either cursor or page size must be specified")
	}
	if r.Cursor != "" && r.PageSize != 0 {
		return errors.New("either cursor or page size must be specified, not both")
	}
	return validator.Validator.Struct(r)
}

type Response struct {
	Messages   []Message
	NextCursor string
}

type Message struct {
	ID        types.MessageID
	AuthorID  types.UserID
	Body      string
	CreatedAt time.Time
	EditedAt  *time.Time
	IsDeleted bool
}
