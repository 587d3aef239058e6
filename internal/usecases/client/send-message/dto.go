package sendmessage

import (
	"time"

	"github.com/gatherly/community-service/internal/types"
	"github.com/gatherly/community-service/internal/validator"
)

type Request struct {
	ID            types.RequestID      `validate:"required"`
	AuthorID      types.UserID         `validate:"required"`
	ChannelID     types.ChannelID      `validate:"required"`
	MessageBody   string               `validate:"min=1,max=3000"`
	AttachmentIDs []types.AttachmentID `validate:"omitempty,max=10"`
}

func (r Request) Validate() error {
	return validator.Validator.Struct(r)
}

type Response struct {
	MessageID types.MessageID
	AuthorID  types.UserID
	CreatedAt time.Time
}
