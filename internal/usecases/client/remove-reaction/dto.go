package removereaction

import (
	"github.com/gatherly/community-service/internal/types"
	"github.com/gatherly/community-service/internal/validator"
)

type Request struct {
	ID        types.RequestID `validate:"required"`
	ActorID   types.UserID    `validate:"required"`
	MessageID types.MessageID `validate:"required"`
	Emoji     string          `validate:"required,max=32"`
}

func (r Request) Validate() error {
	return validator.Validator.Struct(r)
}

type Response struct {
	ReactionID types.ReactionID
}
