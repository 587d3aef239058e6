package clientv1

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	addreaction "github.com/gatherly/community-service/internal/usecases/client/add-reaction"
	deletemessage "github.com/gatherly/community-service/internal/usecases/client/delete-message"
	gethistory "github.com/gatherly/community-service/internal/usecases/client/get-history"
	pinmessage "github.com/gatherly/community-service/internal/usecases/client/pin-message"
	removereaction "github.com/gatherly/community-service/internal/usecases/client/remove-reaction"
	sendmessage "github.com/gatherly/community-service/internal/usecases/client/send-message"
	unpinmessage "github.com/gatherly/community-service/internal/usecases/client/unpin-message"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/handlers_mocks.gen.go -package=clientv1mocks

type sendMessageUseCase interface {
	Handle(ctx context.Context, req sendmessage.Request) (sendmessage.Response, error)
}

type deleteMessageUseCase interface {
	Handle(ctx context.Context, req deletemessage.Request) (deletemessage.Response, error)
}

type pinMessageUseCase interface {
	Handle(ctx context.Context, req pinmessage.Request) (pinmessage.Response, error)
}

type unpinMessageUseCase interface {
	Handle(ctx context.Context, req unpinmessage.Request) (unpinmessage.Response, error)
}

type addReactionUseCase interface {
	Handle(ctx context.Context, req addreaction.Request) (addreaction.Response, error)
}

type removeReactionUseCase interface {
	Handle(ctx context.Context, req removereaction.Request) (removereaction.Response, error)
}

type getHistoryUseCase interface {
	Handle(ctx context.Context, req gethistory.Request) (gethistory.Response, error)
}

//go:generate options-gen -out-filename=handlers_options.gen.go -from-struct=Options
type Options struct {
	logger         *zap.Logger           `option:"mandatory" validate:"required"`
	sendMessage    sendMessageUseCase    `option:"mandatory" validate:"required"`
	deleteMessage  deleteMessageUseCase  `option:"mandatory" validate:"required"`
	pinMessage     pinMessageUseCase     `option:"mandatory" validate:"required"`
	unpinMessage   unpinMessageUseCase   `option:"mandatory" validate:"required"`
	addReaction    addReactionUseCase    `option:"mandatory" validate:"required"`
	removeReaction removeReactionUseCase `option:"mandatory" validate:"required"`
	getHistory     getHistoryUseCase     `option:"mandatory" validate:"required"`
}

type Handlers struct {
	Options
}

func NewHandlers(opts Options) (Handlers, error) {
	if err := opts.Validate(); err != nil {
		return Handlers{}, fmt.Errorf("validate options: %v", err)
	}
	return Handlers{Options: opts}, nil
}
