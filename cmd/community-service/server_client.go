package main

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"go.uber.org/zap"

	keycloakclient "github.com/gatherly/community-service/internal/clients/keycloak"
	"github.com/gatherly/community-service/internal/config"
	"github.com/gatherly/community-service/internal/middlewares"
	channelsrepo "github.com/gatherly/community-service/internal/repositories/channels"
	messagesrepo "github.com/gatherly/community-service/internal/repositories/messages"
	"github.com/gatherly/community-service/internal/server"
	serverclient "github.com/gatherly/community-service/internal/server-client"
	clientevents "github.com/gatherly/community-service/internal/server-client/events"
	"github.com/gatherly/community-service/internal/server-client/errhandler"
	clientv1 "github.com/gatherly/community-service/internal/server-client/v1"
	inmemeventstream "github.com/gatherly/community-service/internal/services/event-stream/in-mem"
	"github.com/gatherly/community-service/internal/services/presence"
	"github.com/gatherly/community-service/internal/store"
	addreaction "github.com/gatherly/community-service/internal/usecases/client/add-reaction"
	deletemessage "github.com/gatherly/community-service/internal/usecases/client/delete-message"
	gethistory "github.com/gatherly/community-service/internal/usecases/client/get-history"
	pinmessage "github.com/gatherly/community-service/internal/usecases/client/pin-message"
	removereaction "github.com/gatherly/community-service/internal/usecases/client/remove-reaction"
	sendmessage "github.com/gatherly/community-service/internal/usecases/client/send-message"
	unpinmessage "github.com/gatherly/community-service/internal/usecases/client/unpin-message"
	websocketstream "github.com/gatherly/community-service/internal/websocket-stream"
)

const nameServerClient = "server-client"

func initServerClient(
	cfg config.ClientServerConfig,
	v1Swagger *openapi3.T,

	keycloak *keycloakclient.Client,

	db *store.Database,
	channelsRepo *channelsrepo.Repo,
	msgRepo *messagesrepo.Repo,
	eventStream *inmemeventstream.Service,
	presenceService *presence.Service,
	shutdownCh chan struct{},

	productionMode bool,
) (*server.Server, error) {
	lg := zap.L().Named(nameServerClient)

	sendMessageUseCase, err := sendmessage.New(sendmessage.NewOptions(channelsRepo, msgRepo, eventStream, db))
	if err != nil {
		return nil, fmt.Errorf("create send message usecase: %v", err)
	}

	deleteMessageUseCase, err := deletemessage.New(deletemessage.NewOptions(channelsRepo, msgRepo, eventStream, db))
	if err != nil {
		return nil, fmt.Errorf("create delete message usecase: %v", err)
	}

	pinMessageUseCase, err := pinmessage.New(pinmessage.NewOptions(channelsRepo, msgRepo, eventStream, db))
	if err != nil {
		return nil, fmt.Errorf("create pin message usecase: %v", err)
	}

	unpinMessageUseCase, err := unpinmessage.New(unpinmessage.NewOptions(channelsRepo, msgRepo, eventStream, db))
	if err != nil {
		return nil, fmt.Errorf("create unpin message usecase: %v", err)
	}

	addReactionUseCase, err := addreaction.New(addreaction.NewOptions(channelsRepo, msgRepo, eventStream, db))
	if err != nil {
		return nil, fmt.Errorf("create add reaction usecase: %v", err)
	}

	removeReactionUseCase, err := removereaction.New(removereaction.NewOptions(channelsRepo, msgRepo, eventStream, db))
	if err != nil {
		return nil, fmt.Errorf("create remove reaction usecase: %v", err)
	}

	getHistoryUseCase, err := gethistory.New(gethistory.NewOptions(channelsRepo, msgRepo))
	if err != nil {
		return nil, fmt.Errorf("create get history usecase: %v", err)
	}

	v1Handlers, err := clientv1.NewHandlers(clientv1.NewOptions(
		lg,
		sendMessageUseCase,
		deleteMessageUseCase,
		pinMessageUseCase,
		unpinMessageUseCase,
		addReactionUseCase,
		removeReactionUseCase,
		getHistoryUseCase,
	))
	if err != nil {
		return nil, fmt.Errorf("create v1 handlers: %v", err)
	}

	wsHandler, err := websocketstream.NewHTTPHandler(websocketstream.NewOptions(
		lg.Named("websocket"),
		eventStream,
		presenceService,
		clientevents.Adapter{},
		websocketstream.JSONEventWriter{},
		websocketstream.NewUpgrader(cfg.AllowOrigins, cfg.SecWsProtocol),
		shutdownCh,
	))
	if err != nil {
		return nil, fmt.Errorf("create websocket handler: %v", err)
	}

	errHandler, err := errhandler.New(errhandler.NewOptions(lg, productionMode, errhandler.ResponseBuilder))
	if err != nil {
		return nil, fmt.Errorf("create err handler: %v", err)
	}

	srv, err := server.New(server.NewOptions(
		lg,
		cfg.Addr,
		cfg.AllowOrigins,
		keycloak,
		cfg.RequiredAccess.Resource,
		cfg.RequiredAccess.Role,
		serverclient.NewHandlersRegistrar(
			v1Swagger,
			v1Handlers,
			middlewares.NewKeycloakTokenAuth(keycloak, cfg.RequiredAccess.Resource, cfg.RequiredAccess.Role),
			errHandler.Handle,
		),
		wsHandler,
	))
	if err != nil {
		return nil, fmt.Errorf("build server: %v", err)
	}

	return srv, nil
}
