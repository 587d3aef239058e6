package middlewares

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const wsProtocolHeader = "Sec-WebSocket-Protocol"

// NewKeycloakWSTokenAuth authenticates the websocket handshake. Browsers
// cannot set the Authorization header on websocket requests, so the client
// smuggles the token as the second subprotocol:
//
//	Sec-WebSocket-Protocol: community-service-protocol, <access token>
func NewKeycloakWSTokenAuth(introspector Introspector, resource, role string) echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup: "header:" + wsProtocolHeader,
		Validator: func(headerValue string, eCtx echo.Context) (bool, error) {
			parts := strings.Split(headerValue, ",")
			if len(parts) != 2 {
				return false, ErrInactiveToken
			}

			tokenStr := strings.TrimSpace(parts[1])
			return authenticate(introspector, resource, role, tokenStr, eCtx)
		},
	})
}
