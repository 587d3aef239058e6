//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gatherly/community-service/internal/types"
)

var _ = Describe("Client Events Smoke", Ordered, func() {
	var (
		ctx    context.Context
		cancel context.CancelFunc

		accessToken string
		ws          *websocket.Conn
		events      chan map[string]any
	)

	BeforeAll(func() {
		ctx, cancel = context.WithCancel(suiteCtx)

		token, err := kc.Auth(ctx, kcTestUser, kcTestPassword)
		Expect(err).ShouldNot(HaveOccurred())
		accessToken = token.AccessToken

		header := http.Header{}
		header.Set("Origin", wsClientOrigin)

		dialer := websocket.Dialer{
			Subprotocols: []string{wsClientSecProtocol, accessToken},
		}
		ws, _, err = dialer.DialContext(ctx, wsClientEndpoint, header)
		Expect(err).ShouldNot(HaveOccurred())

		events = make(chan map[string]any, 16)
		go func() {
			defer close(events)
			for {
				var ev map[string]any
				if err := ws.ReadJSON(&ev); err != nil {
					return
				}
				events <- ev
			}
		}()
	})

	AfterAll(func() {
		_ = ws.Close()
		cancel()
	})

	It("greets a fresh stream with a connected event", func() {
		ev := waitForEvent(events)
		Expect(ev["eventType"]).Should(Equal("ConnectedEvent"))
		Expect(ev["eventId"]).ShouldNot(BeEmpty())
	})

	It("accepts a message sent through the API", func() {
		channelID := expectEnv("E2E_CHANNEL_ID")

		resp := postJSON(ctx, accessToken, "/sendMessage", map[string]any{
			"channelId":   channelID,
			"messageBody": "Hello from smoke test!",
		})
		Expect(resp["error"]).Should(BeNil())

		data, ok := resp["data"].(map[string]any)
		Expect(ok).Should(BeTrue())
		Expect(data["id"]).ShouldNot(BeEmpty())
		Expect(data["authorId"]).ShouldNot(BeEmpty())
	})

	It("keeps the message readable through the history", func() {
		channelID := expectEnv("E2E_CHANNEL_ID")

		resp := postJSON(ctx, accessToken, "/getHistory", map[string]any{
			"channelId": channelID,
			"pageSize":  10,
		})
		Expect(resp["error"]).Should(BeNil())

		data, ok := resp["data"].(map[string]any)
		Expect(ok).Should(BeTrue())

		messages, ok := data["messages"].([]any)
		Expect(ok).Should(BeTrue())
		Expect(messages).ShouldNot(BeEmpty())

		newest, ok := messages[0].(map[string]any)
		Expect(ok).Should(BeTrue())
		Expect(newest["body"]).Should(Equal("Hello from smoke test!"))
	})
})

func postJSON(ctx context.Context, token, path string, body map[string]any) map[string]any {
	GinkgoHelper()

	raw, err := json.Marshal(body)
	Expect(err).ShouldNot(HaveOccurred())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiClientV1Endpoint+path, bytes.NewReader(raw))
	Expect(err).ShouldNot(HaveOccurred())
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-ID", types.NewRequestID().String())

	resp, err := http.DefaultClient.Do(req)
	Expect(err).ShouldNot(HaveOccurred())
	defer resp.Body.Close()
	Expect(resp.StatusCode).Should(Equal(http.StatusOK))

	var result map[string]any
	Expect(json.NewDecoder(resp.Body).Decode(&result)).Should(Succeed())
	return result
}

func waitForEvent(events <-chan map[string]any) map[string]any {
	GinkgoHelper()

	select {
	case ev, ok := <-events:
		Expect(ok).Should(BeTrue(), "event stream is closed")
		return ev
	case <-time.After(10 * time.Second):
		Fail("no event received in time")
		return nil
	}
}
