package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"zynta_referral/internal/service"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEvent(t *testing.T, conn *websocket.Conn) service.Message {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg service.Message
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestEventStream(t *testing.T) {
	router, _ := newTestRouter(t)
	srv := httptest.NewServer(router)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/events"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	resp, err := http.Post(srv.URL+"/api/register", "application/json",
		strings.NewReader(`{"name":"X","email":"x@y.com","referralCode":"DEF456"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	registered := readEvent(t, conn)
	assert.Equal(t, service.EventUserRegistered, registered.Type)
	assert.Equal(t, "X", registered.Payload["name"])
	assert.EqualValues(t, 4, registered.Payload["id"])

	rewarded := readEvent(t, conn)
	assert.Equal(t, service.EventReferralRewarded, rewarded.Type)
	assert.Equal(t, "Jane Smith", rewarded.Payload["referrer"])
	assert.Equal(t, "DEF456", rewarded.Payload["referralCode"])
	assert.EqualValues(t, 10, rewarded.Payload["pointsAwarded"])
}

func TestEventStream_RejectsPlainHTTP(t *testing.T) {
	router, _ := newTestRouter(t)

	w, _ := doRequest(t, router, http.MethodGet, "/api/events", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
