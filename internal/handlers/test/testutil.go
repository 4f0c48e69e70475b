package test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/duty-roster/internal/handlers"
	"github.com/diegoclair/duty-roster/internal/logging"
	"github.com/diegoclair/duty-roster/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const SigningSecret = "test-signing-secret"

type ServiceMocks struct {
	RosterServiceMock *mocks.MockRosterService
	LeaveServiceMock  *mocks.MockLeaveService
	PersonServiceMock *mocks.MockPersonService
	SlackClientMock   *mocks.MockSlackClient
}

func newServiceMocks(t *testing.T) (ServiceMocks, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	return ServiceMocks{
		RosterServiceMock: mocks.NewMockRosterService(ctrl),
		LeaveServiceMock:  mocks.NewMockLeaveService(ctrl),
		PersonServiceMock: mocks.NewMockPersonService(ctrl),
		SlackClientMock:   mocks.NewMockSlackClient(ctrl),
	}, ctrl
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	m, ctrl = newServiceMocks(t)
	handler = handlers.NewSlackHandler(m.SlackClientMock, m.RosterServiceMock, m.LeaveServiceMock, SigningSecret, logging.Discard())

	return
}

// GetHTTPHandlerTest returns the full router, Slack endpoint included, without health or metrics backends.
func GetHTTPHandlerTest(t *testing.T) (m ServiceMocks, router http.Handler, ctrl *gomock.Controller) {
	t.Helper()

	m, ctrl = newServiceMocks(t)
	slackHandler := handlers.NewSlackHandler(m.SlackClientMock, m.RosterServiceMock, m.LeaveServiceMock, SigningSecret, logging.Discard())
	h := handlers.NewHTTPHandler(m.RosterServiceMock, m.LeaveServiceMock, m.PersonServiceMock, nil, nil, logging.Discard())
	router = h.Routes(slackHandler)

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, text, userID, signingSecret string) *http.Request {
	t.Helper()

	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {"T123456789"},
		"team_domain":  {"test-team"},
		"channel_id":   {"C123456789"},
		"channel_name": {"on-call"},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {"/duty"},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", generateSlackSignature(signingSecret, timestamp, body))

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	return "v0=" + hex.EncodeToString(h.Sum(nil))
}

// CreateJSONRequest builds an API request with an optional JSON body.
func CreateJSONRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// Envelope is the decoded API response wrapper.
type Envelope struct {
	Status    string          `json:"status"`
	RequestID string          `json:"request_id"`
	Data      json.RawMessage `json:"data"`
	Error     *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func DecodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) Envelope {
	t.Helper()

	var env Envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env), recorder.Body.String())
	return env
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
