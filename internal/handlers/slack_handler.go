package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/diegoclair/duty-roster/internal/domain"
	"github.com/diegoclair/duty-roster/internal/domain/contract"
	"github.com/diegoclair/duty-roster/internal/domain/entity"
	"github.com/diegoclair/duty-roster/internal/domain/roster"
	slackcmd "github.com/diegoclair/duty-roster/internal/domain/slack"
	"github.com/diegoclair/duty-roster/internal/logging"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/slack-go/slack"
)

const userNameCacheSize = 256

type SlackHandler struct {
	slackClient   contract.SlackClient
	roster        contract.RosterService
	leave         contract.LeaveService
	signingSecret string
	names         *lru.Cache[string, string]
	logger        *slog.Logger
}

func NewSlackHandler(slackClient contract.SlackClient, rosterService contract.RosterService, leaveService contract.LeaveService, signingSecret string, logger *slog.Logger) *SlackHandler {
	// only fails for a non-positive size
	names, _ := lru.New[string, string](userNameCacheSize)
	if logger == nil {
		logger = slog.Default()
	}

	return &SlackHandler{
		slackClient:   slackClient,
		roster:        rosterService,
		leave:         leaveService,
		signingSecret: signingSecret,
		names:         names,
		logger:        logger.With("component", "slack_handler"),
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	logger := h.logger.With("command", string(cmd.Type), "user_id", s.UserID)
	ctx := logging.ContextWithLogger(r.Context(), logger)

	h.respond(w, h.handleCommand(ctx, cmd, &s))
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdGenerate:
		return h.handleGenerate(ctx)
	case slackcmd.CmdReconcile:
		return h.handleReconcile(ctx)
	case slackcmd.CmdShow:
		return h.handleShow(ctx, cmd.Department)
	case slackcmd.CmdLeaves:
		return h.handleLeaves(ctx)
	case slackcmd.CmdApprove:
		return h.handleApprove(ctx, cmd.RequestID, slashCmd.UserID)
	case slackcmd.CmdReject:
		return h.handleReject(ctx, cmd.RequestID, slashCmd.UserID)
	case slackcmd.CmdCleanup:
		return h.handleCleanup(ctx)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleGenerate(ctx context.Context) *slack.Msg {
	result, err := h.roster.Generate(ctx)
	if err != nil {
		return h.serviceError(ctx, "Error generating roster", err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "✅ Roster generated. " + summarize(result),
	}
}

func (h *SlackHandler) handleReconcile(ctx context.Context) *slack.Msg {
	result, err := h.roster.Reconcile(ctx)
	if err != nil {
		return h.serviceError(ctx, "Error reconciling roster", err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "✅ Roster reconciled. " + summarize(result),
	}
}

func (h *SlackHandler) handleShow(ctx context.Context, dept entity.Department) *slack.Msg {
	slots, err := h.roster.List(ctx, dept)
	if err != nil {
		return h.serviceError(ctx, "Error loading roster", err)
	}

	if len(slots) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "The roster is empty. Use `/duty generate` to build it.",
		}
	}

	var text strings.Builder
	var current entity.Department
	for _, slot := range slots {
		if slot.Department != current {
			current = slot.Department
			fmt.Fprintf(&text, "*%s:*\n", current)
		}
		fmt.Fprintf(&text, "• %s ", slot.WeekStart.Format(domain.DateLayout))
		for i, role := range slot.Department.Roles() {
			if i > 0 {
				text.WriteString(", ")
			}
			name := slot.Role(role)
			if name == "" {
				name = "_unassigned_"
			}
			fmt.Fprintf(&text, "%s: %s", role, name)
		}
		text.WriteString("\n")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handleLeaves(ctx context.Context) *slack.Msg {
	requests, err := h.leave.List(ctx, "")
	if err != nil {
		return h.serviceError(ctx, "Error listing leave requests", err)
	}

	var text strings.Builder
	for _, req := range requests {
		if req.Status != entity.LeaveStatusPending {
			continue
		}
		if text.Len() == 0 {
			text.WriteString("*Pending leave requests:*\n")
		}
		fmt.Fprintf(&text, "#%d %s: %s to %s", req.ID, req.PersonName,
			req.StartDate.Format(domain.DateLayout), req.EndDate.Format(domain.DateLayout))
		if req.Note != "" {
			fmt.Fprintf(&text, " (%s)", req.Note)
		}
		text.WriteString("\n")
	}

	if text.Len() == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No pending leave requests.",
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text.String(),
	}
}

func (h *SlackHandler) handleApprove(ctx context.Context, id int64, userID string) *slack.Msg {
	result, err := h.leave.Approve(ctx, id, h.userName(ctx, userID))
	if err != nil {
		return h.serviceError(ctx, fmt.Sprintf("Error approving request #%d", id), err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Leave request #%d approved by <@%s>. %s", id, userID, summarize(result)),
	}
}

func (h *SlackHandler) handleReject(ctx context.Context, id int64, userID string) *slack.Msg {
	if err := h.leave.Reject(ctx, id, h.userName(ctx, userID)); err != nil {
		return h.serviceError(ctx, fmt.Sprintf("Error rejecting request #%d", id), err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("Leave request #%d rejected by <@%s>.", id, userID),
	}
}

func (h *SlackHandler) handleCleanup(ctx context.Context) *slack.Msg {
	canceled, err := h.leave.CleanupExpired(ctx)
	if err != nil {
		return h.serviceError(ctx, "Error cleaning up leave requests", err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("🧹 Canceled %d expired pending request(s).", canceled),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// userName resolves the Slack real name used as the decider of a leave request.
// Falls back to the raw user ID when Slack cannot be reached.
func (h *SlackHandler) userName(ctx context.Context, userID string) string {
	if name, ok := h.names.Get(userID); ok {
		return name
	}

	user, err := h.slackClient.GetUserInfo(userID)
	if err != nil {
		logging.FromContext(ctx, h.logger).Warn("failed to get slack user info", "error", err)
		return userID
	}

	name := user.RealName
	if name == "" {
		name = user.Name
	}
	if name == "" {
		return userID
	}

	h.names.Add(userID, name)
	return name
}

func (h *SlackHandler) serviceError(ctx context.Context, message string, err error) *slack.Msg {
	kind := domain.ErrorKind(err)
	if kind == "unexpected" {
		logging.FromContext(ctx, h.logger).Error(message, "error", err)
		return h.createErrorResponse(message)
	}
	return h.createErrorResponse(fmt.Sprintf("%s: %v", message, err))
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	h.respond(w, h.createErrorResponse(message))
}

func (h *SlackHandler) respond(w http.ResponseWriter, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		h.logger.Error("failed to encode slack response", "error", err)
	}
}

// summarize renders a resolver result as one line of text.
func summarize(result *roster.Result) string {
	if result == nil {
		return ""
	}

	text := fmt.Sprintf("%d slot(s) changed", len(result.Changed))
	if unresolved := result.Unresolved(); len(unresolved) > 0 {
		text += fmt.Sprintf(", %d conflict(s) left", len(unresolved))
	}
	if result.Exhausted {
		text += ", pass limit reached"
	}
	return text + "."
}
