package slack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/diegoclair/duty-roster/internal/domain/entity"
)

type CommandType string

const (
	CmdGenerate  CommandType = "generate"
	CmdReconcile CommandType = "reconcile"
	CmdShow      CommandType = "show"
	CmdLeaves    CommandType = "leaves"
	CmdApprove   CommandType = "approve"
	CmdReject    CommandType = "reject"
	CmdCleanup   CommandType = "cleanup"
	CmdHelp      CommandType = "help"
)

type Command struct {
	Type       CommandType
	Department entity.Department
	RequestID  int64
	Raw        string
}

// ParseCommand reads the text typed after /duty.
func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{Raw: text}

	switch strings.ToLower(parts[0]) {
	case "generate", "gen":
		cmd.Type = CmdGenerate
	case "reconcile":
		cmd.Type = CmdReconcile
	case "show", "roster":
		cmd.Type = CmdShow
		if len(parts) > 1 {
			dept, ok := entity.ParseDepartment(parts[1])
			if !ok {
				return nil, fmt.Errorf("unknown department: %s", parts[1])
			}
			cmd.Department = dept
		}
	case "leaves", "leave":
		cmd.Type = CmdLeaves
	case "approve", "reject":
		cmd.Type = CommandType(strings.ToLower(parts[0]))
		if len(parts) < 2 {
			return nil, fmt.Errorf("missing leave request id: /duty %s ID", cmd.Type)
		}
		id, err := strconv.ParseInt(strings.TrimPrefix(parts[1], "#"), 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid leave request id: %s", parts[1])
		}
		cmd.RequestID = id
	case "cleanup":
		cmd.Type = CmdCleanup
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

*Roster:*
• ` + "`/duty generate`" + ` - Rebuild the roster from this week's Monday and resolve leave conflicts
• ` + "`/duty reconcile`" + ` - Run one conflict resolution pass over the current roster
• ` + "`/duty show [config|monitoring]`" + ` - Show the roster

*Leave:*
• ` + "`/duty leaves`" + ` - List pending leave requests
• ` + "`/duty approve ID`" + ` - Approve a pending request and update the roster
• ` + "`/duty reject ID`" + ` - Reject a pending request
• ` + "`/duty cleanup`" + ` - Cancel pending requests whose start date has passed`
}
