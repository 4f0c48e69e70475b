package roster

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain"
	"github.com/diegoclair/duty-roster/internal/domain/entity"
)

// DiagnosticKind classifies a resolver or membership event.
type DiagnosticKind string

const (
	KindSwap       DiagnosticKind = "swap"
	KindReplace    DiagnosticKind = "replace"
	KindUnresolved DiagnosticKind = "unresolved"
	KindDuplicate  DiagnosticKind = "duplicate"
	KindExhausted  DiagnosticKind = "budget_exhausted"
)

// Diagnostic is one operator-facing line about a repair or a conflict that remains.
type Diagnostic struct {
	Kind       DiagnosticKind
	Iteration  int
	Department entity.Department
	Date       time.Time
	Role       entity.Role
	From       string
	To         string
	Reason     string
}

// Warning reports whether the diagnostic describes a conflict left in place.
func (d Diagnostic) Warning() bool {
	return d.Kind == KindUnresolved || d.Kind == KindDuplicate || d.Kind == KindExhausted
}

func (d Diagnostic) String() string {
	date := d.Date.Format(domain.DateLayout)
	switch d.Kind {
	case KindSwap:
		return fmt.Sprintf("[%s] %s %s SWAP: %s <-> %s (%s)", date, d.Department, d.Role, d.From, d.To, d.Reason)
	case KindReplace:
		return fmt.Sprintf("[%s] %s %s REPLACE: %s -> %s (%s)", date, d.Department, d.Role, d.From, d.To, d.Reason)
	case KindUnresolved:
		return fmt.Sprintf("[%s] %s %s: no eligible replacement for %s (%s)", date, d.Department, d.Role, d.From, d.Reason)
	case KindDuplicate:
		return fmt.Sprintf("[%s] %s: %s holds more than one role", date, d.Department, d.From)
	case KindExhausted:
		return fmt.Sprintf("stopped after %d passes with conflicts remaining", d.Iteration)
	}
	return fmt.Sprintf("[%s] %s %s %s", date, d.Department, d.Role, d.Reason)
}

// LogDiagnostics writes diagnostics through logger, warnings at WARN level.
func LogDiagnostics(logger *slog.Logger, diags []Diagnostic) {
	if logger == nil {
		return
	}
	for _, d := range diags {
		attrs := []any{
			"kind", string(d.Kind),
			"department", string(d.Department),
			"role", string(d.Role),
			"from", d.From,
			"to", d.To,
			"iteration", d.Iteration,
		}
		if !d.Date.IsZero() {
			attrs = append(attrs, "date", d.Date.Format(domain.DateLayout))
		}
		if d.Warning() {
			logger.Warn(d.String(), attrs...)
			continue
		}
		logger.Info(d.String(), attrs...)
	}
}
