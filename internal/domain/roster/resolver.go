package roster

import (
	"strings"

	"github.com/diegoclair/duty-roster/internal/domain"
	"github.com/diegoclair/duty-roster/internal/domain/entity"
)

const reasonOnLeave = "on leave"

// Directory holds the active names of each department in rotation order.
// The order decides which replacement is picked first.
type Directory map[entity.Department][]string

// Resolver repairs leave conflicts in a roster by swapping or replacing assignees.
type Resolver struct {
	MaxIterations int
}

// NewResolver returns a resolver with the given pass cap, falling back to the default for non-positive values.
func NewResolver(maxIterations int) Resolver {
	if maxIterations <= 0 {
		maxIterations = domain.DefaultMaxIterations
	}
	return Resolver{MaxIterations: maxIterations}
}

// Result describes what a resolution call did to the roster.
type Result struct {
	Iterations int
	// Converged is true when the last pass changed nothing and found no conflicts.
	Converged bool
	// Exhausted is true when the pass cap was reached while passes were still changing the
	// roster or raising new distinctness conflicts.
	Exhausted   bool
	Changed     []*entity.RosterSlot
	Diagnostics []Diagnostic
}

// Unresolved returns the conflicts reported by the final pass.
func (r *Result) Unresolved() []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Iteration == r.Iterations && (d.Kind == KindUnresolved || d.Kind == KindDuplicate) {
			out = append(out, d)
		}
	}
	return out
}

// Resolve runs passes over slots until one makes no changes and raises no duplicate
// assignee that an earlier pass had not already reported, or until the pass cap is hit.
// Slots are mutated in place.
func (r Resolver) Resolve(slots []*entity.RosterSlot, dir Directory, leaves *LeaveIndex) *Result {
	limit := r.MaxIterations
	if limit <= 0 {
		limit = domain.DefaultMaxIterations
	}

	res := &Result{}
	tracker := newChangeTracker()
	reported := make(map[duplicateKey]bool)

	for res.Iterations < limit {
		res.Iterations++
		p := runPass(res.Iterations, slots, dir, leaves, tracker, reported)
		res.Diagnostics = append(res.Diagnostics, p.diagnostics...)

		if p.changes == 0 && p.newDuplicates == 0 {
			res.Converged = p.unresolved == 0 && p.duplicates == 0
			res.Changed = tracker.slots
			return res
		}
	}

	res.Exhausted = true
	res.Changed = tracker.slots
	res.Diagnostics = append(res.Diagnostics, Diagnostic{Kind: KindExhausted, Iteration: res.Iterations})
	return res
}

// Pass runs exactly one resolution pass, as done when a single leave request is approved.
func (r Resolver) Pass(slots []*entity.RosterSlot, dir Directory, leaves *LeaveIndex) *Result {
	tracker := newChangeTracker()
	p := runPass(1, slots, dir, leaves, tracker, make(map[duplicateKey]bool))
	return &Result{
		Iterations:  1,
		Converged:   p.unresolved == 0 && p.duplicates == 0,
		Changed:     tracker.slots,
		Diagnostics: p.diagnostics,
	}
}

type passStats struct {
	changes    int
	duplicates int
	// newDuplicates counts collisions not seen by an earlier pass of the same call.
	newDuplicates int
	unresolved    int
	diagnostics   []Diagnostic
}

// duplicateKey identifies a collision that has already been reported.
type duplicateKey struct {
	slot *entity.RosterSlot
	name string
}

func runPass(iteration int, slots []*entity.RosterSlot, dir Directory, leaves *LeaveIndex, tracker *changeTracker,
	reported map[duplicateKey]bool) passStats {
	var p passStats

	for _, slot := range slots {
		names := dir[slot.Department]

		for _, role := range slot.Department.Roles() {
			incumbent := slot.Role(role)
			if incumbent == "" || !leaves.IsOnLeave(incumbent, slot.WeekStart) {
				continue
			}

			replacement := firstAvailable(slot, role, names, leaves)
			if replacement == "" {
				p.unresolved++
				p.diagnostics = append(p.diagnostics, Diagnostic{
					Kind:       KindUnresolved,
					Iteration:  iteration,
					Department: slot.Department,
					Date:       slot.WeekStart,
					Role:       role,
					From:       incumbent,
					Reason:     reasonOnLeave,
				})
				continue
			}

			kind := KindReplace
			if target, targetRole := findSwapTarget(slots, slot, replacement); target != nil {
				target.SetRole(targetRole, incumbent)
				tracker.mark(target)
				kind = KindSwap
			}
			slot.SetRole(role, replacement)
			tracker.mark(slot)
			p.changes++

			p.diagnostics = append(p.diagnostics, Diagnostic{
				Kind:       kind,
				Iteration:  iteration,
				Department: slot.Department,
				Date:       slot.WeekStart,
				Role:       role,
				From:       incumbent,
				To:         replacement,
				Reason:     reasonOnLeave,
			})
		}

		// collisions are left for the next pass
		if dup := duplicateAssignee(slot); dup != "" {
			p.duplicates++
			key := duplicateKey{slot: slot, name: strings.ToLower(strings.TrimSpace(dup))}
			if !reported[key] {
				reported[key] = true
				p.newDuplicates++
			}
			p.diagnostics = append(p.diagnostics, Diagnostic{
				Kind:       KindDuplicate,
				Iteration:  iteration,
				Department: slot.Department,
				Date:       slot.WeekStart,
				From:       dup,
				Reason:     "role distinctness",
			})
		}
	}

	return p
}

// firstAvailable picks the first name in directory order that is not on leave
// for the slot's week and holds no other role in the slot.
func firstAvailable(slot *entity.RosterSlot, role entity.Role, names []string, leaves *LeaveIndex) string {
	for _, name := range names {
		if leaves.IsOnLeave(name, slot.WeekStart) {
			continue
		}
		if usedByOtherRole(slot, role, name) {
			continue
		}
		return name
	}
	return ""
}

func usedByOtherRole(slot *entity.RosterSlot, role entity.Role, name string) bool {
	for _, other := range slot.Department.Roles() {
		if other == role {
			continue
		}
		if entity.SameName(slot.Role(other), name) {
			return true
		}
	}
	return false
}

// findSwapTarget returns the first slot of the same department on another week
// in which name already holds a role.
func findSwapTarget(slots []*entity.RosterSlot, current *entity.RosterSlot, name string) (*entity.RosterSlot, entity.Role) {
	for _, s := range slots {
		if s == current || s.Department != current.Department || s.WeekStart.Equal(current.WeekStart) {
			continue
		}
		if role, ok := s.Holds(name); ok {
			return s, role
		}
	}
	return nil, ""
}

// duplicateAssignee returns a name that holds two roles of the slot, or "".
func duplicateAssignee(slot *entity.RosterSlot) string {
	roles := slot.Department.Roles()
	for i := 0; i < len(roles); i++ {
		a := slot.Role(roles[i])
		if a == "" {
			continue
		}
		for j := i + 1; j < len(roles); j++ {
			if entity.SameName(a, slot.Role(roles[j])) {
				return a
			}
		}
	}
	return ""
}

type changeTracker struct {
	seen  map[*entity.RosterSlot]bool
	slots []*entity.RosterSlot
}

func newChangeTracker() *changeTracker {
	return &changeTracker{seen: make(map[*entity.RosterSlot]bool)}
}

func (t *changeTracker) mark(slot *entity.RosterSlot) {
	if t.seen[slot] {
		return
	}
	t.seen[slot] = true
	t.slots = append(t.slots, slot)
}
