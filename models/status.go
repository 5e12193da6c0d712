package models

// Status is the lifecycle state of an asset. It is a closed set: anything
// else is rejected at parse time, not at query time.
type Status string

const (
	StatusSpare     Status = "spare"
	StatusDeployed  Status = "deployed"
	StatusLend      Status = "lend"
	StatusDefective Status = "defective"
	StatusDispose   Status = "dispose"
	StatusMissing   Status = "missing"
)

var allStatuses = []Status{
	StatusSpare, StatusDeployed, StatusLend,
	StatusDefective, StatusDispose, StatusMissing,
}

func (s Status) IsValid() bool {
	for _, known := range allStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus returns the Status for raw, or ok=false for anything outside
// the closed set.
func ParseStatus(raw string) (Status, bool) {
	s := Status(raw)
	return s, s.IsValid()
}

// Workflow identifies which part of the application is requesting a status
// change. Each workflow is allowed a fixed set of target statuses.
type Workflow string

const (
	WorkflowIntake      Workflow = "intake"
	WorkflowDisposal    Workflow = "disposal"
	WorkflowMaintenance Workflow = "maintenance"
	WorkflowAssignment  Workflow = "assignment"
)

var workflowTargets = map[Workflow][]Status{
	WorkflowIntake:      {StatusSpare, StatusDeployed, StatusLend, StatusMissing, StatusDefective, StatusDispose},
	WorkflowDisposal:    {StatusDispose},
	WorkflowMaintenance: {StatusDefective},
	WorkflowAssignment:  {StatusDeployed, StatusLend},
}

func (w Workflow) IsValid() bool {
	_, ok := workflowTargets[w]
	return ok
}

// CanTransitionTo reports whether this workflow may move an asset into target.
func (w Workflow) CanTransitionTo(target Status) bool {
	for _, allowed := range workflowTargets[w] {
		if allowed == target {
			return true
		}
	}
	return false
}

// AllowedTargets returns the target statuses this workflow may set.
func (w Workflow) AllowedTargets() []Status {
	return workflowTargets[w]
}

func ParseWorkflow(raw string) (Workflow, bool) {
	w := Workflow(raw)
	return w, w.IsValid()
}

// View is one of the listing pages of the application. Each view shows a
// fixed subset of statuses.
type View string

const (
	ViewInventory   View = "inventory"
	ViewAssigned    View = "assigned"
	ViewDisposal    View = "disposal"
	ViewMaintenance View = "maintenance"
)

var viewStatuses = map[View][]Status{
	ViewInventory:   allStatuses,
	ViewAssigned:    {StatusDeployed, StatusLend},
	ViewDisposal:    {StatusDispose},
	ViewMaintenance: {StatusDefective},
}

func (v View) IsValid() bool {
	_, ok := viewStatuses[v]
	return ok
}

// Statuses returns the statuses visible in this view.
func (v View) Statuses() []Status {
	return viewStatuses[v]
}

func ParseView(raw string) (View, bool) {
	v := View(raw)
	return v, v.IsValid()
}
