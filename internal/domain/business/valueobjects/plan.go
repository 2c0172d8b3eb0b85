package valueobjects

import "fmt"

// Plan is the subscription tier of a business. FREE and STARTER are
// distinct stored values even though both display as "Starter".
type Plan string

const (
	PlanFree       Plan = "FREE"
	PlanStarter    Plan = "STARTER"
	PlanPro        Plan = "PRO"
	PlanEnterprise Plan = "ENTERPRISE"
)

var validPlans = map[Plan]bool{
	PlanFree:       true,
	PlanStarter:    true,
	PlanPro:        true,
	PlanEnterprise: true,
}

func (p Plan) String() string {
	return string(p)
}

func (p Plan) IsValid() bool {
	return validPlans[p]
}

func NewPlan(str string) (Plan, error) {
	p := Plan(str)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid plan: %s", str)
	}
	return p, nil
}

func Plans() []Plan {
	return []Plan{PlanFree, PlanStarter, PlanPro, PlanEnterprise}
}
