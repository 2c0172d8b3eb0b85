package valueobjects

// Presentation aliases. These tables are used for labels and badge colours
// only and never feed filtering or storage.

var planLabels = map[Plan]string{
	PlanFree:       "Starter",
	PlanStarter:    "Starter",
	PlanPro:        "Pro",
	PlanEnterprise: "Enterprise",
}

// BillingColor is a badge colour name.
type BillingColor string

const (
	BillingColorBlue  BillingColor = "blue"
	BillingColorGreen BillingColor = "green"
	BillingColorRed   BillingColor = "red"
	BillingColorGray  BillingColor = "gray"
)

// billingColors is keyed by the raw stored string so legacy aliases resolve
// to the same colour as their canonical value.
var billingColors = map[string]BillingColor{
	string(BillingStatusTrial):     BillingColorBlue,
	"trial":                        BillingColorBlue,
	string(BillingStatusActive):    BillingColorGreen,
	"paid":                         BillingColorGreen,
	string(BillingStatusExpired):   BillingColorRed,
	"overdue":                      BillingColorRed,
	string(BillingStatusCancelled): BillingColorGray,
	"cancelled":                    BillingColorGray,
}

// PlanLabel returns the display label of a plan.
func PlanLabel(p Plan) string {
	if label, ok := planLabels[p]; ok {
		return label
	}
	return string(p)
}

// BillingColorFor returns the badge colour for a canonical or legacy
// billing status string. Unknown values are gray.
func BillingColorFor(raw string) BillingColor {
	if c, ok := billingColors[raw]; ok {
		return c
	}
	return BillingColorGray
}
