package service

// Plan is a fixed-price wireless internet plan.
type Plan struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Speed    string `json:"speed"`
	Data     string `json:"data"`
	Price    int64  `json:"price"`
	SetupFee int64  `json:"setupFee"`
}

// setupFee applies to every plan in the catalog.
const setupFee = 49

// plans is the static catalog, keyed by plan ID. Deployments that change
// pricing ship a new build; the storefront has no plan admin surface.
var plans = map[string]Plan{
	"nomad-home-pro": {
		ID:       "nomad-home-pro",
		Name:     "Home Pro",
		Speed:    "200 Mbps",
		Data:     "Unlimited",
		Price:    99,
		SetupFee: setupFee,
	},
	"nomad-travel": {
		ID:       "nomad-travel",
		Name:     "Travel Unlimited",
		Speed:    "100 Mbps",
		Data:     "Unlimited",
		Price:    79,
		SetupFee: setupFee,
	},
	"nomad-rv": {
		ID:       "nomad-rv",
		Name:     "RV Unlimited",
		Speed:    "150 Mbps",
		Data:     "Unlimited",
		Price:    89,
		SetupFee: setupFee,
	},
}

// planOrder fixes the catalog listing order for API responses.
var planOrder = []string{"nomad-home-pro", "nomad-travel", "nomad-rv"}

// Plans returns the catalog in listing order.
func Plans() []Plan {
	out := make([]Plan, 0, len(planOrder))
	for _, id := range planOrder {
		out = append(out, plans[id])
	}
	return out
}

// PlanByID looks up a plan by its identifier.
func PlanByID(id string) (Plan, bool) {
	p, ok := plans[id]
	return p, ok
}
