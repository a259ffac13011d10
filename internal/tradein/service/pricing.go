package service

// Condition grades a trade-in device.
type Condition string

const (
	ConditionLikeNew Condition = "Like New"
	ConditionGood    Condition = "Good"
	ConditionFair    Condition = "Fair"
	ConditionBroken  Condition = "Broken"
)

// fallbackBasePrice is offered for devices or conditions not in the table.
// Unknown devices still get a low, conservative offer rather than an error,
// so the trade-in funnel never dead-ends.
const fallbackBasePrice int64 = 200

// basePrices maps device -> condition -> whole-USD base price.
var basePrices = map[string]map[Condition]int64{
	"iPhone 15":          {ConditionLikeNew: 650, ConditionGood: 520, ConditionFair: 360, ConditionBroken: 130},
	"iPhone 14":          {ConditionLikeNew: 550, ConditionGood: 440, ConditionFair: 300, ConditionBroken: 110},
	"iPhone 13":          {ConditionLikeNew: 450, ConditionGood: 360, ConditionFair: 250, ConditionBroken: 90},
	"iPhone 12":          {ConditionLikeNew: 350, ConditionGood: 280, ConditionFair: 200, ConditionBroken: 70},
	"iPhone 11":          {ConditionLikeNew: 250, ConditionGood: 200, ConditionFair: 150, ConditionBroken: 50},
	"iPad Air":           {ConditionLikeNew: 400, ConditionGood: 320, ConditionFair: 220, ConditionBroken: 80},
	"iPad Pro":           {ConditionLikeNew: 600, ConditionGood: 480, ConditionFair: 330, ConditionBroken: 120},
	"Apple Watch":        {ConditionLikeNew: 200, ConditionGood: 160, ConditionFair: 110, ConditionBroken: 40},
	"Samsung Galaxy S25": {ConditionLikeNew: 500, ConditionGood: 400, ConditionFair: 280, ConditionBroken: 100},
	"Samsung Galaxy S24": {ConditionLikeNew: 400, ConditionGood: 320, ConditionFair: 220, ConditionBroken: 80},
}

// BasePrice looks up the catalog base price for a device/condition pair.
// Missing keys return the fallback instead of failing.
func BasePrice(device string, condition Condition) int64 {
	conditions, ok := basePrices[device]
	if !ok {
		return fallbackBasePrice
	}
	price, ok := conditions[condition]
	if !ok {
		return fallbackBasePrice
	}
	return price
}

// CatalogDevices returns the devices in the price table.
func CatalogDevices() []string {
	out := make([]string, 0, len(basePrices))
	for device := range basePrices {
		out = append(out, device)
	}
	return out
}
