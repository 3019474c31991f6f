package market

import "github.com/factoquest/factoquest-go/internal/domain/shared"

// ClientType is the archetype of a special-order client, weighting its
// reward multiplier.
type ClientType string

const (
	ClientNoble      ClientType = "noble"
	ClientFactory    ClientType = "factory"
	ClientGovernment ClientType = "government"
	ClientMerchant   ClientType = "merchant"
)

// RewardMultiplier returns the archetype's reward weighting
func (c ClientType) RewardMultiplier() float64 {
	switch c {
	case ClientNoble:
		return 1.5
	case ClientGovernment:
		return 1.3
	case ClientFactory:
		return 1.2
	case ClientMerchant:
		return 1.1
	}
	return 1.0
}

var clientTypes = []ClientType{ClientNoble, ClientFactory, ClientGovernment, ClientMerchant}

var clientNames = map[ClientType][]string{
	ClientNoble:      {"Baron Von Steam", "Countess Gearwright", "Lord Cogsworth", "Duchess Brassman"},
	ClientFactory:    {"Mechanical Works", "Vapor Manufacture", "Industrial Forge", "Royal Workshop"},
	ClientGovernment: {"Ministry of Industry", "Imperial Arsenal", "Bureau of Inventions"},
	ClientMerchant:   {"Metals Company", "Steam & Co Trading", "House of Copper"},
}

var clientDescriptions = map[ClientType][]string{
	ClientNoble: {
		"To decorate my steampunk manor",
		"My automatons need repairs",
		"Building a new mechanical wing",
	},
	ClientFactory: {
		"Urgent production for our customers",
		"Maintenance of our industrial machines",
		"Expanding our assembly line",
	},
	ClientGovernment: {
		"Confidential Ministry project",
		"Reinforcing the imperial defense",
		"Public steampunk infrastructure",
	},
	ClientMerchant: {
		"Order for our trading partners",
		"Stock for the holiday season",
		"Supplying our subsidiaries",
	},
}

// PickClient draws a random client archetype and name
func PickClient(random shared.Random) (ClientType, string) {
	ct := clientTypes[random.Intn(len(clientTypes))]
	names := clientNames[ct]
	return ct, names[random.Intn(len(names))]
}

// PickDescription draws a flavor description for the archetype
func PickDescription(random shared.Random, ct ClientType) string {
	descs, ok := clientDescriptions[ct]
	if !ok {
		descs = clientDescriptions[ClientMerchant]
	}
	return descs[random.Intn(len(descs))]
}
