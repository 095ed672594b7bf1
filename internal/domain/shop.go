package domain

// Shop is one of the two opaque business-unit identifiers carried over from
// the legacy dashboard. The strings are part of the persisted state layout
// and must not change.
type Shop string

const (
	ShopNone Shop = ""
	ShopA    Shop = "Shop A"
	ShopB    Shop = "Shop B"
)

// ShopDomain is the logical business behind a shop identifier.
type ShopDomain string

const (
	ShopDomainNone    ShopDomain = ""
	ShopDomainLaundry ShopDomain = "laundry"
	ShopDomainHotel   ShopDomain = "hotel"
)

// shopDomains is the fixed mapping between shop identifiers and business
// domains. It must stay a bijection.
var shopDomains = map[Shop]ShopDomain{
	ShopA: ShopDomainLaundry,
	ShopB: ShopDomainHotel,
}

// DomainOf maps a shop identifier to its business domain. Unknown values
// degrade to ShopDomainNone.
func DomainOf(s Shop) ShopDomain {
	return shopDomains[s]
}

// ShopFor returns the shop identifier serving the given domain, or ShopNone
// when the domain is unknown.
func ShopFor(d ShopDomain) Shop {
	for shop, dom := range shopDomains {
		if dom == d {
			return shop
		}
	}
	return ShopNone
}

// ParseShop validates a raw stored value against the known identifiers.
func ParseShop(raw string) Shop {
	switch Shop(raw) {
	case ShopA:
		return ShopA
	case ShopB:
		return ShopB
	}
	return ShopNone
}
