package catalog

// SaleMode selects the storage partition a product is created in. It is
// decided once, from the request's mode flag, before anything is
// persisted.
type SaleMode string

const (
	// SaleModeOnline is the storefront catalog partition.
	SaleModeOnline SaleMode = "online"
	// SaleModeOffline tracks in-store inventory.
	SaleModeOffline SaleMode = "offline"
)

// ParseSaleMode maps the request flag to a partition. Anything other
// than "offline", including an absent flag, is the online catalog.
func ParseSaleMode(flag string) SaleMode {
	if flag == "offline" {
		return SaleModeOffline
	}
	return SaleModeOnline
}
