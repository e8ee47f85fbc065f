package gamedata

import "strings"

const (
	lotusPrefix      = "/Lotus/"
	storeItemsPrefix = "/Lotus/StoreItems/"
)

// FromStoreItem maps "/Lotus/StoreItems/X" to "/Lotus/X". Other paths are
// returned unchanged.
func FromStoreItem(storeItem string) string {
	if rest, ok := strings.CutPrefix(storeItem, storeItemsPrefix); ok {
		return lotusPrefix + rest
	}
	return storeItem
}

// ToStoreItem maps "/Lotus/X" to "/Lotus/StoreItems/X". Paths already in the
// store namespace are returned unchanged.
func ToStoreItem(item string) string {
	if strings.HasPrefix(item, storeItemsPrefix) {
		return item
	}
	if rest, ok := strings.CutPrefix(item, lotusPrefix); ok {
		return storeItemsPrefix + rest
	}
	return item
}
