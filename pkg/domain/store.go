package domain

// Store identifies the launcher a root belongs to.
type Store int

const (
	StoreEpic Store = iota
	StoreGog
	StoreGogGalaxy
	StoreMicrosoft
	StoreOrigin
	StorePrime
	StoreSteam
	StoreUplay
	StoreOtherHome
	StoreOtherWine
	StoreOther
)

// Stores returns every store in display order.
func Stores() []Store {
	return []Store{
		StoreEpic, StoreGog, StoreGogGalaxy, StoreMicrosoft, StoreOrigin, StorePrime,
		StoreSteam, StoreUplay, StoreOtherHome, StoreOtherWine, StoreOther,
	}
}

// SortKey selects the ordering of the game list.
type SortKey int

const (
	SortName SortKey = iota
	SortSize
)

// RootsConfig is one configured game root.
type RootsConfig struct {
	Path  StrictPath
	Store Store
}
