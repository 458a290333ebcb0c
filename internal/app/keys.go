package app

import "github.com/nhle/gorev-takip/internal/keys"

// KeyMap is the keys package map, named here for the screens the app
// builds.
type KeyMap = keys.KeyMap

// DefaultKeyMap delegates to keys.DefaultKeyMap.
func DefaultKeyMap() *KeyMap {
	return keys.DefaultKeyMap()
}
