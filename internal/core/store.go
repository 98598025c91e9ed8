package core

// KVStore is an opaque string key-value store used for save records.
// Get reports ok=false when the key does not exist.
type KVStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// SettingsStore holds scalar settings that outlive a single save slot,
// such as the player's level.
type SettingsStore interface {
	GetInt(key string, def int) int
	SetInt(key string, value int) error
}
