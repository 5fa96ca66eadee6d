package entity

// KVEntry is one row of the durable key-value store: a string key and a
// JSON-encoded value.
type KVEntry struct {
	Key   string `gorm:"primaryKey;size:191" json:"key"`
	Value string `json:"value"`
}
