package entity

// KVEntry backs the persistent key-value store the cart state lives in.
type KVEntry struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `json:"value"`
}
