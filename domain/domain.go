package domain

// Entry is the liveness record of one client.
// CreatedAt and UpdatedAt are epoch milliseconds; UpdatedAt >= CreatedAt.
type Entry struct {
	CreatedAt int64          `json:"createdAt"`
	UpdatedAt int64          `json:"updatedAt"`
	Meta      map[string]any `json:"meta"` // replaced wholesale on every heartbeat
}

// FullEntry is an Entry together with its (group, id) identity.
type FullEntry struct {
	Entry
	Group string `json:"group"`
	ID    string `json:"id"` // UUID v4 or v5
}

// Group is a summary computed over the live entries of a group. It is never stored.
type Group struct {
	Group     string `json:"group"`
	Instances int    `json:"instances"`
	CreatedAt int64  `json:"createdAt"` // min CreatedAt of the group's entries
	UpdatedAt int64  `json:"updatedAt"` // max UpdatedAt of the group's entries
}
