package handlers

import (
	"mypresence/domain"
)

func toEntryResponse(e domain.Entry) Entry {
	return Entry{
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
		Meta:      nonNilMeta(e.Meta),
	}
}

func toFullEntryResponse(e domain.FullEntry) FullEntry {
	return FullEntry{
		Group:     e.Group,
		Id:        e.ID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
		Meta:      nonNilMeta(e.Meta),
	}
}

// toFullEntriesResponse never returns nil so that an empty group encodes as [].
func toFullEntriesResponse(entries []domain.FullEntry) []FullEntry {
	out := make([]FullEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, toFullEntryResponse(e))
	}
	return out
}

func toGroupsResponse(groups []domain.Group) []Group {
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		out = append(out, Group{
			Group:     g.Group,
			Instances: g.Instances,
			CreatedAt: g.CreatedAt,
			UpdatedAt: g.UpdatedAt,
		})
	}
	return out
}

func nonNilMeta(meta map[string]any) map[string]interface{} {
	if meta == nil {
		return map[string]interface{}{}
	}
	return meta
}
