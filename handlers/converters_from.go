package handlers

import (
	"fmt"

	"mypresence/service"

	"github.com/google/uuid"
)

// entryRef is a validated (group, id) pair taken from the request path.
type entryRef struct {
	group string
	id    string
}

// fromGroupPath validates the group path parameter.
// Returns service.BadParameterError on validation failure.
func fromGroupPath(group string) (string, error) {
	if group == "" {
		return "", service.NewBadParameterError("group is required", nil)
	}
	return group, nil
}

// fromEntryPath validates the group and id path parameters. The id must be a canonical
// version 4 or 5 UUID. Returns service.BadParameterError on validation failure.
func fromEntryPath(group, id string) (entryRef, error) {
	group, err := fromGroupPath(group)
	if err != nil {
		return entryRef{}, err
	}
	if id == "" {
		return entryRef{}, service.NewBadParameterError("id is required", nil)
	}

	u, err := uuid.Parse(id)
	if err == nil && len(id) != 36 {
		err = fmt.Errorf("not in canonical 8-4-4-4-12 form")
	}
	if err != nil {
		return entryRef{}, service.NewBadParameterError("id must be a UUID", fmt.Errorf("can't parse id '%s', err: %w", id, err))
	}
	if u.Variant() != uuid.RFC4122 || (u.Version() != 4 && u.Version() != 5) {
		return entryRef{}, service.NewBadParameterError("id must be a version 4 or 5 UUID", nil)
	}

	return entryRef{group: group, id: id}, nil
}

// fromSetEntryRequest extracts meta; an absent meta is nil and stored as {}.
func fromSetEntryRequest(req SetEntryRequest) map[string]any {
	return service.Value(req.Meta)
}
