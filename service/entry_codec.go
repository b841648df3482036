package service

import (
	"encoding/json"
	"fmt"
	"strconv"

	"mypresence/domain"
)

// Hash field names of a stored entry. The hash holds strings only: timestamps are
// decimal epoch millis, meta is a JSON object.
const (
	fieldCreatedAt = "createdAt"
	fieldUpdatedAt = "updatedAt"
	fieldMeta      = "meta"
)

func encodeEntry(e domain.Entry) (map[string]string, error) {
	meta := e.Meta
	if meta == nil {
		meta = map[string]any{}
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("can't marshal meta, err: %w", err)
	}

	return map[string]string{
		fieldCreatedAt: strconv.FormatInt(e.CreatedAt, 10),
		fieldUpdatedAt: strconv.FormatInt(e.UpdatedAt, 10),
		fieldMeta:      string(metaJSON),
	}, nil
}

// decodeEntry rebuilds an entry from its hash fields. Both timestamps are required;
// a missing or null meta decodes as an empty mapping.
func decodeEntry(fields map[string]string) (domain.Entry, error) {
	createdAt, err := parseMillis(fields, fieldCreatedAt)
	if err != nil {
		return domain.Entry{}, err
	}
	updatedAt, err := parseMillis(fields, fieldUpdatedAt)
	if err != nil {
		return domain.Entry{}, err
	}

	var meta map[string]any
	if raw, ok := fields[fieldMeta]; ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &meta); err != nil {
			return domain.Entry{}, fmt.Errorf("can't unmarshal field %s, err: %w", fieldMeta, err)
		}
	}
	if meta == nil {
		meta = map[string]any{}
	}

	return domain.Entry{
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		Meta:      meta,
	}, nil
}

func parseMillis(fields map[string]string, name string) (int64, error) {
	raw, ok := fields[name]
	if !ok {
		return 0, fmt.Errorf("field %s is missing", name)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("can't parse field %s, err: %w", name, err)
	}
	return v, nil
}
