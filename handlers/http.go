// Package handlers contains http handlers for mypresence.
//
//go:generate oapi-codegen -config openapi-api.config.yaml ../api/presence.openapi.yaml
//go:generate oapi-codegen -config openapi-types.config.yaml ../api/presence.openapi.yaml
package handlers

import (
	"fmt"
	"net/http"

	"mypresence/interfaces"
	"mypresence/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// HTTPServer implements ServerInterface generated from OpenAPI spec.
type HTTPServer struct {
	store  interfaces.PresenceStore
	logger log.Logger
}

// NewHTTPServer creates a new HTTPServer.
func NewHTTPServer(store interfaces.PresenceStore, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(logger, "component", "HTTPServer")
	return &HTTPServer{
		store:  service.NilPanic(store, "handlers.http.go: store is required"),
		logger: logger,
	}
}

// GetGroups (GET /api/v1/) returns summaries of the groups that have live entries.
func (h *HTTPServer) GetGroups(ectx echo.Context) error {
	ctx := ectx.Request().Context()
	groups, err := h.store.GetGroups(ctx)
	if err != nil {
		return fmt.Errorf("getGroups failed to list groups, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toGroupsResponse(groups))
}

// GetGroup (GET /api/v1/{group}) returns the entries of a group; an unknown group yields an empty list.
func (h *HTTPServer) GetGroup(ectx echo.Context, group string) error {
	group, err := fromGroupPath(group)
	if err != nil {
		return fmt.Errorf("getGroup failed to validate path, err: %w", err)
	}

	ctx := ectx.Request().Context()
	entries, err := h.store.GetGroup(ctx, group)
	if err != nil {
		return fmt.Errorf("getGroup failed to list entries, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toFullEntriesResponse(entries))
}

// GetEntry (GET /api/v1/{group}/{id}) returns the entry or null when it is absent.
func (h *HTTPServer) GetEntry(ectx echo.Context, group string, id string) error {
	ref, err := fromEntryPath(group, id)
	if err != nil {
		return fmt.Errorf("getEntry failed to validate path, err: %w", err)
	}

	ctx := ectx.Request().Context()
	entry, ok, err := h.store.GetEntry(ctx, ref.group, ref.id)
	if err != nil {
		return fmt.Errorf("getEntry failed to read entry, err: %w", err)
	}
	if !ok {
		return ectx.JSON(http.StatusOK, nil)
	}

	return ectx.JSON(http.StatusOK, toEntryResponse(entry))
}

// SetEntry (POST /api/v1/{group}/{id}) records a heartbeat. Body is optional; meta defaults to {}.
func (h *HTTPServer) SetEntry(ectx echo.Context, group string, id string) error {
	ref, err := fromEntryPath(group, id)
	if err != nil {
		return fmt.Errorf("setEntry failed to validate path, err: %w", err)
	}

	var req SetEntryJSONRequestBody
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	ctx := ectx.Request().Context()
	entry, err := h.store.SetEntry(ctx, ref.group, ref.id, fromSetEntryRequest(req))
	if err != nil {
		return fmt.Errorf("setEntry failed to write entry, err: %w", err)
	}
	level.Debug(h.logger).Log("msg", "Heartbeat", "group", entry.Group, "id", entry.ID, "updated_at", entry.UpdatedAt)

	return ectx.JSON(http.StatusOK, toFullEntryResponse(entry))
}

// DeleteEntry (DELETE /api/v1/{group}/{id}) removes the entry and returns the number of removed entries.
func (h *HTTPServer) DeleteEntry(ectx echo.Context, group string, id string) error {
	ref, err := fromEntryPath(group, id)
	if err != nil {
		return fmt.Errorf("deleteEntry failed to validate path, err: %w", err)
	}

	ctx := ectx.Request().Context()
	n, err := h.store.DeleteEntry(ctx, ref.group, ref.id)
	if err != nil {
		return fmt.Errorf("deleteEntry failed to delete entry, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, n)
}

// GetHealth (GET /health) reports that the process is serving requests.
func (h *HTTPServer) GetHealth(ectx echo.Context) error {
	return ectx.String(http.StatusOK, "OK")
}
