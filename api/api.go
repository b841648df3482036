// Package api holds the OpenAPI document of the mypresence HTTP API.
package api

import _ "embed"

// Spec is the OpenAPI 3 document that handlers are generated from and requests are validated against.
//
//go:embed presence.openapi.yaml
var Spec []byte
