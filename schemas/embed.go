// Package schemas embeds the JSON Schemas describing files the CLI reads and writes.
package schemas

import _ "embed"

// State is the JSON Schema of the persisted résumé collection.
//
//go:embed state.schema.json
var State []byte
