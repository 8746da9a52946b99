// Package config loads the server-side configuration from the `server:` section
// of the config file.
//
// Config fields:
//   - HTTPPort: port for the REST API, WebSocket hub and /metrics (default 8080)
//   - Auth.Mode: "apikey" or "none"
//   - Auth.KeyEnv: environment variable holding the expected API key
//   - Auth.Header: HTTP header name (default "x-api-key")
//   - Store.TTL: how long a stored cut stays live after its last update (default 30m)
//   - Stream.Interval: WebSocket snapshot broadcast period (default 5s)
//   - Catalog.File: range-table override file, read once at startup
//
// Load(path) applies defaults before unmarshalling, then validates.
package config
