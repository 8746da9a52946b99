// Package ws implements the WebSocket hub for cutgrade-server.
//
// Hub manages a set of connected clients and broadcasts the current cut
// snapshot to all of them on a configurable interval (default 5s in production).
// Clients may also send measurements and get them graded on the spot, which
// lets a UI re-grade a cut on every slider move.
//
// New(store, catalog, observer, interval) creates a Hub.
// Hub.Run(ctx) starts the broadcast ticker and blocks until ctx is cancelled,
// then closes all active connections.
// Hub.ServeHTTP upgrades an HTTP connection to WebSocket, sends the current
// snapshot immediately on connect, then streams updates on each tick.
//
// Messages sent to clients:
//
//	{"event": "snapshot",   "data": { /* same schema as GET /api/v1/snapshot */ }}
//	{"event": "evaluation", "id": "...", "data": { /* same schema as POST /api/v1/evaluate */ }}
//	{"event": "error",      "id": "...", "data": {"error": "..."}}
//
// Messages accepted from clients:
//
//	{"event": "measure", "id": "stone-7", "label": "...", "data": { /* measurements */ }}
//
// A measure message with an id also stores the result under that id.
//
// The upgrader accepts all origins. Apply CORS restrictions at the reverse
// proxy level. WebSocket endpoint is mounted at /ws/stream by the server.
package ws
