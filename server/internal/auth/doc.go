// Package auth provides authentication middleware for cutgrade-server.
//
// APIKey(mode, header, key) returns HTTP middleware that validates the API
// key from the named request header, or from the api_key query parameter
// when the header is absent (WebSocket clients in a browser cannot set
// headers on the handshake).
//
// When mode != "apikey" or key == "", all requests pass through (useful for
// local development with auth disabled). When the key is incorrect or absent,
// the middleware answers 401 Unauthorized without calling the wrapped handler.
package auth
