// Package api embeds the OpenAPI contract so the binary can serve it and
// tests can validate the implementation against it.
package api

import _ "embed"

//go:embed openapi.yml
var OpenAPISpec []byte
