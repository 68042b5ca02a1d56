// Package apidocs embeds the OpenAPI document served at /swagger.
package apidocs

import _ "embed"

//go:embed openapi.yaml
var OpenAPI []byte
