// Package web holds the embedded browser client.
package web

import _ "embed"

//go:embed index.html
var Index []byte
