// Package web holds the bundled front-end assets served by the shell.
package web

import "embed"

//go:embed index.html app.js
var Files embed.FS
