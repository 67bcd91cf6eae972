// Package migrations embeds the goose SQL migrations for the credential store and the blog.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
