// Package migrations holds the SQL schema of the submission log
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
