// Package fs embeds the portal's templates and static assets into the binary.
package fs

import "embed"

var (
	//go:embed all:templates
	Templates embed.FS

	//go:embed assets
	Assets embed.FS
)
