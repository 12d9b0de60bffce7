package public

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var static embed.FS

// StaticFS returns the stylesheet, scripts and images served under /static/.
func StaticFS() (fs.FS, error) {
	return fs.Sub(static, "static")
}
