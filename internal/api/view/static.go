package view

import (
	"embed"
	"io/fs"
)

//go:embed static/*.css
var staticFiles embed.FS

// StaticFS exposes the embedded assets rooted at static/ for the router to
// serve under /static.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
