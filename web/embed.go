package web

import (
	"embed"
	"io/fs"
)

//go:embed static templates
var assets embed.FS

// StaticFS returns the embedded static assets (stylesheets).
func StaticFS() fs.FS {
	return mustSub("static")
}

// TemplatesFS returns the embedded page templates.
func TemplatesFS() fs.FS {
	return mustSub("templates")
}

// The embed directive guarantees both subdirectories exist, so a failure
// here means a broken build, not a runtime condition worth handling.
func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(assets, dir)
	if err != nil {
		panic("embedded assets missing " + dir + ": " + err.Error())
	}
	return sub
}
