// Package web bundles the site's templates, public assets, content and
// locale files so the binary runs without a checkout next to it.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates public content locales
var files embed.FS

func sub(dir string) fs.FS {
	f, err := fs.Sub(files, dir)
	if err != nil {
		// fs.Sub only fails on invalid paths, and dir is a literal.
		panic(err)
	}
	return f
}

// TemplatesFS holds the *.tmpl files.
func TemplatesFS() fs.FS { return sub("templates") }

// PublicFS holds files served under /assets.
func PublicFS() fs.FS { return sub("public") }

// ContentFS holds the site catalog, content/site/<lang>.yaml.
func ContentFS() fs.FS { return sub("content") }

// LocalesFS holds the UI message bundles, <lang>.json.
func LocalesFS() fs.FS { return sub("locales") }
