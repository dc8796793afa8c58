package web

import (
	"embed"
	"io/fs"
)

var (
	//go:embed static
	embeddedStaticFiles embed.FS

	//go:embed templates
	embeddedTemplates embed.FS
)

// templatesFS returns the embedded templates rooted at the templates directory,
// so template names match the handler constants (e.g. "records/settings").
func templatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic(err)
	}

	return sub
}
