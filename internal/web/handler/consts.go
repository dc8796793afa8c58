package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// ErrNilACDFatalLogMsg is used if app or cfg or editor var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or editor is nil"

	// QueryLang selects the catalog language, ahead of Accept-Language.
	QueryLang = "lang"
)
