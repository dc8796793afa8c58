// Package main provides the entry point of recordsettings.
// It runs a web service built on Fiber that renders a settings field for
// every configured record type, stores the chosen options with each record
// in a single column through gorm and answers setting lookups over a json
// api. Settings are declared per record type in a yaml schema, either
// inline or by naming shared presets, and labels are translated from
// per-language catalogs.
package main
