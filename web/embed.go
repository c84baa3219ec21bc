package web

import "embed"

// TemplatesFS embeds the HTML templates of the spreadsheet exports.
//
//go:embed templates/*.html
var TemplatesFS embed.FS
