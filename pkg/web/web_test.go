package web_test

import "embed"

//go:embed testdata
var testFS embed.FS
