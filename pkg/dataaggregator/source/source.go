package source

import "errors"

var UnsupportedSourceError = errors.New("Source doesnt support this query")
