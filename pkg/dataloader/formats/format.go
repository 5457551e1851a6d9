package formats

import "io"

type Format interface {
	ParseFile(io.Reader) error
}
