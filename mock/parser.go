package mock

import "github.com/fwojciec/toolbox"

var _ toolbox.Parser = (*Parser)(nil)

// Parser is a mock implementation of toolbox.Parser.
type Parser struct {
	ParseFn func(content string) (*toolbox.Document, error)
}

func (p *Parser) Parse(content string) (*toolbox.Document, error) {
	return p.ParseFn(content)
}
