package mock

import "github.com/fwojciec/artparse"

var _ artparse.Parser = (*Parser)(nil)

// Parser is a mock implementation of artparse.Parser.
type Parser struct {
	ParseFn func(html string) (*artparse.Result, error)
}

func (p *Parser) Parse(html string) (*artparse.Result, error) {
	return p.ParseFn(html)
}
