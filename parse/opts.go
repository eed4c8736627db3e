package parse

import "github.com/goccy/go-yaml/parser"

type parseOpts struct {
	filename   string
	strictKeys bool
	aliases    bool
}

func (o *parseOpts) parserOpts() []parser.Option {
	if o.strictKeys {
		return nil
	}
	return []parser.Option{parser.AllowDuplicateMapKey()}
}

type ParseOption func(*parseOpts)

// ParseFilename names the source in errors.
func ParseFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// ParseStrictKeys rejects mappings with duplicate keys. By default a later
// duplicate replaces the value of the earlier one.
func ParseStrictKeys(v bool) ParseOption {
	return func(o *parseOpts) { o.strictKeys = v }
}

// ParseKeepAliases leaves aliases unresolved as tree.AliasType nodes
// instead of copying the anchored value.
func ParseKeepAliases(v bool) ParseOption {
	return func(o *parseOpts) { o.aliases = v }
}
