package rules

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Op is an instantiated rule operation.
type Op interface {
	Apply(c *call) error
}

type opFunc func(c *call) error

func (f opFunc) Apply(c *call) error { return f(c) }

// Symbol names an op and builds instances of it from rules, checking the
// fields the op needs.
type Symbol interface {
	String() string
	Instance(r *Rule) (Op, error)
}

type symbol struct {
	name     string
	instance func(r *Rule) (Op, error)
}

func (s *symbol) String() string { return s.name }

func (s *symbol) Instance(r *Rule) (Op, error) { return s.instance(r) }

var (
	mu sync.RWMutex
	d  = map[string]Symbol{}
)

var ErrSymbolExists = errors.New("symbol exists")

func Register(s Symbol) error {
	mu.Lock()
	defer mu.Unlock()
	_, present := d[s.String()]
	if present {
		return fmt.Errorf("%s: %w", s, ErrSymbolExists)
	}
	d[s.String()] = s
	return nil
}

func Lookup(s string) Symbol {
	mu.RLock()
	defer mu.RUnlock()
	return d[s]
}

// Symbols lists the registered ops by name.
func Symbols() []Symbol {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]Symbol, 0, len(d))
	for _, s := range d {
		res = append(res, s)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].String() < res[j].String() })
	return res
}
