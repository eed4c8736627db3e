package rules

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Totox00/multiarchi-tools/transform"
	"github.com/Totox00/multiarchi-tools/tree"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// env is what rule expressions see.
type env struct {
	Value   any            `expr:"value"`
	Options map[string]any `expr:"options"`
	Name    string         `expr:"name"`
	Game    string         `expr:"game"`

	CanBe          func(key string, def, cand any) bool `expr:"canBe"`
	CanBeOtherThan func(key string, def, cand any) bool `expr:"canBeOtherThan"`
	Get            func(key string) any                 `expr:"get"`
	Has            func(key string) bool                `expr:"has"`
	Describe       func(key, def string) string         `expr:"describe"`
	KeysOf         func(key string) []string            `expr:"keysOf"`
}

func newEnv(opts *tree.Node, name, game string) env {
	res := env{Name: name, Game: game}
	if m, ok := toAny(opts).(map[string]any); ok {
		res.Options = m
	} else {
		res.Options = map[string]any{}
	}
	res.CanBe = func(key string, def, cand any) bool {
		return transform.OptionCanBe(opts, key, tree.FromAny(def), tree.FromAny(cand))
	}
	res.CanBeOtherThan = func(key string, def, cand any) bool {
		return transform.OptionCanBeOtherThan(opts, key, tree.FromAny(def), tree.FromAny(cand))
	}
	res.Get = func(key string) any {
		return toAny(opts.GetString(key))
	}
	res.Has = func(key string) bool {
		return opts.GetString(key) != nil
	}
	res.Describe = func(key, def string) string {
		return transform.ValueOrDefault(opts, key, def)
	}
	res.KeysOf = func(key string) []string {
		v := opts.GetString(key)
		if !v.IsMapping() {
			return nil
		}
		keys := make([]string, len(v.Keys))
		for i, k := range v.Keys {
			keys[i] = k.Text()
		}
		return keys
	}
	return res
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(env{}),
		expr.Function("num", func(params ...any) (any, error) {
			f, _ := number(params[0])
			return f, nil
		},
			new(func(any) float64)),
		expr.Function("isNumber", func(params ...any) (any, error) {
			_, ok := number(params[0])
			return ok, nil
		},
			new(func(any) bool)),
	}
}

func compileBool(src string) (*vm.Program, error) {
	return expr.Compile(src, append(exprOpts(), expr.AsBool())...)
}

func compileAny(src string) (*vm.Program, error) {
	return expr.Compile(src, exprOpts()...)
}

func runBool(prg *vm.Program, e env) (bool, error) {
	res, err := expr.Run(prg, e)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("expected bool, got %T", res)
	}
	return b, nil
}

// number reads numbers and numeric strings.
func number(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float64:
		f = x
	case string:
		p, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		f = p
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// texts renders the result of a note or warning expression. Nil and
// empty strings produce nothing; lists produce one entry per element.
func texts(res any) ([]string, error) {
	switch x := res.(type) {
	case nil:
		return nil, nil
	case string:
		if x == "" {
			return nil, nil
		}
		return []string{x}, nil
	case []string:
		return x, nil
	case []any:
		var out []string
		for _, elt := range x {
			s, err := texts(elt)
			if err != nil {
				return nil, err
			}
			out = append(out, s...)
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected string or list, got %T", res)
}
