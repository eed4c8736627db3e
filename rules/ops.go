package rules

import (
	"errors"
	"fmt"

	"github.com/Totox00/multiarchi-tools/diag"
	"github.com/Totox00/multiarchi-tools/parse"
	"github.com/Totox00/multiarchi-tools/transform"
	"github.com/Totox00/multiarchi-tools/tree"

	jsonpatch "github.com/evanphx/json-patch"
)

func init() {
	for name, f := range map[string]func(r *Rule) (Op, error){
		"move_weight":               moveWeight,
		"move_weight_matching":      moveWeightMatching,
		"rename_option":             renameOption,
		"rename_true_false":         renameTrueFalse,
		"remove_option":             removeOption,
		"set_option":                setOption,
		"set_expr":                  setExpr,
		"copy_option":               copyOption,
		"resolve":                   resolve,
		"replace_if_can_be":         replaceIfCanBe,
		"note":                      note,
		"note_expr":                 noteExpr,
		"warn":                      warn,
		"warn_if_can_be":            warnIfCanBe(false),
		"warn_if_can_be_other_than": warnIfCanBe(true),
		"json_patch":                jsonPatch,
	} {
		Register(&symbol{name: name, instance: f})
	}
}

func missing(field string) error {
	return fmt.Errorf("%w: missing %s", ErrBadRule, field)
}

// anyOf matches the candidates named by v: a list names several, and a
// scalar also matches its other spelling, so that from: 100 finds both
// 100 and "100".
func anyOf(v *tree.Node) transform.Predicate {
	var cands []*tree.Node
	add := func(c *tree.Node) {
		cands = append(cands, c)
		switch c.Type {
		case tree.StringType:
			if p := tree.ParseScalar(c.String); p.Type != tree.StringType && p.Type != tree.NullType {
				cands = append(cands, p)
			}
		case tree.IntType, tree.FloatType, tree.BoolType:
			cands = append(cands, tree.FromString(c.Text()))
		}
	}
	if v.IsSequence() {
		for _, elt := range v.Values {
			add(elt)
		}
	} else {
		add(v)
	}
	return func(x *tree.Node) bool {
		for _, c := range cands {
			if tree.Matches(x, c) {
				return true
			}
		}
		return false
	}
}

func moveWeight(r *Rule) (Op, error) {
	switch {
	case r.Option == "":
		return nil, missing("option")
	case r.From.node() == nil:
		return nil, missing("from")
	case r.To.node() == nil:
		return nil, missing("to")
	}
	pred := anyOf(r.From.Node)
	return opFunc(func(c *call) error {
		transform.RenameMatching(c.opts, r.Option, pred, r.To.Node)
		return nil
	}), nil
}

func moveWeightMatching(r *Rule) (Op, error) {
	switch {
	case r.Option == "":
		return nil, missing("option")
	case r.Match == "":
		return nil, missing("match")
	case r.To.node() == nil:
		return nil, missing("to")
	}
	prg, err := compileBool(r.Match)
	if err != nil {
		return nil, fmt.Errorf("%w: match: %w", ErrBadRule, err)
	}
	return opFunc(func(c *call) error {
		e := c.env()
		var runErr error
		pred := func(k *tree.Node) bool {
			if runErr != nil {
				return false
			}
			e.Value = toAny(k)
			ok, err := runBool(prg, e)
			if err != nil {
				runErr = err
				return false
			}
			return ok
		}
		transform.RenameMatching(c.opts, r.Option, pred, r.To.Node)
		return runErr
	}), nil
}

func renameOption(r *Rule) (Op, error) {
	from, to := r.From.node(), r.To.node()
	if from == nil || !from.Type.IsScalar() {
		return nil, missing("from option name")
	}
	if to == nil || !to.Type.IsScalar() {
		return nil, missing("to option name")
	}
	return opFunc(func(c *call) error {
		transform.RenameOption(c.opts, from.Text(), to.Text())
		return nil
	}), nil
}

func renameTrueFalse(r *Rule) (Op, error) {
	if r.Option == "" {
		return nil, missing("option")
	}
	to := r.To.node()
	if !to.IsSequence() || len(to.Values) != 2 {
		return nil, fmt.Errorf("%w: to must list the true and false names", ErrBadRule)
	}
	return opFunc(func(c *call) error {
		transform.RenameTrueFalse(c.opts, r.Option, to.Values[0], to.Values[1])
		return nil
	}), nil
}

func optionKeys(r *Rule) []string {
	var keys []string
	if r.Option != "" {
		keys = append(keys, r.Option)
	}
	return append(keys, r.Targets...)
}

func removeOption(r *Rule) (Op, error) {
	keys := optionKeys(r)
	if len(keys) == 0 {
		return nil, missing("option or targets")
	}
	return opFunc(func(c *call) error {
		for _, k := range keys {
			c.opts.DeleteString(k)
		}
		return nil
	}), nil
}

func setOption(r *Rule) (Op, error) {
	if r.Option == "" {
		return nil, missing("option")
	}
	if r.Value.node() == nil {
		return nil, missing("value")
	}
	return opFunc(func(c *call) error {
		c.opts.SetString(r.Option, r.Value.Node.Clone())
		return nil
	}), nil
}

func setExpr(r *Rule) (Op, error) {
	if r.Option == "" {
		return nil, missing("option")
	}
	if r.Expr == "" {
		return nil, missing("expr")
	}
	prg, err := compileAny(r.Expr)
	if err != nil {
		return nil, fmt.Errorf("%w: expr: %w", ErrBadRule, err)
	}
	return opFunc(func(c *call) error {
		res, err := c.run(prg)
		if err != nil {
			return err
		}
		if res == nil {
			return nil
		}
		n, err := fromAny(res)
		if err != nil {
			return err
		}
		old := c.opts.GetString(r.Option)
		retype(old, n)
		if old != nil {
			keepOrder(old, n)
		}
		c.opts.SetString(r.Option, n)
		return nil
	}), nil
}

func copyOption(r *Rule) (Op, error) {
	if r.Option == "" {
		return nil, missing("option")
	}
	if len(r.Targets) == 0 {
		return nil, missing("targets")
	}
	return opFunc(func(c *call) error {
		transform.CopyOption(c.opts, r.Option, r.Targets...)
		return nil
	}), nil
}

func resolve(r *Rule) (Op, error) {
	if r.Option == "" {
		return nil, missing("option")
	}
	return opFunc(func(c *call) error {
		return transform.ResolveNow(c.opts, r.Option, c.ctx.Selector)
	}), nil
}

func replaceIfCanBe(r *Rule) (Op, error) {
	switch {
	case r.Option == "":
		return nil, missing("option")
	case r.Value.node() == nil:
		return nil, missing("value")
	case r.To.node() == nil:
		return nil, missing("to")
	}
	return opFunc(func(c *call) error {
		if transform.OptionCanBe(c.opts, r.Option, defaultNode(r), r.Value.Node) {
			c.opts.SetString(r.Option, r.To.Node.Clone())
		}
		return nil
	}), nil
}

// defaultNode is the value an absent option takes. Without a default
// an absent option is null.
func defaultNode(r *Rule) *tree.Node {
	if n := r.Default.node(); n != nil {
		return n
	}
	return tree.Null()
}

func note(r *Rule) (Op, error) {
	if r.Option == "" && r.Message == "" {
		return nil, missing("option or message")
	}
	return opFunc(func(c *call) error {
		if r.Message != "" {
			c.note(r.Message)
			return nil
		}
		def := transform.Describe(defaultNode(r))
		c.note(r.Option + ": " + transform.ValueOrDefault(c.opts, r.Option, def))
		return nil
	}), nil
}

func noteExpr(r *Rule) (Op, error) {
	if r.Expr == "" {
		return nil, missing("expr")
	}
	prg, err := compileAny(r.Expr)
	if err != nil {
		return nil, fmt.Errorf("%w: expr: %w", ErrBadRule, err)
	}
	return opFunc(func(c *call) error {
		res, err := c.run(prg)
		if err != nil {
			return err
		}
		ns, err := texts(res)
		if err != nil {
			return err
		}
		c.note(ns...)
		return nil
	}), nil
}

func warn(r *Rule) (Op, error) {
	if r.Message == "" && r.Expr == "" {
		return nil, missing("message or expr")
	}
	if r.Expr == "" {
		return opFunc(func(c *call) error {
			c.warn(r.Message)
			return nil
		}), nil
	}
	prg, err := compileAny(r.Expr)
	if err != nil {
		return nil, fmt.Errorf("%w: expr: %w", ErrBadRule, err)
	}
	return opFunc(func(c *call) error {
		res, err := c.run(prg)
		if err != nil {
			return err
		}
		ms, err := texts(res)
		if err != nil {
			return err
		}
		c.warn(ms...)
		return nil
	}), nil
}

func warnIfCanBe(other bool) func(r *Rule) (Op, error) {
	return func(r *Rule) (Op, error) {
		switch {
		case r.Option == "":
			return nil, missing("option")
		case r.Value.node() == nil:
			return nil, missing("value")
		case r.Message == "":
			return nil, missing("message")
		}
		return opFunc(func(c *call) error {
			can := transform.OptionCanBe
			if other {
				can = transform.OptionCanBeOtherThan
			}
			if can(c.opts, r.Option, defaultNode(r), r.Value.Node) {
				c.warn(r.Message)
			}
			return nil
		}), nil
	}
}

// jsonPatch applies an RFC 6902 patch to one option, or to all the game
// options when no option is named. A patch whose paths are missing or
// whose test operations fail changes nothing.
func jsonPatch(r *Rule) (Op, error) {
	p := r.Patch.node()
	if !p.IsSequence() {
		return nil, missing("patch operations")
	}
	d, err := p.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: patch: %w", ErrBadRule, err)
	}
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: patch: %w", ErrBadRule, err)
	}
	return opFunc(func(c *call) error {
		target := c.opts
		if r.Option != "" {
			target = c.opts.GetString(r.Option)
			if !target.IsMapping() && !target.IsSequence() {
				return nil
			}
		}
		doc, err := target.MarshalJSON()
		if err != nil {
			return err
		}
		out, err := ops.Apply(doc)
		if errors.Is(err, jsonpatch.ErrMissing) || errors.Is(err, jsonpatch.ErrTestFailed) {
			return nil
		}
		if err != nil {
			return err
		}
		res, err := parse.ParseOne(out)
		if err != nil {
			return err
		}
		retype(target, res)
		keepOrder(target, res)
		target.Replace(res)
		return nil
	}), nil
}

// retype gives back mapping keys their scalar type, which JSON turned
// into strings. A key that orig holds as a string stays a string.
func retype(orig, n *tree.Node) {
	if n.IsSequence() {
		for i, v := range n.Values {
			var o *tree.Node
			if orig.IsSequence() && i < len(orig.Values) {
				o = orig.Values[i]
			}
			retype(o, v)
		}
		return
	}
	for i, k := range n.Keys {
		if k.Type == tree.StringType && orig.Index(k) < 0 {
			if p := tree.ParseScalar(k.String); p.Type != tree.StringType && p.Type != tree.NullType {
				n.Keys[i] = p
			}
		}
		retype(orig.Get(n.Keys[i]), n.Values[i])
	}
}

// keepOrder reorders the keys of res to follow orig. Keys orig does not
// have keep their relative order after the others.
func keepOrder(orig, res *tree.Node) {
	if !orig.IsMapping() || !res.IsMapping() {
		return
	}
	keys := make([]*tree.Node, 0, len(res.Keys))
	vals := make([]*tree.Node, 0, len(res.Values))
	used := make([]bool, len(res.Keys))
	for i, k := range orig.Keys {
		j := res.Index(k)
		if j < 0 {
			continue
		}
		keepOrder(orig.Values[i], res.Values[j])
		keys = append(keys, res.Keys[j])
		vals = append(vals, res.Values[j])
		used[j] = true
	}
	for j, k := range res.Keys {
		if !used[j] {
			keys = append(keys, k)
			vals = append(vals, res.Values[j])
		}
	}
	res.Keys, res.Values = keys, vals
}

func (c *call) warn(ms ...string) {
	for _, m := range ms {
		diag.Warnf(c.ctx.Sink, c.ctx.source(), "%s", m)
	}
}
