package gforth

import (
	"strings"

	"github.com/npillmayer/ibtl"
	"github.com/npillmayer/ibtl/grammar"
	"github.com/npillmayer/ibtl/sframe"
)

// Generate translates a program to Gforth, using symtab for variable binding.
// symtab should be fresh; Generate owns it for the duration of the call.
//
// The output is the preamble followed by one line per top-level form, each
// terminated by CR. An empty program yields an empty string.
func Generate(prog grammar.Program, symtab *sframe.SymbolTable) (string, error) {
	if len(prog) == 0 {
		return "", nil
	}
	g := &generator{symtab: symtab}
	lines := make([]string, 0, len(prog))
	for _, form := range prog {
		v, err := g.walk(form, false)
		if err != nil {
			tracer().Errorf("%v", err)
			return "", err
		}
		lines = append(lines, join(v.Code, Flush))
	}
	return Preamble + strings.Join(lines, "\n"), nil
}

type generator struct {
	symtab *sframe.SymbolTable
}

// walk translates the subtree rooted at n. Children are translated left to
// right before their parent. consumed tells if the parent takes the value of n
// off the stack.
func (g *generator) walk(n *grammar.Node, consumed bool) (ibtl.Value, error) {
	if n.IsLeaf() {
		return g.leaf(n.Token)
	}
	switch n.Token.Kind {
	case grammar.Assignment:
		return g.assignment(n, consumed)
	case grammar.Statement:
		if n.Token.Text == "let" {
			return g.let(n)
		}
	}
	args := make([]ibtl.Value, len(n.Children))
	for i, ch := range n.Children {
		v, err := g.walk(ch, consumesChild(n, i, consumed))
		if err != nil {
			return v, err
		}
		args[i] = v
	}
	var v ibtl.Value
	var err error
	switch n.Token.Kind {
	case grammar.BinaryOperator:
		v, err = g.binary(n.Token.Text, args[0], args[1])
	case grammar.UnaryOperator:
		v, err = g.unary(n.Token.Text, args[0])
	case grammar.Statement:
		v, err = g.statement(n.Token.Text, args)
	default:
		err = ibtl.Semanticf(ibtl.ErrTypeMismatch, "cannot translate %s", n.Token)
	}
	if err == nil {
		tracer().Debugf("%s ⇒ %s", n.Token.Text, v)
	}
	return v, err
}

// consumesChild is a predicate: does n take the value of its i-th child off
// the stack? Branches of an if pass on the context of the if; loop bodies
// never leave a value.
func consumesChild(n *grammar.Node, i int, consumed bool) bool {
	if n.Token.Kind != grammar.Statement {
		return true
	}
	switch n.Token.Text {
	case "if":
		return i == 0 || consumed
	case "while":
		return i == 0
	}
	return true
}

func (g *generator) leaf(t grammar.Token) (ibtl.Value, error) {
	switch t.Kind {
	case grammar.IntLiteral:
		return ibtl.MakeValue(ibtl.IntType, t.Text), nil
	case grammar.RealLiteral:
		return ibtl.MakeValue(ibtl.RealType, realLiteral(t.Text)), nil
	case grammar.StringLiteral:
		return ibtl.MakeValue(ibtl.StringType, stringLiteral(t.Text)), nil
	case grammar.BoolLiteral:
		return ibtl.MakeValue(ibtl.BoolType, t.Text), nil
	case grammar.Identifier:
		e, err := g.symtab.Read(t.Text)
		if err != nil {
			return ibtl.Value{}, err
		}
		return ibtl.MakeValue(e.Type, join(t.Text, storageWords[e.Type].fetch)), nil
	}
	return ibtl.Value{}, ibtl.Semanticf(ibtl.ErrTypeMismatch, "%s is not a value", t)
}

// --- Operators -------------------------------------------------------------

func (g *generator) binary(op string, lhs, rhs ibtl.Value) (ibtl.Value, error) {
	if !lhs.HasValue() || !rhs.HasValue() {
		return ibtl.Value{}, ibtl.Semanticf(ibtl.ErrNoValue, "operand of %q is a statement", op)
	}
	result := func(t ibtl.ValueType) ibtl.ValueType {
		if isPredicate(op) {
			return ibtl.BoolType
		}
		return t
	}
	switch {
	case lhs.Type == ibtl.StringType || rhs.Type == ibtl.StringType:
		if op != "+" {
			return ibtl.Value{}, ibtl.Semanticf(ibtl.ErrTypeMismatch,
				"strings can only be concatenated, %q is not a valid operator for strings", op)
		}
		if lhs.Type != rhs.Type {
			return ibtl.Value{}, ibtl.Semanticf(ibtl.ErrTypeMismatch,
				"strings cannot be concatenated with %s", nonString(lhs, rhs))
		}
		return ibtl.MakeValue(ibtl.StringType, join(lhs.Code, rhs.Code, "s+")), nil
	case isLogical(op) || lhs.Type == ibtl.BoolType || rhs.Type == ibtl.BoolType:
		w, ok := boolWords[op]
		if !ok || lhs.Type != ibtl.BoolType || rhs.Type != ibtl.BoolType {
			return ibtl.Value{}, ibtl.Semanticf(ibtl.ErrTypeMismatch,
				"%q not applicable to %s and %s", op, lhs.Type, rhs.Type)
		}
		return ibtl.MakeValue(ibtl.BoolType, join(lhs.Code, rhs.Code, w)), nil
	case lhs.Type == ibtl.RealType || rhs.Type == ibtl.RealType:
		w := realWords[op]
		return ibtl.MakeValue(result(ibtl.RealType), join(toReal(lhs), toReal(rhs), w)), nil
	}
	w := intWords[op]
	return ibtl.MakeValue(result(ibtl.IntType), join(lhs.Code, rhs.Code, w)), nil
}

func nonString(lhs, rhs ibtl.Value) ibtl.ValueType {
	if lhs.Type != ibtl.StringType {
		return lhs.Type
	}
	return rhs.Type
}

func (g *generator) unary(op string, v ibtl.Value) (ibtl.Value, error) {
	if !v.HasValue() {
		return ibtl.Value{}, ibtl.Semanticf(ibtl.ErrNoValue, "operand of %q is a statement", op)
	}
	switch op {
	case "not":
		if v.Type != ibtl.BoolType {
			return ibtl.Value{}, ibtl.Semanticf(ibtl.ErrTypeMismatch, "'not' needs a bool operand, have %s", v.Type)
		}
		return ibtl.MakeValue(ibtl.BoolType, join(v.Code, "invert")), nil
	case "-":
		switch v.Type {
		case ibtl.IntType:
			return ibtl.MakeValue(ibtl.IntType, join(v.Code, "negate")), nil
		case ibtl.RealType:
			return ibtl.MakeValue(ibtl.RealType, join(v.Code, "fnegate")), nil
		}
	default:
		if w, ok := trigWords[op]; ok && v.Type.IsNumeric() {
			return ibtl.MakeValue(ibtl.RealType, join(toReal(v), w)), nil
		}
	}
	return ibtl.Value{}, ibtl.Semanticf(ibtl.ErrTypeMismatch, "%q not applicable to %s", op, v.Type)
}

// --- Assignment and statements ---------------------------------------------

// assignment translates (:= identifier oper). The identifier is a target, not
// an operand, so it is not read. If the assignment is consumed, the value is
// duplicated before it is stored.
func (g *generator) assignment(n *grammar.Node, consumed bool) (ibtl.Value, error) {
	name := n.Children[0].Token.Text
	v, err := g.walk(n.Children[1], true)
	if err != nil {
		return v, err
	}
	if !v.HasValue() {
		return ibtl.Value{}, ibtl.Semanticf(ibtl.ErrNoValue, "cannot assign a statement to %q", name)
	}
	e, found := g.symtab.Lookup(name)
	if !found || !e.IsDeclared() {
		_, err = g.symtab.Assign(name) // fails for unbound names
		return ibtl.Value{}, err
	}
	code := v.Code
	switch {
	case e.Type == v.Type:
	case e.Type == ibtl.RealType && v.Type == ibtl.IntType:
		code = toReal(v)
	default:
		return ibtl.Value{}, ibtl.Semanticf(ibtl.ErrTypeMismatch,
			"cannot assign %s value to %q of type %s", v.Type, name, e.Type)
	}
	if _, err = g.symtab.Assign(name); err != nil {
		return ibtl.Value{}, err
	}
	words := storageWords[e.Type]
	if consumed {
		code = join(code, words.dup)
	}
	return ibtl.MakeValue(e.Type, join(code, name, words.store)), nil
}

// let translates (let (identifier type)+), declaring each identifier.
func (g *generator) let(n *grammar.Node) (ibtl.Value, error) {
	defs := make([]string, 0, len(n.Children))
	for _, binding := range n.Children {
		name := binding.Children[0].Token.Text
		t, ok := ibtl.TypeFromKeyword(binding.Children[1].Token.Text)
		if !ok {
			return ibtl.Value{}, ibtl.Semanticf(ibtl.ErrTypeMismatch,
				"%q is not a type", binding.Children[1].Token.Text)
		}
		if _, err := g.symtab.Declare(name, t); err != nil {
			return ibtl.Value{}, err
		}
		defs = append(defs, join(storageWords[t].define, name))
	}
	return ibtl.MakeValue(ibtl.VoidType, join(defs...)), nil
}

func (g *generator) statement(keyword string, args []ibtl.Value) (ibtl.Value, error) {
	switch keyword {
	case "stdout":
		return stdout(args[0])
	case "if":
		return ifStatement(args)
	case "while":
		return whileStatement(args)
	}
	return ibtl.Value{}, ibtl.Semanticf(ibtl.ErrTypeMismatch, "unknown statement %q", keyword)
}

func stdout(v ibtl.Value) (ibtl.Value, error) {
	w, ok := printWords[v.Type]
	if !ok {
		return ibtl.Value{}, ibtl.Semanticf(ibtl.ErrNoValue, "stdout of a statement")
	}
	return ibtl.MakeValue(ibtl.VoidType, join(v.Code, w)), nil
}

func ifStatement(args []ibtl.Value) (ibtl.Value, error) {
	pred, then := args[0], args[1]
	if pred.Type != ibtl.BoolType {
		return ibtl.Value{}, ibtl.Semanticf(ibtl.ErrNotBoolean,
			"if condition %q does not evaluate to true or false", pred.Code)
	}
	if len(args) == 2 {
		return ibtl.MakeValue(ibtl.VoidType, join(pred.Code, "if", then.Code, "endif")), nil
	}
	els := args[2]
	t := ibtl.VoidType
	if then.Type == els.Type {
		t = then.Type
	}
	return ibtl.MakeValue(t, join(pred.Code, "if", then.Code, "else", els.Code, "endif")), nil
}

func whileStatement(args []ibtl.Value) (ibtl.Value, error) {
	pred := args[0]
	if pred.Type != ibtl.BoolType {
		return ibtl.Value{}, ibtl.Semanticf(ibtl.ErrNotBoolean,
			"while condition %q does not evaluate to true or false", pred.Code)
	}
	code := []string{"begin", pred.Code, "while"}
	for _, body := range args[1:] {
		code = append(code, body.Code)
	}
	code = append(code, "repeat")
	return ibtl.MakeValue(ibtl.VoidType, join(code...)), nil
}
