package grammar

import (
	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/npillmayer/ibtl"
)

// Parse parses an IBTL source text and returns its top-level forms.
//
// Grammar (informal):
//
//     program   →  form*
//     form      →  ( head arg* )
//     oper      →  form | literal | identifier | - oper
//
// The head of a form decides about the arguments it takes:
//
//     :=        identifier oper
//     binop     oper oper
//     unop      oper
//     -         oper | oper oper
//     let       ( identifier type )+
//     while     oper oper+
//     if        oper oper [oper]
//     stdout    oper
//
func Parse(source string) (Program, error) {
	lexer, err := NewLexer(source)
	if err != nil {
		return nil, err
	}
	return NewParser(lexer).Parse()
}

// Parser is a recursive-descent parser for IBTL.
type Parser struct {
	lexer *Lexer
	open  *linkedliststack.Stack // positions of '(' not yet closed
}

// NewParser creates a parser reading tokens from lexer.
func NewParser(lexer *Lexer) *Parser {
	return &Parser{
		lexer: lexer,
		open:  linkedliststack.New(),
	}
}

// Parse parses forms until the end of input.
func (p *Parser) Parse() (Program, error) {
	var prog Program
	for {
		t, err := p.lexer.Peek()
		if err != nil {
			return nil, err
		}
		if t.Kind == EOF {
			tracer().Debugf("parsed %d top-level forms", len(prog))
			return prog, nil
		}
		if t.Kind == RightParen {
			return nil, p.mismatched(t)
		} else if t.Kind != LeftParen {
			p.lexer.Next()
			return nil, ibtl.Parsef(ibtl.ErrSyntax, t.Pos,
				"expected '(' to start a top-level form, have %s", t)
		}
		form, err := p.form()
		if err != nil {
			return nil, err
		}
		prog = append(prog, form)
	}
}

// form parses ( head arg* ).
func (p *Parser) form() (*Node, error) {
	lp, err := p.lexer.Next()
	if err != nil {
		return nil, err
	}
	if lp.Kind != LeftParen {
		return nil, ibtl.Parsef(ibtl.ErrSyntax, lp.Pos, "expected '(', have %s", lp)
	}
	p.open.Push(lp.Pos)
	head, err := p.lexer.Next()
	if err != nil {
		return nil, err
	}
	tracer().Debugf("parsing form with head %s", head)
	var node *Node
	switch head.Kind {
	case Assignment:
		node, err = p.assignment(head)
	case BinaryOperator:
		node, err = p.operator(head, 2)
	case UnaryOperator:
		node, err = p.operator(head, 1)
	case Minus:
		node, err = p.minus(head)
	case Statement:
		node, err = p.statement(head)
	case EOF:
		err = p.mismatched(head)
	case RightParen:
		err = ibtl.Parsef(ibtl.ErrSyntax, head.Pos, "empty form")
	default:
		err = ibtl.Parsef(ibtl.ErrSyntax, head.Pos, "%s cannot start a form", head)
	}
	if err != nil {
		return nil, err
	}
	if err = p.close(); err != nil {
		return nil, err
	}
	return node, nil
}

// close consumes the ')' ending the innermost open form.
func (p *Parser) close() error {
	t, err := p.lexer.Next()
	if err != nil {
		return err
	}
	if t.Kind != RightParen {
		return p.mismatched(t)
	}
	p.open.Pop()
	return nil
}

func (p *Parser) mismatched(t Token) error {
	if opened, ok := p.open.Peek(); ok {
		return ibtl.Parsef(ibtl.ErrMismatchedParen, t.Pos,
			"mismatched parenthesis: form opened at %s not closed, have %s", opened, t)
	}
	return ibtl.Parsef(ibtl.ErrMismatchedParen, t.Pos, "mismatched parenthesis at %s", t)
}

// atClose is a predicate: is the next token a ')' or EOF?
func (p *Parser) atClose() (bool, error) {
	t, err := p.lexer.Peek()
	if err != nil {
		return false, err
	}
	return t.Kind == RightParen || t.Kind == EOF, nil
}

// oper parses an operand: a nested form, a literal, an identifier, or a
// negation with a bare '-'.
func (p *Parser) oper() (*Node, error) {
	t, err := p.lexer.Peek()
	if err != nil {
		return nil, err
	}
	switch {
	case t.Kind == LeftParen:
		return p.form()
	case t.Kind.IsOperand():
		p.lexer.Next()
		return Leaf(t), nil
	case t.Kind == Minus: // - oper, without parentheses, is a negation
		p.lexer.Next()
		t.Kind = UnaryOperator
		arg, err := p.oper()
		if err != nil {
			return nil, err
		}
		return NewNode(t, arg), nil
	case t.Kind == EOF:
		return nil, p.mismatched(t)
	case t.Kind == RightParen:
		return nil, ibtl.Parsef(ibtl.ErrArity, t.Pos, "operand missing before ')'")
	}
	p.lexer.Next()
	return nil, ibtl.Parsef(ibtl.ErrSyntax, t.Pos, "%s is not a valid operand", t)
}

// opers parses n operands and appends them to node.
func (p *Parser) opers(node *Node, n int) error {
	for i := 0; i < n; i++ {
		arg, err := p.oper()
		if err != nil {
			return err
		}
		node.Add(arg)
	}
	return nil
}

func (p *Parser) operator(head Token, arity int) (*Node, error) {
	node := NewNode(head)
	if err := p.opers(node, arity); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *Parser) assignment(head Token) (*Node, error) {
	id, err := p.lexer.Next()
	if err != nil {
		return nil, err
	}
	if id.Kind != Identifier {
		return nil, ibtl.Parsef(ibtl.ErrSyntax, id.Pos, ":= must be followed by an identifier, have %s", id)
	}
	node := NewNode(head, Leaf(id))
	if err = p.opers(node, 1); err != nil {
		return nil, err
	}
	return node, nil
}

// minus parses all operands up to the closing ')' and classifies the minus
// by their count.
func (p *Parser) minus(head Token) (*Node, error) {
	node := NewNode(head)
	for {
		done, err := p.atClose()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		if err = p.opers(node, 1); err != nil {
			return nil, err
		}
	}
	switch len(node.Children) {
	case 1:
		node.Token.Kind = UnaryOperator
	case 2:
		node.Token.Kind = BinaryOperator
	default:
		return nil, ibtl.Parsef(ibtl.ErrArity, head.Pos,
			"'-' takes one or two operands, have %d", len(node.Children))
	}
	tracer().Debugf("'-' at %s classified as %s", head.Pos, node.Token.Kind)
	return node, nil
}

// --- Statements ------------------------------------------------------------

func (p *Parser) statement(head Token) (*Node, error) {
	switch head.Text {
	case "let":
		return p.let(head)
	case "while":
		return p.while(head)
	case "if":
		return p.ifStatement(head)
	case "stdout":
		return p.operator(head, 1)
	}
	return nil, ibtl.Parsef(ibtl.ErrSyntax, head.Pos, "unrecognized statement %q", head.Text)
}

// let parses ( let (identifier type)+ ).
func (p *Parser) let(head Token) (*Node, error) {
	node := NewNode(head)
	for {
		t, err := p.lexer.Peek()
		if err != nil {
			return nil, err
		}
		if t.Kind == RightParen || t.Kind == EOF {
			break
		}
		if t.Kind != LeftParen {
			p.lexer.Next()
			return nil, ibtl.Parsef(ibtl.ErrSyntax, t.Pos,
				"let expects (identifier type) pairs, have %s", t)
		}
		binding, err := p.binding()
		if err != nil {
			return nil, err
		}
		node.Add(binding)
	}
	if node.IsLeaf() {
		return nil, ibtl.Parsef(ibtl.ErrArity, head.Pos, "let without bindings")
	}
	return node, nil
}

// binding parses ( identifier type ).
func (p *Parser) binding() (*Node, error) {
	lp, _ := p.lexer.Next()
	p.open.Push(lp.Pos)
	id, err := p.lexer.Next()
	if err != nil {
		return nil, err
	}
	if id.Kind != Identifier {
		return nil, ibtl.Parsef(ibtl.ErrSyntax, id.Pos, "let binding must start with an identifier, have %s", id)
	}
	typ, err := p.lexer.Next()
	if err != nil {
		return nil, err
	}
	if typ.Kind != TypeKeyword {
		return nil, ibtl.Parsef(ibtl.ErrSyntax, typ.Pos, "let binding for %q needs a type, have %s", id.Text, typ)
	}
	if err = p.close(); err != nil {
		return nil, err
	}
	return NewNode(lp, Leaf(id), Leaf(typ)), nil
}

// while parses ( while oper oper+ ).
func (p *Parser) while(head Token) (*Node, error) {
	node := NewNode(head)
	if err := p.opers(node, 2); err != nil {
		return nil, err
	}
	for {
		done, err := p.atClose()
		if err != nil {
			return nil, err
		}
		if done {
			return node, nil
		}
		if err = p.opers(node, 1); err != nil {
			return nil, err
		}
	}
}

// ifStatement parses ( if oper oper [oper] ).
func (p *Parser) ifStatement(head Token) (*Node, error) {
	node := NewNode(head)
	if err := p.opers(node, 2); err != nil {
		return nil, err
	}
	done, err := p.atClose()
	if err != nil {
		return nil, err
	}
	if !done {
		if err = p.opers(node, 1); err != nil {
			return nil, err
		}
	}
	return node, nil
}
