package internal

// parser stores parser data
type parser struct {
	current int
	// blockDepth counts the braces opened by the declaration being parsed
	blockDepth int

	state *interpreterState
}

const maxFunctionParams = 255

func newParser(state *interpreterState) *parser {
	return &parser{state: state}
}

func (p *parser) parse() {
	for !p.isAtEnd() {
		st := p.parseStmt()
		// A statement that failed to parse comes back as nil
		if st != nil {
			p.state.stmts = append(p.state.stmts, st)
		}
	}
}

// parseStmt parses one declaration. On a syntax error the diagnostic is
// already recorded, the parser skips to the next statement boundary.
func (p *parser) parseStmt() (s stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*Diagnostic); !ok {
				panic(r)
			}
			depth := p.blockDepth
			p.blockDepth = 0
			p.synchronize(depth)
			s = nil
		}
	}()
	return p.declaration()
}

func (p *parser) declaration() stmt {
	if p.match(tkClass) {
		return p.class()
	}
	if p.match(tkFun) {
		return p.fn("function")
	}
	if p.match(tkVar) {
		return p.varDecl()
	}
	return p.statement()
}

func (p *parser) class() stmt {
	name := p.consume(tkIdentifier, errExpectedClassName)

	var superclass *variableExpr
	if p.match(tkLess) {
		class := p.consume(tkIdentifier, errExpectedSuperclassName)
		superclass = &variableExpr{
			name: class,
		}
	}

	p.consume(tkLeftCurlyBrace, withDetail(errExpectedOpeningCurlyBrace, "Expect '{' before class body."))
	p.blockDepth++

	var methods []*fnStmt
	for !p.check(tkRightCurlyBrace) && !p.isAtEnd() {
		methods = append(methods, p.fn("method"))
	}

	p.consume(tkRightCurlyBrace, withDetail(errExpectedClosingCurlyBrace, "Expect '}' after class body."))
	p.blockDepth--

	return &classStmt{
		name:       name,
		superclass: superclass,
		methods:    methods,
	}
}

func (p *parser) fn(kind string) *fnStmt {
	name := p.consume(tkIdentifier, withDetail(errExpectedFunctionName, "Expect %s name.", kind))

	p.consume(tkLeftParen, withDetail(errExpectedOpeningParen, "Expect '(' after %s name.", kind))

	var params []*token
	if !p.check(tkRightParen) {
		for {
			if len(params) >= maxFunctionParams {
				p.state.setError(ParseError, errMaxParameters, p.peek())
			}
			params = append(params, p.consume(tkIdentifier, errExpectedFunctionParam))
			if !p.match(tkComma) {
				break
			}
		}
	}
	p.consume(tkRightParen, errUnclosedParams)

	p.consume(tkLeftCurlyBrace, withDetail(errExpectedOpeningCurlyBrace, "Expect '{' before %s body.", kind))
	body := p.block()

	return &fnStmt{
		name:   name,
		params: params,
		body:   body,
	}
}

func (p *parser) varDecl() stmt {
	name := p.consume(tkIdentifier, errExpectedIdentifier)

	var init expr
	if p.match(tkEqual) {
		init = p.expression()
	}
	p.consume(tkSemicolon, withDetail(errExpectedSemicolon, "Expect ';' after variable declaration."))

	return &varStmt{
		name:        name,
		initializer: init,
	}
}

func (p *parser) statement() stmt {
	if p.match(tkFor) {
		return p.forLoop()
	}
	if p.match(tkIf) {
		return p.ifStmt()
	}
	if p.match(tkPrint) {
		return p.printStmt()
	}
	if p.match(tkReturn) {
		return p.ret()
	}
	if p.match(tkBreak) {
		return p.brk()
	}
	if p.match(tkWhile) {
		return p.while()
	}
	if p.match(tkLeftCurlyBrace) {
		return &blockStmt{stmts: p.block()}
	}
	return p.expressionStmt()
}

// forLoop desugars into a while loop wrapped in blocks:
// { init; while (cond) { body; inc; } }
func (p *parser) forLoop() stmt {
	keyword := p.previous()
	p.consume(tkLeftParen, withDetail(errExpectedOpeningParen, "Expect '(' after 'for'."))

	var init stmt
	if p.match(tkSemicolon) {
		init = nil
	} else if p.match(tkVar) {
		init = p.varDecl()
	} else {
		init = p.expressionStmt()
	}

	var cond expr
	if !p.check(tkSemicolon) {
		cond = p.expression()
	}
	p.consume(tkSemicolon, withDetail(errExpectedSemicolon, "Expect ';' after loop condition."))

	var inc expr
	if !p.check(tkRightParen) {
		inc = p.expression()
	}
	p.consume(tkRightParen, withDetail(errUnclosedParen, "Expect ')' after for clauses."))

	body := p.statement()

	if inc != nil {
		body = &blockStmt{stmts: []stmt{body, &exprStmt{expression: inc}}}
	}
	if cond == nil {
		cond = &literalExpr{value: loxBool(true)}
	}
	body = &whileStmt{
		keyword:   keyword,
		condition: cond,
		body:      body,
	}
	if init != nil {
		body = &blockStmt{stmts: []stmt{init, body}}
	}
	return body
}

func (p *parser) ifStmt() stmt {
	st := &ifStmt{
		keyword: p.previous(),
	}

	p.consume(tkLeftParen, withDetail(errExpectedOpeningParen, "Expect '(' after 'if'."))
	st.condition = p.expression()
	p.consume(tkRightParen, withDetail(errUnclosedParen, "Expect ')' after if condition."))

	st.thenBranch = p.statement()
	if p.match(tkElse) {
		st.elseBranch = p.statement()
	}

	return st
}

func (p *parser) printStmt() stmt {
	keyword := p.previous()
	value := p.expression()
	p.consume(tkSemicolon, withDetail(errExpectedSemicolon, "Expect ';' after value."))
	return &printStmt{
		keyword:    keyword,
		expression: value,
	}
}

func (p *parser) ret() stmt {
	var value expr
	keyword := p.previous()
	if !p.check(tkSemicolon) {
		value = p.expression()
	}
	p.consume(tkSemicolon, withDetail(errExpectedSemicolon, "Expect ';' after return value."))
	return &returnStmt{
		keyword: keyword,
		value:   value,
	}
}

func (p *parser) brk() stmt {
	keyword := p.previous()
	p.consume(tkSemicolon, withDetail(errExpectedSemicolon, "Expect ';' after 'break'."))
	return &breakStmt{
		keyword: keyword,
	}
}

func (p *parser) while() stmt {
	keyword := p.previous()
	p.consume(tkLeftParen, withDetail(errExpectedOpeningParen, "Expect '(' after 'while'."))
	cond := p.expression()
	p.consume(tkRightParen, withDetail(errUnclosedParen, "Expect ')' after condition."))
	body := p.statement()
	return &whileStmt{
		keyword:   keyword,
		condition: cond,
		body:      body,
	}
}

// block parses the statements after an opening brace the caller consumed
func (p *parser) block() []stmt {
	p.blockDepth++
	stmts := make([]stmt, 0)
	for !p.check(tkRightCurlyBrace) && !p.isAtEnd() {
		stmts = append(stmts, p.declaration())
	}
	p.consume(tkRightCurlyBrace, withDetail(errExpectedClosingCurlyBrace, "Expect '}' after block."))
	p.blockDepth--
	return stmts
}

func (p *parser) expressionStmt() stmt {
	expr := p.expression()
	p.consume(tkSemicolon, withDetail(errExpectedSemicolon, "Expect ';' after expression."))
	return &exprStmt{
		expression: expr,
	}
}

// expression is the comma operator, it binds looser than assignment
func (p *parser) expression() expr {
	expr := p.assignment()
	for p.match(tkComma) {
		right := p.assignment()
		expr = &commaExpr{
			left:  expr,
			right: right,
		}
	}
	return expr
}

func (p *parser) assignment() expr {
	expr := p.conditional()
	if p.match(tkEqual) {
		equal := p.previous()
		value := p.assignment()

		if variable, isVar := expr.(*variableExpr); isVar {
			return &assignExpr{
				name:  variable.name,
				value: value,
			}
		} else if get, isGet := expr.(*getExpr); isGet {
			return &setExpr{
				object: get.object,
				name:   get.name,
				value:  value,
			}
		}

		// Reported but not fatal, the parser is not confused
		p.state.setError(ParseError, errInvalidAssignment, equal)
	}
	return expr
}

// conditional is right associative: a ? b : c ? d : e is a ? b : (c ? d : e)
func (p *parser) conditional() expr {
	expr := p.or()
	if p.match(tkQuestion) {
		question := p.previous()
		thenBranch := p.expression()
		p.consume(tkColon, errExpectedColon)
		elseBranch := p.conditional()
		return &conditionalExpr{
			condition:  expr,
			question:   question,
			thenBranch: thenBranch,
			elseBranch: elseBranch,
		}
	}
	return expr
}

func (p *parser) or() expr {
	expr := p.and()
	for p.match(tkOr) {
		operator := p.previous()
		right := p.and()
		expr = &logicalExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) and() expr {
	expr := p.equality()
	for p.match(tkAnd) {
		operator := p.previous()
		right := p.equality()
		expr = &logicalExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) equality() expr {
	expr := p.comparison()
	for p.match(tkEqualEqual, tkBangEqual) {
		operator := p.previous()
		right := p.comparison()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) comparison() expr {
	expr := p.addition()
	for p.match(tkGreater, tkGreaterEqual, tkLess, tkLessEqual) {
		operator := p.previous()
		right := p.addition()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) addition() expr {
	expr := p.multiplication()
	for p.match(tkPlus, tkMinus) {
		operator := p.previous()
		right := p.multiplication()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) multiplication() expr {
	expr := p.unary()
	for p.match(tkSlash, tkStar) {
		operator := p.previous()
		right := p.unary()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) unary() expr {
	if p.match(tkBang, tkMinus) {
		operator := p.previous()
		right := p.unary()
		return &unaryExpr{
			operator: operator,
			right:    right,
		}
	}
	return p.call()
}

func (p *parser) call() expr {
	expr := p.primary()
	for {
		if p.match(tkLeftParen) {
			expr = p.finishCall(expr)
		} else if p.match(tkDot) {
			name := p.consume(tkIdentifier, errExpectedProp)
			expr = &getExpr{
				object: expr,
				name:   name,
			}
		} else {
			break
		}
	}
	return expr
}

func (p *parser) finishCall(callee expr) expr {
	arguments := p.arguments()
	paren := p.consume(tkRightParen, errUnclosedArgs)
	return &callExpr{
		callee:    callee,
		paren:     paren,
		arguments: arguments,
	}
}

// arguments are assignments, not expressions: a comma separates arguments
// and a comma expression needs parentheses
func (p *parser) arguments() []expr {
	arguments := make([]expr, 0)
	if !p.check(tkRightParen) {
		for {
			if len(arguments) >= maxFunctionParams {
				p.state.setError(ParseError, errMaxArguments, p.peek())
			}
			arguments = append(arguments, p.assignment())
			if !p.match(tkComma) {
				break
			}
		}
	}
	return arguments
}

func (p *parser) primary() expr {
	if p.match(tkNumber, tkString) {
		return &literalExpr{value: p.previous().literal}
	}
	if p.match(tkFalse) {
		return &literalExpr{value: loxBool(false)}
	}
	if p.match(tkTrue) {
		return &literalExpr{value: loxBool(true)}
	}
	if p.match(tkNil) {
		return &literalExpr{value: nil}
	}
	if p.match(tkIdentifier) {
		return &variableExpr{name: p.previous()}
	}
	if p.match(tkLeftParen) {
		expr := p.expression()
		p.consume(tkRightParen, errUnclosedParen)
		return &groupingExpr{expression: expr}
	}
	if p.match(tkThis) {
		return &thisExpr{keyword: p.previous()}
	}
	if p.match(tkSuper) {
		return p.superExpr()
	}

	p.state.fatalError(errExpectedExpr, p.peek())
	return nil
}

func (p *parser) superExpr() expr {
	keyword := p.previous()
	p.consume(tkDot, errExpectedDot)
	method := p.consume(tkIdentifier, errExpectedSuperMethod)
	return &superExpr{
		keyword: keyword,
		method:  method,
	}
}

func (p *parser) consume(tk tokenType, err error) *token {
	if p.check(tk) {
		return p.advance()
	}

	p.state.fatalError(err, p.peek())
	return nil
}

func (p *parser) advance() *token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...tokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(tk tokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().token == tk
}

func (p *parser) peek() *token {
	return &p.state.tokens[p.current]
}

func (p *parser) previous() *token {
	return &p.state.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().token == tkEOF
}

// synchronize discards tokens until a statement boundary. When the error
// happened depth braces deep, the rest of those blocks is discarded too so
// their closing braces are not parsed as new statements.
func (p *parser) synchronize(depth int) {
	for !p.isAtEnd() {
		switch p.advance().token {
		case tkLeftCurlyBrace:
			depth++
		case tkRightCurlyBrace:
			if depth > 0 {
				depth--
				if depth == 0 {
					return
				}
			}
		case tkSemicolon:
			if depth == 0 {
				return
			}
		}

		if depth > 0 {
			continue
		}
		switch p.peek().token {
		case tkClass, tkFun, tkVar, tkFor, tkIf, tkWhile, tkPrint, tkReturn:
			return
		default:
		}
	}
}
