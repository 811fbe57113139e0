package parser

import "testing"

func TestParse_Literal(t *testing.T) {
	ast, err := Parse("a")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if ast.Kind != KindChar || ast.Char != 'a' {
		t.Fatalf("got %+v, want Char(a)", ast)
	}
}

func TestParse_Concatenation(t *testing.T) {
	ast, err := Parse("abc")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if ast.Kind != KindSeq || len(ast.Children) != 3 {
		t.Fatalf("got %+v, want Seq of 3", ast)
	}
	for i, want := range []rune{'a', 'b', 'c'} {
		if ast.Children[i].Kind != KindChar || ast.Children[i].Char != want {
			t.Errorf("child %d = %+v, want Char(%c)", i, ast.Children[i], want)
		}
	}
}

func TestParse_AlternationLeftAssociative(t *testing.T) {
	ast, err := Parse("a|b|c")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// a|b|c parses as Or(Or(a,b),c).
	if ast.Kind != KindOr {
		t.Fatalf("got %+v, want Or", ast)
	}
	if ast.Right.Kind != KindChar || ast.Right.Char != 'c' {
		t.Fatalf("outer.Right = %+v, want Char(c)", ast.Right)
	}
	inner := ast.Left
	if inner.Kind != KindOr {
		t.Fatalf("outer.Left = %+v, want Or", inner)
	}
	if inner.Left.Kind != KindChar || inner.Left.Char != 'a' {
		t.Errorf("inner.Left = %+v, want Char(a)", inner.Left)
	}
	if inner.Right.Kind != KindChar || inner.Right.Char != 'b' {
		t.Errorf("inner.Right = %+v, want Char(b)", inner.Right)
	}
}

func TestParse_Quantifiers(t *testing.T) {
	tests := []struct {
		pattern  string
		wantKind Kind
	}{
		{"a*", KindStar},
		{"a+", KindPlus},
		{"a?", KindQuestion},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			ast, err := Parse(tt.pattern)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if ast.Kind != tt.wantKind {
				t.Fatalf("got %s, want %s", ast.Kind, tt.wantKind)
			}
			if ast.Child.Kind != KindChar || ast.Child.Char != 'a' {
				t.Fatalf("child = %+v, want Char(a)", ast.Child)
			}
		})
	}
}

func TestParse_GroupingAndPrecedence(t *testing.T) {
	// (ab)* should apply * to the whole Seq, not just "b".
	ast, err := Parse("(ab)*")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if ast.Kind != KindStar {
		t.Fatalf("got %+v, want Star", ast)
	}
	if ast.Child.Kind != KindSeq || len(ast.Child.Children) != 2 {
		t.Fatalf("child = %+v, want Seq of 2", ast.Child)
	}
}

func TestParse_NestedGroupEmptyAlternativeAllowed(t *testing.T) {
	// Grouped empty alternatives are permitted even though a top-level
	// one is rejected.
	ast, err := Parse("a(|b)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if ast.Kind != KindSeq || len(ast.Children) != 2 {
		t.Fatalf("got %+v, want Seq of 2", ast)
	}
	group := ast.Children[1]
	if group.Kind != KindOr {
		t.Fatalf("group = %+v, want Or", group)
	}
	if group.Left.Kind != KindSeq || len(group.Left.Children) != 0 {
		t.Fatalf("group.Left = %+v, want empty Seq", group.Left)
	}
}

func TestParse_EmptyPattern(t *testing.T) {
	ast, err := Parse("")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if ast.Kind != KindSeq || len(ast.Children) != 0 {
		t.Fatalf("got %+v, want empty Seq", ast)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    ErrorKind
	}{
		{"leading star", "*a", KindEmptyOperand},
		{"leading plus after alt", "a|+b", KindEmptyOperand},
		{"top-level leading empty alternative", "|b", KindEmptyAlternative},
		{"top-level trailing empty alternative", "a|", KindEmptyAlternative},
		{"unmatched close paren", "a)", KindUnmatchedCloseParen},
		{"unopened close paren", ")", KindUnmatchedCloseParen},
		{"unterminated group with content", "(ab", KindUnclosedParen},
		{"unterminated nested group with content", "(a(b)", KindUnclosedParen},
		{"unterminated group with operator content", "(a|", KindUnclosedParen},
		{"dangling open paren", "(", KindUnexpectedEnd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.pattern)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.pattern)
			}
			perr, ok := err.(*Error)
			if !ok {
				t.Fatalf("error type = %T, want *Error", err)
			}
			if perr.Kind != tt.want {
				t.Errorf("Kind = %s, want %s", perr.Kind, tt.want)
			}
			if perr.Pattern != tt.pattern {
				t.Errorf("Pattern = %q, want %q", perr.Pattern, tt.pattern)
			}
		})
	}
}

func TestErrorKind_String(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindEmptyOperand, "EmptyOperand"},
		{KindEmptyAlternative, "EmptyAlternative"},
		{KindUnclosedParen, "UnclosedParen"},
		{KindUnmatchedCloseParen, "UnmatchedCloseParen"},
		{KindUnexpectedEnd, "UnexpectedEnd"},
		{ErrorKind(99), "ErrorKind(99)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindChar, "Char"},
		{KindSeq, "Seq"},
		{KindOr, "Or"},
		{KindPlus, "Plus"},
		{KindStar, "Star"},
		{KindQuestion, "Question"},
		{Kind(99), "Kind(99)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
