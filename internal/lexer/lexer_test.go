package lexer

import (
	"testing"

	"github.com/OzRAGEHarm/Zekken/pkg/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeEndsWithEOF(t *testing.T) {
	sources := []string{
		"",
		"   \n\n  ",
		"let x: int = 2 + 3 * 4;",
		"// just a comment",
	}
	for _, src := range sources {
		toks := Tokenize(src)
		if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
			t.Errorf("Tokenize(%q) did not end with EOF: %v", src, toks)
		}
	}
}

func TestTokenizeBasicDeclaration(t *testing.T) {
	toks := Tokenize(`let x: int = 2 + 3 * 4;`)
	got := kinds(toks)
	want := []token.Kind{
		token.LET, token.IDENT, token.COLON, token.TYPE_INT, token.ASSIGN,
		token.INT, token.PLUS, token.INT, token.ASTERISK, token.INT,
		token.SEMICOLON, token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestTokenizeNativeCall(t *testing.T) {
	toks := Tokenize(`@println => |x|;`)
	got := kinds(toks)
	want := []token.Kind{
		token.AT, token.IDENT, token.FAT_ARROW, token.PIPE, token.IDENT,
		token.PIPE, token.SEMICOLON, token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestTokenizeStringEscapes(t *testing.T) {
	toks := Tokenize(`"a\nb\tc\\d\"e"`)
	if toks[0].Kind != token.STRING {
		t.Fatalf("expected STRING, got %v", toks[0].Kind)
	}
	if want := "a\nb\tc\\d\"e"; toks[0].Value != want {
		t.Errorf("decoded value = %q, want %q", toks[0].Value, want)
	}
}

func TestTokenizeSingleQuoteString(t *testing.T) {
	toks := Tokenize(`'hello'`)
	if toks[0].Kind != token.STRING || toks[0].Value != "hello" {
		t.Errorf("got %+v", toks[0])
	}
}

func TestTokenizeFloatVsInt(t *testing.T) {
	toks := Tokenize(`1 1.5 1. .5`)
	if toks[0].Kind != token.INT {
		t.Errorf("expected INT, got %v", toks[0].Kind)
	}
	if toks[1].Kind != token.FLOAT || toks[1].Value != "1.5" {
		t.Errorf("expected FLOAT 1.5, got %+v", toks[1])
	}
}

func TestTokenizeNegativeNumberLiteral(t *testing.T) {
	toks := Tokenize(`-5`)
	if toks[0].Kind != token.INT || toks[0].Value != "-5" {
		t.Errorf("expected negative int literal, got %+v", toks[0])
	}
}

func TestTokenizeKeywordsAndTypes(t *testing.T) {
	toks := Tokenize(`let const func if else for while use include export in from return try catch`)
	want := []token.Kind{
		token.LET, token.CONST, token.FUNC, token.IF, token.ELSE, token.FOR,
		token.WHILE, token.USE, token.INCLUDE, token.EXPORT, token.IN,
		token.FROM, token.RETURN, token.TRY, token.CATCH, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestTokenizeBooleans(t *testing.T) {
	toks := Tokenize(`true false`)
	if toks[0].Kind != token.BOOLEAN || toks[0].Value != "true" {
		t.Errorf("got %+v", toks[0])
	}
	if toks[1].Kind != token.BOOLEAN || toks[1].Value != "false" {
		t.Errorf("got %+v", toks[1])
	}
}

func TestTokenizeTwoCharOperators(t *testing.T) {
	toks := Tokenize(`== != <= >= && || += -= *= /= %= -> =>`)
	want := []token.Kind{
		token.EQ, token.NOT_EQ, token.LESS_EQ, token.GREATER_EQ, token.AND,
		token.OR, token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.STAR_ASSIGN,
		token.SLASH_ASSIGN, token.PERCENT_ASSIGN, token.ARROW, token.FAT_ARROW,
		token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestTokenizeBlockComment(t *testing.T) {
	toks := Tokenize("/* a\nb */ let")
	if toks[0].Kind != token.LET {
		t.Fatalf("expected the comment to be skipped, got %v", toks[0].Kind)
	}
}

func TestTokenizePreserveComments(t *testing.T) {
	toks := Tokenize("// hi\nlet", WithPreserveComments(true))
	if toks[0].Kind != token.COMMENT_LINE {
		t.Fatalf("expected COMMENT_LINE, got %v", toks[0].Kind)
	}
	if toks[1].Kind != token.LET {
		t.Fatalf("expected LET after comment, got %v", toks[1].Kind)
	}
}

func TestTokenizeLineColumnTracking(t *testing.T) {
	toks := Tokenize("let x\n= 1;")
	// 'let' at line 1 col 1, 'x' at line1 col5, '=' at line 2 col 1
	if toks[0].Pos.Line != 1 || toks[0].Pos.Column != 1 {
		t.Errorf("let pos = %v", toks[0].Pos)
	}
	var assignTok token.Token
	for _, tk := range toks {
		if tk.Kind == token.ASSIGN {
			assignTok = tk
			break
		}
	}
	if assignTok.Pos.Line != 2 {
		t.Errorf("assign token should be on line 2, got %v", assignTok.Pos)
	}
}

func TestTokenizeIllegalCharacter(t *testing.T) {
	toks := Tokenize("$")
	if toks[0].Kind != token.ILLEGAL {
		t.Errorf("expected ILLEGAL for unrecognized char, got %v", toks[0].Kind)
	}
	if toks[1].Kind != token.EOF {
		t.Errorf("expected EOF after illegal token")
	}
}
