package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/OzRAGEHarm/Zekken/internal/diag"
	"github.com/OzRAGEHarm/Zekken/internal/lexer"
	"github.com/OzRAGEHarm/Zekken/internal/parser"
)

// fixtures exercises small end-to-end programs and snapshots their
// println output, the same coarse-grained regression net the teacher
// runs over its DWScript fixture corpus, scaled down to Zekken's
// hand-written sample scripts rather than an imported test suite.
var fixtures = []struct {
	name string
	src  string
}{
	{
		name: "fibonacci",
		src: `
			func fib |n: int| {
				if (n < 2) { return n; }
				return fib => |n - 1| + fib => |n - 2|;
			}
			let i: int = 0;
			while (i < 8) {
				let f: int = fib => |i|;
				println => |f|;
				i = i + 1;
			}
		`,
	},
	{
		name: "array_and_object",
		src: `
			let xs: arr = [1, 2, 3];
			xs.push => |4|;
			println => |xs|;
			let person: obj = { name: "ada", age: 30 };
			println => |person.name|;
		`,
	},
	{
		name: "string_methods",
		src: `
			let greeting: string = "Hello, Zekken";
			println => |greeting.toUpper => ||;
			println => |greeting.toLower => ||;
		`,
	},
}

func TestProgramFixtures(t *testing.T) {
	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			diag.Global.Reset()
			tokens := lexer.Tokenize(fx.src)
			prog, errs := parser.Parse(tokens)
			if len(errs) != 0 {
				t.Fatalf("unexpected parse errors: %v", errs)
			}
			root := NewRoot()
			var out bytes.Buffer
			RegisterBuiltins(root, &out, strings.NewReader(""))
			RunProgram(prog, root)
			if diag.Global.Len() != 0 {
				t.Fatalf("unexpected runtime errors: %v", diag.Global.Errors())
			}
			snaps.MatchSnapshot(t, out.String())
		})
	}
}
