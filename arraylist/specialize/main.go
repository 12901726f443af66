// Command specialize derives the natural order quicksort in gen_sort_ordered.go from the
// comparator based one in sort.go. It replaces every comparator call of the form
// compare(a, b) <op> 0 with a <op> b, so that both sorts always share the same algorithm.
package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"slices"

	"golang.org/x/tools/go/ast/astutil"
)

const (
	input  = "sort.go"
	output = "gen_sort_ordered.go"
)

// Functions to specialize and the names of their specialized versions.
var renames = map[string]string{
	"quickSort": "quickSortOrdered",
	"partition": "partitionOrdered",
}

func main() {
	src, err := os.ReadFile(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading input: %v", err)
		os.Exit(1)
	}
	b, err := generate(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v", err)
		os.Exit(1)
	}
	if err := os.WriteFile(output, b, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing result: %v", err)
		os.Exit(1)
	}
}

// generate returns the formatted source of the specialized functions in src.
func generate(src []byte) ([]byte, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, input, src, 0)
	if err != nil {
		return nil, fmt.Errorf("error parsing input: %v", err)
	}

	// Only keep imports and the functions that are specialized.
	file.Decls = slices.DeleteFunc(file.Decls, func(decl ast.Decl) bool {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok {
			return false
		}
		_, ok = renames[fd.Name.Name]
		return fd.Recv != nil || !ok
	})

	for _, decl := range file.Decls {
		if fd, ok := decl.(*ast.FuncDecl); ok {
			specialize(fd)
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by specialize from %s. DO NOT EDIT.\n\n", input)
	if err := format.Node(&buf, fset, file); err != nil {
		return nil, fmt.Errorf("error formatting result: %v", err)
	}

	// The rewritten nodes carry made up positions, run the result through gofmt once more.
	b, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("error formatting result: %v", err)
	}
	return b, nil
}

func specialize(fd *ast.FuncDecl) {
	fd.Name.Name = renames[fd.Name.Name]

	// Constrain all type parameters to cmp.Ordered.
	for _, tp := range fd.Type.TypeParams.List {
		pos := tp.Type.Pos()
		tp.Type = &ast.SelectorExpr{
			X:   &ast.Ident{NamePos: pos, Name: "cmp"},
			Sel: &ast.Ident{NamePos: pos, Name: "Ordered"},
		}
	}

	// Drop the comparator parameter.
	fd.Type.Params.List = slices.DeleteFunc(fd.Type.Params.List, func(f *ast.Field) bool {
		return len(f.Names) == 1 && f.Names[0].Name == "compare"
	})

	fd.Body = astutil.Apply(fd.Body, func(c *astutil.Cursor) bool {
		switch n := c.Node().(type) {
		case *ast.CallExpr:
			// Rename recursive calls and drop the comparator argument.
			fun, ok := n.Fun.(*ast.Ident)
			if !ok {
				return true
			}
			name, ok := renames[fun.Name]
			if !ok {
				return true
			}
			fun.Name = name
			n.Args = slices.DeleteFunc(n.Args, func(arg ast.Expr) bool {
				id, ok := arg.(*ast.Ident)
				return ok && id.Name == "compare"
			})

		case *ast.BinaryExpr:
			// compare(a, b) <op> 0 becomes a <op> b.
			call, ok := n.X.(*ast.CallExpr)
			if !ok || len(call.Args) != 2 {
				return true
			}
			if fun, ok := call.Fun.(*ast.Ident); !ok || fun.Name != "compare" {
				return true
			}
			if lit, ok := n.Y.(*ast.BasicLit); !ok || lit.Value != "0" {
				return true
			}
			c.Replace(&ast.BinaryExpr{
				X:  call.Args[0],
				Op: n.Op,
				Y:  call.Args[1],
			})
			return false
		}
		return true
	}, nil).(*ast.BlockStmt)
}
