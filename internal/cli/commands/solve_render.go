package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/numble-labs/numble/pkg/expr"
	"github.com/numble-labs/numble/pkg/token"
)

// solution is one solved expression in both notations.
type solution struct {
	Infix   string `json:"infix"`
	Postfix string `json:"postfix"`
}

func newSolution(tree expr.Node) solution {
	return solution{Infix: expr.Infix(tree), Postfix: expr.Postfix(tree)}
}

func (s solution) rendered(notation string) string {
	if notation == "postfix" {
		return s.Postfix
	}
	return s.Infix
}

// collectSolutions converts engine-produced sequences into solutions,
// optionally collapsing commutative duplicates, sorted by the rendered
// string in the requested notation.
func collectSolutions(seqs []token.Sequence, dedupe bool, notation string) ([]solution, error) {
	trees := make([]expr.Node, 0, len(seqs))
	for _, seq := range seqs {
		tree, err := expr.FromSequence(seq)
		if err != nil {
			return nil, fmt.Errorf("solver produced a malformed sequence: %w", err)
		}
		trees = append(trees, tree)
	}
	if dedupe {
		trees = expr.Dedupe(trees)
	}

	sols := make([]solution, 0, len(trees))
	for _, tree := range trees {
		sols = append(sols, newSolution(tree))
	}
	sort.Slice(sols, func(i, j int) bool {
		return sols[i].rendered(notation) < sols[j].rendered(notation)
	})
	return sols, nil
}

// renderFirst writes a single find-first result.
func renderFirst(w io.Writer, sol solution, notation, format string) error {
	switch format {
	case "json":
		return renderJSON(w, []solution{sol})
	case "csv":
		return renderCSV(w, []solution{sol})
	case "table":
		return renderTable(w, []solution{sol})
	case "markdown", "md":
		return renderMarkdown(w, []solution{sol})
	default:
		_, _ = fmt.Fprintln(w, sol.rendered(notation))
		return nil
	}
}

// renderAll writes a find-all result set.
func renderAll(w io.Writer, sols []solution, notation, format string) error {
	switch format {
	case "json":
		return renderJSON(w, sols)
	case "csv":
		return renderCSV(w, sols)
	case "table":
		return renderTable(w, sols)
	case "markdown", "md":
		return renderMarkdown(w, sols)
	default:
		if len(sols) == 0 {
			_, _ = fmt.Fprintln(w, "no solution found")
			return nil
		}
		_, _ = fmt.Fprintf(w, "%d solutions found\n", len(sols))
		for _, sol := range sols {
			_, _ = fmt.Fprintf(w, "  - %s\n", sol.rendered(notation))
		}
		return nil
	}
}

func renderNoSolution(w io.Writer, format string) error {
	switch format {
	case "json":
		return renderJSON(w, nil)
	case "csv":
		return renderCSV(w, nil)
	case "table":
		return renderTable(w, nil)
	case "markdown", "md":
		return renderMarkdown(w, nil)
	default:
		_, _ = fmt.Fprintln(w, "no solution found")
		return nil
	}
}

func renderTable(w io.Writer, sols []solution) error {
	if len(sols) == 0 {
		_, _ = fmt.Fprintln(w, "(0 solutions)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Infix", "Postfix"})
	for i, sol := range sols {
		t.AppendRow(table.Row{i + 1, sol.Infix, sol.Postfix})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d solutions)\n", len(sols))
	return nil
}

func renderJSON(w io.Writer, sols []solution) error {
	if sols == nil {
		sols = []solution{}
	}
	out := struct {
		Count     int        `json:"count"`
		Solutions []solution `json:"solutions"`
	}{Count: len(sols), Solutions: sols}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func renderCSV(w io.Writer, sols []solution) error {
	_, _ = fmt.Fprintln(w, "infix,postfix")
	for _, sol := range sols {
		_, _ = fmt.Fprintf(w, "%s,%s\n", escapeCSV(sol.Infix), escapeCSV(sol.Postfix))
	}
	return nil
}

func renderMarkdown(w io.Writer, sols []solution) error {
	if len(sols) == 0 {
		_, _ = fmt.Fprintln(w, "(0 solutions)")
		return nil
	}
	_, _ = fmt.Fprintln(w, "| # | Infix | Postfix |")
	_, _ = fmt.Fprintln(w, "| --- | --- | --- |")
	for i, sol := range sols {
		_, _ = fmt.Fprintf(w, "| %d | %s | %s |\n", i+1, sol.Infix, sol.Postfix)
	}
	return nil
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
