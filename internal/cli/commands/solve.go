// Package commands implements the Numble CLI subcommands.
package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/numble-labs/numble/internal/cli/config"
	"github.com/numble-labs/numble/pkg/expr"
	"github.com/numble-labs/numble/pkg/solver"
)

// NewSolveCommand creates the solve command.
func NewSolveCommand() *cobra.Command {
	var (
		findAll bool
		dumb    bool
		postfix bool
	)

	cmd := &cobra.Command{
		Use:   "solve <numbers> <target>",
		Short: "Search for expressions that reach a target",
		Long: `Solve a numbers game: combine the given numbers with +, -, * and / to
reach the target. Numbers are comma-delimited, each one is used at most
once, and every intermediate result must be a positive integer.

By default the search stops at the first solution and prunes redundant
steps (multiplying by 1, the mirror of a commutative step, and so on).
Use --find-all to enumerate every solution and --dumb to keep the
trivially-different ones.`,
		Example: `  numble solve 2,3 5
  numble solve 25,50,75,100,3,6 952 --find-all
  numble solve 4,2 2 --dumb --postfix`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetCurrentConfig()
			if cfg == nil {
				cfg = config.Default()
			}
			logger := config.GetLogger(cmd.Context())

			numbers, err := parseNumbers(args[0])
			if err != nil {
				return err
			}
			target, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid target %q: expected a non-negative integer", args[1])
			}

			// Local flags override whatever the config layers resolved to.
			all := cfg.FindAll
			if cmd.Flags().Changed("find-all") {
				all = findAll
			}
			policy := solver.Sensible
			if cfg.Policy == "dumb" {
				policy = solver.Legal
			}
			if cmd.Flags().Changed("dumb") {
				policy = solver.Sensible
				if dumb {
					policy = solver.Legal
				}
			}
			notation := cfg.Notation
			if cmd.Flags().Changed("postfix") {
				notation = "infix"
				if postfix {
					notation = "postfix"
				}
			}

			logger.Debug("solving",
				"numbers", numbers, "target", target,
				"policy", policy.String(), "find_all", all, "notation", notation)

			s := solver.New(policy)
			s.Logger = logger
			w := cmd.OutOrStdout()

			if !all {
				seq, ok := s.FindFirst(numbers, uint(target))
				if !ok {
					return renderNoSolution(w, cfg.Output)
				}
				tree, err := expr.FromSequence(seq)
				if err != nil {
					return fmt.Errorf("solver produced a malformed sequence: %w", err)
				}
				sol := newSolution(tree)
				logger.Debug("solution", "infix", sol.Infix, "postfix", sol.Postfix)
				return renderFirst(w, sol, notation, cfg.Output)
			}

			seqs := s.FindAll(numbers, uint(target))
			sols, err := collectSolutions(seqs, policy == solver.Sensible, notation)
			if err != nil {
				return err
			}
			return renderAll(w, sols, notation, cfg.Output)
		},
	}

	cmd.Flags().BoolVarP(&findAll, "find-all", "a", false, "Don't stop until all solutions are found")
	cmd.Flags().BoolVarP(&dumb, "dumb", "d", false, "Only prune invalid arithmetic, keeping trivially-different solutions")
	cmd.Flags().BoolVar(&postfix, "postfix", false, "Render solutions in postfix instead of infix notation")

	return cmd
}

// parseNumbers parses the comma-delimited numbers argument.
func parseNumbers(arg string) ([]uint, error) {
	parts := strings.Split(arg, ",")
	numbers := make([]uint, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: expected comma-delimited non-negative integers", part)
		}
		numbers = append(numbers, uint(n))
	}
	return numbers, nil
}
