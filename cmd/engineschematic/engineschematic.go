package main

import (
	"fmt"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/ilyalavrinov/justforfun/engineschematic/internal/input"
	"github.com/ilyalavrinov/justforfun/engineschematic/internal/schematic"
	"github.com/spf13/cobra"
)

type flags struct {
	gear    string
	verbose bool
}

func (f *flags) gearOption() schematic.Option {
	gear, _ := utf8.DecodeRuneInString(f.gear)
	return schematic.WithGear(gear)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("engineschematic failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:   "engineschematic <file>",
		Short: "Sum part numbers and gear ratios of an engine schematic",
		Long: `Reads an engine schematic (use "-" for stdin) and prints the sum of all
part numbers and the sum of all gear ratios.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if f.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			if utf8.RuneCountInString(f.gear) != 1 {
				return fmt.Errorf("gear must be a single character, got %q", f.gear)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input.Read(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			rep, err := schematic.Analyze(text, f.gearOption())
			if err != nil {
				return fmt.Errorf("cannot analyze %s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sum of part numbers:", rep.PartNumberSum)
			fmt.Fprintln(cmd.OutOrStdout(), "Sum of gear ratios:", rep.GearRatioSum)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&f.gear, "gear", "*", "character that marks a gear")
	root.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		&cobra.Command{
			Use:   "parts <file>",
			Short: "Print the sum of part numbers",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := load(cmd, f, args[0])
				if err != nil {
					return err
				}
				for _, id := range r.PartNumbers() {
					slog.Debug("part number", "value", r.Schematic().Token(id).Value, "id", id)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Sum of part numbers:", r.PartNumberSum())
				return nil
			},
		},
		&cobra.Command{
			Use:   "gears <file>",
			Short: "Print the sum of gear ratios",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := load(cmd, f, args[0])
				if err != nil {
					return err
				}
				for _, p := range r.GearPairs() {
					slog.Debug("gear", "cell", r.Schematic().Token(p.Gear).Cells[0], "ratio", p.Ratio)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Sum of gear ratios:", r.GearRatioSum())
				return nil
			},
		},
		&cobra.Command{
			Use:   "tokens <file>",
			Short: "Dump the tokens of a schematic",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := load(cmd, f, args[0])
				if err != nil {
					return err
				}
				s := r.Schematic()
				for i := 0; i < s.Len(); i++ {
					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i, s.Token(schematic.TokenID(i)))
				}
				return nil
			},
		},
	)
	return root
}

func load(cmd *cobra.Command, f *flags, path string) (*schematic.Resolver, error) {
	text, err := input.Read(path, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	s, err := schematic.Tokenize(text, f.gearOption())
	if err != nil {
		return nil, fmt.Errorf("cannot tokenize %s: %w", path, err)
	}
	return schematic.NewResolver(s), nil
}
