package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/keypad"
)

func pressCmd(opts *rootOptions) *cobra.Command {
	var showTape bool
	cmd := &cobra.Command{
		Use:   "press LABEL...",
		Short: "Replay button presses and print the display",
		Long: "Replay button presses without the interactive UI, one action per label.\n" +
			"Labels: 0-9 . + - * / − × ÷ C AC =",
		Example: "  jaskcalc press 3 + 4 - 2 =",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := formatterFor(opts.cfg)
			if err != nil {
				return err
			}

			buttons := make([]keypad.Button, 0, len(args))
			for _, label := range args {
				b, err := keypad.Lookup(label)
				if err != nil {
					return err
				}
				buttons = append(buttons, b)
			}

			m := calc.NewMachine(opts.cfg.UI.TapeSize)
			for _, b := range buttons {
				opts.logger.Debug("dispatch", zap.String("button", b.Label), zap.Stringer("action", b.Action))
				if comp := m.Dispatch(b.Action); comp != nil {
					opts.logger.Debug("computed", zap.String("expression", comp.String()))
				}
			}

			out := cmd.OutOrStdout()
			if showTape {
				for _, c := range m.Tape() {
					fmt.Fprintln(out, c.String())
				}
			}
			s := m.State()
			prev, _ := formatter.Operand(s.Previous)
			if s.Operation != nil {
				prev = strings.TrimSpace(prev + " " + s.Operation.Symbol())
			}
			if prev != "" {
				fmt.Fprintln(out, prev)
			}
			cur, _ := formatter.Operand(s.Current)
			fmt.Fprintln(out, cur)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showTape, "tape", false, "print recorded computations before the display")
	return cmd
}
