package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mbellido/portions/internal/domain"
)

func convertCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "convert AMOUNT FROM TO",
		Short: "Convert an amount between units of the same family",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[0])
			}

			from, err := domain.ParseUnit(args[1])
			if err != nil {
				return err
			}
			to, err := domain.ParseUnit(args[2])
			if err != nil {
				return err
			}

			converted, err := domain.Convert(amount, from, to)
			if err != nil {
				return err
			}

			fmt.Printf("%s %s = %s %s\n",
				domain.FormatAmount(amount), from,
				strconv.FormatFloat(converted, 'f', -1, 64), to)
			return nil
		},
	}
	return c
}
