package commands

import (
	"fmt"
	"io"
	"math/big"

	"github.com/spf13/cobra"
)

func primeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prime",
		Short: "Generate and test probable primes",
	}
	cmd.AddCommand(primeGenCmd(), primeTestCmd())
	return cmd
}

func primeGenCmd() *cobra.Command {
	var bits int
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a probable prime of exactly --bits bits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("bits") {
				bits = appCtx.Config.Primality.Bits
			}
			p, err := appCtx.Primes.Generate(bits)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), map[string]*big.Int{"prime": p}, func(w io.Writer) {
				fmt.Fprintln(w, p)
			})
		},
	}
	cmd.Flags().IntVar(&bits, "bits", 0, "bit length of the prime (default [primality] bits)")
	return cmd
}

func primeTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test <n>",
		Short: "Run Miller-Rabin on n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt("n", args[0])
			if err != nil {
				return err
			}
			ok, err := appCtx.Primes.Test(n, appCtx.Config.Primality.Rounds)
			if err != nil {
				return err
			}
			out := struct {
				N     *big.Int `json:"n"`
				Prime bool     `json:"probable_prime"`
			}{n, ok}
			return emit(cmd.OutOrStdout(), out, func(w io.Writer) {
				if ok {
					fmt.Fprintf(w, "%s is probably prime\n", n)
				} else {
					fmt.Fprintf(w, "%s is composite\n", n)
				}
			})
		},
	}
}
