package commands

import (
	"encoding/json"
	goflag "flag"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pkarith/internal/app"
)

var (
	configPath string
	rounds     int
	asJSON     bool
	appCtx     *app.Wire
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "pkarith",
		Short:        "Number-theory toolkit for Diffie-Hellman and textbook RSA",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog reads its flags from the go flag set.
			if err := goflag.CommandLine.Parse(nil); err != nil {
				return err
			}
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("rounds") {
				cfg.Primality.Rounds = rounds
			}
			appCtx, err = app.NewWire(cfg)
			return err
		},
	}

	root.SetGlobalNormalizationFunc(wordSepNormalizeFunc)
	root.PersistentFlags().StringVar(&configPath, "config", "", "ini config file")
	root.PersistentFlags().IntVar(&rounds, "rounds", 0, "Miller-Rabin rounds (overrides [primality] rounds)")
	root.PersistentFlags().BoolVar(&asJSON, "json", false, "print results as JSON")
	root.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	root.AddCommand(primeCmd(), dhCmd(), rsaCmd(), configCmd())
	return root
}

// wordSepNormalizeFunc lets glog's underscore flags be spelled with dashes.
func wordSepNormalizeFunc(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// parseInt reads a big integer argument.
func parseInt(name, s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("%s: %q is not an integer", name, s)
	}
	return n, nil
}

// emit prints v as JSON with --json, otherwise runs text.
func emit(w io.Writer, v interface{}, text func(w io.Writer)) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(w)
	return nil
}
