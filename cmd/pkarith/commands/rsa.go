package commands

import (
	"fmt"
	"io"
	"math/big"

	"github.com/spf13/cobra"

	"pkarith/internal/domain"
)

func rsaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rsa",
		Short: "Textbook RSA over integers",
	}
	cmd.AddCommand(rsaKeygenCmd(), rsaEncryptCmd(), rsaDecryptCmd())
	return cmd
}

func rsaKeygenCmd() *cobra.Command {
	var (
		bits int
		e    string
	)
	cmd := &cobra.Command{
		Use:   "keygen [<p> <q>]",
		Short: "Derive keys from p and q, or from fresh primes of --bits",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("want either no arguments or <p> <q>, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			exp := big.NewInt(appCtx.Config.RSA.Exponent)
			if e != "" {
				var err error
				if exp, err = parseInt("e", e); err != nil {
					return err
				}
			}

			var (
				pub  domain.RSAPublicKey
				priv domain.RSAPrivateKey
				err  error
			)
			if len(args) == 2 {
				p, perr := parseInt("p", args[0])
				if perr != nil {
					return perr
				}
				q, qerr := parseInt("q", args[1])
				if qerr != nil {
					return qerr
				}
				pub, priv, err = appCtx.Cipher.Keys(p, q, exp)
			} else {
				if !cmd.Flags().Changed("bits") {
					bits = appCtx.Config.RSA.Bits
				}
				pub, priv, err = appCtx.Cipher.Generate(bits, exp)
			}
			if err != nil {
				return err
			}

			out := struct {
				Public  domain.RSAPublicKey  `json:"public"`
				Private domain.RSAPrivateKey `json:"private"`
			}{pub, priv}
			return emit(cmd.OutOrStdout(), out, func(w io.Writer) {
				fmt.Fprintf(w, "n = %s\ne = %s\nd = %s\n", pub.N, pub.E, priv.D)
			})
		},
	}
	cmd.Flags().IntVar(&bits, "bits", 0, "modulus size when p and q are not given (default [rsa] bits)")
	cmd.Flags().StringVar(&e, "e", "", "public exponent (default [rsa] exponent)")
	return cmd
}

func rsaEncryptCmd() *cobra.Command {
	var n, e string
	cmd := &cobra.Command{
		Use:   "encrypt <m>",
		Short: "Compute m^e mod n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseAll(map[string]string{"m": args[0], "n": n, "e": e})
			if err != nil {
				return err
			}
			c, err := appCtx.Cipher.Encrypt(vals["m"], domain.RSAPublicKey{N: vals["n"], E: vals["e"]})
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), map[string]*big.Int{"ciphertext": c}, func(w io.Writer) {
				fmt.Fprintln(w, c)
			})
		},
	}
	cmd.Flags().StringVar(&n, "n", "", "modulus")
	cmd.Flags().StringVar(&e, "e", "", "public exponent")
	_ = cmd.MarkFlagRequired("n")
	_ = cmd.MarkFlagRequired("e")
	return cmd
}

func rsaDecryptCmd() *cobra.Command {
	var n, d string
	cmd := &cobra.Command{
		Use:   "decrypt <c>",
		Short: "Compute c^d mod n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := parseAll(map[string]string{"c": args[0], "n": n, "d": d})
			if err != nil {
				return err
			}
			m, err := appCtx.Cipher.Decrypt(vals["c"], domain.RSAPrivateKey{N: vals["n"], D: vals["d"]})
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), map[string]*big.Int{"plaintext": m}, func(w io.Writer) {
				fmt.Fprintln(w, m)
			})
		},
	}
	cmd.Flags().StringVar(&n, "n", "", "modulus")
	cmd.Flags().StringVar(&d, "d", "", "private exponent")
	_ = cmd.MarkFlagRequired("n")
	_ = cmd.MarkFlagRequired("d")
	return cmd
}

func parseAll(raw map[string]string) (map[string]*big.Int, error) {
	out := make(map[string]*big.Int, len(raw))
	for name, s := range raw {
		v, err := parseInt(name, s)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}
