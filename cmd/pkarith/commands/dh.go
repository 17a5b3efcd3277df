package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pkarith/internal/crypto"
	"pkarith/internal/domain"
)

func dhCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dh",
		Short: "Diffie-Hellman parameters and exchanges",
	}
	cmd.AddCommand(dhParamsCmd(), dhVerifyCmd(), dhExchangeCmd())
	return cmd
}

func dhParamsCmd() *cobra.Command {
	var bits int
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Generate a prime p and its smallest primitive root g",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("bits") {
				bits = appCtx.Config.DH.Bits
			}
			params, err := appCtx.Exchange.Parameters(bits)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), params, func(w io.Writer) {
				fmt.Fprintf(w, "p = %s\ng = %s\n", params.P, params.G)
			})
		},
	}
	cmd.Flags().IntVar(&bits, "bits", 0, "bit length of p (default [dh] bits)")
	return cmd
}

func dhVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <p> <g>",
		Short: "Check that p is prime and g generates Z_p*",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(args[0], args[1])
			if err != nil {
				return err
			}
			if err := appCtx.Exchange.Verify(params); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func dhExchangeCmd() *cobra.Command {
	var (
		bits int
		p, g string
		peer string
	)
	cmd := &cobra.Command{
		Use:   "exchange",
		Short: "Run a complete exchange and print the transcript",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var params domain.DHParameters
			switch {
			case p != "" || g != "":
				var err error
				if params, err = parseParams(p, g); err != nil {
					return err
				}
				if err := appCtx.Exchange.Verify(params); err != nil {
					return err
				}
			default:
				if !cmd.Flags().Changed("bits") {
					bits = appCtx.Config.DH.Bits
				}
				var err error
				if params, err = appCtx.Exchange.Parameters(bits); err != nil {
					return err
				}
			}

			ex, err := appCtx.Exchange.Run(params, domain.PeerKind(peer))
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), ex, func(w io.Writer) {
				fmt.Fprintf(w, "p = %s\ng = %s\n", ex.Params.P, ex.Params.G)
				fmt.Fprintf(w, "initiator public = %s (%s)\n", ex.InitiatorPublic, ex.InitiatorFingerprint)
				fmt.Fprintf(w, "responder public = %s (%s, %s)\n", ex.ResponderPublic, ex.ResponderFingerprint, ex.Peer)
				fmt.Fprintf(w, "shared secret    = %s\n", ex.InitiatorSecret)
				fmt.Fprintf(w, "session key      = %s\n", crypto.Hex(ex.SessionKey))
			})
		},
	}
	cmd.Flags().IntVar(&bits, "bits", 0, "bit length of generated p (default [dh] bits)")
	cmd.Flags().StringVar(&p, "p", "", "use this prime instead of generating one")
	cmd.Flags().StringVar(&g, "g", "", "generator to use with --p")
	cmd.Flags().StringVar(&peer, "peer", string(domain.PeerLocal), "responder implementation: local or dhkx")
	return cmd
}

func parseParams(p, g string) (domain.DHParameters, error) {
	pv, err := parseInt("p", p)
	if err != nil {
		return domain.DHParameters{}, err
	}
	gv, err := parseInt("g", g)
	if err != nil {
		return domain.DHParameters{}, err
	}
	return domain.DHParameters{P: pv, G: gv}, nil
}
