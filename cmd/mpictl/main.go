// Command mpictl exposes the mpi core's arithmetic and number-theory
// operations as a line-oriented CLI: add/mul/exp-mod for arithmetic,
// gcd/inv-mod/is-prime/gen-prime for number theory, and to-radix for
// the string codec, each as its own cobra.Command with a RunE body.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/basegrail/mpi/internal/config"
	"github.com/basegrail/mpi/internal/rng"
	"github.com/basegrail/mpi/mpi"
)

// parseArg reads a command-line integer literal, accepting an
// optional leading '-' and an optional "0x"/"0X" hex prefix ahead of
// the digits the string codec itself understands.
func parseArg(s string) (*mpi.Int, error) {
	sign := ""
	rest := s
	if len(rest) > 0 && (rest[0] == '-' || rest[0] == '+') {
		sign = string(rest[0])
		rest = rest[1:]
	}
	radix := 10
	if len(rest) > 2 && (rest[:2] == "0x" || rest[:2] == "0X") {
		radix = 16
		rest = rest[2:]
	}

	x := mpi.New()
	if err := mpi.ReadString(x, sign+rest, radix); err != nil {
		return nil, fmt.Errorf("parsing %q: %w", s, err)
	}
	return x, nil
}

// decimalString renders x in base 10 using the sizing-query/retry
// protocol WriteString exposes.
func decimalString(x *mpi.Int) (string, error) {
	olen, err := mpi.WriteString(x, 10, nil)
	if err == nil {
		return "", fmt.Errorf("unexpected success sizing decimal output")
	}
	buf := make([]byte, olen)
	if _, err := mpi.WriteString(x, 10, buf); err != nil {
		return "", err
	}
	return string(buf[:len(buf)-1]), nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: using default config:", err)
		cfg = config.DefaultConfig()
	}
	mpi.MaxLimbs = cfg.Limits.MaxLimbs
	mpi.WindowCap = cfg.Exponentiation.WindowCap

	rootCmd := &cobra.Command{
		Use:   "mpictl",
		Short: "Multi-precision integer arithmetic and number theory on the command line",
	}

	rootCmd.AddCommand(
		addCmd(),
		mulCmd(),
		expModCmd(),
		gcdCmd(),
		invModCmd(),
		isPrimeCmd(),
		genPrimeCmd(),
		toRadixCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add A B",
		Short: "Print A + B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseArg(args[0])
			if err != nil {
				return err
			}
			b, err := parseArg(args[1])
			if err != nil {
				return err
			}
			z := mpi.New()
			if err := mpi.AddMPI(z, a, b); err != nil {
				return err
			}
			return printDecimal(z)
		},
	}
}

func mulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mul A B",
		Short: "Print A * B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseArg(args[0])
			if err != nil {
				return err
			}
			b, err := parseArg(args[1])
			if err != nil {
				return err
			}
			z := mpi.New()
			if err := mpi.MulMPI(z, a, b); err != nil {
				return err
			}
			return printDecimal(z)
		},
	}
}

func expModCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exp-mod A E N",
		Short: "Print A^E mod N",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseArg(args[0])
			if err != nil {
				return err
			}
			e, err := parseArg(args[1])
			if err != nil {
				return err
			}
			n, err := parseArg(args[2])
			if err != nil {
				return err
			}
			z := mpi.New()
			if err := mpi.ExpMod(z, a, e, n, nil); err != nil {
				return err
			}
			return printDecimal(z)
		},
	}
}

func gcdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gcd A B",
		Short: "Print gcd(A, B)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseArg(args[0])
			if err != nil {
				return err
			}
			b, err := parseArg(args[1])
			if err != nil {
				return err
			}
			g := mpi.New()
			if err := mpi.Gcd(g, a, b); err != nil {
				return err
			}
			return printDecimal(g)
		},
	}
}

func invModCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inv-mod A N",
		Short: "Print the modular inverse of A mod N",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseArg(args[0])
			if err != nil {
				return err
			}
			n, err := parseArg(args[1])
			if err != nil {
				return err
			}
			x := mpi.New()
			if err := mpi.InvMod(x, a, n); err != nil {
				return err
			}
			return printDecimal(x)
		},
	}
}

func isPrimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "is-prime X",
		Short: "Exit 0 and print \"prime\" if X is probably prime, else exit 1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseArg(args[0])
			if err != nil {
				return err
			}
			if err := mpi.IsPrime(x, rng.Crypto); err != nil {
				fmt.Println("composite")
				return err
			}
			fmt.Println("prime")
			return nil
		},
	}
}

func genPrimeCmd() *cobra.Command {
	var safe bool
	cmd := &cobra.Command{
		Use:   "gen-prime BITS",
		Short: "Generate a random probable prime of the given bit length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var nbits int
			if _, err := fmt.Sscanf(args[0], "%d", &nbits); err != nil {
				return fmt.Errorf("invalid bit length %q: %w", args[0], err)
			}
			x := mpi.New()
			if err := mpi.GenPrime(x, nbits, safe, rng.Crypto); err != nil {
				return err
			}
			return printDecimal(x)
		},
	}
	cmd.Flags().BoolVar(&safe, "safe", false, "require (X-1)/2 to also be prime")
	return cmd
}

func toRadixCmd() *cobra.Command {
	var radix int
	cmd := &cobra.Command{
		Use:   "to-radix X",
		Short: "Print X rendered in the given radix (2..16)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseArg(args[0])
			if err != nil {
				return err
			}
			buf := make([]byte, 0)
			olen, err := mpi.WriteString(x, radix, buf)
			if err == nil {
				return fmt.Errorf("unexpected success sizing %q", args[0])
			}
			buf = make([]byte, olen)
			if _, err := mpi.WriteString(x, radix, buf); err != nil {
				return err
			}
			fmt.Println(string(buf[:len(buf)-1]))
			return nil
		},
	}
	cmd.Flags().IntVar(&radix, "radix", 16, "output radix, 2..16")
	return cmd
}

func printDecimal(x *mpi.Int) error {
	s, err := decimalString(x)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}
