package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc"
)

func main() {
	log.SetFlags(0)
	if err := command().Execute(); err != nil {
		log.Fatal(err)
	}
}

func command() *cobra.Command {
	var (
		inname      string
		prec, bits  uint
		float, echo bool
	)
	cmd := &cobra.Command{
		Use:   "calc [flags] [expr...]",
		Short: "Evaluate arithmetic expressions exactly",
		Long: `calc evaluates each argument as an arithmetic expression and prints the
result. With no arguments, each non-blank line of the input is an expression.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if prec > calc.MaxPrec {
				return fmt.Errorf("--prec %d is more than the maximum %d", prec, calc.MaxPrec)
			}
			opts := []calc.Option{calc.Prec(prec)}
			if float || cmd.Flags().Changed("bits") {
				opts = append(opts, calc.Float(bits))
			}
			srcs := args
			if len(args) == 0 || inname != "" {
				lines, err := readLines(cmd.InOrStdin(), inname)
				if err != nil {
					return err
				}
				srcs = append(srcs, lines...)
			}
			r := runner{
				ctx:  calc.NewContext(opts...),
				echo: echo,
				out:  cmd.OutOrStdout(),
				errs: cmd.ErrOrStderr(),
			}
			failed := 0
			for _, src := range srcs {
				if !r.run(src) {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", failed, len(srcs))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&inname, "in", "", "input file, or - for stdin (default stdin if no args given)")
	cmd.Flags().UintVarP(&prec, "prec", "p", calc.DefaultPrec, "significant digits of decimal results")
	cmd.Flags().BoolVar(&float, "float", false, "use binary floats instead of exact decimals")
	cmd.Flags().UintVar(&bits, "bits", 53, "mantissa bits of floats; implies --float")
	cmd.Flags().BoolVar(&echo, "echo", false, "print each expression in postfix form")
	return cmd
}

// runner evaluates expressions and prints their results.
type runner struct {
	ctx  *calc.Context
	echo bool
	out  io.Writer
	errs io.Writer
}

var errcolor = color.New(color.FgRed)

// run evaluates one expression and reports whether it succeeded.
func (r *runner) run(src string) bool {
	e, err := calc.Parse(src)
	if err != nil {
		errcolor.Fprintf(r.errs, "%s: %v\n", src, err)
		return false
	}
	if r.echo {
		fmt.Fprintf(r.out, "%v : ", e)
	}
	v, err := r.ctx.Eval(e)
	if err != nil {
		if r.echo {
			fmt.Fprintln(r.out)
		}
		errcolor.Fprintf(r.errs, "%s: %v\n", src, err)
		return false
	}
	fmt.Fprintln(r.out, v)
	return true
}

// readLines reads the non-blank lines of the named file, or of stdin if the
// name is empty or -.
func readLines(stdin io.Reader, name string) ([]string, error) {
	in := stdin
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	var lines []string
	scan := bufio.NewScanner(in)
	for scan.Scan() {
		if s := strings.TrimSpace(scan.Text()); s != "" {
			lines = append(lines, s)
		}
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return lines, nil
}
