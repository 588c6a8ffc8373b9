package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jdoc/ir"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	bad := 0
	for _, arg := range args {
		node, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if ir.Validate(node) {
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: ok\n", arg)
			}
			continue
		}
		bad++
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: duplicate keys or mixed array\n", arg)
		}
	}
	if bad != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
