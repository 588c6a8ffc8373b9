package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jdoc/patch"
)

func patchRun(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file argument", cli.ErrUsage)
	}
	p, err := readDoc(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		out, err := patch.Merge(doc, p)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		fmt.Fprintf(cc.Out, "%s\n", out)
	}
	return nil
}
