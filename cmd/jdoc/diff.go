package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/patch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	a, err := readDoc(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := readDoc(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	if cfg.MergePatch {
		d, err := patch.Diff(a, b)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\n", d)
		return nil
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(encode.JSON(a), encode.JSON(b), false)
	if useColor(cfg.MainConfig, cc) {
		fmt.Fprintln(cc.Out, dmp.DiffPrettyText(diffs))
		return nil
	}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			fmt.Fprintf(cc.Out, "[-%s-]", d.Text)
		case diffpatch.DiffInsert:
			fmt.Fprintf(cc.Out, "[+%s+]", d.Text)
		default:
			fmt.Fprint(cc.Out, d.Text)
		}
	}
	fmt.Fprintln(cc.Out)
	return nil
}

func useColor(cfg *MainConfig, cc *cli.Context) bool {
	if cfg.Color {
		return true
	}
	f, ok := cc.Out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
