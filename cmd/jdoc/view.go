package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/query"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		node, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if cfg.MainConfig.Check && !ir.Validate(node) {
			return fmt.Errorf("%s: document has duplicate keys or a mixed array", arg)
		}
		if cfg.Filter != "" {
			node, err = query.Filter(node, cfg.Filter)
			if err != nil {
				return fmt.Errorf("error filtering %s: %w", arg, err)
			}
		}
		if cfg.Map != "" {
			node, err = query.Map(node, cfg.Map)
			if err != nil {
				return fmt.Errorf("error mapping %s: %w", arg, err)
			}
		}
		if cfg.YAML {
			d, err := encode.YAML(node)
			if err != nil {
				return fmt.Errorf("error encoding %s: %w", arg, err)
			}
			if _, err := cc.Out.Write(d); err != nil {
				return err
			}
			continue
		}
		if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		if _, err := cc.Out.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}
