package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/jdoc/encode"
)

type inFormat int

const (
	jsonIn inFormat = iota
	yamlIn
)

func parseInFormat(v string) (inFormat, error) {
	switch v {
	case "json", "j":
		return jsonIn, nil
	case "yaml", "y":
		return yamlIn, nil
	}
	return 0, fmt.Errorf("unknown input format %q", v)
}

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	Check bool `cli:"name=check desc='refuse documents with duplicate keys or mixed arrays'"`

	InFormat inFormat

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) inOpt(_ *cli.Context, v string) (any, error) {
	f, err := parseInFormat(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.InFormat = f
	return f, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Color {
		return append(res, encode.WithColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.WithColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	Filter string `cli:"name=q desc='keep only elements or members matching this expression'"`
	Map    string `cli:"name=m desc='map array elements through this expression'"`
	YAML   bool   `cli:"name=y aliases=yaml desc='render YAML instead of compact JSON'"`

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=quiet desc='no output, just the exit code'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig

	MergePatch bool `cli:"name=merge desc='output an RFC 7386 merge patch instead of a text diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}
