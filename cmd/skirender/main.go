// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command skirender renders pose scripts of the sample skier
// to image or SVG files.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/robobenjie/skifreeordie-sub000/base/errors"
	"github.com/robobenjie/skifreeordie-sub000/cmd"
	"github.com/robobenjie/skifreeordie-sub000/logx"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRoot().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRoot() *cobra.Command {
	var vv, v, q bool
	root := &cobra.Command{
		Use:           "skirender",
		Short:         "Render pose scripts of an articulated skier",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logx.UserLevel = logx.LevelFromFlags(vv, v, q)
			logx.SetDefaultLogger()
		},
	}
	root.PersistentFlags().BoolVar(&vv, "vv", false, "show all log messages")
	root.PersistentFlags().BoolVarP(&v, "verbose", "v", false, "show informational log messages")
	root.PersistentFlags().BoolVarP(&q, "quiet", "q", false, "only show errors")
	root.AddCommand(newRender(), newConfig())
	return root
}

func newRender() *cobra.Command {
	c := &cmd.Config{}
	c.Defaults()
	rc := &cobra.Command{
		Use:   "render <script.yaml>",
		Short: "Render the frames of a pose script",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			c.Script = args[0]
			if c.Watch {
				return errors.Log(cmd.Watch(command.Context(), c, nil))
			}
			_, err := cmd.Render(c)
			return errors.Log(err)
		},
	}
	fs := rc.Flags()
	fs.StringVarP(&c.Settings, "config", "c", c.Settings, "render settings TOML file")
	fs.StringVarP(&c.Output, "output", "o", c.Output, "output directory")
	fs.StringVarP(&c.Format, "format", "f", c.Format, "output format: png, jpeg, gif, tiff, bmp or svg")
	fs.IntVar(&c.Frame, "frame", c.Frame, "render only the frame with this index")
	fs.BoolVarP(&c.Watch, "watch", "w", c.Watch, "render again when the script or settings change")
	return rc
}

func newConfig() *cobra.Command {
	var out string
	cc := &cobra.Command{
		Use:   "config",
		Short: "Print the default render settings as TOML",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if out != "" {
				return errors.Log(cmd.SaveConfig(out))
			}
			return cmd.WriteConfig(command.OutOrStdout())
		},
	}
	cc.Flags().StringVarP(&out, "output", "o", "", "save to this file instead")
	return cc
}
