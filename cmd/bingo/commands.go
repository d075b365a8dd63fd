package main

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/youruser/bingoapp/internal/api"
	"github.com/youruser/bingoapp/internal/generator"
	imagepkg "github.com/youruser/bingoapp/internal/image"
)

func newClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <template>",
		Short: "Write CLEARED_<template>.png with every grid cell whitened",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout := a.cfg.LayoutSpec()
			tmpl, err := imagepkg.LoadTemplate(args[0], layout)
			if err != nil {
				return err
			}
			base := filepath.Base(args[0])
			name := "CLEARED_" + strings.TrimSuffix(base, filepath.Ext(base))
			written, err := imagepkg.WriteAll(a.cfg.OutputDir, []imagepkg.Output{
				{Name: name, Image: imagepkg.ClearSheet(tmpl, layout)},
			})
			if err != nil {
				return err
			}
			a.logger.Info("cleared template", zap.String("path", written[0]))
			fmt.Fprintln(cmd.OutOrStdout(), written[0])
			return nil
		},
	}
}

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve sampling and sheet rendering over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Server.Address
			}
			gen, err := generator.New(a.cfg, a.logger)
			if err != nil {
				return err
			}
			defer gen.Close()

			r := api.NewServer(gen, a.logger)
			a.logger.Info("starting server", zap.String("address", addr))
			if err := r.Run(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to server.address)")
	return cmd
}
