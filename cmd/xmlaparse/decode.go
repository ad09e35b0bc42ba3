package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	xmla "github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000"
)

func (a *app) decodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <request.xml>...",
		Short: "Decode Execute request files and print their commands.",
		Long: `Decode every file concurrently and print one rendered document per file,
in argument order. The first file that fails to decode aborts the run.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.decode(cmd.Context(), args)
		},
	}
}

func (a *app) decode(ctx context.Context, paths []string) error {
	r, err := newRenderer(a.v.GetString("output"), a.stdout)
	if err != nil {
		return err
	}
	limit := a.v.GetInt("concurrency")
	if limit < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", limit)
	}

	opts := xmla.NewOptions().
		WithLogger(a.logger).
		WithXMLMaxDepth(a.v.GetInt("max-depth"))
	decoder := xmla.NewDecoder(opts)
	docs := make([]document, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			exec, err := decoder.DecodeExecuteFile(path)
			if err != nil {
				return fmt.Errorf("decode %s: %w", path, err)
			}
			docs[i] = newDocument(path, exec)
			a.logger.WithField("file", path).Debug("decoded request")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, doc := range docs {
		if err := r.render(doc); err != nil {
			return fmt.Errorf("render %s: %w", doc.File, err)
		}
	}
	return r.close()
}
