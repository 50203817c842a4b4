package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/mikekulinski/zkclient/pkg/client"
	"github.com/mikekulinski/zkclient/pkg/zookeeper"
	"github.com/spf13/cobra"
)

const maxPatchAttempts = 10

func newPatchCmd(g *globalFlags) *cobra.Command {
	var merge bool
	cmd := &cobra.Command{
		Use:   "patch PATH [PATCH]",
		Short: "Apply a JSON patch to the data of a node",
		Long: "Apply an RFC 6902 JSON patch, or an RFC 7396 merge patch with --merge, to the JSON\n" +
			"document held by a node. The patch is read from stdin when it is not given.\n" +
			"Concurrent writers are detected through the node version and the patch is reapplied.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch []byte
			if len(args) == 2 {
				patch = []byte(args[1])
			} else {
				var err error
				if patch, err = io.ReadAll(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			return g.withClient(cmd.Context(), func(c *client.Client) error {
				stat, err := patchNode(cmd.Context(), c, args[0], patch, merge)
				if err != nil {
					return err
				}
				printStat(cmd.OutOrStdout(), stat)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&merge, "merge", false, "treat the patch as a JSON merge patch")
	return cmd
}

// patchNode applies patch to the JSON document stored at path. The write is
// conditional on the version that was read and is retried on conflicts.
func patchNode(ctx context.Context, zk zookeeper.Zookeeper, path string, patch []byte, merge bool) (*zookeeper.Stat, error) {
	apply := func(doc []byte) ([]byte, error) {
		return jsonpatch.MergePatch(doc, patch)
	}
	if !merge {
		ops, err := jsonpatch.DecodePatch(patch)
		if err != nil {
			return nil, fmt.Errorf("%w: decode patch: %w", zookeeper.ErrBadRequest, err)
		}
		apply = ops.Apply
	}

	for range maxPatchAttempts {
		doc, stat, err := zk.GetData(ctx, path, nil)
		if err != nil {
			return nil, err
		}
		if len(doc) == 0 {
			doc = []byte("{}")
		}
		patched, err := apply(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: patch %s: %w", zookeeper.ErrBadRequest, path, err)
		}
		stat, err = zk.SetData(ctx, path, patched, stat.Version)
		if errors.Is(err, zookeeper.ErrVersionConflict) {
			continue
		}
		return stat, err
	}
	return nil, fmt.Errorf("patch %s: gave up after %d attempts: %w", path, maxPatchAttempts, zookeeper.ErrVersionConflict)
}
