package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mikekulinski/zkclient/pkg/client"
	"github.com/mikekulinski/zkclient/pkg/zookeeper"
	"github.com/spf13/cobra"
)

func newCreateCmd(g *globalFlags) *cobra.Command {
	var ephemeral, sequential bool
	cmd := &cobra.Command{
		Use:   "create PATH [DATA]",
		Short: "Create a node",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			if len(args) == 2 {
				data = []byte(args[1])
			}
			mode := createMode(ephemeral, sequential)
			return g.withClient(cmd.Context(), func(c *client.Client) error {
				name, err := c.Create(cmd.Context(), args[0], data, mode)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&ephemeral, "ephemeral", false, "remove the node when the session ends")
	cmd.Flags().BoolVarP(&sequential, "sequential", "s", false, "append a sequence number to the name")
	return cmd
}

func createMode(ephemeral, sequential bool) zookeeper.CreateMode {
	switch {
	case ephemeral && sequential:
		return zookeeper.EphemeralSequential
	case ephemeral:
		return zookeeper.Ephemeral
	case sequential:
		return zookeeper.PersistentSequential
	default:
		return zookeeper.Persistent
	}
}

func newGetCmd(g *globalFlags) *cobra.Command {
	var showStat bool
	cmd := &cobra.Command{
		Use:   "get PATH",
		Short: "Print the data of a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.withClient(cmd.Context(), func(c *client.Client) error {
				data, stat, err := c.GetData(cmd.Context(), args[0], nil)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, string(data))
				if showStat {
					printStat(out, stat)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&showStat, "stat", false, "also print the node metadata")
	return cmd
}

func newSetCmd(g *globalFlags) *cobra.Command {
	var version int64
	cmd := &cobra.Command{
		Use:   "set PATH DATA",
		Short: "Replace the data of a node",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.withClient(cmd.Context(), func(c *client.Client) error {
				stat, err := c.SetData(cmd.Context(), args[0], []byte(args[1]), version)
				if err != nil {
					return err
				}
				printStat(cmd.OutOrStdout(), stat)
				return nil
			})
		},
	}
	cmd.Flags().Int64VarP(&version, "version", "v", zookeeper.AnyVersion, "expected version, -1 for any")
	return cmd
}

func newDeleteCmd(g *globalFlags) *cobra.Command {
	var version int64
	cmd := &cobra.Command{
		Use:     "delete PATH",
		Aliases: []string{"rm"},
		Short:   "Delete a node",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.withClient(cmd.Context(), func(c *client.Client) error {
				return c.Delete(cmd.Context(), args[0], version)
			})
		},
	}
	cmd.Flags().Int64VarP(&version, "version", "v", zookeeper.AnyVersion, "expected version, -1 for any")
	return cmd
}

func newLsCmd(g *globalFlags) *cobra.Command {
	var recursive bool
	cmd := &cobra.Command{
		Use:   "ls PATH",
		Short: "List the children of a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.withClient(cmd.Context(), func(c *client.Client) error {
				if recursive {
					return walk(cmd.Context(), c, args[0], cmd.OutOrStdout())
				}
				children, _, err := c.GetChildren(cmd.Context(), args[0], nil)
				if err != nil {
					return err
				}
				for _, child := range children {
					fmt.Fprintln(cmd.OutOrStdout(), child)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&recursive, "recursive", "R", false, "print the whole subtree")
	return cmd
}

// walk prints the paths below path, depth first.
func walk(ctx context.Context, zk zookeeper.Zookeeper, path string, out io.Writer) error {
	children, _, err := zk.GetChildren(ctx, path, nil)
	if err != nil {
		return err
	}
	for _, name := range children {
		child := zookeeper.Join(path, name)
		fmt.Fprintln(out, child)
		if err := walk(ctx, zk, child, out); err != nil {
			return err
		}
	}
	return nil
}

func newStatCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stat PATH",
		Short: "Print the metadata of a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.withClient(cmd.Context(), func(c *client.Client) error {
				stat, err := c.Exists(cmd.Context(), args[0], nil)
				if err != nil {
					return err
				}
				if stat == nil {
					return fmt.Errorf("%s: %w", args[0], zookeeper.ErrNodeNotFound)
				}
				printStat(cmd.OutOrStdout(), stat)
				return nil
			})
		},
	}
}

func printStat(out io.Writer, stat *zookeeper.Stat) {
	if stat == nil {
		return
	}
	key := color.New(color.FgCyan).SprintFunc()
	rows := []struct {
		name  string
		value any
	}{
		{"czxid", stat.Czxid},
		{"mzxid", stat.Mzxid},
		{"ctime", stat.Ctime},
		{"mtime", stat.Mtime},
		{"version", stat.Version},
		{"cversion", stat.Cversion},
		{"numChildren", stat.NumChildren},
		{"ephemeralOwner", stat.EphemeralOwner},
	}
	for _, row := range rows {
		fmt.Fprintf(out, "%s = %v\n", key(row.name), row.value)
	}
}

// formatEvent renders one watch event as a single colored line.
func formatEvent(event zookeeper.Event) string {
	var b strings.Builder
	switch event.Type {
	case zookeeper.EventNodeCreated, zookeeper.EventChildAdded:
		b.WriteString(color.GreenString("%-16s", event.Type))
	case zookeeper.EventNodeDeleted, zookeeper.EventChildRemoved:
		b.WriteString(color.RedString("%-16s", event.Type))
	case zookeeper.EventSession, zookeeper.EventWatchBroken:
		b.WriteString(color.YellowString("%-16s", event.Type))
	default:
		b.WriteString(color.BlueString("%-16s", event.Type))
	}
	if event.Path != "" {
		b.WriteString(" " + event.Path)
	}
	if event.Type == zookeeper.EventSession {
		b.WriteString(" " + event.State.String())
	}
	if event.Data != nil {
		fmt.Fprintf(&b, " %q", event.Data)
	}
	if event.Err != nil {
		b.WriteString(" " + color.RedString("%v", event.Err))
	}
	return b.String()
}
