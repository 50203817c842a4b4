package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/mikekulinski/zkclient/pkg/client"
	"github.com/mikekulinski/zkclient/pkg/zookeeper"
	"github.com/spf13/cobra"
	"go.uber.org/atomic"
)

func newWatchCmd(g *globalFlags) *cobra.Command {
	var once, children, dataOnly bool
	cmd := &cobra.Command{
		Use:   "watch PATH",
		Short: "Print the changes of a node until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := zookeeper.WatchPersistent
			if once {
				mode = zookeeper.WatchOneShot
			}
			mask := zookeeper.MaskAll
			switch {
			case children && !dataOnly:
				mask = zookeeper.MaskChildren
			case dataOnly && !children:
				mask = zookeeper.MaskDataChanged
			}
			out := cmd.OutOrStdout()
			ctx := cmd.Context()

			return g.withClient(ctx, func(c *client.Client) error {
				sink := newEventSink(eventBuffer)
				handle, err := c.RegisterWatch(ctx, args[0], mode, mask, sink.put)
				if err != nil {
					return err
				}
				defer func() { _ = handle.Cancel() }()
				for {
					select {
					case event := <-sink.events:
						fmt.Fprintln(out, formatEvent(event))
						if n := sink.takeDropped(); n > 0 {
							fmt.Fprintln(out, color.YellowString("dropped %d events", n))
						}
						if once || lastEvent(event) {
							return nil
						}
					case <-ctx.Done():
						return nil
					}
				}
			})
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "stop after the first change")
	cmd.Flags().BoolVar(&children, "children", false, "only report changes of the children")
	cmd.Flags().BoolVar(&dataOnly, "data", false, "only report changes of the node itself")
	return cmd
}

const eventBuffer = 1024

// eventSink hands events from the watcher to the printer. The watcher must
// not block, so events that do not fit are counted instead.
type eventSink struct {
	events  chan zookeeper.Event
	dropped *atomic.Int64
}

func newEventSink(size int) *eventSink {
	return &eventSink{
		events:  make(chan zookeeper.Event, size),
		dropped: atomic.NewInt64(0),
	}
}

func (s *eventSink) put(event zookeeper.Event) {
	select {
	case s.events <- event:
	default:
		s.dropped.Inc()
	}
}

// takeDropped returns the number of events dropped since the last call.
func (s *eventSink) takeDropped() int64 {
	return s.dropped.Swap(0)
}

// lastEvent reports whether a persistent watch delivers nothing after event.
func lastEvent(event zookeeper.Event) bool {
	switch event.Type {
	case zookeeper.EventWatchBroken:
		return true
	case zookeeper.EventSession:
		return event.State == zookeeper.StateExpired || event.State == zookeeper.StateClosed
	}
	return false
}
