package main

import (
	"fmt"
	"io"
	"time"

	"channelpool/domain"
	"channelpool/interfaces"
	"channelpool/service"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"google.golang.org/grpc/status"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

// resolution is the outcome of one GetChannel call.
type resolution struct {
	Service  string
	Endpoint string
	State    string
	Err      error
	Elapsed  time.Duration
}

// resolveServices calls GetChannel for each name in order.
func resolveServices(pool interfaces.ChannelPool, names []string) []resolution {
	out := make([]resolution, 0, len(names))
	for _, name := range names {
		start := time.Now()
		ch, err := pool.GetChannel(name)
		r := resolution{Service: name, Err: err, Elapsed: time.Since(start)}
		if err == nil {
			r.Endpoint = ch.Target()
			r.State = ch.GetState().String()
		}
		out = append(out, r)
	}
	return out
}

func failedCount(rows []resolution) int {
	n := 0
	for _, r := range rows {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// renderResolutions prints one table row per resolution followed by the pool stats.
func renderResolutions(w io.Writer, rows []resolution, stats domain.PoolStats) {
	headerFmt := color.New(color.FgCyan, color.Underline).SprintfFunc()
	tbl := table.New("Service", "Endpoint", "State", "Result", "Elapsed").WithWriter(w)
	tbl.WithHeaderFormatter(headerFmt)
	for _, r := range rows {
		result := green("ok")
		if r.Err != nil {
			result = red(fmt.Sprintf("%s: %v", status.Code(service.PoolErrorToGRPC(r.Err)), r.Err))
		}
		endpoint := r.Endpoint
		if endpoint == "" {
			endpoint = "-"
		}
		state := r.State
		if state == "" {
			state = "-"
		}
		tbl.AddRow(r.Service, endpoint, state, result, r.Elapsed.Round(time.Millisecond))
	}
	tbl.Print()
	fmt.Fprintf(w, "%s pooled channels: %d, cached endpoint sets: %d\n", bold("pool:"), stats.PooledChannels, stats.CachedEndpointSets)
}
