package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/wdm/rsa"
	"github.com/katalvlaran/wdm/scenario"
	"github.com/katalvlaran/wdm/spectrum"
)

// Styles
var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))

	levelStyles = map[spectrum.Level]lipgloss.Style{
		spectrum.LevelFree:  lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
		spectrum.LevelLight: lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")),
		spectrum.LevelHeavy: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00")),
		spectrum.LevelFull:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000")),
	}

	tableStyle = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).Padding(0, 1)
)

func renderOutcomes(w io.Writer, outcomes []scenario.Outcome) {
	fmt.Fprintln(w, headerStyle.Render("Requests"))
	for _, o := range outcomes {
		switch o.Op {
		case scenario.OpFree:
			if o.Err != nil {
				fmt.Fprintf(w, "  free %s→%s λ%d  %s\n", o.Request.Source, o.Request.Destination, o.Request.Wavelength, failStyle.Render(o.Err.Error()))
				continue
			}
			fmt.Fprintf(w, "  free %s λ%d  %s\n", strings.Join(o.Freed.Path, "-"), o.Request.Wavelength, okStyle.Render("released"))
		case scenario.OpReachable:
			if o.Err != nil {
				fmt.Fprintf(w, "  reach %s  %s\n", o.Request.Source, failStyle.Render(o.Err.Error()))
				continue
			}
			ids := make([]string, len(o.Reached))
			for i, r := range o.Reached {
				ids[i] = fmt.Sprintf("%s(%d)", r.ID, r.Hops)
			}
			fmt.Fprintf(w, "  reach %s hops≤%d  %s\n", o.Request.Source, o.Request.Hops, strings.Join(ids, " "))
		default:
			for _, r := range o.Responses {
				fmt.Fprintf(w, "  %-7s %s\n", o.Op, responseLine(r))
			}
		}
	}
}

func responseLine(r rsa.Response) string {
	head := fmt.Sprintf("%s %s→%s [%s]", r.Request.ID, r.Request.Source, r.Request.Destination, r.Route.Strategy)
	if r.Err != nil {
		return head + "  " + failStyle.Render(r.Err.Error())
	}

	return fmt.Sprintf("%s path=%s weight=%g expanded=%d %s λ%d slots=%v  %s",
		head, strings.Join(r.Route.Path, "-"), r.Route.Weight, r.Route.Expanded,
		r.Allocation.Kind, r.Allocation.Wavelength, r.Allocation.Slots, okStyle.Render("ok"))
}

func renderSnapshot(w io.Writer, snap rsa.Snapshot) {
	var b strings.Builder
	fmt.Fprintf(&b, "%-16s %8s %10s  %s\n", "link", "weight", "occupied", "level")
	for _, e := range snap.Edges {
		level := levelStyles[e.Level].Render(e.Level.String())
		fmt.Fprintf(&b, "%-16s %8g %5d/%-4d  %s\n", e.Key, e.Weight, e.Occupied, snap.Capacity, level)
	}
	fmt.Fprintf(&b, "utilization mean=%.3f stddev=%.3f max=%.3f islands=%d",
		snap.Utilization.Mean, snap.Utilization.StdDev, snap.Utilization.Max, len(snap.Components))

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Spectrum (%d λ × %d slots)", snap.Wavelengths, snap.Slots)))
	fmt.Fprintln(w, tableStyle.Render(b.String()))
}
