package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/willbeason/flowering-tree/pkg/tree"
)

var (
	colorGreen = lipgloss.Color("35")
	colorPink  = lipgloss.Color("211")
	colorCyan  = lipgloss.Color("36")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleLabel  = lipgloss.NewStyle().Width(13).Foreground(colorDim)
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)
	styleFlower = lipgloss.NewStyle().Foreground(colorPink)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	iconTree = "✓"
	iconSep  = " · "
)

func printSummary(w io.Writer, t *tree.Tree, seed uint64) {
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("%s Tree of depth %d", iconTree, t.Depth))+" "+styleDim.Render(fmt.Sprintf("(seed %d)", seed)))

	sizes := make([]string, len(t.Generations))
	for i, gen := range t.Generations {
		sizes[i] = styleNumber.Render(fmt.Sprint(len(gen)))
	}

	row(w, "Generations", strings.Join(sizes, styleDim.Render(iconSep)))
	row(w, "Branches", styleNumber.Render(fmt.Sprint(t.BranchCount())))
	row(w, "Crown", styleNumber.Render(fmt.Sprint(len(t.Crown))))
	row(w, "Leaves", styleNumber.Render(fmt.Sprint(len(t.Leafage))))

	counts := t.FlowerCounts()
	most, bloomed := 0, 0
	for _, n := range counts {
		most = max(most, n)
		if n > 0 {
			bloomed++
		}
	}
	row(w, "Flowers", styleFlower.Render(fmt.Sprint(len(t.Flowers)))+
		styleDim.Render(fmt.Sprintf(" on %d branches, at most %d per branch", bloomed, most)))
}

func row(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s%s\n", styleLabel.Render(label), value)
}
