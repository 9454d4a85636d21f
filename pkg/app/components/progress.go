package components

import (
	"fmt"
	"strings"

	"github.com/kerbaras/pokedex/pkg/app/styles"
	"github.com/kerbaras/pokedex/pkg/catalog"
	"github.com/kerbaras/pokedex/pkg/services"
)

// LoadTracker shows the progress of the initial load.
type LoadTracker struct {
	progress services.LoadProgress
	width    int
}

func NewLoadTracker(width int) *LoadTracker {
	return &LoadTracker{width: width}
}

func (p *LoadTracker) Update(progress services.LoadProgress) {
	p.progress = progress
}

func (p *LoadTracker) SetWidth(width int) {
	p.width = width
}

func (p *LoadTracker) Clear() {
	p.progress = services.LoadProgress{}
}

func (p *LoadTracker) Progress() services.LoadProgress {
	return p.progress
}

func (p *LoadTracker) View() string {
	var b strings.Builder
	b.WriteString(styles.StatusLoading.Render("Loading Pokédex"))
	b.WriteString("\n\n")

	if p.progress.Batches == 0 {
		b.WriteString(styles.MutedStyle.Render("Fetching index..."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(renderProgressBar(p.progress.Batch, p.progress.Batches, p.width-4))
	b.WriteString("\n")
	b.WriteString(styles.TextStyle.Render(fmt.Sprintf("%d/%d records (batch %d/%d - %.0f%%)",
		p.progress.Loaded, p.progress.Total, p.progress.Batch, p.progress.Batches, p.progress.Percent()*100)))
	b.WriteString("\n")
	return b.String()
}

func renderProgressBar(current, total, width int) string {
	if total == 0 || width <= 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}

	return styles.ProgressBarStyle.Render(strings.Repeat("█", filled)) +
		styles.ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// SimpleProgress renders a simple progress bar
func SimpleProgress(current, total, width int) string {
	return renderProgressBar(current, total, width)
}

// StatBars renders one labelled bar per stat, scaled by its percentage.
func StatBars(bars []catalog.StatBar, width int) string {
	var b strings.Builder
	for _, bar := range bars {
		label := styles.TextStyle.Render(fmt.Sprintf("%-16s %3d ", catalog.Label(bar.Name), bar.Value))
		b.WriteString(label)
		b.WriteString(renderProgressBar(int(bar.Percent), 100, width))
		b.WriteString("\n")
	}
	return b.String()
}
