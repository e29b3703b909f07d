package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"statusline/internal/format"
	"statusline/internal/gitstate"
	"statusline/internal/session"
)

// tokenLimit is the context window size usage is expressed against.
const tokenLimit = 200000

var (
	greyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#afafaf"))
	leafStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	modelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	branchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	dirtyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// bucket is one severity level of context usage.
type bucket struct {
	threshold float64
	name      string
	style     lipgloss.Style
}

// buckets is evaluated top-down; the first threshold strictly exceeded
// wins. The final entry is the catch-all.
var buckets = []bucket{
	{0.7, "high", lipgloss.NewStyle().Foreground(lipgloss.Color("1"))},
	{0.5, "elevated", lipgloss.NewStyle().Foreground(lipgloss.Color("#ffa500"))},
	{0.3, "moderate", lipgloss.NewStyle().Foreground(lipgloss.Color("3"))},
	{-1, "low", greyStyle},
}

func bucketFor(usage int) bucket {
	ratio := float64(usage) / tokenLimit
	for _, b := range buckets {
		if ratio > b.threshold {
			return b
		}
	}
	return buckets[len(buckets)-1]
}

// Line assembles the statusline: colored working directory, usage
// percentage against the context window, model name, and an optional git
// segment when state is non-nil.
func Line(req session.Request, usage int, git *gitstate.State) string {
	b := bucketFor(usage)
	pct := b.style.Render(fmt.Sprintf("%d%%", format.Percent(usage, tokenLimit)))

	line := pathSegment(req.Cwd) + " " + pct + " " + modelStyle.Render(req.Model.DisplayName)

	if git != nil && git.Branch != "" {
		line += " " + branchStyle.Render(git.Branch)
		if git.Dirty {
			line += " " + dirtyStyle.Render("●")
		}
	}
	return line
}

// pathSegment renders cwd with the final component highlighted against a
// dimmed parent. Degenerate paths with no final component come back
// verbatim in grey.
func pathSegment(cwd string) string {
	parent, leaf, ok := format.SplitPath(cwd)
	if !ok {
		return greyStyle.Render(cwd)
	}
	if parent == "" {
		return leafStyle.Render(leaf)
	}
	return greyStyle.Render(parent) + "/" + leafStyle.Render(leaf)
}
