package envy

import (
	"github.com/quornian/envy/internal/highlight"
	"github.com/quornian/envy/internal/model"
	"github.com/quornian/envy/internal/pathcheck"
	"github.com/quornian/envy/internal/render"
	"github.com/quornian/envy/internal/splitter"
)

// Pipeline is the compiled configuration of a run: it selects variables by
// name and turns their values into rendered lines.
type Pipeline struct {
	name         model.Pattern
	onlyMatching bool
	palette      *model.Palette

	checker     *pathcheck.Checker
	highlighter *highlight.Highlighter
	renderer    *render.Renderer
	splitter    *splitter.Splitter
}

// Includes checks if the variable name matches the name pattern.
func (p *Pipeline) Includes(name string) bool {
	return p.name.Matches(name)
}

// Process splits, searches and checks the value of a variable, returning its
// lines and whether it passes the value search. Without a search every
// variable passes.
func (p *Pipeline) Process(name, value string) (render.Variable, bool) {
	var (
		v              = render.Variable{Name: name}
		elision        = highlight.NewElision(p.onlyMatching)
		looksLikePaths = p.checker.LooksLikePaths(value)
		found          = !p.highlighter.Searching()
	)

	for segment := range p.splitter.Split(value) {
		annotated := p.highlighter.Annotate(segment.Content)
		if annotated.Matched.IsTrue() {
			found = true
		}

		switch elision.Next(annotated.Matched) {
		case highlight.Drop:
			continue
		case highlight.Elide:
			v.Lines = append(v.Lines, p.renderer.Elision())
			continue
		case highlight.Show:
		}

		ann := model.Annotation{
			Matched: annotated.Matched,
			Missing: p.checker.Check(segment.Content, looksLikePaths),
		}
		v.Lines = append(v.Lines, p.renderer.Segment(
			ann,
			annotated.Render(p.palette.ContentStyle(ann)),
			segment.Separator,
		))
	}

	return v, found
}

// Write writes the block of a processed variable.
func (p *Pipeline) Write(v render.Variable) error {
	return p.renderer.Write(v)
}
