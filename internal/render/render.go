package render

import (
	"io"
	"log/slog"
	"text/template"

	"github.com/quornian/envy/internal/model"
)

// variableTemplate is the template of one variable block: a header line, a
// line per segment and a blank line.
const variableTemplate = `{{ .Palette.Variable }}{{ .Name }}{{ .Palette.Reset }}{{ .Palette.Separator }}={{ .Palette.Reset }}
{{ range .Lines -}}
{{ .Markers }}{{ if .Elided -}}
{{ $.Palette.Unmatched }}...{{ $.Palette.Reset }}
{{- else -}}
{{ .Style }}{{ .Content }}{{ $.Palette.Reset }}{{ $.Palette.Separator }}{{ .Separator }}{{ $.Palette.Reset }}
{{- end }}
{{ end }}
`

// Line is one rendered segment of a value.
type Line struct {
	// Markers is the marker column.
	Markers string
	// Style is the base style of the content.
	Style string
	// Content is the escaped content with its markup.
	Content string
	// Separator is the separator run that followed the content.
	Separator string
	// Elided marks the line standing in for a run of unmatched segments.
	Elided bool
}

// Variable is one variable to render.
type Variable struct {
	Name  string
	Lines []Line
}

// Renderer writes variable blocks with a palette.
type Renderer struct {
	out     io.Writer
	palette *model.Palette
	tmpl    *template.Template
}

// NewRenderer creates a new renderer writing to out.
func NewRenderer(out io.Writer, palette *model.Palette) *Renderer {
	return &Renderer{
		out:     out,
		palette: palette,
		tmpl:    template.Must(template.New("variable").Parse(variableTemplate)),
	}
}

// Segment builds the line of a shown segment.
func (r *Renderer) Segment(ann model.Annotation, content, separator string) Line {
	return Line{
		Markers:   r.palette.Markers(ann),
		Style:     r.palette.ContentStyle(ann),
		Content:   content,
		Separator: separator,
	}
}

// Elision builds the line standing in for a run of unmatched segments.
func (r *Renderer) Elision() Line {
	return Line{
		Markers: r.palette.Markers(model.Annotation{}),
		Elided:  true,
	}
}

// Write writes the block of a variable.
func (r *Renderer) Write(v Variable) error {
	data := struct {
		Variable
		Palette *model.Palette
	}{
		Variable: v,
		Palette:  r.palette,
	}

	if err := r.tmpl.Execute(r.out, data); err != nil {
		slog.Default().Error("error executing template", "template", r.tmpl.Name(), "err", err)
		return err
	}

	return nil
}
