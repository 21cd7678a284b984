package templates

import (
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/gin-gonic/gin/render"
)

const (
	layoutFile = "pages/layout.html"
	layoutName = "layout"
	centsBase  = 100
)

// Renderer gives every page its own copy of the layout so each can define "content".
type Renderer struct {
	pages map[string]*template.Template
}

var _ render.HTMLRender = (*Renderer)(nil)

func funcs() template.FuncMap {
	return template.FuncMap{
		"cents": func(amount int64) string {
			sign := ""
			if amount < 0 {
				sign, amount = "-", -amount
			}
			return fmt.Sprintf("%s$%d.%02d", sign, amount/centsBase, amount%centsBase)
		},
		"dollars": func(amount int64) string {
			return fmt.Sprintf("%d.%02d", amount/centsBase, amount%centsBase)
		},
	}
}

func NewRenderer() (*Renderer, error) {
	return newRenderer(FS)
}

func newRenderer(fsys fs.FS) (*Renderer, error) {
	layout, err := template.New(layoutName).Funcs(funcs()).ParseFS(fsys, layoutFile)
	if err != nil {
		return nil, err
	}

	files, err := fs.Glob(fsys, "pages/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		if file == layoutFile {
			continue
		}
		page, err := template.Must(layout.Clone()).ParseFS(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		pages[strings.TrimSuffix(path.Base(file), ".html")] = page
	}

	return &Renderer{pages: pages}, nil
}

// Instance looks pages up by base name, e.g. "home".
func (r *Renderer) Instance(name string, data any) render.Render {
	return render.HTML{
		Template: r.pages[name],
		Name:     layoutName,
		Data:     data,
	}
}

func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// Email parses a single email body template.
func Email(name string) (*template.Template, error) {
	return template.ParseFS(FS, "email/"+name)
}
