package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"offerdirectory/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// Row is one offer row of the rendered table.
type Row struct {
	Key      string
	Name     string
	Discount string
}

// Option is one entry of a select control.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Pager is the pagination control of the rendered table.
type Pager struct {
	From        int
	To          int
	Total       int
	Page        int
	RowsPerPage string
	Options     []Option
	PrevPage    int
	NextPage    int
	HasPrev     bool
	HasNext     bool
}

// DirectoryPage is everything the directory template needs. It is derived from
// a domain.ViewState by NewDirectoryPage and holds no references into it.
type DirectoryPage struct {
	Status       domain.LoadStatus
	Failure      string
	OrderOptions []Option
	OrderChosen  bool
	Rows         []Row
	EmptyRows    int
	FillerHeight int
	Pager        Pager
}

// NewDirectoryPage maps a view state to its page model.
func NewDirectoryPage(s domain.ViewState) DirectoryPage {
	p := DirectoryPage{
		Status:  s.Status(),
		Failure: s.Failure(),
	}
	if s.Status() != domain.StatusLoaded {
		return p
	}

	p.OrderChosen = s.Order().Known()
	for _, o := range domain.SortOptions {
		p.OrderOptions = append(p.OrderOptions, Option{
			Value:    string(o.Mode),
			Label:    o.Label,
			Selected: o.Mode == s.Order(),
		})
	}

	w := s.Window()
	start, _ := w.Bounds()
	for i, o := range s.VisibleOffers() {
		p.Rows = append(p.Rows, Row{
			Key:      strconv.Itoa(start+i) + ":" + o.Name,
			Name:     o.Name,
			Discount: o.DisplayDiscount(),
		})
	}
	p.EmptyRows = w.EmptyRows()
	p.FillerHeight = domain.FillerRowHeight * p.EmptyRows

	p.Pager = Pager{
		Total:       w.Total,
		Page:        w.Page,
		RowsPerPage: strconv.Itoa(w.RowsPerPage),
		PrevPage:    w.Page - 1,
		NextPage:    w.Page + 1,
		HasPrev:     w.HasPrev(),
		HasNext:     w.HasNext(),
	}
	if shown := w.Shown(); shown > 0 {
		p.Pager.From = start + 1
		p.Pager.To = start + shown
	}
	for _, o := range domain.RowsPerPageOptions {
		p.Pager.Options = append(p.Pager.Options, Option{
			Value:    strconv.Itoa(o.Value),
			Label:    o.Label,
			Selected: o.Value == w.RowsPerPage,
		})
	}
	return p
}

// DirectoryRenderer renders view states as HTML.
type DirectoryRenderer struct {
	tmpl *template.Template
}

// NewDirectoryRenderer parses the embedded templates.
func NewDirectoryRenderer() (*DirectoryRenderer, error) {
	tmpl, err := template.New("directory").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &DirectoryRenderer{tmpl: tmpl}, nil
}

// Render writes the full HTML document for s to w. The document is buffered
// so a template error never produces a half-written page.
func (r *DirectoryRenderer) Render(w io.Writer, s domain.ViewState) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "directory.html", NewDirectoryPage(s)); err != nil {
		return fmt.Errorf("render directory: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
