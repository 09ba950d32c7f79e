package catalog

import (
	"context"

	"tradeaskill/internal/render"
	"tradeaskill/internal/search"
)

// Query is the whole dashboard state for one request. It is rebuilt from the
// filter controls every time and never stored.
type Query struct {
	Filter search.FilterState
	View   render.ViewMode
}

type Page struct {
	Output     render.Output `json:"output"`
	Sort       string        `json:"sort"`
	Total      int           `json:"total"`
	Shown      int           `json:"shown"`
	Fallback   bool          `json:"fallback"`
	Categories []string      `json:"categories"`
	Levels     []string      `json:"levels"`
}

type Loader interface {
	Load(ctx context.Context) (Result, error)
}

type Browser struct {
	source Loader
	engine search.Engine
}

func NewBrowser(source Loader, engine search.Engine) *Browser {
	return &Browser{source: source, engine: engine}
}

// Browse runs load, filter/sort and render for q.
func (b *Browser) Browse(ctx context.Context, q Query) (Page, error) {
	res, err := b.source.Load(ctx)
	if err != nil {
		return Page{}, err
	}

	sortKey := q.Filter.Sort
	if sortKey.Field == "" {
		sortKey = search.DefaultSort
		q.Filter.Sort = sortKey
	}

	ordered := b.engine.Apply(res.Records, q.Filter)
	return Page{
		Output:     render.Render(ordered, q.View),
		Sort:       sortKey.String(),
		Total:      len(res.Records),
		Shown:      len(ordered),
		Fallback:   res.Fallback,
		Categories: search.Categories(res.Records),
		Levels:     search.Levels(res.Records),
	}, nil
}
