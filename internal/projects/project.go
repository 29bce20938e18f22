package projects

// Collection is the document store collection holding projects.
const Collection = "project"

// Domains a project may belong to.
var Domains = []string{"ML", "Analytics", "Visualization", "NLP", "CV", "Time Series", "MLOps", "Other"}

// Project is a portfolio case study. Entities are immutable once
// constructed; the store-assigned _id is never part of the entity.
type Project struct {
	Title     string   `bson:"title" json:"title"`
	Slug      string   `bson:"slug" json:"slug"`
	Summary   string   `bson:"summary" json:"summary"`
	Domain    string   `bson:"domain" json:"domain" validate:"required,oneof=ML Analytics Visualization NLP CV 'Time Series' MLOps Other"`
	Stack     []string `bson:"stack" json:"stack"`
	Year      int      `bson:"year" json:"year"`
	Problem   string   `bson:"problem" json:"problem"`
	Approach  string   `bson:"approach" json:"approach"`
	Dataset   string   `bson:"dataset" json:"dataset"`
	Model     string   `bson:"model" json:"model"`
	Results   string   `bson:"results" json:"results"`
	Impact    string   `bson:"impact" json:"impact"`
	GithubURL string   `bson:"github_url,omitempty" json:"github_url,omitempty" validate:"omitempty,http_url"`
	DemoURL   string   `bson:"demo_url,omitempty" json:"demo_url,omitempty" validate:"omitempty,http_url"`
	Tags      []string `bson:"tags" json:"tags"`

	// PlotlyFig is an opaque figure spec (data/layout) passed through to
	// the frontend; the service never inspects it.
	PlotlyFig map[string]any `bson:"plotly_fig,omitempty" json:"plotly_fig,omitempty"`
}

// normalize keeps list fields serializing as [] rather than null.
func (p *Project) normalize() {
	if p.Stack == nil {
		p.Stack = []string{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
}
