package publications

// Collection is the document store collection holding publications.
const Collection = "publication"

// KindDefault applies when a stored publication carries no kind.
const KindDefault = "paper"

type Publication struct {
	Title     string   `bson:"title" json:"title"`
	Venue     string   `bson:"venue" json:"venue"`
	Year      int      `bson:"year" json:"year"`
	Authors   []string `bson:"authors" json:"authors"`
	Link      string   `bson:"link,omitempty" json:"link,omitempty" validate:"omitempty,http_url"`
	SlidesURL string   `bson:"slides_url,omitempty" json:"slides_url,omitempty" validate:"omitempty,http_url"`
	Kind      string   `bson:"kind" json:"kind" validate:"omitempty,oneof=paper talk workshop"`
}

func (p *Publication) normalize() {
	if p.Kind == "" {
		p.Kind = KindDefault
	}
	if p.Authors == nil {
		p.Authors = []string{}
	}
}
