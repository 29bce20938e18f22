package blog

// Collection is the document store collection holding blog posts.
const Collection = "blogpost"

type Post struct {
	Title   string   `bson:"title" json:"title"`
	Slug    string   `bson:"slug" json:"slug"`
	Excerpt string   `bson:"excerpt" json:"excerpt"`
	Body    string   `bson:"body" json:"body"`
	Topics  []string `bson:"topics" json:"topics"`

	// PublishedAt is stored as an untyped string; nothing downstream
	// orders posts by date.
	PublishedAt string `bson:"published_at" json:"published_at"`
}

func (p *Post) normalize() {
	if p.Topics == nil {
		p.Topics = []string{}
	}
}
