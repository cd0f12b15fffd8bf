package content

const (
	DefaultProductLimit  = 12
	DefaultBlogPostLimit = 10
)

// ListOptions carries pagination for list queries.
type ListOptions struct {
	Limit int
	Skip  int
}

// WithDefaults fills a zero or negative limit with fallback and clamps skip.
func (o ListOptions) WithDefaults(fallback int) ListOptions {
	if o.Limit <= 0 {
		o.Limit = fallback
	}
	if o.Skip < 0 {
		o.Skip = 0
	}
	return o
}
