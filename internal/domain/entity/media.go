package entity

// Media is one stored attachment of a product, blog post or review.
// The binary content lives in the external object store; rows keep only the
// durable public URL and the MIME class reported at upload time.
type Media struct {
	URL  string `json:"url"`
	Type string `json:"type"` // e.g. "image/png", "video/mp4"
}
