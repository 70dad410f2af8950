package video

// Metadata is what a published clip carries to YouTube.
type Metadata struct {
	Title       string
	Description string
	Tags        []string
	CategoryID  string
}
