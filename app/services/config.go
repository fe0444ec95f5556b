package services

import "time"

// Config carries the endpoints and knobs shared by the engine
// components. It is passed explicitly to constructors; there is no
// process-wide configuration singleton.
type Config struct {
	// DataSourceURL is the fixed path of the JSON post document.
	DataSourceURL string
	// CommentServiceURL is the base URL of the external comment
	// endpoint; comments are fetched from
	// <CommentServiceURL>/comments?postId=<id>.
	CommentServiceURL string
	// HTTPTimeout bounds both fetches. Zero means no timeout.
	HTTPTimeout time.Duration
	// Addr is the listen address of the fixture server.
	Addr string
}

// DefaultConfig returns a configuration pointing at a locally running
// fixture server.
func DefaultConfig() Config {
	return Config{
		DataSourceURL:     "http://localhost:8080/posts",
		CommentServiceURL: "http://localhost:8080",
		HTTPTimeout:       10 * time.Second,
		Addr:              ":8080",
	}
}
