package routes

import (
	"embed"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"blogfront/app/middleware"
	"blogfront/app/models"
	"blogfront/app/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

//go:embed fixtures/posts.json fixtures/comments.json
var fixtureFS embed.FS

// FixtureServer stands in for the two external collaborators during
// local development: the post data source and the comment service.
type FixtureServer struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// SetupFixtureRoutes seeds the given DB with the embedded fixture data
// and returns a router serving the data source and comment endpoints.
func SetupFixtureRoutes(db *badger.DB) (*mux.Router, error) {
	fs := &FixtureServer{
		postRepo:    repositories.NewBadgerPostRepository(db),
		commentRepo: repositories.NewBadgerCommentRepository(db),
	}
	if err := fs.seed(); err != nil {
		return nil, fmt.Errorf("failed to seed fixtures: %v", err)
	}

	router := mux.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	router.HandleFunc("/posts", fs.servePosts).Methods("GET")
	router.HandleFunc("/comments", fs.serveComments).Methods("GET")

	return router, nil
}

// seed loads the embedded fixture documents into the repositories.
func (fs *FixtureServer) seed() error {
	postData, err := fixtureFS.ReadFile("fixtures/posts.json")
	if err != nil {
		return err
	}
	var doc struct {
		Posts []*models.Post `json:"posts"`
	}
	if err := json.Unmarshal(postData, &doc); err != nil {
		return fmt.Errorf("invalid post fixture: %v", err)
	}
	if err := fs.postRepo.ReplaceAll(doc.Posts); err != nil {
		return err
	}

	commentData, err := fixtureFS.ReadFile("fixtures/comments.json")
	if err != nil {
		return err
	}
	var comments []*models.Comment
	if err := json.Unmarshal(commentData, &comments); err != nil {
		return fmt.Errorf("invalid comment fixture: %v", err)
	}
	return fs.commentRepo.ReplaceAll(comments)
}

// servePosts returns the full post document.
func (fs *FixtureServer) servePosts(w http.ResponseWriter, r *http.Request) {
	posts, err := fs.postRepo.List()
	if err != nil {
		sendError(w, "Failed to read posts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sendJSON(w, map[string]interface{}{"posts": posts})
}

// serveComments returns the comments for one post id.
func (fs *FixtureServer) serveComments(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(r.URL.Query().Get("postId"))
	if err != nil {
		sendError(w, "Invalid or missing postId", http.StatusBadRequest)
		return
	}

	comments, err := fs.commentRepo.ListByPost(postID)
	if err != nil {
		sendError(w, "Failed to read comments: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sendJSON(w, comments)
}

func sendJSON(w http.ResponseWriter, data interface{}) {
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, message string, status int) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
