package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"blogfront/app/controllers"
	"blogfront/app/models"
	"blogfront/app/render"
	"blogfront/app/repositories"
	"blogfront/app/routes"
	"blogfront/app/services"

	"github.com/rs/zerolog/log"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("blogfront version %s\n", cliVersion)
	case "fixtures":
		serveFixtures(os.Args[2:])
	case "render":
		renderListing(os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: blogfront <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  fixtures  [--addr <addr>]      Serve the embedded post and comment fixtures,
                                 standing in for the external data source and
                                 comment service.
  render    [options]            Fetch posts, apply filter/search/sort and print
                                 the rendered listing. With --post, print the
                                 detail modal for one post instead.
    --source <url>               Post document URL (default http://localhost:8080/posts)
    --comments <url>             Comment service base URL (default http://localhost:8080)
    --category <name>            Category filter ("all" for no filter)
    --search <term>              Free-text search term
    --sort <newest|oldest>       Date ordering (default newest)
    --post <id>                  Render the detail modal for this post id
`
	fmt.Println(helpText)
}

// serveFixtures runs the local stand-in for the external endpoints.
func serveFixtures(args []string) {
	fs := flag.NewFlagSet("fixtures", flag.ExitOnError)
	addr := fs.String("addr", services.DefaultConfig().Addr, "listen address")
	fs.Parse(args)

	db, err := repositories.OpenInMemory()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open in-memory store")
	}
	defer db.Close()

	router, err := routes.SetupFixtureRoutes(db)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to setup fixture routes")
	}

	log.Info().Str("addr", *addr).Msg("Starting fixture server")
	if err := http.ListenAndServe(*addr, router); err != nil {
		log.Fatal().Err(err).Msg("Fixture server error")
	}
}

// renderListing runs the post pipeline once and prints the result.
func renderListing(args []string) {
	cfg := services.DefaultConfig()

	fs := flag.NewFlagSet("render", flag.ExitOnError)
	source := fs.String("source", cfg.DataSourceURL, "post document URL")
	comments := fs.String("comments", cfg.CommentServiceURL, "comment service base URL")
	category := fs.String("category", models.CategoryAll, "category filter")
	search := fs.String("search", "", "search term")
	sortOrder := fs.String("sort", models.SortNewest, "sort order (newest|oldest)")
	postID := fs.Int("post", 0, "render the detail modal for this post id")
	fs.Parse(args)

	cfg.DataSourceURL = *source
	cfg.CommentServiceURL = *comments

	db, err := repositories.OpenInMemory()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open in-memory store")
	}
	defer db.Close()

	repo := repositories.NewBadgerPostRepository(db)
	store := services.NewPostStore(repo, services.NewDataSource(cfg))
	renderer := render.NewRenderer()

	ctx := context.Background()
	if err := store.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to load posts")
	}

	view := newBufferView()

	if *postID > 0 {
		detail := controllers.NewDetailView(store, services.NewCommentService(cfg), renderer, view)
		if err := detail.Open(ctx, *postID); err != nil {
			log.Fatal().Err(err).Msg("Failed to open detail view")
		}
		fmt.Print(view.regions[controllers.RegionModal])
		return
	}

	state := models.ViewState{
		ActiveCategory: *category,
		SearchTerm:     *search,
		SortOrder:      *sortOrder,
	}
	visible := services.NewFilterSortEngine().Apply(mustPosts(store), state)

	html, err := renderer.RenderList(visible)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to render listing")
	}
	fmt.Print(html)
}

func mustPosts(store *services.PostStore) []*models.Post {
	posts, err := store.Posts()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read posts")
	}
	return posts
}

// bufferView captures rendered regions for one-shot command line output.
// Events never fire here; there is nothing interactive to bind to.
type bufferView struct {
	regions map[string]string
}

func newBufferView() *bufferView {
	return &bufferView{regions: make(map[string]string)}
}

func (v *bufferView) SetContent(region, html string) { v.regions[region] = html }

func (v *bufferView) OnEvent(selector, kind string, handler func(controllers.Event)) {}

func (v *bufferView) ControlValue(selector string) string { return "" }
