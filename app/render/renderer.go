package render

import (
	"embed"
	"html/template"
	"strings"
	"time"

	"blogfront/app/models"
)

//go:embed views/*.html
var viewFS embed.FS

// Renderer turns posts and comments into HTML fragments. Everything
// that enters a template is escaped by html/template; post bodies are
// treated as plain text, not markup.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer creates a new Renderer with all view templates parsed.
func NewRenderer() *Renderer {
	funcs := template.FuncMap{
		"longDate": longDate,
	}

	templates := make(map[string]*template.Template)
	for _, name := range []string{"post_list", "modal", "category_options", "error"} {
		templates[name] = template.Must(
			template.New(name + ".html").Funcs(funcs).ParseFS(viewFS, "views/"+name+".html"),
		)
	}
	return &Renderer{templates: templates}
}

// longDate formats a post date for display.
func longDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// RenderList renders one article block per post: title, category tag,
// author, date, full body and a read-more trigger carrying the post id.
// An empty input renders the no-results fragment, never an empty
// container.
func (r *Renderer) RenderList(posts []*models.Post) (string, error) {
	data := struct {
		Posts []*models.Post
	}{Posts: posts}

	return r.execute("post_list", data)
}

// RenderModal renders the detail modal for one post and its comments.
func (r *Renderer) RenderModal(post *models.Post, comments []*models.Comment) (string, error) {
	data := struct {
		Post     *models.Post
		Comments []*models.Comment
	}{Post: post, Comments: comments}

	return r.execute("modal", data)
}

// RenderCategoryOptions renders the option list of the category filter
// control, with "all" first.
func (r *Renderer) RenderCategoryOptions(categories []string) (string, error) {
	data := struct {
		All        string
		Categories []string
	}{All: models.CategoryAll, Categories: categories}

	return r.execute("category_options", data)
}

// RenderError renders the inline error banner.
func (r *Renderer) RenderError(message string) (string, error) {
	data := struct {
		Message string
	}{Message: message}

	return r.execute("error", data)
}

func (r *Renderer) execute(name string, data interface{}) (string, error) {
	var sb strings.Builder
	if err := r.templates[name].Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
