// File: models/news.go
package models

import "time"

// ----------------------- news article -----------------------

// News statuses.
const (
	NewsDraft     = "draft"
	NewsPublished = "published"
	NewsArchived  = "archived"
)

// DefaultAuthor signs articles that reach the store without an author.
const DefaultAuthor = "Admin Tarek"

// NewsArticle is a post on the clan news feed.
type NewsArticle struct {
	Meta
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Content         string    `json:"content"`
	Category        string    `json:"category"`
	Status          string    `json:"status"`
	Author          string    `json:"author"`
	Date            string    `json:"date"`
	Views           int       `json:"views"`
	Likes           int       `json:"likes"`
	Tags            []string  `json:"tags"`
	Image           string    `json:"image,omitempty"`
	Featured        bool      `json:"featured"`
	Priority        string    `json:"priority"`
	ReadTime        int       `json:"readTime,omitempty"`
	MetaDescription string    `json:"metaDescription,omitempty"`
	PublishDate     string    `json:"publishDate,omitempty"`
	Excerpt         string    `json:"excerpt,omitempty"`
	LastModified    string    `json:"lastModified,omitempty"`
	Comments        []Comment `json:"comments"`
}

// Comment is a reader reply under an article.
type Comment struct {
	ID      int64  `json:"id"`
	Author  string `json:"author"`
	Content string `json:"content"`
	Date    string `json:"date"`
	Likes   int    `json:"likes"`
}

// ApplyDefaults fills the optional fields a new article was created without.
func (n *NewsArticle) ApplyDefaults(now time.Time) {
	n.Status = orDefault(n.Status, NewsDraft)
	n.Author = orDefault(n.Author, DefaultAuthor)
	n.Date = orDefault(n.Date, now.Format(DateLayout))
	n.Priority = orDefault(n.Priority, "normal")
	if n.Tags == nil {
		n.Tags = []string{}
	}
	if n.Comments == nil {
		n.Comments = []Comment{}
	}
}
