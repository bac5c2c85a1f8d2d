package models

type Forum struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description"`
}

type Post struct {
	ID         int    `json:"id"`
	Forum      int    `json:"forum,omitempty"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorName string `json:"author_name,omitempty"`
	PostType   string `json:"post_type,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

type Chapter struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	City        string `json:"city"`
	State       string `json:"state,omitempty"`
	Country     string `json:"country,omitempty"`
	Description string `json:"description,omitempty"`
}
