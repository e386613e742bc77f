package repository

// BlogPostListFilter 查询文章列表的过滤条件
type BlogPostListFilter struct {
	Page          int
	PageSize      int
	Status        string
	Search        string
	OnlyPublished bool
	OrderBy       string
}

// NewsletterListFilter 查询订阅者列表的过滤条件
type NewsletterListFilter struct {
	Page     int
	PageSize int
	Search   string
	IsActive *bool
}
