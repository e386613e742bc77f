package models

import "time"

// BlogPost 博客文章表
type BlogPost struct {
	ID          uint        `gorm:"primarykey" json:"id"`
	Title       string      `gorm:"not null" json:"title"`
	Slug        string      `gorm:"uniqueIndex;not null" json:"slug"`
	Excerpt     string      `json:"excerpt"`
	Content     string      `gorm:"type:text" json:"content"` // HTML 正文
	CoverURL    string      `json:"cover_url"`
	AuthorID    uint        `gorm:"not null;index" json:"author_id"`
	Author      *TeamMember `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Status      string      `gorm:"not null;default:draft;index" json:"status"` // draft/published
	PublishedAt *time.Time  `gorm:"index" json:"published_at"`
	CreatedAt   time.Time   `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	SoftDelete
}

// TableName 指定表名
func (BlogPost) TableName() string {
	return "blog_posts"
}

// TrashLabel 回收站展示名称
func (p BlogPost) TrashLabel() string { return p.Title }

// TeamMember 团队成员表
type TeamMember struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Role         string    `json:"role"` // 职位
	Specialty    string    `json:"specialty"`
	ImageURL     string    `json:"image_url"`
	DisplayOrder int       `gorm:"not null;default:0;index" json:"display_order"`
	IsVisible    bool      `gorm:"not null" json:"is_visible"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	SoftDelete
}

// TableName 指定表名
func (TeamMember) TableName() string {
	return "team_members"
}

// TrashLabel 回收站展示名称
func (m TeamMember) TrashLabel() string { return m.Name }

// Project 项目案例表
type Project struct {
	ID           uint                 `gorm:"primarykey" json:"id"`
	Title        string               `gorm:"not null" json:"title"`
	Slug         string               `gorm:"uniqueIndex;not null" json:"slug"`
	Description  string               `gorm:"type:text" json:"description"`
	Excerpt      string               `json:"excerpt"`
	ImageURL     string               `json:"image_url"`
	DisplayOrder int                  `gorm:"not null;default:0;index" json:"display_order"`
	IsFeatured   bool                 `gorm:"not null;default:false;index" json:"is_featured"`
	Achievements []ProjectAchievement `gorm:"foreignKey:ProjectID" json:"achievements,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
	SoftDelete
}

// TableName 指定表名
func (Project) TableName() string {
	return "projects"
}

// TrashLabel 回收站展示名称
func (p Project) TrashLabel() string { return p.Title }

// ProjectAchievement 项目成果（随项目永久删除）
type ProjectAchievement struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	ProjectID    uint      `gorm:"not null;index" json:"project_id"`
	Description  string    `gorm:"not null" json:"description"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName 指定表名
func (ProjectAchievement) TableName() string {
	return "project_achievements"
}

// Offering 服务项目表
type Offering struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	IconName     string    `json:"icon_name"`
	DisplayOrder int       `gorm:"not null;default:0;index" json:"display_order"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	SoftDelete
}

// TableName 指定表名
func (Offering) TableName() string {
	return "services"
}

// TrashLabel 回收站展示名称
func (o Offering) TrashLabel() string { return o.Title }

// Client 客户表
type Client struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	LogoURL      string    `json:"logo_url"`
	WebsiteURL   *string   `json:"website_url"`
	DisplayOrder int       `gorm:"not null;default:0;index" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	SoftDelete
}

// TableName 指定表名
func (Client) TableName() string {
	return "clients"
}

// TrashLabel 回收站展示名称
func (c Client) TrashLabel() string { return c.Name }

// Alliance 合作伙伴表
type Alliance struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	LogoURL      string    `json:"logo_url"`
	WebsiteURL   *string   `json:"website_url"`
	DisplayOrder int       `gorm:"not null;default:0;index" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	SoftDelete
}

// TableName 指定表名
func (Alliance) TableName() string {
	return "alliances"
}

// TrashLabel 回收站展示名称
func (a Alliance) TrashLabel() string { return a.Name }

// NewsletterSubscriber 邮件订阅者（仅物理删除）
type NewsletterSubscriber struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	Email          string     `gorm:"uniqueIndex;not null" json:"email"`
	SubscribedAt   time.Time  `gorm:"not null;index" json:"subscribed_at"`
	IsActive       bool       `gorm:"not null;index" json:"is_active"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at"`
}

// TableName 指定表名
func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}
