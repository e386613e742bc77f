package service

import (
	"strings"

	"github.com/zephyra-admin/internal/cache"
	"github.com/zephyra-admin/internal/models"
	"github.com/zephyra-admin/internal/repository"
)

// TeamMemberService 团队成员服务
type TeamMemberService struct {
	repo     repository.TeamMemberRepository
	postRepo repository.BlogPostRepository
}

// NewTeamMemberService 创建团队成员服务
func NewTeamMemberService(repo repository.TeamMemberRepository, postRepo repository.BlogPostRepository) *TeamMemberService {
	return &TeamMemberService{repo: repo, postRepo: postRepo}
}

// TeamMemberInput 团队成员参数
type TeamMemberInput struct {
	Name      string
	Role      string
	Specialty string
	ImageURL  string
	IsVisible *bool
}

// TeamMemberOption 下拉选项
type TeamMemberOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// List 后台列表
func (s *TeamMemberService) List() ([]models.TeamMember, error) {
	return s.repo.ListActive()
}

// ListPublic 前台可见成员
func (s *TeamMemberService) ListPublic() ([]models.TeamMember, error) {
	return s.repo.ListVisible()
}

// ListForSelect 作者下拉选项
func (s *TeamMemberService) ListForSelect() ([]TeamMemberOption, error) {
	members, err := s.repo.ListActive()
	if err != nil {
		return nil, err
	}
	options := make([]TeamMemberOption, 0, len(members))
	for _, m := range members {
		options = append(options, TeamMemberOption{ID: m.ID, Name: m.Name})
	}
	return options, nil
}

// Create 新成员排在末尾，默认可见
func (s *TeamMemberService) Create(input TeamMemberInput) (*models.TeamMember, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	order, err := nextDisplayOrder(s.repo.MaxDisplayOrder)
	if err != nil {
		return nil, err
	}
	member := &models.TeamMember{
		Name:         name,
		Role:         strings.TrimSpace(input.Role),
		Specialty:    strings.TrimSpace(input.Specialty),
		ImageURL:     strings.TrimSpace(input.ImageURL),
		DisplayOrder: order,
		IsVisible:    input.IsVisible == nil || *input.IsVisible,
	}
	if err := s.repo.Create(member); err != nil {
		return nil, err
	}
	invalidateSection(cache.SectionTeam)
	return member, nil
}

// Update 更新成员
func (s *TeamMemberService) Update(id uint, input TeamMemberInput) (*models.TeamMember, error) {
	member, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrNotFound
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	member.Name = name
	member.Role = strings.TrimSpace(input.Role)
	member.Specialty = strings.TrimSpace(input.Specialty)
	member.ImageURL = strings.TrimSpace(input.ImageURL)
	if input.IsVisible != nil {
		member.IsVisible = *input.IsVisible
	}
	if err := s.repo.Update(member); err != nil {
		return nil, err
	}
	invalidateSection(cache.SectionTeam)
	return member, nil
}

// CanDelete 返回成员作为作者的活跃文章数
func (s *TeamMemberService) CanDelete(id uint) (bool, int64, error) {
	count, err := s.postRepo.CountActiveByAuthor(id)
	if err != nil {
		return false, 0, err
	}
	return count == 0, count, nil
}

// Remove 仍是活跃文章作者时拒绝删除
func (s *TeamMemberService) Remove(id, actorID uint) error {
	member, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrNotFound
	}
	count, err := s.postRepo.CountActiveByAuthor(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return TeamMemberInUseError{Count: count}
	}
	return softRemove(s.repo.MarkDeleted, id, actorID, cache.SectionTeam)
}

// Reorder 重写展示顺序
func (s *TeamMemberService) Reorder(ids []uint) error {
	return reorder(s.repo.Reorder, ids, cache.SectionTeam)
}
