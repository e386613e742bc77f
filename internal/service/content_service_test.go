package service

import (
	"errors"
	"testing"

	"github.com/zephyra-admin/internal/constants"
	"github.com/zephyra-admin/internal/models"
)

func TestCreateAppendsAndReorderAssignsPositions(t *testing.T) {
	f := newServiceFixture(t)
	var ids []uint
	for i, title := range []string{"Consultoría", "Auditoría", "Formación"} {
		row, err := f.offerings.Create(OfferingInput{Title: title})
		if err != nil {
			t.Fatalf("create offering failed: %v", err)
		}
		if row.DisplayOrder != i {
			t.Fatalf("%s want display order %d got %d", title, i, row.DisplayOrder)
		}
		if !row.IsActive {
			t.Fatalf("new offering should default to active")
		}
		ids = append(ids, row.ID)
	}

	if err := f.offerings.Reorder([]uint{ids[2], ids[0], ids[1]}); err != nil {
		t.Fatalf("reorder failed: %v", err)
	}
	rows, err := f.offerings.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	want := []uint{ids[2], ids[0], ids[1]}
	for i, row := range rows {
		if row.ID != want[i] || row.DisplayOrder != i {
			t.Fatalf("position %d want id=%d order=%d got id=%d order=%d", i, want[i], i, row.ID, row.DisplayOrder)
		}
	}

	if err := f.offerings.Remove(ids[2], 1); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	next, err := f.offerings.Create(OfferingInput{Title: "Certificación"})
	if err != nil {
		t.Fatalf("create offering failed: %v", err)
	}
	if next.DisplayOrder != 3 {
		t.Fatalf("trashed rows still reserve their position, want 3 got %d", next.DisplayOrder)
	}
}

func TestTeamMemberInUseCannotBeRemoved(t *testing.T) {
	f := newServiceFixture(t)
	member, err := f.members.Create(TeamMemberInput{Name: "Lucía"})
	if err != nil {
		t.Fatalf("create member failed: %v", err)
	}
	post, err := f.posts.Create(BlogPostInput{Title: "Huella de carbono", AuthorID: member.ID})
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}

	err = f.members.Remove(member.ID, 1)
	if !errors.Is(err, ErrValidation) || KindOf(err) != KindValidation {
		t.Fatalf("want validation error got %v", err)
	}
	var inUse TeamMemberInUseError
	if !errors.As(err, &inUse) || inUse.Count != 1 {
		t.Fatalf("want in-use count 1 got %v", err)
	}
	members, err := f.members.List()
	if err != nil || len(members) != 1 {
		t.Fatalf("member must stay active: %v %d", err, len(members))
	}
	ok, count, err := f.members.CanDelete(member.ID)
	if err != nil || ok || count != 1 {
		t.Fatalf("can delete want false/1 got %v/%d err=%v", ok, count, err)
	}

	if err := f.posts.Remove(post.ID, 1); err != nil {
		t.Fatalf("remove post failed: %v", err)
	}
	if err := f.members.Remove(member.ID, 1); err != nil {
		t.Fatalf("member without active posts should be removable: %v", err)
	}
}

func TestBlogPostSlugAndPublishing(t *testing.T) {
	f := newServiceFixture(t)
	author, err := f.members.Create(TeamMemberInput{Name: "Pablo"})
	if err != nil {
		t.Fatalf("create member failed: %v", err)
	}

	first, err := f.posts.Create(BlogPostInput{Title: "Economía Circular", AuthorID: author.ID})
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	if first.Slug != "economia-circular" || first.Status != constants.PostStatusDraft || first.PublishedAt != nil {
		t.Fatalf("unexpected draft: %+v", first)
	}
	second, err := f.posts.Create(BlogPostInput{Title: "Economía circular", AuthorID: author.ID, Status: constants.PostStatusPublished})
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	if second.Slug != "economia-circular-1" {
		t.Fatalf("collision suffix want economia-circular-1 got %s", second.Slug)
	}
	if second.PublishedAt == nil {
		t.Fatalf("published post needs published_at")
	}

	_, err = f.posts.Update(second.ID, BlogPostInput{Title: "Otro", Slug: "economia-circular", AuthorID: author.ID})
	if !errors.Is(err, ErrSlugExists) || KindOf(err) != KindConflict {
		t.Fatalf("explicit duplicate slug want conflict got %v", err)
	}

	if err := f.posts.Remove(first.ID, 1); err != nil {
		t.Fatalf("remove post failed: %v", err)
	}
	third, err := f.posts.Create(BlogPostInput{Title: "Economía Circular", AuthorID: author.ID})
	if err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	if third.Slug != "economia-circular-2" {
		t.Fatalf("trashed slugs stay reserved, got %s", third.Slug)
	}

	published, err := f.posts.Publish(first.ID)
	if !errors.Is(err, ErrNotFound) || published != nil {
		t.Fatalf("publishing a trashed post want ErrNotFound got %v", err)
	}
	published, err = f.posts.Publish(third.ID)
	if err != nil || published.PublishedAt == nil {
		t.Fatalf("publish failed: %v", err)
	}
	stamp := *published.PublishedAt
	again, err := f.posts.Publish(third.ID)
	if err != nil || again.PublishedAt == nil || !again.PublishedAt.Equal(stamp) {
		t.Fatalf("republishing must keep the first published_at")
	}

	if _, err := f.posts.Create(BlogPostInput{Title: "Sin autor", AuthorID: 999}); !errors.Is(err, ErrAuthorNotFound) {
		t.Fatalf("missing author want ErrAuthorNotFound got %v", err)
	}
	if _, err := f.posts.Create(BlogPostInput{Title: "  ", AuthorID: author.ID}); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("blank title want ErrTitleRequired got %v", err)
	}
	if _, err := f.posts.Create(BlogPostInput{Title: "X", AuthorID: author.ID, Status: "archived"}); !errors.Is(err, ErrInvalidPostStatus) {
		t.Fatalf("unknown status want ErrInvalidPostStatus got %v", err)
	}
}

func TestProjectAchievementsReplaceAndReorder(t *testing.T) {
	f := newServiceFixture(t)
	project, err := f.projects.Create(ProjectInput{Title: "Eólica Norte", Achievements: []string{"A", " ", "B"}})
	if err != nil {
		t.Fatalf("create project failed: %v", err)
	}
	if len(project.Achievements) != 2 {
		t.Fatalf("blank achievements must be dropped, got %d", len(project.Achievements))
	}

	other, err := f.projects.Create(ProjectInput{Title: "Otro", Achievements: []string{"Z"}})
	if err != nil {
		t.Fatalf("create project failed: %v", err)
	}
	added, err := f.projects.AddAchievement(project.ID, "C")
	if err != nil {
		t.Fatalf("add achievement failed: %v", err)
	}
	if added.DisplayOrder != 2 {
		t.Fatalf("new achievement want order 2 got %d", added.DisplayOrder)
	}

	a, b := project.Achievements[0].ID, project.Achievements[1].ID
	foreign := other.Achievements[0].ID
	if err := f.projects.ReorderAchievements(project.ID, []uint{added.ID, foreign, a, b}); err != nil {
		t.Fatalf("reorder achievements failed: %v", err)
	}
	items, err := f.projects.achievementRepo.ListByProject(project.ID)
	if err != nil {
		t.Fatalf("list achievements failed: %v", err)
	}
	if len(items) != 3 || items[0].ID != added.ID || items[1].ID != a || items[2].ID != b {
		t.Fatalf("unexpected achievement order: %+v", items)
	}
	otherItems, err := f.projects.achievementRepo.ListByProject(other.ID)
	if err != nil || len(otherItems) != 1 || otherItems[0].DisplayOrder != 0 {
		t.Fatalf("foreign achievement must not move: %+v", otherItems)
	}

	updated, err := f.projects.Update(project.ID, ProjectInput{Title: "Eólica Norte"})
	if err != nil {
		t.Fatalf("update project failed: %v", err)
	}
	if len(updated.Achievements) != 3 {
		t.Fatalf("nil achievements keeps existing rows, got %d", len(updated.Achievements))
	}
	updated, err = f.projects.Update(project.ID, ProjectInput{Title: "Eólica Norte", Achievements: []string{"Solo"}})
	if err != nil {
		t.Fatalf("update project failed: %v", err)
	}
	if len(updated.Achievements) != 1 || updated.Achievements[0].Description != "Solo" {
		t.Fatalf("achievements not replaced: %+v", updated.Achievements)
	}

	if _, err := f.projects.AddAchievement(999, "x"); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("missing project want ErrProjectNotFound got %v", err)
	}
}

func TestAdminUserGuards(t *testing.T) {
	f := newServiceFixture(t)
	root, actor := f.superAdmin(t)

	if err := f.admins.Remove(actor, root.ID); !errors.Is(err, ErrCannotDeleteSelf) || KindOf(err) != KindValidation {
		t.Fatalf("self delete want ErrCannotDeleteSelf got %v", err)
	}
	if got := f.countUnscoped(t, root, "id = ? AND deleted_at IS NULL", root.ID); got != 1 {
		t.Fatalf("self delete must leave the account active")
	}

	role := constants.AdminRoleAdmin
	if _, err := f.admins.Update(actor, root.ID, UpdateAdminUserInput{Role: &role}); !errors.Is(err, ErrCannotChangeOwnRole) {
		t.Fatalf("own role change want ErrCannotChangeOwnRole got %v", err)
	}

	editor, err := f.admins.Create(actor, CreateAdminUserInput{Email: " Editor@Zephyra.es ", Name: "Editor", Password: "Passw0rd!"})
	if err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	if editor.Email != "editor@zephyra.es" || editor.Role != constants.AdminRoleAdmin || !editor.IsActive {
		t.Fatalf("unexpected admin: %+v", editor)
	}

	plain := Actor{ID: editor.ID, Role: editor.Role}
	if err := f.admins.Remove(plain, root.ID); !errors.Is(err, ErrSuperAdminRequired) || KindOf(err) != KindUnauthorized {
		t.Fatalf("non superadmin want unauthorized got %v", err)
	}

	if err := f.admins.Remove(actor, editor.ID); err != nil {
		t.Fatalf("remove admin failed: %v", err)
	}
	_, err = f.admins.Create(actor, CreateAdminUserInput{Email: "editor@zephyra.es", Name: "Again", Password: "Passw0rd!"})
	if !errors.Is(err, ErrEmailExists) || KindOf(err) != KindConflict {
		t.Fatalf("email reserved by trashed admin want conflict got %v", err)
	}
	if _, err := f.admins.Create(actor, CreateAdminUserInput{Email: "bad", Name: "Bad", Password: "Passw0rd!"}); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("invalid email want ErrInvalidEmail got %v", err)
	}
	if _, err := f.admins.Create(actor, CreateAdminUserInput{Email: "short@zephyra.es", Name: "Short", Password: "abc"}); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("short password want ErrWeakPassword got %v", err)
	}
}

func TestNewsletterSubscribeLifecycle(t *testing.T) {
	f := newServiceFixture(t)

	created, err := f.newsletter.Subscribe(" Ana@Example.com ")
	if err != nil || !created {
		t.Fatalf("first subscribe want created got %v err=%v", created, err)
	}
	created, err = f.newsletter.Subscribe("ana@example.com")
	if err != nil || created {
		t.Fatalf("duplicate subscribe want no-op got %v err=%v", created, err)
	}
	if _, err := f.newsletter.Subscribe("not-an-email"); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("invalid email want ErrInvalidEmail got %v", err)
	}
	if err := f.newsletter.Unsubscribe("nadie@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown unsubscribe want ErrNotFound got %v", err)
	}
	if _, err := f.newsletter.Subscribe("luis@example.com"); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	if err := f.newsletter.Unsubscribe("ana@example.com"); err != nil {
		t.Fatalf("unsubscribe failed: %v", err)
	}

	stats, err := f.newsletter.Stats()
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.Total != 2 || stats.Active != 1 || stats.Unsubscribed != 1 || stats.Recent != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	emails, err := f.newsletter.ExportActiveEmails()
	if err != nil || len(emails) != 1 || emails[0] != "luis@example.com" {
		t.Fatalf("unexpected export: %v err=%v", emails, err)
	}

	created, err = f.newsletter.Subscribe("ana@example.com")
	if err != nil || !created {
		t.Fatalf("resubscribe want reactivated got %v err=%v", created, err)
	}
	stats, err = f.newsletter.Stats()
	if err != nil || stats.Active != 2 || stats.Total != 2 {
		t.Fatalf("reactivation must not duplicate rows: %+v err=%v", stats, err)
	}
}

func TestUpdateRejectsTrashedRows(t *testing.T) {
	f := newServiceFixture(t)
	_, actor := f.superAdmin(t)
	name := "Renombrado"

	cases := []struct {
		name   string
		model  interface{}
		create func() (uint, error)
		remove func(id uint) error
		update func(id uint) error
	}{
		{
			name:  "team member",
			model: &models.TeamMember{},
			create: func() (uint, error) {
				row, err := f.members.Create(TeamMemberInput{Name: "Marta"})
				if err != nil {
					return 0, err
				}
				return row.ID, nil
			},
			remove: func(id uint) error { return f.members.Remove(id, actor.ID) },
			update: func(id uint) error {
				_, err := f.members.Update(id, TeamMemberInput{Name: "Marta editada"})
				return err
			},
		},
		{
			name:  "project",
			model: &models.Project{},
			create: func() (uint, error) {
				row, err := f.projects.Create(ProjectInput{Title: "Solar Sur"})
				if err != nil {
					return 0, err
				}
				return row.ID, nil
			},
			remove: func(id uint) error { return f.projects.Remove(id, actor.ID) },
			update: func(id uint) error {
				_, err := f.projects.Update(id, ProjectInput{Title: "Solar Sur II"})
				return err
			},
		},
		{
			name:  "service",
			model: &models.Offering{},
			create: func() (uint, error) {
				row, err := f.offerings.Create(OfferingInput{Title: "Consultoría"})
				if err != nil {
					return 0, err
				}
				return row.ID, nil
			},
			remove: func(id uint) error { return f.offerings.Remove(id, actor.ID) },
			update: func(id uint) error {
				_, err := f.offerings.Update(id, OfferingInput{Title: "Auditoría"})
				return err
			},
		},
		{
			name:  "client",
			model: &models.Client{},
			create: func() (uint, error) {
				row, err := f.clients.Create(LogoInput{Name: "Acme"})
				if err != nil {
					return 0, err
				}
				return row.ID, nil
			},
			remove: func(id uint) error { return f.clients.Remove(id, actor.ID) },
			update: func(id uint) error {
				_, err := f.clients.Update(id, LogoInput{Name: "Acme Iberia"})
				return err
			},
		},
		{
			name:  "alliance",
			model: &models.Alliance{},
			create: func() (uint, error) {
				row, err := f.alliances.Create(LogoInput{Name: "Red Verde"})
				if err != nil {
					return 0, err
				}
				return row.ID, nil
			},
			remove: func(id uint) error { return f.alliances.Remove(id, actor.ID) },
			update: func(id uint) error {
				_, err := f.alliances.Update(id, LogoInput{Name: "Red Azul"})
				return err
			},
		},
		{
			name:  "admin user",
			model: &models.AdminUser{},
			create: func() (uint, error) {
				row, err := f.admins.Create(actor, CreateAdminUserInput{Email: "editor@zephyra.es", Name: "Editor", Password: "Passw0rd!"})
				if err != nil {
					return 0, err
				}
				return row.ID, nil
			},
			remove: func(id uint) error { return f.admins.Remove(actor, id) },
			update: func(id uint) error {
				_, err := f.admins.Update(actor, id, UpdateAdminUserInput{Name: &name})
				return err
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := tc.create()
			if err != nil {
				t.Fatalf("create failed: %v", err)
			}
			if err := tc.remove(id); err != nil {
				t.Fatalf("remove failed: %v", err)
			}
			if err := tc.update(id); !errors.Is(err, ErrNotFound) || KindOf(err) != KindNotFound {
				t.Fatalf("update of trashed row want ErrNotFound got %v", err)
			}
			if got := f.countUnscoped(t, tc.model, "id = ? AND deleted_at IS NOT NULL AND deleted_by = ?", id, actor.ID); got != 1 {
				t.Fatalf("row must stay in trash with its deleter, got %d", got)
			}
			if err := tc.update(999); !errors.Is(err, ErrNotFound) {
				t.Fatalf("update of missing row want ErrNotFound got %v", err)
			}
		})
	}
}

// stubAccess 记录角色同步调用
type stubAccess struct {
	synced  []uint
	removed []uint
}

func (s *stubAccess) SyncAdminRole(adminID uint, role string) error {
	s.synced = append(s.synced, adminID)
	return nil
}

func (s *stubAccess) RemoveAdmin(adminID uint) error {
	s.removed = append(s.removed, adminID)
	return nil
}

func TestAdminRemoveRevokesRoleBinding(t *testing.T) {
	f := newServiceFixture(t)
	access := &stubAccess{}
	f.admins.access = access
	_, actor := f.superAdmin(t)

	editor, err := f.admins.Create(actor, CreateAdminUserInput{Email: "ana@zephyra.es", Name: "Ana", Password: "Passw0rd!"})
	if err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	if err := f.admins.Remove(actor, editor.ID); err != nil {
		t.Fatalf("remove admin failed: %v", err)
	}
	if len(access.removed) != 1 || access.removed[0] != editor.ID {
		t.Fatalf("soft delete must revoke the role binding, got %v", access.removed)
	}
}
