package repository

import (
	"testing"
	"time"

	"github.com/zephyra-admin/internal/models"
)

func TestTrashRestoreOnlyTouchesDeletedRows(t *testing.T) {
	db := openTestDB(t)
	members := NewTeamMemberRepository(db)
	trash := NewTrashRepository(db)

	member := &models.TeamMember{Name: "Mar", IsVisible: true}
	if err := members.Create(member); err != nil {
		t.Fatalf("create member failed: %v", err)
	}
	ok, err := trash.Restore(&models.TeamMember{}, member.ID)
	if err != nil {
		t.Fatalf("restore active failed: %v", err)
	}
	if ok {
		t.Fatalf("restore must not report success for an active row")
	}

	if _, err := members.MarkDeleted(member.ID, 3, time.Now().UTC()); err != nil {
		t.Fatalf("mark deleted failed: %v", err)
	}
	var rows []models.TeamMember
	if err := trash.ListDeleted(&models.TeamMember{}, &rows); err != nil {
		t.Fatalf("list deleted failed: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != member.ID {
		t.Fatalf("unexpected trash rows: %+v", rows)
	}

	ok, err = trash.Restore(&models.TeamMember{}, member.ID)
	if err != nil || !ok {
		t.Fatalf("restore failed: ok=%v err=%v", ok, err)
	}
	restored, err := members.GetByID(member.ID)
	if err != nil || restored == nil {
		t.Fatalf("restored member not active: %v", err)
	}
	if restored.DeletedBy != nil || restored.IsDeleted() {
		t.Fatalf("deletion markers not cleared: %+v", restored.SoftDelete)
	}
}

func TestFindExpiredIDsUsesCutoff(t *testing.T) {
	db := openTestDB(t)
	repo := NewClientRepository(db)
	trash := NewTrashRepository(db)
	now := time.Now().UTC()

	old := &models.Client{Name: "Old"}
	fresh := &models.Client{Name: "Fresh"}
	for _, c := range []*models.Client{old, fresh} {
		if err := repo.Create(c); err != nil {
			t.Fatalf("create client failed: %v", err)
		}
	}
	if _, err := repo.MarkDeleted(old.ID, 1, now.AddDate(0, 0, -31)); err != nil {
		t.Fatalf("mark old failed: %v", err)
	}
	if _, err := repo.MarkDeleted(fresh.ID, 1, now.AddDate(0, 0, -2)); err != nil {
		t.Fatalf("mark fresh failed: %v", err)
	}

	ids, err := trash.FindExpiredIDs(&models.Client{}, now.AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("find expired failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != old.ID {
		t.Fatalf("want only old client, got %v", ids)
	}
}

func TestPurgeRequiresTrashedRow(t *testing.T) {
	db := openTestDB(t)
	projects := NewProjectRepository(db)
	achievements := NewProjectAchievementRepository(db)
	trash := NewTrashRepository(db)
	cascade := Cascade{Model: &models.ProjectAchievement{}, ForeignKey: "project_id"}

	project := &models.Project{Title: "Wind", Slug: "wind"}
	if err := projects.Create(project); err != nil {
		t.Fatalf("create project failed: %v", err)
	}
	if err := achievements.Replace(project.ID, []string{"A", "B"}); err != nil {
		t.Fatalf("replace achievements failed: %v", err)
	}

	ok, err := trash.Purge(&models.Project{}, project.ID, cascade)
	if err != nil {
		t.Fatalf("purge active failed: %v", err)
	}
	if ok {
		t.Fatalf("active project must not be purged")
	}
	items, _ := achievements.ListByProject(project.ID)
	if len(items) != 2 {
		t.Fatalf("rolled back purge must keep achievements, got %d", len(items))
	}

	if _, err := projects.MarkDeleted(project.ID, 1, time.Now().UTC()); err != nil {
		t.Fatalf("mark deleted failed: %v", err)
	}
	ok, err = trash.Purge(&models.Project{}, project.ID, cascade)
	if err != nil || !ok {
		t.Fatalf("purge failed: ok=%v err=%v", ok, err)
	}
	items, _ = achievements.ListByProject(project.ID)
	if len(items) != 0 {
		t.Fatalf("achievements must be purged, got %d", len(items))
	}
	gone, err := projects.GetAnyByID(project.ID)
	if err != nil {
		t.Fatalf("get any failed: %v", err)
	}
	if gone != nil {
		t.Fatalf("project must be removed from the store")
	}
}
