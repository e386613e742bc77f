package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/zephyra-admin/internal/models"
)

func TestMaxDisplayOrderEmptyAndTrashed(t *testing.T) {
	db := openTestDB(t)
	repo := NewClientRepository(db)

	max, err := repo.MaxDisplayOrder()
	if err != nil {
		t.Fatalf("max display order failed: %v", err)
	}
	if max != -1 {
		t.Fatalf("empty table want -1 got %d", max)
	}

	client := &models.Client{Name: "Acme", DisplayOrder: 4}
	if err := repo.Create(client); err != nil {
		t.Fatalf("create client failed: %v", err)
	}
	if _, err := repo.MarkDeleted(client.ID, 1, time.Now().UTC()); err != nil {
		t.Fatalf("mark deleted failed: %v", err)
	}
	max, err = repo.MaxDisplayOrder()
	if err != nil {
		t.Fatalf("max display order failed: %v", err)
	}
	if max != 4 {
		t.Fatalf("trashed rows still count toward max, want 4 got %d", max)
	}
}

func TestMarkDeletedHidesRowAndRejectsSecondCall(t *testing.T) {
	db := openTestDB(t)
	repo := NewAllianceRepository(db)
	alliance := &models.Alliance{Name: "Red Verde"}
	if err := repo.Create(alliance); err != nil {
		t.Fatalf("create alliance failed: %v", err)
	}

	ok, err := repo.MarkDeleted(alliance.ID, 7, time.Now().UTC())
	if err != nil || !ok {
		t.Fatalf("first mark deleted: ok=%v err=%v", ok, err)
	}
	ok, err = repo.MarkDeleted(alliance.ID, 7, time.Now().UTC())
	if err != nil {
		t.Fatalf("second mark deleted failed: %v", err)
	}
	if ok {
		t.Fatalf("already deleted row must not be marked again")
	}

	got, err := repo.GetByID(alliance.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if got != nil {
		t.Fatalf("deleted row must be hidden from active reads")
	}
	row, err := repo.GetAnyByID(alliance.ID)
	if err != nil || row == nil {
		t.Fatalf("unscoped read failed: %v", err)
	}
	if row.DeletedBy == nil || *row.DeletedBy != 7 || !row.IsDeleted() {
		t.Fatalf("deletion markers not written: %+v", row.SoftDelete)
	}
}

func TestReorderSkipsUnknownIDs(t *testing.T) {
	db := openTestDB(t)
	repo := NewOfferingRepository(db)
	var ids []uint
	for _, title := range []string{"Audit", "ESG", "Carbon"} {
		row := &models.Offering{Title: title, IsActive: true}
		if err := repo.Create(row); err != nil {
			t.Fatalf("create offering failed: %v", err)
		}
		ids = append(ids, row.ID)
	}

	if err := repo.Reorder([]uint{ids[2], 999, ids[0]}); err != nil {
		t.Fatalf("reorder failed: %v", err)
	}
	rows, err := repo.ListActive()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	order := map[uint]int{}
	for _, row := range rows {
		order[row.ID] = row.DisplayOrder
	}
	if order[ids[2]] != 0 || order[ids[0]] != 2 {
		t.Fatalf("unexpected positions: %v", order)
	}
	if order[ids[1]] != 0 {
		t.Fatalf("untouched row keeps its rank, got %d", order[ids[1]])
	}
}

func TestUpdateKeepsMarkersAndSkipsTrashedRows(t *testing.T) {
	db := openTestDB(t)
	repo := NewTeamMemberRepository(db)
	member := &models.TeamMember{Name: "Marta", IsVisible: true}
	if err := repo.Create(member); err != nil {
		t.Fatalf("create member failed: %v", err)
	}

	member.Name = "Marta Ruiz"
	member.IsVisible = false
	if err := repo.Update(member); err != nil {
		t.Fatalf("update active member failed: %v", err)
	}
	got, err := repo.GetByID(member.ID)
	if err != nil || got == nil {
		t.Fatalf("get member failed: %v", err)
	}
	if got.Name != "Marta Ruiz" || got.IsVisible {
		t.Fatalf("update must write zero values too, got %+v", got)
	}

	stale, err := repo.GetByID(member.ID)
	if err != nil || stale == nil {
		t.Fatalf("get member failed: %v", err)
	}
	if _, err := repo.MarkDeleted(member.ID, 9, time.Now().UTC()); err != nil {
		t.Fatalf("mark deleted failed: %v", err)
	}
	stale.Name = "Marta editada"
	if err := repo.Update(stale); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update of trashed row want ErrNotFound got %v", err)
	}

	trashed, err := repo.GetAnyByID(member.ID)
	if err != nil || trashed == nil {
		t.Fatalf("get any failed: %v", err)
	}
	if !trashed.DeletedAt.Valid || trashed.DeletedBy == nil || *trashed.DeletedBy != 9 {
		t.Fatalf("trashed row lost its markers: %+v", trashed.SoftDelete)
	}
	if trashed.Name != "Marta Ruiz" {
		t.Fatalf("trashed row must not take the stale write, got %q", trashed.Name)
	}
}

func TestUpdateDoesNotRecreatePurgedRows(t *testing.T) {
	db := openTestDB(t)
	members := NewTeamMemberRepository(db)
	trash := NewTrashRepository(db)

	member := &models.TeamMember{Name: "Luis"}
	if err := members.Create(member); err != nil {
		t.Fatalf("create member failed: %v", err)
	}
	stale, err := members.GetByID(member.ID)
	if err != nil || stale == nil {
		t.Fatalf("get member failed: %v", err)
	}
	if _, err := members.MarkDeleted(member.ID, 1, time.Now().UTC()); err != nil {
		t.Fatalf("mark deleted failed: %v", err)
	}
	if ok, err := trash.Purge(&models.TeamMember{}, member.ID); err != nil || !ok {
		t.Fatalf("purge failed: ok=%v err=%v", ok, err)
	}

	if err := members.Update(stale); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update of purged row want ErrNotFound got %v", err)
	}
	var count int64
	if err := db.Unscoped().Model(&models.TeamMember{}).Where("id = ?", member.ID).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("purged row must stay gone, got %d", count)
	}
}

func TestHardDeletedRowsAreNotRecreatedByUpdate(t *testing.T) {
	db := openTestDB(t)
	projects := NewProjectRepository(db)
	achievements := NewProjectAchievementRepository(db)
	newsletter := NewNewsletterRepository(db)

	project := &models.Project{Title: "Mar", Slug: "mar"}
	if err := projects.Create(project); err != nil {
		t.Fatalf("create project failed: %v", err)
	}
	item := &models.ProjectAchievement{ProjectID: project.ID, Description: "A"}
	if err := achievements.Create(item); err != nil {
		t.Fatalf("create achievement failed: %v", err)
	}
	item.Description = "B"
	if err := achievements.Update(item); err != nil {
		t.Fatalf("update achievement failed: %v", err)
	}
	if err := achievements.Delete(item.ID); err != nil {
		t.Fatalf("delete achievement failed: %v", err)
	}
	item.Description = "C"
	if err := achievements.Update(item); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update of deleted achievement want ErrNotFound got %v", err)
	}
	if rows, _ := achievements.ListByProject(project.ID); len(rows) != 0 {
		t.Fatalf("deleted achievement came back: %+v", rows)
	}

	subscriber := &models.NewsletterSubscriber{Email: "ana@example.com", SubscribedAt: time.Now().UTC(), IsActive: true}
	if err := newsletter.Create(subscriber); err != nil {
		t.Fatalf("create subscriber failed: %v", err)
	}
	if err := newsletter.Delete(subscriber.ID); err != nil {
		t.Fatalf("delete subscriber failed: %v", err)
	}
	subscriber.IsActive = false
	if err := newsletter.Update(subscriber); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update of deleted subscriber want ErrNotFound got %v", err)
	}
	got, err := newsletter.GetByEmail("ana@example.com")
	if err != nil {
		t.Fatalf("get by email failed: %v", err)
	}
	if got != nil {
		t.Fatalf("deleted subscriber came back: %+v", got)
	}
}
