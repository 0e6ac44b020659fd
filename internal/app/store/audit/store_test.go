package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/guichet-ga/guichet/internal/app/store/audit"
	"github.com/guichet-ga/guichet/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func appendEntry(t *testing.T, store *audit.Store, ctx context.Context, entry audit.Entry) {
	t.Helper()
	if err := store.Append(ctx, entry); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
}

func TestStore_AppendAndGetRecent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	appendEntry(t, store, ctx, audit.Entry{
		Action:    audit.ActionLogin,
		UserID:    &userID,
		UserEmail: "agent@cnss.ga",
		IP:        "41.158.10.20",
		Success:   true,
	})

	entries, err := store.GetRecent(ctx, 10)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Action != audit.ActionLogin {
		t.Errorf("Action: got %q", e.Action)
	}
	if e.UserID == nil || *e.UserID != userID {
		t.Errorf("UserID: got %v", e.UserID)
	}
	if e.Timestamp.IsZero() {
		t.Error("expected Timestamp to be filled in")
	}
	if e.ID.IsZero() {
		t.Error("expected ID to be assigned")
	}
}

func TestStore_Query_ByAction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	appendEntry(t, store, ctx, audit.Entry{Action: audit.ActionLogin, UserEmail: "a@example.ga", Success: true})
	appendEntry(t, store, ctx, audit.Entry{Action: audit.ActionLoginFailed, UserEmail: "a@example.ga", FailureReason: "wrong_password"})
	appendEntry(t, store, ctx, audit.Entry{Action: audit.ActionLogout, UserEmail: "a@example.ga", Success: true})

	failed, err := store.Query(ctx, audit.QueryFilter{Action: audit.ActionLoginFailed})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(failed) != 1 {
		t.Fatalf("expected 1 LOGIN_FAILED entry, got %d", len(failed))
	}
	if failed[0].FailureReason != "wrong_password" {
		t.Errorf("FailureReason: got %q", failed[0].FailureReason)
	}

	n, err := store.CountByFilter(ctx, audit.QueryFilter{Action: audit.ActionLoginFailed})
	if err != nil {
		t.Fatalf("CountByFilter failed: %v", err)
	}
	if n != 1 {
		t.Errorf("count: got %d, want 1", n)
	}
}

func TestStore_Query_SortedNewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		appendEntry(t, store, ctx, audit.Entry{
			Action:    audit.ActionLogin,
			UserEmail: "a@example.ga",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Success:   true,
		})
	}

	entries, err := store.GetRecent(ctx, 10)
	if err != nil {
		t.Fatalf("GetRecent failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Timestamp.After(entries[i-1].Timestamp) {
			t.Errorf("entries not sorted newest first at index %d", i)
		}
	}
}

func TestStore_GetByUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	target := primitive.NewObjectID()
	other := primitive.NewObjectID()
	appendEntry(t, store, ctx, audit.Entry{Action: audit.ActionLogin, UserID: &target, Success: true})
	appendEntry(t, store, ctx, audit.Entry{Action: audit.ActionLogout, UserID: &target, Success: true})
	appendEntry(t, store, ctx, audit.Entry{Action: audit.ActionLogin, UserID: &other, Success: true})

	entries, err := store.GetByUser(ctx, target, 10)
	if err != nil {
		t.Fatalf("GetByUser failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 entries for the user, got %d", len(entries))
	}
}

func TestStore_GetFailedLogins_SinceWindow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now().UTC()
	appendEntry(t, store, ctx, audit.Entry{
		Action:        audit.ActionLoginFailed,
		UserEmail:     "old@example.ga",
		Timestamp:     now.Add(-48 * time.Hour),
		FailureReason: "wrong_password",
	})
	appendEntry(t, store, ctx, audit.Entry{
		Action:        audit.ActionLoginFailed,
		UserEmail:     "fresh@example.ga",
		Timestamp:     now.Add(-time.Hour),
		FailureReason: "wrong_password",
	})

	entries, err := store.GetFailedLogins(ctx, now.Add(-24*time.Hour), 10)
	if err != nil {
		t.Fatalf("GetFailedLogins failed: %v", err)
	}
	if len(entries) != 1 || entries[0].UserEmail != "fresh@example.ga" {
		t.Errorf("expected only the recent failure, got %v", entries)
	}
}
