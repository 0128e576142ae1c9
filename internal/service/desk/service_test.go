package desk

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printmax/enquiry-desk/internal/adapter/kv/memory"
	"github.com/printmax/enquiry-desk/internal/domain"
	"github.com/printmax/enquiry-desk/internal/persistence"
	"github.com/printmax/enquiry-desk/pkg/ctxutil"
)

//go:generate moq -out store_repo_mock_test.go -pkg desk . storeRepo

var testNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// sequentialIDs returns id-1, id-2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// newMockRepo returns a repo mock that loads initial and accepts every save.
func newMockRepo(initial domain.Store) *storeRepoMock {
	return &storeRepoMock{
		LoadFunc: func(ctx context.Context) domain.Store { return initial },
		SaveFunc: func(ctx context.Context, s domain.Store) error { return nil },
	}
}

func newTestService(t *testing.T, repo storeRepo, opts ...Option) *Service {
	t.Helper()
	base := []Option{
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(sequentialIDs()),
		WithLocation(time.UTC),
	}
	return NewService(context.Background(), discardLogger(), repo, append(base, opts...)...)
}

func validCreate() CreateEnquiryInput {
	return CreateEnquiryInput{
		Title:        "Shop banner",
		Category:     "Signage",
		CustomerName: "ravi  kumar",
		Channel:      domain.ChannelWhatsApp,
	}
}

func requireFieldErrors(t *testing.T, err error, fields ...string) *domain.ValidationError {
	t.Helper()
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	require.ErrorIs(t, err, domain.ErrValidation)
	got := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		got[i] = fe.Field
	}
	assert.ElementsMatch(t, fields, got)
	return ve
}

// ---------------------------------------------------------------------------
// NewService
// ---------------------------------------------------------------------------

func TestNewService_LoadsOnce(t *testing.T) {
	t.Parallel()

	repo := newMockRepo(domain.DefaultStore())
	svc := newTestService(t, repo)

	assert.Len(t, repo.LoadCalls(), 1)
	assert.Equal(t, domain.DefaultStore(), svc.Snapshot())
	assert.Empty(t, repo.SaveCalls())
}

func TestSnapshotAndListsAreCopies(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newMockRepo(domain.DefaultStore()))
	e, err := svc.CreateEnquiry(context.Background(), validCreate())
	require.NoError(t, err)

	snap := svc.Snapshot()
	snap.Users[0].Name = "Changed"
	snap.Categories[0] = "Changed"
	found, ok := snap.FindEnquiry(e.ID)
	require.True(t, ok)
	found.Title = "Changed"
	svc.Users()[1].Name = "Changed"
	svc.Categories()[1] = "Changed"

	after := svc.Snapshot()
	assert.Equal(t, "Admin", after.Users[0].Name)
	assert.Equal(t, "Staff", after.Users[1].Name)
	assert.Equal(t, domain.DefaultCategories[:2], after.Categories[:2])
	got, err := svc.Enquiry(e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shop banner", got.Title)
}

// ---------------------------------------------------------------------------
// CreateEnquiry
// ---------------------------------------------------------------------------

func TestCreateEnquiry_Success(t *testing.T) {
	t.Parallel()

	existing := domain.Enquiry{ID: "old", Title: "Old", Status: domain.StatusPending, Channel: domain.ChannelCall}
	initial := domain.DefaultStore()
	initial.Enquiries = []domain.Enquiry{existing}

	repo := newMockRepo(initial)
	svc := newTestService(t, repo)

	ist := time.FixedZone("IST", 5*3600+1800)
	due := time.Date(2024, 6, 16, 15, 0, 0, 0, ist)
	input := validCreate()
	input.Phone = ptr("  +91 98765-43210 ")
	input.Notes = ptr("   ")
	input.DueAt = &due
	input.AssignedTo = ptr(domain.SeedStaffID)

	got, err := svc.CreateEnquiry(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, "Ravi Kumar", got.CustomerName)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Equal(t, testNow, got.CreatedAt)
	require.NotNil(t, got.Phone)
	assert.Equal(t, "+91 98765-43210", *got.Phone)
	assert.Nil(t, got.Notes, "blank notes are dropped")
	require.NotNil(t, got.DueAt)
	assert.True(t, got.DueAt.Equal(due))
	assert.Equal(t, time.UTC, got.DueAt.Location())

	snap := svc.Snapshot()
	require.Len(t, snap.Enquiries, 2)
	assert.Equal(t, "id-1", snap.Enquiries[0].ID, "new enquiries go to the front")

	require.Len(t, repo.SaveCalls(), 1)
	assert.Equal(t, snap, repo.SaveCalls()[0].S)
}

func TestCreateEnquiry_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*CreateEnquiryInput)
		fields []string
	}{
		{name: "empty title", mutate: func(i *CreateEnquiryInput) { i.Title = "" }, fields: []string{"title"}},
		{name: "whitespace title", mutate: func(i *CreateEnquiryInput) { i.Title = " \t " }, fields: []string{"title"}},
		{name: "empty customer", mutate: func(i *CreateEnquiryInput) { i.CustomerName = "   " }, fields: []string{"customerName"}},
		{name: "empty category", mutate: func(i *CreateEnquiryInput) { i.Category = "" }, fields: []string{"category"}},
		{name: "missing channel", mutate: func(i *CreateEnquiryInput) { i.Channel = "" }, fields: []string{"channel"}},
		{name: "unknown channel", mutate: func(i *CreateEnquiryInput) { i.Channel = "Fax" }, fields: []string{"channel"}},
		{name: "unknown status", mutate: func(i *CreateEnquiryInput) { i.Status = "Done" }, fields: []string{"status"}},
		{
			name:   "collects all errors",
			mutate: func(i *CreateEnquiryInput) { *i = CreateEnquiryInput{} },
			fields: []string{"title", "category", "customerName", "channel"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := newMockRepo(domain.DefaultStore())
			svc := newTestService(t, repo)

			input := validCreate()
			tt.mutate(&input)

			_, err := svc.CreateEnquiry(context.Background(), input)

			requireFieldErrors(t, err, tt.fields...)
			assert.Empty(t, repo.SaveCalls())
			assert.Empty(t, svc.Snapshot().Enquiries)
		})
	}
}

func TestCreateEnquiry_ValidationMessages(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newMockRepo(domain.DefaultStore()))

	input := validCreate()
	input.Title = ""
	input.Channel = "Fax"
	_, err := svc.CreateEnquiry(context.Background(), input)

	ve := requireFieldErrors(t, err, "title", "channel")
	messages := map[string]string{}
	for _, fe := range ve.Errors {
		messages[fe.Field] = fe.Message
	}
	assert.Equal(t, "title is a required field", messages["title"])
	assert.Equal(t, "channel must be one of In-shop, WhatsApp, Call, Online", messages["channel"])
}

func TestCreateEnquiry_SaveFailureKeepsState(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	repo := newMockRepo(domain.DefaultStore())
	repo.SaveFunc = func(ctx context.Context, s domain.Store) error { return boom }
	svc := newTestService(t, repo)

	_, err := svc.CreateEnquiry(context.Background(), validCreate())

	require.ErrorIs(t, err, boom)
	assert.Empty(t, svc.Snapshot().Enquiries)
	assert.Len(t, repo.SaveCalls(), 1)
}

// ---------------------------------------------------------------------------
// UpdateEnquiry / SetStatus / DeleteEnquiry
// ---------------------------------------------------------------------------

func seeded(t *testing.T) (*Service, *storeRepoMock) {
	t.Helper()
	repo := newMockRepo(domain.DefaultStore())
	svc := newTestService(t, repo)
	ctx := context.Background()

	for _, title := range []string{"First", "Second", "Third"} {
		in := validCreate()
		in.Title = title
		in.Phone = ptr("555")
		due := testNow.Add(time.Hour)
		in.DueAt = &due
		_, err := svc.CreateEnquiry(ctx, in)
		require.NoError(t, err)
	}
	return svc, repo
}

func TestUpdateEnquiry_PartialInPlace(t *testing.T) {
	t.Parallel()

	svc, repo := seeded(t)
	before, err := svc.Enquiry("id-2")
	require.NoError(t, err)

	got, err := svc.UpdateEnquiry(context.Background(), UpdateEnquiryInput{
		ID:       "id-2",
		Title:    ptr("  Second,   revised "),
		Category: ptr("Not A Listed Category"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Second, revised", got.Title)
	assert.Equal(t, "Not A Listed Category", got.Category)
	assert.Equal(t, before.CreatedAt, got.CreatedAt)
	assert.Equal(t, before.CustomerName, got.CustomerName)
	assert.Equal(t, before.Phone, got.Phone)

	ids := []string{}
	for _, e := range svc.Snapshot().Enquiries {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"id-3", "id-2", "id-1"}, ids, "updates keep position")
	assert.Len(t, repo.SaveCalls(), 4)
}

func TestUpdateEnquiry_ClearsOptionalFields(t *testing.T) {
	t.Parallel()

	svc, _ := seeded(t)

	got, err := svc.UpdateEnquiry(context.Background(), UpdateEnquiryInput{
		ID:         "id-1",
		Phone:      ptr(""),
		ClearDueAt: true,
		AssignedTo: ptr(domain.SeedAdminID),
	})
	require.NoError(t, err)

	assert.Nil(t, got.Phone)
	assert.Nil(t, got.DueAt)
	require.NotNil(t, got.AssignedTo)
	assert.Equal(t, domain.SeedAdminID, *got.AssignedTo)
}

func TestUpdateEnquiry_NotFound(t *testing.T) {
	t.Parallel()

	svc, repo := seeded(t)
	saves := len(repo.SaveCalls())

	_, err := svc.UpdateEnquiry(context.Background(), UpdateEnquiryInput{ID: "missing", Title: ptr("x")})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, repo.SaveCalls(), saves)
}

func TestUpdateEnquiry_Validation(t *testing.T) {
	t.Parallel()

	due := testNow
	tests := []struct {
		name   string
		input  UpdateEnquiryInput
		fields []string
	}{
		{name: "missing id", input: UpdateEnquiryInput{}, fields: []string{"id"}},
		{name: "blank title", input: UpdateEnquiryInput{ID: "id-1", Title: ptr("  ")}, fields: []string{"title"}},
		{name: "blank customer", input: UpdateEnquiryInput{ID: "id-1", CustomerName: ptr("")}, fields: []string{"customerName"}},
		{name: "bad status", input: UpdateEnquiryInput{ID: "id-1", Status: ptr(domain.Status("Done"))}, fields: []string{"status"}},
		{name: "bad channel", input: UpdateEnquiryInput{ID: "id-1", Channel: ptr(domain.Channel("Fax"))}, fields: []string{"channel"}},
		{name: "set and clear due", input: UpdateEnquiryInput{ID: "id-1", DueAt: &due, ClearDueAt: true}, fields: []string{"dueAt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, _ := seeded(t)
			_, err := svc.UpdateEnquiry(context.Background(), tt.input)
			requireFieldErrors(t, err, tt.fields...)
		})
	}
}

func TestSetStatus(t *testing.T) {
	t.Parallel()

	svc, _ := seeded(t)

	got, err := svc.SetStatus(context.Background(), "id-3", domain.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, got.Status)

	_, err = svc.SetStatus(context.Background(), "nope", domain.StatusCompleted)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteEnquiry(t *testing.T) {
	t.Parallel()

	svc, repo := seeded(t)
	ctx := context.Background()

	require.NoError(t, svc.DeleteEnquiry(ctx, "id-2"))
	saves := len(repo.SaveCalls())

	_, err := svc.Enquiry("id-2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, svc.Snapshot().Enquiries, 2)

	require.NoError(t, svc.DeleteEnquiry(ctx, "id-2"), "deleting twice is a no-op")
	assert.Len(t, repo.SaveCalls(), saves, "no-op delete does not save")
}

func TestPurgeClosed(t *testing.T) {
	t.Parallel()

	svc, repo := seeded(t)
	ctx := context.Background()

	_, err := svc.SetStatus(ctx, "id-1", domain.StatusCompleted)
	require.NoError(t, err)
	_, err = svc.SetStatus(ctx, "id-3", domain.StatusCancelled)
	require.NoError(t, err)

	n, err := svc.PurgeClosed(ctx, testNow)
	require.NoError(t, err)
	assert.Zero(t, n, "created at the cutoff is not before it")

	saves := len(repo.SaveCalls())
	n, err = svc.PurgeClosed(ctx, testNow.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, repo.SaveCalls(), saves+1)

	require.Len(t, svc.Snapshot().Enquiries, 1)
	assert.Equal(t, "id-2", svc.Snapshot().Enquiries[0].ID)
}

func TestPurgeClosed_SaveFailureKeepsState(t *testing.T) {
	t.Parallel()

	svc, repo := seeded(t)
	ctx := context.Background()
	_, err := svc.SetStatus(ctx, "id-1", domain.StatusCompleted)
	require.NoError(t, err)
	before := svc.Snapshot()

	boom := errors.New("disk full")
	repo.SaveFunc = func(context.Context, domain.Store) error { return boom }

	_, err = svc.PurgeClosed(ctx, testNow.Add(time.Hour))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, before, svc.Snapshot())
}

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

func TestAddCategory(t *testing.T) {
	t.Parallel()

	repo := newMockRepo(domain.DefaultStore())
	svc := newTestService(t, repo)
	ctx := context.Background()

	name, err := svc.AddCategory(ctx, "  banner   stands")
	require.NoError(t, err)
	assert.Equal(t, "Banner Stands", name)
	assert.Equal(t, "Banner Stands", svc.Categories()[len(svc.Categories())-1])
	assert.Len(t, repo.SaveCalls(), 1)

	name, err = svc.AddCategory(ctx, "BANNER STANDS")
	require.NoError(t, err)
	assert.Equal(t, "Banner Stands", name)
	assert.Len(t, repo.SaveCalls(), 1, "duplicate does not save")

	_, err = svc.AddCategory(ctx, "   ")
	requireFieldErrors(t, err, "name")
}

func TestRemoveCategory_KeepsEnquiryCategory(t *testing.T) {
	t.Parallel()

	svc, _ := seeded(t)
	ctx := context.Background()

	require.NoError(t, svc.RemoveCategory(ctx, "Signage"))

	assert.NotContains(t, svc.Categories(), "Signage")
	e, err := svc.Enquiry("id-1")
	require.NoError(t, err)
	assert.Equal(t, "Signage", e.Category)

	require.NoError(t, svc.RemoveCategory(ctx, "Signage"))
}

// ---------------------------------------------------------------------------
// Users and session
// ---------------------------------------------------------------------------

func TestAddUser(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newMockRepo(domain.DefaultStore()))

	u, err := svc.AddUser(context.Background(), AddUserInput{Name: "priya sharma"})
	require.NoError(t, err)

	assert.Equal(t, domain.User{ID: "id-1", Name: "Priya Sharma", Role: domain.UserRoleStaff}, u)
	assert.Len(t, svc.Users(), 3)

	_, err = svc.AddUser(context.Background(), AddUserInput{Name: " ", Role: "owner"})
	requireFieldErrors(t, err, "name", "role")
}

func TestRemoveUser_LeavesAssignmentDangling(t *testing.T) {
	t.Parallel()

	svc, _ := seeded(t)
	ctx := context.Background()

	e, err := svc.UpdateEnquiry(ctx, UpdateEnquiryInput{ID: "id-1", AssignedTo: ptr(domain.SeedStaffID)})
	require.NoError(t, err)
	assert.Equal(t, "Staff", svc.AssigneeName(e))

	require.NoError(t, svc.RemoveUser(ctx, domain.SeedStaffID))

	e, err = svc.Enquiry("id-1")
	require.NoError(t, err)
	require.NotNil(t, e.AssignedTo)
	assert.Equal(t, domain.SeedStaffID, *e.AssignedTo)
	assert.Equal(t, "Unassigned", svc.AssigneeName(e))
}

func TestLoginLogout(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newMockRepo(domain.DefaultStore()))
	ctx := context.Background()

	_, ok := svc.CurrentUser()
	assert.False(t, ok)

	_, err := svc.Login(ctx, "ghost")
	require.ErrorIs(t, err, domain.ErrNotFound)

	u, err := svc.Login(ctx, domain.SeedAdminID)
	require.NoError(t, err)
	assert.Equal(t, "Admin", u.Name)

	cur, ok := svc.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, domain.SeedAdminID, cur.ID)

	require.NoError(t, svc.Logout(ctx))
	_, ok = svc.CurrentUser()
	assert.False(t, ok)
}

func TestRemoveCurrentUser_LogsOut(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newMockRepo(domain.DefaultStore()))
	ctx := context.Background()

	_, err := svc.Login(ctx, domain.SeedStaffID)
	require.NoError(t, err)
	require.NoError(t, svc.RemoveUser(ctx, domain.SeedStaffID))

	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}

// ---------------------------------------------------------------------------
// Views
// ---------------------------------------------------------------------------

func TestDueSoonAndDashboard(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newMockRepo(domain.DefaultStore()))
	ctx := context.Background()

	create := func(title string, due time.Time) string {
		in := validCreate()
		in.Title = title
		in.DueAt = &due
		e, err := svc.CreateEnquiry(ctx, in)
		require.NoError(t, err)
		return e.ID
	}
	past := create("past", time.Date(2024, 6, 14, 9, 0, 0, 0, time.UTC))
	today := create("today", time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC))
	create("tomorrow", time.Date(2024, 6, 16, 0, 1, 0, 0, time.UTC))
	done := create("done", time.Date(2024, 6, 13, 9, 0, 0, 0, time.UTC))
	_, err := svc.SetStatus(ctx, done, domain.StatusCompleted)
	require.NoError(t, err)

	due := svc.DueSoon()
	require.Len(t, due, 2)
	assert.Equal(t, past, due[0].ID)
	assert.Equal(t, today, due[1].ID)

	d := svc.Dashboard()
	assert.Equal(t, 3, d.Pending)
	assert.Equal(t, 1, d.Completed)
	assert.Equal(t, 4, d.Total)
	assert.Equal(t, 2, d.DueSoon)
	assert.Equal(t, 2, d.Overdue)

	list := svc.ListEnquiries(domain.EnquiryFilter{Status: ptr(domain.StatusPending), Text: ptr("TOM")})
	require.Len(t, list, 1)
	assert.Equal(t, "tomorrow", list[0].Title)
}

func TestDueSoon_UsesConfiguredLocation(t *testing.T) {
	t.Parallel()

	ist := time.FixedZone("IST", 5*3600+1800)
	svc := newTestService(t, newMockRepo(domain.DefaultStore()), WithLocation(ist))

	in := validCreate()
	due := time.Date(2024, 6, 15, 20, 0, 0, 0, time.UTC) // 01:30 on the 16th in IST
	in.DueAt = &due
	_, err := svc.CreateEnquiry(context.Background(), in)
	require.NoError(t, err)

	assert.Empty(t, svc.DueSoon())
	assert.Equal(t, ist, svc.Now().Location())
}

func TestReminderLink(t *testing.T) {
	t.Parallel()

	svc, _ := seeded(t)

	link, err := svc.ReminderLink("id-1")
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/555?text=Hello%20Ravi%20Kumar%2C%20this%20is%20a%20reminder%20about%20your%20First%20enquiry%20due%20Jun%2015%2C%2011%3A00.", link)

	_, err = svc.ReminderLink("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// Export / Import
// ---------------------------------------------------------------------------

func TestExportImport(t *testing.T) {
	t.Parallel()

	src, _ := seeded(t)
	data, name, err := src.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "printmax_backup_2024-06-15.json", name)

	repo := newMockRepo(domain.DefaultStore())
	dst := newTestService(t, repo)
	_, err = dst.AddCategory(context.Background(), "Mugs")
	require.NoError(t, err)

	require.NoError(t, dst.Import(context.Background(), data))

	assert.Equal(t, src.Snapshot(), dst.Snapshot())
	assert.NotContains(t, dst.Categories(), "Mugs", "import replaces, never merges")
	assert.Len(t, repo.SaveCalls(), 2)
}

func TestImport_InvalidLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	svc, repo := seeded(t)
	before := svc.Snapshot()
	saves := len(repo.SaveCalls())

	err := svc.Import(context.Background(), []byte(`{"users": [`))

	require.ErrorIs(t, err, domain.ErrInvalidBackupFormat)
	assert.Equal(t, before, svc.Snapshot())
	assert.Len(t, repo.SaveCalls(), saves)
}

func TestImport_SaveFailureLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	boom := errors.New("read-only")
	repo := newMockRepo(domain.DefaultStore())
	repo.SaveFunc = func(ctx context.Context, s domain.Store) error { return boom }
	svc := newTestService(t, repo)

	data, err := persistence.ExportBytes(domain.Store{Categories: []string{"Only"}})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Import(context.Background(), data), boom)
	assert.Equal(t, domain.DefaultStore(), svc.Snapshot())
}

// ---------------------------------------------------------------------------
// Persistence and logging
// ---------------------------------------------------------------------------

func TestService_SurvivesRestart(t *testing.T) {
	t.Parallel()

	kv := memory.New()
	ctx := context.Background()

	first := newTestService(t, persistence.New(kv, "", discardLogger()))
	created, err := first.CreateEnquiry(ctx, validCreate())
	require.NoError(t, err)
	_, err = first.Login(ctx, domain.SeedAdminID)
	require.NoError(t, err)

	second := newTestService(t, persistence.New(kv, "", discardLogger()))

	assert.Equal(t, first.Snapshot(), second.Snapshot())
	got, err := second.Enquiry(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestService_MutationKeepsLoadedDocumentWithBadEnum(t *testing.T) {
	t.Parallel()

	kv := memory.New()
	ctx := context.Background()
	doc := `{"users":[],"categories":["Signage"],"enquiries":[` +
		`{"id":"old","title":"Mugs","category":"Signage","customerName":"Meena","channel":"Email","status":"Pending","createdAt":"2024-06-01T10:00:00Z"}]}`
	require.NoError(t, kv.Set(ctx, persistence.DefaultKey, []byte(doc)))

	svc := newTestService(t, persistence.New(kv, "", discardLogger()))
	_, err := svc.CreateEnquiry(ctx, validCreate())
	require.NoError(t, err)

	reloaded := newTestService(t, persistence.New(kv, "", discardLogger()))
	snap := reloaded.Snapshot()
	require.Len(t, snap.Enquiries, 2)
	_, ok := snap.FindEnquiry("old")
	assert.True(t, ok, "the stored enquiry must survive the next save")
}

func TestService_LogsActor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	svc := NewService(context.Background(), logger, newMockRepo(domain.DefaultStore()),
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(sequentialIDs()),
	)

	ctx := ctxutil.WithActor(context.Background(), "user-staff")
	_, err := svc.CreateEnquiry(ctx, validCreate())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "service=desk")
	assert.Contains(t, out, "actor=user-staff")
	assert.Contains(t, out, "enquiry_id=id-1")
}
