package post_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/killua-y/kanbas-fullstack-app/core"
	"github.com/killua-y/kanbas-fullstack-app/core/folder"
	"github.com/killua-y/kanbas-fullstack-app/core/post"
	"github.com/killua-y/kanbas-fullstack-app/core/user"
	"github.com/killua-y/kanbas-fullstack-app/services/email"
	"github.com/killua-y/kanbas-fullstack-app/storage/database/inmem"
	"github.com/killua-y/kanbas-fullstack-app/tests"
)

func setup(t *testing.T) (*post.Service, *folder.Service, *inmemdb.DB) {
	t.Helper()
	db := inmemdb.NewDB()
	folderSvc := folder.NewService(inmemdb.NewFolderRepository(db))
	svc := post.NewService(
		inmemdb.NewPostRepository(db),
		folderSvc,
		inmemdb.NewUserRepository(db),
		emailsvc.NewConsoleServiceMock(),
	)
	return svc, folderSvc, db
}

func TestService_Create_resolvesFolders(t *testing.T) {
	svc, folderSvc, db := setup(t)
	ctx := context.Background()

	crs := testutil.CreateCourse(t, inmemdb.NewCourseRepository(db), "Web Dev", "CS5610")
	hw1 := testutil.CreateFolder(t, inmemdb.NewFolderRepository(db), "hw1", "u1", crs.ID)

	p, err := svc.Create(ctx, post.NewPost{
		Title:   "Q1",
		Text:    "Is hw1 due Friday?",
		PostBy:  "u1",
		Course:  crs.ID,
		Folders: []string{"hw1", "exams", "hw1"}, // dupes collapse
	})
	assert.NoError(t, err)
	assert.Len(t, p.Folders, 2)
	assert.Equal(t, hw1.ID, p.Folders[0])

	// "exams" did not exist; it was created on the fly
	exams, err := folderSvc.ByCourse(ctx, crs.ID)
	assert.NoError(t, err)
	assert.Len(t, exams, 2)

	assert.NotZero(t, p.Date)
	assert.NotNil(t, p.ViewedBy)
	assert.Empty(t, p.ViewedBy)
}

func TestService_Create_flaggedContent(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	origTerms := core.Conf.FlaggedTerms
	core.Conf.FlaggedTerms = []string{"Spam", "scam "}
	defer func() { core.Conf.FlaggedTerms = origTerms }()

	tests := []struct {
		name    string
		title   string
		text    string
		wantErr error
	}{
		{name: "clean", title: "Q1", text: "When is hw1 due?"},
		{name: "flagged title", title: "Free SPAM here", text: "lol", wantErr: post.ErrContentFlagged},
		{name: "flagged text", title: "Q2", text: "this is a scam", wantErr: post.ErrContentFlagged},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, post.NewPost{Title: tt.title, Text: tt.text, PostBy: "u1", Course: "c1"})
			assert.Equal(t, tt.wantErr, err)
			if tt.wantErr != nil {
				assert.True(t, core.IsPolicyError(err))
			}
		})
	}
}

func TestService_Create_notifiesRecipients(t *testing.T) {
	svc, _, db := setup(t)
	ctx := context.Background()

	dest := testutil.CreateUser(t, inmemdb.NewUserRepository(db), "Awe", "awe123", "awe@test.cd", "", user.StudentRoles, true)

	emailsvc.SentMessages = nil
	_, err := svc.Create(ctx, post.NewPost{
		PostTo:               post.ToIndividual,
		Title:                "psst",
		Text:                 "hello there",
		PostBy:               "u1",
		Course:               "c1",
		IndividualRecipients: []string{dest.ID, "ghost"},
	})
	assert.NoError(t, err)
	if assert.Len(t, emailsvc.SentMessages, 1) {
		msg := emailsvc.SentMessages[0]
		assert.Equal(t, dest.Email, msg.To[0].Address)
		assert.Contains(t, msg.Subject, "psst")
	}
}

func TestService_View_recordsViewerOnce(t *testing.T) {
	svc, _, db := setup(t)
	ctx := context.Background()

	p := testutil.CreatePost(t, inmemdb.NewPostRepository(db), post.Post{Title: "Q1", Text: "halp", PostBy: "u1", Course: "c1"})

	for i := 0; i < 3; i++ {
		if _, err := svc.View(ctx, p.ID, "u2"); err != nil {
			t.Fatalf("View() failed: %v", err)
		}
	}
	viewed, err := svc.Get(ctx, p.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"u2"}, viewed.ViewedBy)

	_, err = svc.View(ctx, "nope", "u2")
	assert.Equal(t, post.ErrNotFound, err)
}

func TestService_VisibleToUser(t *testing.T) {
	svc, _, db := setup(t)
	ctx := context.Background()
	repo := inmemdb.NewPostRepository(db)

	courseWide := testutil.CreatePost(t, repo, post.Post{PostTo: post.ToCourse, Title: "all", PostBy: "u1", Course: "c1"})
	mine := testutil.CreatePost(t, repo, post.Post{PostTo: post.ToIndividual, Title: "mine", PostBy: "u1", Course: "c1", IndividualRecipients: []string{"u2"}})
	testutil.CreatePost(t, repo, post.Post{PostTo: post.ToIndividual, Title: "other", PostBy: "u1", Course: "c1", IndividualRecipients: []string{"u3"}})
	testutil.CreatePost(t, repo, post.Post{PostTo: post.ToCourse, Title: "elsewhere", PostBy: "u1", Course: "c2"})

	posts, err := svc.VisibleToUser(ctx, "u2", "c1")
	assert.NoError(t, err)

	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, []string{courseWide.ID, mine.ID}, ids)
}

func TestService_ToggleResolved(t *testing.T) {
	svc, _, db := setup(t)
	ctx := context.Background()

	p := testutil.CreatePost(t, inmemdb.NewPostRepository(db), post.Post{Title: "Q1", PostBy: "u1", Course: "c1"})

	p1, err := svc.ToggleResolved(ctx, p.ID)
	assert.NoError(t, err)
	assert.True(t, p1.IsResolved)

	p2, err := svc.ToggleResolved(ctx, p.ID)
	assert.NoError(t, err)
	assert.False(t, p2.IsResolved)
}

func TestService_TogglePinned(t *testing.T) {
	svc, _, db := setup(t)
	ctx := context.Background()

	p := testutil.CreatePost(t, inmemdb.NewPostRepository(db), post.Post{Title: "Q1", PostBy: "u1", Course: "c1"})

	p1, err := svc.TogglePinned(ctx, p.ID)
	assert.NoError(t, err)
	assert.True(t, p1.IsPinned)

	p2, err := svc.TogglePinned(ctx, p.ID)
	assert.NoError(t, err)
	assert.False(t, p2.IsPinned)
}

func TestService_Search(t *testing.T) {
	svc, _, db := setup(t)
	ctx := context.Background()
	postRepo := inmemdb.NewPostRepository(db)

	hw1 := testutil.CreateFolder(t, inmemdb.NewFolderRepository(db), "hw1", "u1", "c1")
	inHw1 := testutil.CreatePost(t, postRepo, post.Post{Title: "deadline", Text: "when?", PostBy: "u1", Course: "c1", Folders: []string{hw1.ID}})
	keyworded := testutil.CreatePost(t, postRepo, post.Post{Title: "grading question", Text: "curve?", PostBy: "u2", Course: "c1"})
	testutil.CreatePost(t, postRepo, post.Post{Title: "unrelated", Text: "nope", PostBy: "u3", Course: "c1"})

	all, err := svc.ByCourse(ctx, "c1")
	if err != nil {
		t.Fatalf("ByCourse() failed: %v", err)
	}
	allIDs := make([]string, 0, len(all))
	for _, p := range all {
		allIDs = append(allIDs, p.ID)
	}

	tests := []struct {
		name    string
		search  string
		wantIDs []string
	}{
		{name: "empty search returns all", search: " ", wantIDs: allIDs},
		{name: "keyword", search: "grading", wantIDs: []string{keyworded.ID}},
		{name: "folder", search: "[hw1]", wantIDs: []string{inHw1.ID}},
		{name: "folder or keyword", search: "[hw1] grading", wantIDs: []string{inHw1.ID, keyworded.ID}},
		{name: "no match", search: "[exams] zzz", wantIDs: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Search(ctx, all, tt.search)
			assert.NoError(t, err)
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.ElementsMatch(t, tt.wantIDs, ids)
		})
	}
}
