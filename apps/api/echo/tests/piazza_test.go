package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/killua-y/kanbas-fullstack-app/core"
	"github.com/killua-y/kanbas-fullstack-app/core/answer"
	"github.com/killua-y/kanbas-fullstack-app/core/folder"
	"github.com/killua-y/kanbas-fullstack-app/core/post"
	"github.com/killua-y/kanbas-fullstack-app/core/user"
	"github.com/killua-y/kanbas-fullstack-app/storage/database/inmem"
	"github.com/killua-y/kanbas-fullstack-app/tests"
)

func Test_postApi_flow(t *testing.T) {
	resetServer()

	student := testutil.CreateUser(t, usrRepo, "Alice", "alice1", "alice@test.cd", "", user.StudentRoles, true)
	prof := testutil.CreateUser(t, usrRepo, "Prof", "prof01", "prof@test.cd", "", user.TeacherRoles, true)
	token := getToken(t, student)
	profToken := getToken(t, prof)

	// auth is required on the whole piazza group
	req, rec := newRequest(http.MethodGet, "/api/piazza/posts/course/c1")
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}, rec)

	// create a question in folder hw1; the folder is created on the fly
	body := marchallObj(t, post.NewPost{
		Title:   "Q1",
		Text:    "Is hw1 due Friday?",
		PostBy:  student.ID,
		Course:  "c1",
		Folders: []string{"hw1"},
	})
	req, rec = newAuthRequest(http.MethodPost, "/api/piazza/posts", token, body)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create post: code = %v; want %v; body %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	var q1 post.Post
	if err := json.Unmarshal(rec.Body.Bytes(), &q1); err != nil {
		t.Fatalf("unmarshalling post: %v", err)
	}
	if q1.PostType != post.TypeQuestion || q1.PostTo != post.ToCourse {
		t.Errorf("defaults not applied: %+v", q1)
	}
	if len(q1.Folders) != 1 {
		t.Fatalf("folders = %v; want 1 id", q1.Folders)
	}

	// retrieving without userId is a 400
	req, rec = newAuthRequest(http.MethodGet, "/api/piazza/posts/"+q1.ID, token)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusBadRequest,
		wantData: marchallObj(t, httpErr{Message: "userId query parameter is required"}),
	}, rec)

	// retrieving records the viewer; viewing twice records once
	for i := 0; i < 2; i++ {
		req, rec = newAuthRequest(http.MethodGet, "/api/piazza/posts/"+q1.ID+"?userId="+prof.ID, profToken)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("retrieve post: code = %v; body %s", rec.Code, rec.Body.String())
		}
	}
	viewed, err := inmemdb.NewPostRepository(db).GetPost(req.Context(), q1.ID)
	if err != nil {
		t.Fatalf("GetPost() failed: %v", err)
	}
	if len(viewed.ViewedBy) != 1 || viewed.ViewedBy[0] != prof.ID {
		t.Errorf("viewedBy = %v; want [%s]", viewed.ViewedBy, prof.ID)
	}

	// search by folder
	req, rec = newAuthRequest(http.MethodGet, "/api/piazza/posts/course/c1?search=%5Bhw1%5D", token)
	app.ServeHTTP(rec, req)
	var found []post.Post
	if err := json.Unmarshal(rec.Body.Bytes(), &found); err != nil {
		t.Fatalf("unmarshalling posts: %v", err)
	}
	if len(found) != 1 || found[0].ID != q1.ID {
		t.Errorf("search = %v; want [%s]", found, q1.ID)
	}

	// search misses
	req, rec = newAuthRequest(http.MethodGet, "/api/piazza/posts/course/c1?search=%5Bexams%5D", token)
	app.ServeHTTP(rec, req)
	if err := json.Unmarshal(rec.Body.Bytes(), &found); err != nil {
		t.Fatalf("unmarshalling posts: %v", err)
	}
	if len(found) != 0 {
		t.Errorf("search = %v; want none", found)
	}

	// resolve toggle is an involution
	for _, want := range []bool{true, false} {
		req, rec = newAuthRequest(http.MethodPut, "/api/piazza/posts/"+q1.ID+"/resolved", profToken)
		app.ServeHTTP(rec, req)
		var p post.Post
		if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
			t.Fatalf("unmarshalling post: %v", err)
		}
		if p.IsResolved != want {
			t.Errorf("isResolved = %v; want %v", p.IsResolved, want)
		}
	}

	// delete
	req, rec = newAuthRequest(http.MethodDelete, "/api/piazza/posts/"+q1.ID, token)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, httpErr{Message: "Post deleted successfully"})}, rec)

	req, rec = newAuthRequest(http.MethodGet, "/api/piazza/posts/"+q1.ID+"?userId="+prof.ID, token)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Message: "post not found"})}, rec)
}

func Test_postApi_flaggedContent(t *testing.T) {
	resetServer()

	student := testutil.CreateUser(t, usrRepo, "Alice", "alice1", "alice@test.cd", "", user.StudentRoles, true)
	token := getToken(t, student)

	origTerms := core.Conf.FlaggedTerms
	core.Conf.FlaggedTerms = []string{"crypto giveaway"}
	defer func() { core.Conf.FlaggedTerms = origTerms }()

	body := marchallObj(t, post.NewPost{Title: "FREE Crypto Giveaway", Text: "click here", PostBy: student.ID, Course: "c1", Folders: []string{"general"}})
	req, rec := newAuthRequest(http.MethodPost, "/api/piazza/posts", token, body)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusForbidden,
		wantData: marchallObj(t, httpErr{Message: "post flagged by content moderation"}),
	}, rec)
}

func Test_answerApi(t *testing.T) {
	resetServer()

	student := testutil.CreateUser(t, usrRepo, "Alice", "alice1", "alice@test.cd", "", user.StudentRoles, true)
	prof := testutil.CreateUser(t, usrRepo, "Prof", "prof01", "prof@test.cd", "", user.TeacherRoles, true)
	token := getToken(t, student)

	q1 := testutil.CreatePost(t, inmemdb.NewPostRepository(db), post.Post{Title: "Q1", Text: "halp", PostBy: student.ID, Course: "c1"})

	// student answer
	body := marchallObj(t, answer.NewAnswer{Post: q1.ID, Text: "try this", Author: student.ID})
	req, rec := newAuthRequest(http.MethodPost, "/api/piazza/answers", token, body)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create answer: code = %v; body %s", rec.Code, rec.Body.String())
	}

	// a second student answer is rejected
	body = marchallObj(t, answer.NewAnswer{Post: q1.ID, Text: "me too", Author: "u3"})
	req, rec = newAuthRequest(http.MethodPost, "/api/piazza/answers", token, body)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusBadRequest,
		wantData: marchallObj(t, httpErr{Message: "post already has an answer of this kind"}),
	}, rec)

	// the instructor answer resolves the post
	body = marchallObj(t, answer.NewAnswer{Post: q1.ID, Text: "Sunday.", Author: prof.ID, IsInstructorAnswer: true})
	req, rec = newAuthRequest(http.MethodPost, "/api/piazza/answers", getToken(t, prof), body)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create instructor answer: code = %v; body %s", rec.Code, rec.Body.String())
	}
	p, err := inmemdb.NewPostRepository(db).GetPost(req.Context(), q1.ID)
	if err != nil {
		t.Fatalf("GetPost() failed: %v", err)
	}
	if !p.IsResolved {
		t.Error("instructor answer should resolve the post")
	}

	// both answers are listed, instructor answer (newest) first
	req, rec = newAuthRequest(http.MethodGet, "/api/piazza/answers/post/"+q1.ID, token)
	app.ServeHTTP(rec, req)
	var answers []answer.Answer
	if err := json.Unmarshal(rec.Body.Bytes(), &answers); err != nil {
		t.Fatalf("unmarshalling answers: %v", err)
	}
	if len(answers) != 2 {
		t.Errorf("got %d answers; want 2", len(answers))
	}
}

func Test_folderApi(t *testing.T) {
	resetServer()

	prof := testutil.CreateUser(t, usrRepo, "Prof", "prof01", "prof@test.cd", "", user.TeacherRoles, true)
	token := getToken(t, prof)

	body := marchallObj(t, folder.NewFolder{Name: "hw1", Author: prof.ID, Course: "c1"})
	req, rec := newAuthRequest(http.MethodPost, "/api/piazza/folders", token, body)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create folder: code = %v; body %s", rec.Code, rec.Body.String())
	}
	var hw1 folder.Folder
	if err := json.Unmarshal(rec.Body.Bytes(), &hw1); err != nil {
		t.Fatalf("unmarshalling folder: %v", err)
	}

	// deleting the folder leaves referencing posts untouched
	q1 := testutil.CreatePost(t, inmemdb.NewPostRepository(db), post.Post{Title: "Q1", PostBy: prof.ID, Course: "c1", Folders: []string{hw1.ID}})

	req, rec = newAuthRequest(http.MethodDelete, "/api/piazza/folders/"+hw1.ID, token)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, httpErr{Message: "Folder deleted successfully"})}, rec)

	p, err := inmemdb.NewPostRepository(db).GetPost(req.Context(), q1.ID)
	if err != nil {
		t.Fatalf("GetPost() failed: %v", err)
	}
	if len(p.Folders) != 1 || p.Folders[0] != hw1.ID {
		t.Errorf("post folders = %v; want dangling [%s]", p.Folders, hw1.ID)
	}

	req, rec = newAuthRequest(http.MethodGet, "/api/piazza/folders/"+hw1.ID, token)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Message: "folder not found"})}, rec)
}
