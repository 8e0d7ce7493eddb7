package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	. "github.com/killua-y/kanbas-fullstack-app/apps/api/echo"
	"github.com/killua-y/kanbas-fullstack-app/core/assignment"
	"github.com/killua-y/kanbas-fullstack-app/core/course"
	"github.com/killua-y/kanbas-fullstack-app/core/enrollment"
	"github.com/killua-y/kanbas-fullstack-app/core/user"
	"github.com/killua-y/kanbas-fullstack-app/tests"
)

func Test_courseApi_flow(t *testing.T) {
	resetServer()

	student := testutil.CreateUser(t, usrRepo, "Alice", "alice1", "alice@test.cd", "", user.StudentRoles, true)
	prof := testutil.CreateUser(t, usrRepo, "Prof", "prof01", "prof@test.cd", "", user.TeacherRoles, true)
	studentToken := getToken(t, student)
	profToken := getToken(t, prof)

	// creating a course requires faculty
	body := marchallObj(t, course.NewCourse{Name: "Web Dev", Number: "CS5610"})
	req, rec := newAuthRequest(http.MethodPost, "/api/courses", studentToken, body)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)}, rec)

	req, rec = newAuthRequest(http.MethodPost, "/api/courses", profToken, body)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create course: code = %v; body %s", rec.Code, rec.Body.String())
	}
	var crs course.Course
	if err := json.Unmarshal(rec.Body.Bytes(), &crs); err != nil {
		t.Fatalf("unmarshalling course: %v", err)
	}

	// students can read it
	req, rec = newAuthRequest(http.MethodGet, "/api/courses/"+crs.ID, studentToken)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, crs)}, rec)

	// modules
	body = marchallObj(t, course.NewModule{Name: "Week 1", Lessons: []course.Lesson{{Name: "Syllabus"}}})
	req, rec = newAuthRequest(http.MethodPost, "/api/courses/"+crs.ID+"/modules", profToken, body)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create module: code = %v; body %s", rec.Code, rec.Body.String())
	}
	var mod course.Module
	if err := json.Unmarshal(rec.Body.Bytes(), &mod); err != nil {
		t.Fatalf("unmarshalling module: %v", err)
	}
	if mod.Course != crs.ID {
		t.Errorf("module course = %s; want %s", mod.Course, crs.ID)
	}

	req, rec = newAuthRequest(http.MethodGet, "/api/courses/"+crs.ID+"/modules", studentToken)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallList(t, mod)}, rec)

	// assignments
	body = marchallObj(t, assignment.NewAssignment{Title: "A1", Points: 100})
	req, rec = newAuthRequest(http.MethodPost, "/api/courses/"+crs.ID+"/assignments", profToken, body)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create assignment: code = %v; body %s", rec.Code, rec.Body.String())
	}
	var a1 assignment.Assignment
	if err := json.Unmarshal(rec.Body.Bytes(), &a1); err != nil {
		t.Fatalf("unmarshalling assignment: %v", err)
	}

	req, rec = newAuthRequest(http.MethodGet, "/api/assignments/"+a1.ID, studentToken)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, a1)}, rec)

	// deleting the course leaves its module in place
	req, rec = newAuthRequest(http.MethodDelete, "/api/courses/"+crs.ID, profToken)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete course: code = %v; body %s", rec.Code, rec.Body.String())
	}

	req, rec = newAuthRequest(http.MethodGet, "/api/courses/"+crs.ID, studentToken)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Message: "course not found"})}, rec)

	req, rec = newAuthRequest(http.MethodGet, "/api/modules/"+mod.ID, studentToken)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marchallObj(t, mod)}, rec)
}

func Test_enrollmentApi_flow(t *testing.T) {
	resetServer()

	student := testutil.CreateUser(t, usrRepo, "Alice", "alice1", "alice@test.cd", "", user.StudentRoles, true)
	admin := testutil.CreateUser(t, usrRepo, "Admin", "admin1", "admin@test.cd", "", user.AdminRoles, true)
	token := getToken(t, student)

	success := marchallObj(t, StatusResponse{Status: "success"})

	// enroll the session user twice; duplicates are allowed
	for i := 0; i < 2; i++ {
		req, rec := newAuthRequest(http.MethodPost, "/api/enrollments/c1", token)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: success}, rec)
	}

	req, rec := newAuthRequest(http.MethodGet, "/api/enrollments/mine", token)
	app.ServeHTTP(rec, req)
	var mine []enrollment.Enrollment
	if err := json.Unmarshal(rec.Body.Bytes(), &mine); err != nil {
		t.Fatalf("unmarshalling enrollments: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("got %d enrollments; want 2", len(mine))
	}

	// the full listing is admin-only
	req, rec = newAuthRequest(http.MethodGet, "/api/enrollments", token)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)}, rec)

	req, rec = newAuthRequest(http.MethodGet, "/api/enrollments", getToken(t, admin))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("list enrollments: code = %v; body %s", rec.Code, rec.Body.String())
	}

	// unenroll removes one record per call
	for i := 0; i < 2; i++ {
		req, rec = newAuthRequest(http.MethodDelete, "/api/enrollments/c1", token)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: success}, rec)
	}

	// nothing left to remove
	req, rec = newAuthRequest(http.MethodDelete, "/api/enrollments/c1", token)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Message: "enrollment not found"})}, rec)
}
