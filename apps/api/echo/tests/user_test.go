package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	. "github.com/killua-y/kanbas-fullstack-app/apps/api/echo"
	"github.com/killua-y/kanbas-fullstack-app/core/user"
	"github.com/killua-y/kanbas-fullstack-app/tests"
)

type fieldErrs struct {
	Message map[string]string `json:"message"`
}

func Test_userApi_login(t *testing.T) {
	resetServer()

	usr := testutil.CreateUser(t, usrRepo, "User", "awe123", "awe@test.cd", "mdr", user.StudentRoles, true)
	testutil.CreateUser(t, usrRepo, "Lazy", "lazy01", "lazy@test.cd", "mdr", user.StudentRoles, false)

	tests := []httpTest{
		{
			name: "empty body", body: []byte("{}"), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, fieldErrs{Message: map[string]string{
				"username": "this field is required",
				"password": "this field is required",
			}}),
		},
		{
			name: "unknown user", body: marchallObj(t, LoginRequest{Username: "ghost", Password: "mdr"}),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Message: "authentication failed"}),
		},
		{
			name: "wrong password", body: marchallObj(t, LoginRequest{Username: usr.Username, Password: "nope"}),
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, httpErr{Message: "authentication failed"}),
		},
		{
			name: "deactivated account", body: marchallObj(t, LoginRequest{Username: "lazy01", Password: "mdr"}),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, httpErr{Message: "account deactivated"}),
		},
		{name: "login with username", body: marchallObj(t, LoginRequest{Username: usr.Username, Password: "mdr"}), wantCode: http.StatusOK},
		{name: "login with email", body: marchallObj(t, LoginRequest{Username: usr.Email, Password: "mdr"}), wantCode: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/api/users/login", tt.body)
			app.ServeHTTP(rec, req)

			checkCodeAndData(t, tt, rec)
			if tt.wantCode == http.StatusOK {
				var resp LoginResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("unmarshalling LoginResponse: %v", err)
				}
				if resp.Token == "" {
					t.Error("expected a token")
				}
			}
		})
	}
}

func Test_userApi_query(t *testing.T) {
	resetServer()

	student := testutil.CreateUser(t, usrRepo, "Hero", "hero01", "hero@test.cd", "", user.StudentRoles, true)
	admin := testutil.CreateUser(t, usrRepo, "Admin", "admin1", "admin@test.cd", "", user.AdminRoles, true)
	adminToken := getToken(t, admin)

	tests := []httpTest{
		{name: "auth required", path: "/api/users", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "admin required", path: "/api/users", token: getToken(t, student),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{name: "get all", path: "/api/users", token: adminToken, wantCode: http.StatusOK, extra: 2},
		{name: "search match", path: "/api/users?search=hero", token: adminToken, wantCode: http.StatusOK, extra: 1},
		{name: "search no match", path: "/api/users?search=zzz", token: adminToken, wantCode: http.StatusOK, extra: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, tt.path, tt.token)
			app.ServeHTTP(rec, req)

			checkCodeAndData(t, tt, rec)
			if want, ok := tt.extra.(int); ok && rec.Code == http.StatusOK {
				var users []user.User
				if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
					t.Fatalf("unmarshalling users: %v", err)
				}
				if len(users) != want {
					t.Errorf("got %d users; want %d", len(users), want)
				}
			}
		})
	}
}

func Test_userApi_detail(t *testing.T) {
	resetServer()

	usr := testutil.CreateUser(t, usrRepo, "User", "awe123", "awe@test.cd", "", user.StudentRoles, true)
	other := testutil.CreateUser(t, usrRepo, "Other", "other1", "other@test.cd", "", user.StudentRoles, true)
	admin := testutil.CreateUser(t, usrRepo, "Admin", "admin1", "admin@test.cd", "", user.AdminRoles, true)

	tests := []httpTest{
		{name: "auth required", method: http.MethodGet, path: "/api/users/" + usr.ID, wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{
			name: "self get", method: http.MethodGet, path: "/api/users/" + usr.ID, token: getToken(t, usr),
			wantCode: http.StatusOK, wantData: marchallObj(t, usr),
		},
		{
			name: "other user forbidden", method: http.MethodGet, path: "/api/users/" + usr.ID, token: getToken(t, other),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{
			name: "admin get", method: http.MethodGet, path: "/api/users/" + usr.ID, token: getToken(t, admin),
			wantCode: http.StatusOK, wantData: marchallObj(t, usr),
		},
		{
			name: "admin get unknown", method: http.MethodGet, path: "/api/users/nope", token: getToken(t, admin),
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Message: "user not found"}),
		},
		{
			name: "delete needs admin", method: http.MethodDelete, path: "/api/users/" + usr.ID, token: getToken(t, usr),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden),
		},
		{name: "admin delete", method: http.MethodDelete, path: "/api/users/" + usr.ID, token: getToken(t, admin), wantCode: http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token)
			app.ServeHTTP(rec, req)
			if tt.wantCode == http.StatusNoContent {
				if rec.Code != tt.wantCode {
					t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
				}
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_userApi_profile(t *testing.T) {
	resetServer()

	usr := testutil.CreateUser(t, usrRepo, "User", "awe123", "awe@test.cd", "", user.StudentRoles, true)

	tt := httpTest{
		name: "profile", path: "/api/users/profile", token: getToken(t, usr),
		wantCode: http.StatusOK, wantData: marchallObj(t, usr),
	}
	req, rec := newAuthRequest(http.MethodGet, tt.path, tt.token)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, tt, rec)
}
