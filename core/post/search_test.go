package post

import (
	"reflect"
	"testing"
)

func TestParseFolders(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "empty", search: "", want: []string{}},
		{name: "no folders", search: "binary search", want: []string{}},
		{name: "single folder", search: "[hw1]", want: []string{"hw1"}},
		{name: "folders and keywords", search: "[hw1] recursion [exams]", want: []string{"hw1", "exams"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseFolders(tt.search); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseFolders() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseKeywords(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "empty", search: "", want: nil},
		{name: "keywords only", search: "binary search", want: []string{"binary", "search"}},
		{name: "folders stripped", search: "[hw1] recursion", want: []string{"recursion"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseKeywords(tt.search); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseKeywords() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterBySearch(t *testing.T) {
	posts := []Post{
		{ID: "p1", Title: "Recursion question", Text: "base case?", Folders: []string{"f1"}},
		{ID: "p2", Title: "Exam logistics", Text: "room change", Folders: []string{"f2"}},
		{ID: "p3", Title: "Office hours", Text: "moved to 3pm", Folders: []string{"f1", "f2"}},
	}
	names := map[string]string{"f1": "hw1", "f2": "exams"}

	tests := []struct {
		name    string
		search  string
		wantIDs []string
	}{
		{name: "keyword in title", search: "Recursion", wantIDs: []string{"p1"}},
		{name: "keyword in text", search: "room", wantIDs: []string{"p2"}},
		{name: "folder token", search: "[exams]", wantIDs: []string{"p2", "p3"}},
		{name: "keyword or folder", search: "[hw1] room", wantIDs: []string{"p1", "p2", "p3"}},
		{name: "no match", search: "quantum", wantIDs: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterBySearch(posts, tt.search, names)
			gotIDs := make([]string, 0, len(got))
			for _, p := range got {
				gotIDs = append(gotIDs, p.ID)
			}
			if !reflect.DeepEqual(gotIDs, tt.wantIDs) {
				t.Errorf("FilterBySearch() ids = %v, want %v", gotIDs, tt.wantIDs)
			}
		})
	}
}
