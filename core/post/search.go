package post

import (
	"regexp"
	"strings"
)

var (
	folderTokenRegex = regexp.MustCompile(`\[([^\]]+)\]`)
	wordRegex        = regexp.MustCompile(`\b\w+\b`)
)

// ParseFolders extracts folder names from a search string. Folder names are
// enclosed in square brackets, e.g. "[hw1][exams]".
func ParseFolders(search string) []string {
	matches := folderTokenRegex.FindAllString(search, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1:len(m)-1])
	}
	return names
}

// ParseKeywords extracts the individual keywords from a search string,
// ignoring any bracketed folder tokens.
func ParseKeywords(search string) []string {
	stripped := folderTokenRegex.ReplaceAllString(search, " ")
	return wordRegex.FindAllString(stripped, -1)
}

// FilterBySearch keeps posts matching any parsed keyword in their title or
// text, or referencing any folder named in the search expression.
// folderNames maps folder ids to folder names.
func FilterBySearch(posts []Post, search string, folderNames map[string]string) []Post {
	keywords := ParseKeywords(search)
	folders := ParseFolders(search)

	res := make([]Post, 0, len(posts))
	for _, p := range posts {
		if matchesKeyword(p, keywords) || matchesFolder(p, folders, folderNames) {
			res = append(res, p)
		}
	}
	return res
}

func matchesKeyword(p Post, keywords []string) bool {
	for _, w := range keywords {
		if strings.Contains(p.Title, w) || strings.Contains(p.Text, w) {
			return true
		}
	}
	return false
}

func matchesFolder(p Post, folders []string, folderNames map[string]string) bool {
	for _, name := range folders {
		for _, id := range p.Folders {
			if folderNames[id] == name {
				return true
			}
		}
	}
	return false
}
