package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/killua-y/kanbas-fullstack-app/core/post"
)

type postRepository struct {
	db *DB
}

var _ post.Repository = (*postRepository)(nil) // interface compliance check

func NewPostRepository(db *DB) *postRepository {
	return &postRepository{db: db}
}

func (repo *postRepository) query(match func(post.Post) bool) []post.Post {
	posts := make([]post.Post, 0, len(repo.db.posts))
	for _, p := range repo.db.posts {
		if match(*p) {
			posts = append(posts, *p)
		}
	}
	// newest first
	sort.Slice(posts, func(i, j int) bool { return posts[i].Date.After(posts[j].Date) })
	return posts
}

func (repo *postRepository) CreatePost(_ context.Context, p post.Post) (post.Post, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	repo.db.posts[p.ID] = &p
	return p, nil
}

func (repo *postRepository) GetPost(_ context.Context, id string) (post.Post, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if p, ok := repo.db.posts[id]; ok {
		return *p, nil
	}
	return post.Post{}, post.ErrNotFound
}

func (repo *postRepository) FindPostsByCourse(_ context.Context, courseID string) ([]post.Post, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(func(p post.Post) bool { return p.Course == courseID }), nil
}

func (repo *postRepository) FindPostsByFolder(_ context.Context, folderID string) ([]post.Post, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(func(p post.Post) bool { return contains(p.Folders, folderID) }), nil
}

func (repo *postRepository) FindPostsByUser(_ context.Context, userID string) ([]post.Post, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(func(p post.Post) bool { return p.PostBy == userID }), nil
}

func (repo *postRepository) FindPostsVisibleToUser(_ context.Context, userID, courseID string) ([]post.Post, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(func(p post.Post) bool {
		return (p.Course == courseID && p.PostTo == post.ToCourse) || contains(p.IndividualRecipients, userID)
	}), nil
}

func (repo *postRepository) UpdatePost(_ context.Context, id string, up post.UpdatePost) (post.Post, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	// only save set fields
	p, ok := repo.db.posts[id]
	if !ok {
		return post.Post{}, post.ErrNotFound
	}
	if up.PostType != "" {
		p.PostType = up.PostType
	}
	if up.PostTo != "" {
		p.PostTo = up.PostTo
	}
	if up.Title != "" {
		p.Title = up.Title
	}
	if up.Text != "" {
		p.Text = up.Text
	}
	if up.Folders != nil {
		p.Folders = up.Folders
	}
	if up.IndividualRecipients != nil {
		p.IndividualRecipients = up.IndividualRecipients
	}
	return *p, nil
}

func (repo *postRepository) DeletePost(_ context.Context, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.posts[id]; !ok {
		return post.ErrNotFound
	}
	delete(repo.db.posts, id)
	return nil
}

func (repo *postRepository) AddViewer(_ context.Context, id, userID string) (post.Post, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	p, ok := repo.db.posts[id]
	if !ok {
		return post.Post{}, post.ErrNotFound
	}
	if !contains(p.ViewedBy, userID) {
		p.ViewedBy = append(p.ViewedBy, userID)
	}
	return *p, nil
}

func (repo *postRepository) MarkPostRead(_ context.Context, id string) (post.Post, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	p, ok := repo.db.posts[id]
	if !ok {
		return post.Post{}, post.ErrNotFound
	}
	p.IsRead = true
	return *p, nil
}

func (repo *postRepository) SetResolved(_ context.Context, id string, resolved bool) (post.Post, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	p, ok := repo.db.posts[id]
	if !ok {
		return post.Post{}, post.ErrNotFound
	}
	p.IsResolved = resolved
	return *p, nil
}

func (repo *postRepository) SetPinned(_ context.Context, id string, pinned bool) (post.Post, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	p, ok := repo.db.posts[id]
	if !ok {
		return post.Post{}, post.ErrNotFound
	}
	p.IsPinned = pinned
	return *p, nil
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
