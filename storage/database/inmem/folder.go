package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/killua-y/kanbas-fullstack-app/core/folder"
)

type folderRepository struct {
	db *DB
}

var _ folder.Repository = (*folderRepository)(nil) // interface compliance check

func NewFolderRepository(db *DB) *folderRepository {
	return &folderRepository{db: db}
}

func (repo *folderRepository) query(match func(folder.Folder) bool) []folder.Folder {
	folders := make([]folder.Folder, 0)
	for _, f := range repo.db.folders {
		if match(*f) {
			folders = append(folders, *f)
		}
	}
	sort.Slice(folders, func(i, j int) bool { return folders[i].Name < folders[j].Name })
	return folders
}

func (repo *folderRepository) CreateFolder(_ context.Context, f folder.Folder) (folder.Folder, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	repo.db.folders[f.ID] = &f
	return f, nil
}

func (repo *folderRepository) GetFolder(_ context.Context, id string) (folder.Folder, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if f, ok := repo.db.folders[id]; ok {
		return *f, nil
	}
	return folder.Folder{}, folder.ErrNotFound
}

func (repo *folderRepository) GetFolderByName(_ context.Context, courseID, name string) (folder.Folder, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, f := range repo.db.folders {
		if f.Course == courseID && f.Name == name {
			return *f, nil
		}
	}
	return folder.Folder{}, folder.ErrNotFound
}

func (repo *folderRepository) FindAllFolders(_ context.Context) ([]folder.Folder, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(func(folder.Folder) bool { return true }), nil
}

func (repo *folderRepository) FindFoldersByCourse(_ context.Context, courseID string) ([]folder.Folder, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(func(f folder.Folder) bool { return f.Course == courseID }), nil
}

func (repo *folderRepository) FindFoldersByPost(_ context.Context, postID string) ([]folder.Folder, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(func(f folder.Folder) bool { return f.Post == postID }), nil
}

func (repo *folderRepository) FindFoldersByAuthor(_ context.Context, authorID string) ([]folder.Folder, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(func(f folder.Folder) bool { return f.Author == authorID }), nil
}

func (repo *folderRepository) UpdateFolder(_ context.Context, id string, uf folder.UpdateFolder) (folder.Folder, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	f, ok := repo.db.folders[id]
	if !ok {
		return folder.Folder{}, folder.ErrNotFound
	}
	f.Name = uf.Name
	f.EditBy = uf.EditBy
	return *f, nil
}

func (repo *folderRepository) DeleteFolder(_ context.Context, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.folders[id]; !ok {
		return folder.ErrNotFound
	}
	delete(repo.db.folders, id)
	return nil
}
