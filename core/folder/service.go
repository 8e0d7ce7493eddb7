package folder

import (
	"context"

	"github.com/pkg/errors"

	"github.com/killua-y/kanbas-fullstack-app/core"
)

var ErrNotFound = errors.New("folder not found")

type (
	Repository interface {
		CreateFolder(ctx context.Context, f Folder) (Folder, error)
		GetFolder(ctx context.Context, id string) (Folder, error)
		// GetFolderByName looks a folder up by its name within a course.
		GetFolderByName(ctx context.Context, courseID, name string) (Folder, error)
		// Finders return folders sorted by name.
		FindAllFolders(ctx context.Context) ([]Folder, error)
		FindFoldersByCourse(ctx context.Context, courseID string) ([]Folder, error)
		FindFoldersByPost(ctx context.Context, postID string) ([]Folder, error)
		FindFoldersByAuthor(ctx context.Context, authorID string) ([]Folder, error)
		UpdateFolder(ctx context.Context, id string, uf UpdateFolder) (Folder, error)
		DeleteFolder(ctx context.Context, id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nf NewFolder) (Folder, error) {
	f := Folder{
		Name:   nf.Name,
		Author: nf.Author,
		Course: nf.Course,
		Post:   nf.Post,
	}
	return svc.repo.CreateFolder(ctx, f)
}

func (svc *Service) Get(ctx context.Context, id string) (Folder, error) {
	return svc.repo.GetFolder(ctx, id)
}

func (svc *Service) All(ctx context.Context) ([]Folder, error) {
	return svc.repo.FindAllFolders(ctx)
}

func (svc *Service) ByCourse(ctx context.Context, courseID string) ([]Folder, error) {
	return svc.repo.FindFoldersByCourse(ctx, courseID)
}

func (svc *Service) ByPost(ctx context.Context, postID string) ([]Folder, error) {
	return svc.repo.FindFoldersByPost(ctx, postID)
}

func (svc *Service) ByAuthor(ctx context.Context, authorID string) ([]Folder, error) {
	return svc.repo.FindFoldersByAuthor(ctx, authorID)
}

func (svc *Service) Update(ctx context.Context, id string, uf UpdateFolder) (Folder, error) {
	return svc.repo.UpdateFolder(ctx, id, uf)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteFolder(ctx, id)
}

// ProcessFolders resolves folder names to folder ids for a course, creating
// folders that do not exist yet. Names are cleaned and deduplicated first.
// Resolution is all or nothing: any failure aborts with no ids returned.
func (svc *Service) ProcessFolders(ctx context.Context, courseID, authorID string, names []string) ([]string, error) {
	seen := make(map[string]bool, len(names))
	ids := make([]string, 0, len(names))
	for _, name := range names {
		name = core.CleanString(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		f, err := svc.repo.GetFolderByName(ctx, courseID, name)
		switch errors.Cause(err) {
		case nil:
		case ErrNotFound:
			f, err = svc.repo.CreateFolder(ctx, Folder{Name: name, Author: authorID, Course: courseID})
			if err != nil {
				return nil, errors.Wrapf(err, "creating folder %q", name)
			}
		default:
			return nil, errors.Wrapf(err, "looking up folder %q", name)
		}
		ids = append(ids, f.ID)
	}
	return ids, nil
}

// FolderNames maps folder ids to names. Unknown ids are skipped; deleting a
// folder does not touch posts that still reference it.
func (svc *Service) FolderNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	for _, id := range ids {
		if _, ok := names[id]; ok {
			continue
		}
		f, err := svc.repo.GetFolder(ctx, id)
		switch errors.Cause(err) {
		case nil:
			names[id] = f.Name
		case ErrNotFound:
		default:
			return nil, err
		}
	}
	return names, nil
}
