package post

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/killua-y/kanbas-fullstack-app/core"
	"github.com/killua-y/kanbas-fullstack-app/core/user"
)

var (
	// errors
	ErrNotFound       = errors.New("post not found")
	ErrContentFlagged = core.NewPolicyError("post flagged by content moderation")
)

type (
	Repository interface {
		CreatePost(ctx context.Context, p Post) (Post, error)
		GetPost(ctx context.Context, id string) (Post, error)
		FindPostsByCourse(ctx context.Context, courseID string) ([]Post, error)
		FindPostsByFolder(ctx context.Context, folderID string) ([]Post, error)
		FindPostsByUser(ctx context.Context, userID string) ([]Post, error)
		// FindPostsVisibleToUser returns posts addressed to the whole course
		// plus posts addressed to userID individually, newest first.
		FindPostsVisibleToUser(ctx context.Context, userID, courseID string) ([]Post, error)
		UpdatePost(ctx context.Context, id string, up UpdatePost) (Post, error)
		DeletePost(ctx context.Context, id string) error
		// AddViewer appends userID to the post's viewedBy set; adding an
		// existing viewer is a no-op.
		AddViewer(ctx context.Context, id, userID string) (Post, error)
		MarkPostRead(ctx context.Context, id string) (Post, error)
		SetResolved(ctx context.Context, id string, resolved bool) (Post, error)
		SetPinned(ctx context.Context, id string, pinned bool) (Post, error)
	}

	// FolderResolver resolves folder names to ids (creating missing folders)
	// and folder ids back to names.
	FolderResolver interface {
		ProcessFolders(ctx context.Context, courseID, authorID string, names []string) ([]string, error)
		FolderNames(ctx context.Context, ids []string) (map[string]string, error)
	}

	// UserDirectory looks up users for recipient notifications.
	UserDirectory interface {
		GetUserByID(ctx context.Context, id string) (user.User, error)
	}

	Service struct {
		repo    Repository
		folders FolderResolver
		users   UserDirectory
		mailSvc core.EmailService
	}
)

func NewService(repo Repository, folders FolderResolver, users UserDirectory, mailSvc core.EmailService) *Service {
	return &Service{repo: repo, folders: folders, users: users, mailSvc: mailSvc}
}

// Create stores a new Post after moderation and folder resolution.
// Posts addressed to individuals notify their recipients by email.
func (svc *Service) Create(ctx context.Context, np NewPost) (Post, error) {
	if err := checkFlaggedContent(np.Title, np.Text); err != nil {
		return Post{}, err
	}

	folderIDs, err := svc.folders.ProcessFolders(ctx, np.Course, np.PostBy, np.Folders)
	if err != nil {
		return Post{}, errors.Wrap(err, "processing folders")
	}

	p := Post{
		PostType:             np.PostType,
		PostTo:               np.PostTo,
		Title:                np.Title,
		Text:                 np.Text,
		PostBy:               np.PostBy,
		Date:                 time.Now().UTC(),
		Course:               np.Course,
		Folders:              folderIDs,
		IndividualRecipients: np.IndividualRecipients,
		ViewedBy:             []string{},
	}
	p, err = svc.repo.CreatePost(ctx, p)
	if err != nil {
		return Post{}, err
	}

	if p.PostTo == ToIndividual {
		svc.notifyRecipients(ctx, p)
	}
	return p, nil
}

func (svc *Service) Get(ctx context.Context, id string) (Post, error) {
	return svc.repo.GetPost(ctx, id)
}

// View fetches a post and records userID as a viewer.
func (svc *Service) View(ctx context.Context, id, userID string) (Post, error) {
	p, err := svc.repo.GetPost(ctx, id)
	if err != nil {
		return Post{}, err
	}
	if _, err := svc.repo.AddViewer(ctx, id, userID); err != nil {
		return Post{}, errors.Wrap(err, "recording viewer")
	}
	return p, nil
}

func (svc *Service) ByCourse(ctx context.Context, courseID string) ([]Post, error) {
	return svc.repo.FindPostsByCourse(ctx, courseID)
}

func (svc *Service) ByFolder(ctx context.Context, folderID string) ([]Post, error) {
	return svc.repo.FindPostsByFolder(ctx, folderID)
}

func (svc *Service) ByUser(ctx context.Context, userID string) ([]Post, error) {
	return svc.repo.FindPostsByUser(ctx, userID)
}

func (svc *Service) VisibleToUser(ctx context.Context, userID, courseID string) ([]Post, error) {
	return svc.repo.FindPostsVisibleToUser(ctx, userID, courseID)
}

// Search narrows posts down to those matching the search expression;
// see ParseFolders and ParseKeywords for the expression format.
func (svc *Service) Search(ctx context.Context, posts []Post, search string) ([]Post, error) {
	if core.CleanString(search) == "" {
		return posts, nil
	}

	ids := make([]string, 0)
	for _, p := range posts {
		ids = append(ids, p.Folders...)
	}
	names, err := svc.folders.FolderNames(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "resolving folder names")
	}
	return FilterBySearch(posts, search, names), nil
}

func (svc *Service) Update(ctx context.Context, id string, up UpdatePost) (Post, error) {
	return svc.repo.UpdatePost(ctx, id, up)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeletePost(ctx, id)
}

func (svc *Service) MarkRead(ctx context.Context, id string) (Post, error) {
	return svc.repo.MarkPostRead(ctx, id)
}

func (svc *Service) SetResolved(ctx context.Context, id string, resolved bool) (Post, error) {
	return svc.repo.SetResolved(ctx, id, resolved)
}

// ToggleResolved flips the post's resolved flag.
func (svc *Service) ToggleResolved(ctx context.Context, id string) (Post, error) {
	p, err := svc.repo.GetPost(ctx, id)
	if err != nil {
		return Post{}, err
	}
	return svc.repo.SetResolved(ctx, id, !p.IsResolved)
}

// TogglePinned flips the post's pinned flag.
func (svc *Service) TogglePinned(ctx context.Context, id string) (Post, error) {
	p, err := svc.repo.GetPost(ctx, id)
	if err != nil {
		return Post{}, err
	}
	return svc.repo.SetPinned(ctx, id, !p.IsPinned)
}

func (svc *Service) notifyRecipients(ctx context.Context, p Post) {
	if svc.users == nil || svc.mailSvc == nil {
		return
	}
	to := make([]mail.Address, 0, len(p.IndividualRecipients))
	for _, uid := range p.IndividualRecipients {
		usr, err := svc.users.GetUserByID(ctx, uid)
		if err != nil || usr.Email == "" {
			continue
		}
		to = append(to, mail.Address{Name: usr.Name, Address: usr.Email})
	}
	if len(to) == 0 {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      to,
		Subject: fmt.Sprintf("New post: %s", p.Title),
		BodyStr: fmt.Sprintf(
			"You were sent a new %s.\r\n\r\n%s\r\n\r\n%s/#/Piazza/%s",
			p.PostType, p.Text, core.Conf.FrontendBaseURL, p.ID,
		),
	})
}

func checkFlaggedContent(title, text string) error {
	title = strings.ToLower(title)
	text = strings.ToLower(text)
	for _, term := range core.Conf.FlaggedTerms {
		term = strings.ToLower(core.CleanString(term))
		if term == "" {
			continue
		}
		if strings.Contains(title, term) || strings.Contains(text, term) {
			return ErrContentFlagged
		}
	}
	return nil
}
