package service

import (
	"go-blog-platform/internal/model"
	"go-blog-platform/internal/repository"
	"go-blog-platform/pkg/pagination"
)

// FeedService builds the read-side views: the global index, per-group and
// per-author post lists, and the personalized follow feed. All of them are
// ordered newest first and paginated with a fixed page size.
type FeedService struct {
	postRepo   *repository.PostRepository
	groupRepo  *repository.GroupRepository
	userRepo   *repository.UserRepository
	followRepo *repository.FollowRepository
	pageSize   int
}

func NewFeedService(
	postRepo *repository.PostRepository,
	groupRepo *repository.GroupRepository,
	userRepo *repository.UserRepository,
	followRepo *repository.FollowRepository,
	pageSize int,
) *FeedService {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &FeedService{
		postRepo:   postRepo,
		groupRepo:  groupRepo,
		userRepo:   userRepo,
		followRepo: followRepo,
		pageSize:   pageSize,
	}
}

// PostPage is one page of posts plus its navigation metadata.
type PostPage struct {
	Posts []model.Post    `json:"posts"`
	Page  pagination.Page `json:"pagination"`
}

// Profile is an author's public page: the author, one page of their posts
// and the social-graph counters relative to the viewer.
type Profile struct {
	Author           *model.User `json:"author"`
	Posts            PostPage    `json:"posts"`
	Followers        int64       `json:"followers"`
	Following        int64       `json:"following"`
	FollowedByViewer bool        `json:"followed_by_viewer"`
}

// Index returns one page of all posts.
func (s *FeedService) Index(page int) (*PostPage, error) {
	total, err := s.postRepo.Count()
	if err != nil {
		return nil, err
	}
	p := pagination.New(total, page, s.pageSize)
	posts, err := s.postRepo.FindPage(p.Offset(), p.Limit())
	if err != nil {
		return nil, err
	}
	return &PostPage{Posts: posts, Page: p}, nil
}

// GroupPosts returns a group and one page of its posts, or ErrNotFound for
// an unknown slug.
func (s *FeedService) GroupPosts(slug string, page int) (*model.Group, *PostPage, error) {
	group, err := s.groupRepo.FindBySlug(slug)
	if err != nil {
		return nil, nil, err
	}
	if group == nil {
		return nil, nil, ErrNotFound
	}

	total, err := s.postRepo.CountByGroup(group.ID)
	if err != nil {
		return nil, nil, err
	}
	p := pagination.New(total, page, s.pageSize)
	posts, err := s.postRepo.FindByGroupPage(group.ID, p.Offset(), p.Limit())
	if err != nil {
		return nil, nil, err
	}
	return group, &PostPage{Posts: posts, Page: p}, nil
}

// AuthorProfile returns an author's profile as seen by viewerID (0 for an
// unauthenticated viewer).
func (s *FeedService) AuthorProfile(username string, viewerID uint, page int) (*Profile, error) {
	author, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrNotFound
	}

	total, err := s.postRepo.CountByAuthor(author.ID)
	if err != nil {
		return nil, err
	}
	p := pagination.New(total, page, s.pageSize)
	posts, err := s.postRepo.FindByAuthorPage(author.ID, p.Offset(), p.Limit())
	if err != nil {
		return nil, err
	}

	followers, err := s.followRepo.CountFollowers(author.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.CountFollowing(author.ID)
	if err != nil {
		return nil, err
	}

	followedByViewer := false
	if viewerID != 0 && viewerID != author.ID {
		edge, err := s.followRepo.Find(viewerID, author.ID)
		if err != nil {
			return nil, err
		}
		followedByViewer = edge != nil
	}

	return &Profile{
		Author:           author,
		Posts:            PostPage{Posts: posts, Page: p},
		Followers:        followers,
		Following:        following,
		FollowedByViewer: followedByViewer,
	}, nil
}

// Feed returns one page of posts authored by the users viewerID follows.
// The viewer's own posts are not included. An unauthenticated viewer
// (viewerID 0) gets an empty page, never an error.
func (s *FeedService) Feed(viewerID uint, page int) (*PostPage, error) {
	if viewerID == 0 {
		return &PostPage{
			Posts: []model.Post{},
			Page:  pagination.New(0, page, s.pageSize),
		}, nil
	}

	authorIDs, err := s.followRepo.AuthorIDs(viewerID)
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountByAuthors(authorIDs)
	if err != nil {
		return nil, err
	}
	p := pagination.New(total, page, s.pageSize)
	posts, err := s.postRepo.FindByAuthorsPage(authorIDs, p.Offset(), p.Limit())
	if err != nil {
		return nil, err
	}
	return &PostPage{Posts: posts, Page: p}, nil
}
