package services

import (
	"fmt"
	"time"

	"harborlight/app/content"
	"harborlight/app/models"
	"harborlight/app/query"
	"harborlight/app/repositories"
)

// PostService handles business logic for blog posts: normalization of
// incoming submissions, slug/excerpt/read-time derivation, and the filtered
// listing used by the blog pages.
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost validates a new post, derives its slug, excerpt and read time,
// then persists it. A derived slug that collides with an existing one gets a
// timestamp suffix so the stored slug stays unique.
func (s *PostService) CreatePost(post *models.Post) error {
	if err := post.Validate(); err != nil {
		return err
	}

	slug, err := s.uniqueSlug(post.Title)
	if err != nil {
		return fmt.Errorf("failed to derive slug: %v", err)
	}
	post.Slug = slug

	if post.Excerpt == "" {
		post.Excerpt = content.Excerpt(post.Content, content.DefaultExcerptLength)
	}
	post.ReadTime = content.ReadTime(post.Content, content.DefaultWordsPerMinute)
	post.BeforeCreate()

	return s.postRepo.Create(post)
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id int) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// GetPostBySlug retrieves a post by its slug
func (s *PostService) GetPostBySlug(slug string) (*models.Post, error) {
	return s.postRepo.GetBySlug(slug)
}

// ListPosts returns the filtered, paginated listing view. Posts are sorted
// newest first before pagination. Draft posts are excluded unless
// includeDrafts is set (the admin dashboard passes true).
func (s *PostService) ListPosts(f query.Filter, includeDrafts bool) (query.Page, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return query.Page{}, err
	}

	if !includeDrafts {
		published := posts[:0:0]
		for _, p := range posts {
			if p.Status == models.PostStatusPublished {
				published = append(published, p)
			}
		}
		posts = published
	}

	sorted := query.SortPostsByDate(posts, false)
	return query.Apply(sorted, f), nil
}

// Categories returns the category choices for the listing filter UI.
func (s *PostService) Categories() ([]string, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, err
	}
	return query.Categories(posts), nil
}

// UpdatePost validates and updates an existing post. The slug and creation
// time are preserved; excerpt and read time are re-derived from the updated
// content.
func (s *PostService) UpdatePost(post *models.Post) error {
	if err := post.Validate(); err != nil {
		return err
	}

	existing, err := s.postRepo.GetByID(post.ID)
	if err != nil {
		return err
	}

	post.Slug = existing.Slug
	post.CreatedAt = existing.CreatedAt
	if post.PublishedAt.IsZero() {
		post.PublishedAt = existing.PublishedAt
	}
	if post.Status == "" {
		post.Status = existing.Status
	}
	if post.Excerpt == "" {
		post.Excerpt = content.Excerpt(post.Content, content.DefaultExcerptLength)
	}
	post.ReadTime = content.ReadTime(post.Content, content.DefaultWordsPerMinute)
	post.UpdatedAt = time.Now()

	return s.postRepo.Update(post)
}

// DeletePost deletes a post by ID
func (s *PostService) DeletePost(id int) error {
	return s.postRepo.Delete(id)
}

func (s *PostService) uniqueSlug(title string) (string, error) {
	var lookupErr error
	slug := content.UniqueSlug(title, time.Now().Unix(), func(candidate string) bool {
		exists, err := s.postRepo.SlugExists(candidate)
		if err != nil {
			lookupErr = err
			return false
		}
		return exists
	})
	if lookupErr != nil {
		return "", lookupErr
	}
	return slug, nil
}
