package mock

import (
	"sort"
	"sync"

	"harborlight/app/models"
	"harborlight/app/repositories"
)

// PostRepository is an in-memory PostRepository for tests.
type PostRepository struct {
	posts  map[int]*models.Post
	nextID int
	mutex  sync.RWMutex
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts:  make(map[int]*models.Post),
		nextID: 1,
	}
}

func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts = make(map[int]*models.Post)
	m.nextID = 1
}

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = m.nextID
	m.nextID++
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) GetByID(id int) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *PostRepository) GetBySlug(slug string) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, post := range m.posts {
		if post.Slug == slug {
			return post, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *PostRepository) SlugExists(slug string) (bool, error) {
	_, err := m.GetBySlug(slug)
	if err == repositories.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (m *PostRepository) List() ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.Post
	for _, post := range m.posts {
		posts = append(posts, post)
	}
	// Sort by ID to match the key order of the real store
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].ID < posts[j].ID
	})
	return posts, nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

// JobRepository is an in-memory JobRepository for tests.
type JobRepository struct {
	jobs   map[int]*models.JobPosting
	nextID int
	mutex  sync.RWMutex
}

func NewJobRepository() *JobRepository {
	return &JobRepository{
		jobs:   make(map[int]*models.JobPosting),
		nextID: 1,
	}
}

func (m *JobRepository) Create(job *models.JobPosting) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	job.ID = m.nextID
	m.nextID++
	m.jobs[job.ID] = job
	return nil
}

func (m *JobRepository) GetByID(id int) (*models.JobPosting, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	job, exists := m.jobs[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return job, nil
}

func (m *JobRepository) List() ([]*models.JobPosting, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var jobs []*models.JobPosting
	for _, job := range m.jobs {
		jobs = append(jobs, job)
	}
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].ID < jobs[j].ID
	})
	return jobs, nil
}

func (m *JobRepository) Update(job *models.JobPosting) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.jobs[job.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.jobs[job.ID] = job
	return nil
}

func (m *JobRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.jobs[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.jobs, id)
	return nil
}

// ApplicationRepository is an in-memory ApplicationRepository for tests.
type ApplicationRepository struct {
	apps   map[int]*models.JobApplication
	nextID int
	mutex  sync.RWMutex
}

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{
		apps:   make(map[int]*models.JobApplication),
		nextID: 1,
	}
}

func (m *ApplicationRepository) Create(app *models.JobApplication) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	app.ID = m.nextID
	m.nextID++
	m.apps[app.ID] = app
	return nil
}

func (m *ApplicationRepository) GetByID(id int) (*models.JobApplication, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	app, exists := m.apps[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return app, nil
}

func (m *ApplicationRepository) List() ([]*models.JobApplication, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var apps []*models.JobApplication
	for _, app := range m.apps {
		apps = append(apps, app)
	}
	sort.Slice(apps, func(i, j int) bool {
		return apps[i].ID < apps[j].ID
	})
	return apps, nil
}

func (m *ApplicationRepository) ListByJob(jobID int) ([]*models.JobApplication, error) {
	all, err := m.List()
	if err != nil {
		return nil, err
	}
	var apps []*models.JobApplication
	for _, app := range all {
		if app.JobID == jobID {
			apps = append(apps, app)
		}
	}
	return apps, nil
}

func (m *ApplicationRepository) Update(app *models.JobApplication) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.apps[app.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.apps[app.ID] = app
	return nil
}

// ScholarshipRepository is an in-memory ScholarshipRepository for tests.
type ScholarshipRepository struct {
	apps   map[int]*models.ScholarshipApplication
	nextID int
	mutex  sync.RWMutex
}

func NewScholarshipRepository() *ScholarshipRepository {
	return &ScholarshipRepository{
		apps:   make(map[int]*models.ScholarshipApplication),
		nextID: 1,
	}
}

func (m *ScholarshipRepository) Create(app *models.ScholarshipApplication) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	app.ID = m.nextID
	m.nextID++
	m.apps[app.ID] = app
	return nil
}

func (m *ScholarshipRepository) GetByID(id int) (*models.ScholarshipApplication, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	app, exists := m.apps[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return app, nil
}

func (m *ScholarshipRepository) List() ([]*models.ScholarshipApplication, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var apps []*models.ScholarshipApplication
	for _, app := range m.apps {
		apps = append(apps, app)
	}
	sort.Slice(apps, func(i, j int) bool {
		return apps[i].ID < apps[j].ID
	})
	return apps, nil
}

func (m *ScholarshipRepository) Update(app *models.ScholarshipApplication) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.apps[app.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.apps[app.ID] = app
	return nil
}
