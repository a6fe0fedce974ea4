package repositories

import (
	"fmt"

	"harborlight/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerApplicationRepository implements ApplicationRepository using
// BadgerDB. Applications are append-only: there is no delete path.
type BadgerApplicationRepository struct {
	db *badger.DB
}

// NewBadgerApplicationRepository creates a new BadgerApplicationRepository
func NewBadgerApplicationRepository(db *badger.DB) *BadgerApplicationRepository {
	return &BadgerApplicationRepository{db: db}
}

// Create creates a new job application
func (r *BadgerApplicationRepository) Create(app *models.JobApplication) error {
	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, ApplicationSeqKey)
		if err != nil {
			return err
		}
		app.ID = id

		data, err := marshalEntity(app)
		if err != nil {
			return err
		}

		key := []byte(fmt.Sprintf("%s%d", ApplicationKeyPrefix, app.ID))
		return txn.Set(key, data)
	})
}

// GetByID retrieves a job application by ID
func (r *BadgerApplicationRepository) GetByID(id int) (*models.JobApplication, error) {
	var app models.JobApplication

	err := r.db.View(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", ApplicationKeyPrefix, id))
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &app)
		})
	})

	if err != nil {
		return nil, err
	}
	return &app, nil
}

// List retrieves all job applications in key order
func (r *BadgerApplicationRepository) List() ([]*models.JobApplication, error) {
	var apps []*models.JobApplication
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(ApplicationKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var app models.JobApplication
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &app)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal application: %v", err)
			}
			apps = append(apps, &app)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// ListByJob retrieves the applications submitted against one job posting
func (r *BadgerApplicationRepository) ListByJob(jobID int) ([]*models.JobApplication, error) {
	all, err := r.List()
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

// Update updates an existing job application
func (r *BadgerApplicationRepository) Update(app *models.JobApplication) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", ApplicationKeyPrefix, app.ID))
		if _, err := txn.Get(key); err == badger.ErrKeyNotFound {
			return ErrNotFound
		} else if err != nil {
			return err
		}

		data, err := marshalEntity(app)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}
