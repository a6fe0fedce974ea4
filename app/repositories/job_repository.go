package repositories

import (
	"fmt"

	"harborlight/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerJobRepository implements JobRepository using BadgerDB
type BadgerJobRepository struct {
	db *badger.DB
}

// NewBadgerJobRepository creates a new BadgerJobRepository
func NewBadgerJobRepository(db *badger.DB) *BadgerJobRepository {
	return &BadgerJobRepository{db: db}
}

// Create creates a new job posting
func (r *BadgerJobRepository) Create(job *models.JobPosting) error {
	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, JobSeqKey)
		if err != nil {
			return err
		}
		job.ID = id

		data, err := marshalEntity(job)
		if err != nil {
			return err
		}

		key := []byte(fmt.Sprintf("%s%d", JobKeyPrefix, job.ID))
		return txn.Set(key, data)
	})
}

// GetByID retrieves a job posting by ID
func (r *BadgerJobRepository) GetByID(id int) (*models.JobPosting, error) {
	var job models.JobPosting

	err := r.db.View(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", JobKeyPrefix, id))
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &job)
		})
	})

	if err != nil {
		return nil, err
	}
	return &job, nil
}

// List retrieves all job postings in key order
func (r *BadgerJobRepository) List() ([]*models.JobPosting, error) {
	var jobs []*models.JobPosting
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(JobKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var job models.JobPosting
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &job)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal job posting: %v", err)
			}
			jobs = append(jobs, &job)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// Update updates an existing job posting
func (r *BadgerJobRepository) Update(job *models.JobPosting) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", JobKeyPrefix, job.ID))
		if _, err := txn.Get(key); err == badger.ErrKeyNotFound {
			return ErrNotFound
		} else if err != nil {
			return err
		}

		data, err := marshalEntity(job)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Delete deletes a job posting by ID
func (r *BadgerJobRepository) Delete(id int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", JobKeyPrefix, id))
		if _, err := txn.Get(key); err == badger.ErrKeyNotFound {
			return ErrNotFound
		} else if err != nil {
			return err
		}
		return txn.Delete(key)
	})
}
