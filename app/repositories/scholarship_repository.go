package repositories

import (
	"fmt"

	"harborlight/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerScholarshipRepository implements ScholarshipRepository using BadgerDB
type BadgerScholarshipRepository struct {
	db *badger.DB
}

// NewBadgerScholarshipRepository creates a new BadgerScholarshipRepository
func NewBadgerScholarshipRepository(db *badger.DB) *BadgerScholarshipRepository {
	return &BadgerScholarshipRepository{db: db}
}

// Create creates a new scholarship application
func (r *BadgerScholarshipRepository) Create(app *models.ScholarshipApplication) error {
	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, ScholarshipSeqKey)
		if err != nil {
			return err
		}
		app.ID = id

		data, err := marshalEntity(app)
		if err != nil {
			return err
		}

		key := []byte(fmt.Sprintf("%s%d", ScholarshipKeyPrefix, app.ID))
		return txn.Set(key, data)
	})
}

// GetByID retrieves a scholarship application by ID
func (r *BadgerScholarshipRepository) GetByID(id int) (*models.ScholarshipApplication, error) {
	var app models.ScholarshipApplication

	err := r.db.View(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", ScholarshipKeyPrefix, id))
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

// List retrieves all scholarship applications in key order
func (r *BadgerScholarshipRepository) List() ([]*models.ScholarshipApplication, error) {
	var apps []*models.ScholarshipApplication
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(ScholarshipKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var app models.ScholarshipApplication
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &app)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal scholarship application: %v", err)
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

// Update updates an existing scholarship application
func (r *BadgerScholarshipRepository) Update(app *models.ScholarshipApplication) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%d", ScholarshipKeyPrefix, app.ID))
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
