//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"fmt"
	"time"

	"groupwarden/domain"
	"groupwarden/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/samber/lo"
)

type IUserRecordStore interface {
	GetOrCreate(userID int64, firstName string) (domain.UserRecord, error)
	Save(record domain.UserRecord) error
}

type UserRecordStore struct {
	db *badger.DB
}

func NewUserRecordStore(db *badger.DB) IUserRecordStore {
	return &UserRecordStore{db: db}
}

// userDocument is the on-disk shape of a record. Timestamps are stored as
// UnixNano so the document stays stable across time zone changes.
type userDocument struct {
	UserID       int64   `json:"user_id"`
	FirstName    string  `json:"first_name"`
	Warnings     int     `json:"warnings"`
	SpamActivity []int64 `json:"spam_activity"`
}

func userKey(userID int64) []byte {
	return []byte(fmt.Sprintf("user:%d", userID))
}

// GetOrCreate loads the record for userID, creating and persisting the
// default one inside the same transaction when the user has never been seen.
// Running lookup and insert in one badger update keeps the operation a single
// logical get-or-create: two racing first messages cannot both insert, the
// loser hits badger's conflict detection and re-reads the stored row.
func (s *UserRecordStore) GetOrCreate(userID int64, firstName string) (domain.UserRecord, error) {
	var record domain.UserRecord

	err := s.getOrCreateTxn(userID, firstName, &record)
	if err == badger.ErrConflict {
		err = s.getOrCreateTxn(userID, firstName, &record)
	}
	if err != nil {
		return domain.UserRecord{}, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return record, nil
}

func (s *UserRecordStore) getOrCreateTxn(userID int64, firstName string, record *domain.UserRecord) error {
	return s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(userID))
		switch err {
		case nil:
			return item.Value(func(val []byte) error {
				decoded, err := decodeUser(val)
				if err != nil {
					return err
				}
				*record = decoded
				return nil
			})
		case badger.ErrKeyNotFound:
			*record = domain.NewUserRecord(userID, firstName)
			data, err := json.Marshal(fromRecord(*record))
			if err != nil {
				return err
			}
			return txn.Set(userKey(userID), data)
		default:
			return err
		}
	})
}

// Save persists the record, overwriting the stored state. The pipeline calls
// it exactly once per message, after both checks ran.
func (s *UserRecordStore) Save(record domain.UserRecord) error {
	data, err := json.Marshal(fromRecord(record))
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(userKey(record.UserID), data)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return nil
}

func fromRecord(record domain.UserRecord) userDocument {
	return userDocument{
		UserID:    record.UserID,
		FirstName: record.FirstName,
		Warnings:  record.Warnings,
		SpamActivity: lo.Map(record.SpamActivity, func(ts time.Time, _ int) int64 {
			return ts.UnixNano()
		}),
	}
}

func decodeUser(val []byte) (domain.UserRecord, error) {
	var doc userDocument
	if err := json.Unmarshal(val, &doc); err != nil {
		return domain.UserRecord{}, err
	}
	return domain.UserRecord{
		UserID:    doc.UserID,
		FirstName: doc.FirstName,
		Warnings:  doc.Warnings,
		SpamActivity: lo.Map(doc.SpamActivity, func(ns int64, _ int) time.Time {
			return time.Unix(0, ns).UTC()
		}),
	}, nil
}
