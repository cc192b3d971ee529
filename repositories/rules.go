//go:generate go run go.uber.org/mock/mockgen -source=rules.go -destination=../mocks/mock_rules_repository.go -package=mocks
package repositories

import (
	"fmt"

	"groupwarden/domain"
	"groupwarden/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// rulesKey is fixed: there is exactly one active RuleSet per deployment.
var rulesKey = []byte("rules:active")

type IRuleSetStore interface {
	LoadOrCreateDefault() (domain.RuleSet, error)
}

type RuleSetStore struct {
	db       *badger.DB
	validate *validator.Validate
}

func NewRuleSetStore(db *badger.DB) IRuleSetStore {
	return &RuleSetStore{db: db, validate: validator.New()}
}

type ruleSetDocument struct {
	Version        string   `json:"version"`
	OffensiveWords []string `json:"offensive_words"`
	SpamLimit      int      `json:"spam_limit"`
}

// LoadOrCreateDefault returns the active RuleSet, persisting the default one
// when none is stored yet. The lookup and the insert share one transaction,
// so two concurrent "no rules found" observations cannot create two rule
// sets: the losing commit conflicts and re-reads the winner's row.
func (s *RuleSetStore) LoadOrCreateDefault() (domain.RuleSet, error) {
	var rules domain.RuleSet

	err := s.loadOrCreateTxn(&rules)
	if err == badger.ErrConflict {
		err = s.loadOrCreateTxn(&rules)
	}
	if err != nil {
		return domain.RuleSet{}, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}

	if err := s.validate.Struct(rules); err != nil {
		return domain.RuleSet{}, fmt.Errorf("%w: %v", errors.ErrBadRuleSet, err)
	}
	return rules, nil
}

func (s *RuleSetStore) loadOrCreateTxn(rules *domain.RuleSet) error {
	return s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(rulesKey)
		switch err {
		case nil:
			return item.Value(func(val []byte) error {
				decoded, err := decodeRuleSet(val)
				if err != nil {
					return err
				}
				*rules = decoded
				return nil
			})
		case badger.ErrKeyNotFound:
			*rules = domain.DefaultRuleSet()
			data, err := json.Marshal(fromRuleSet(*rules))
			if err != nil {
				return err
			}
			return txn.Set(rulesKey, data)
		default:
			return err
		}
	})
}

func fromRuleSet(rules domain.RuleSet) ruleSetDocument {
	return ruleSetDocument{
		Version:        rules.Version.String(),
		OffensiveWords: rules.OffensiveWords,
		SpamLimit:      rules.SpamLimit,
	}
}

func decodeRuleSet(val []byte) (domain.RuleSet, error) {
	var doc ruleSetDocument
	if err := json.Unmarshal(val, &doc); err != nil {
		return domain.RuleSet{}, err
	}
	version, err := uuid.Parse(doc.Version)
	if err != nil {
		return domain.RuleSet{}, err
	}
	return domain.RuleSet{
		Version:        version,
		OffensiveWords: doc.OffensiveWords,
		SpamLimit:      doc.SpamLimit,
	}, nil
}
