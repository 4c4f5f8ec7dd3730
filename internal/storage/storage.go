package storage

import (
	"encoding/json"
	"fmt"

	"github.com/keshon/server-domme/datastore"

	"github.com/fdumary/AI-Companion/internal/companion"
)

const messageHistoryLimit int = 200

// Storage persists user records (profile + conversation history) in a JSON
// file datastore keyed by user ID. The datastore autosaves and writes
// atomically; Flush forces an immediate save.
type Storage struct {
	ds *datastore.DataStore
}

// Record is everything stored for one user.
type Record struct {
	Profile  *companion.UserProfile `json:"profile"`
	Messages []companion.Message    `json:"messages"`
}

func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

// Flush forces an immediate save to disk.
func (s *Storage) Flush() error {
	return s.ds.SaveToFile()
}

// getOrCreateUserRecord returns the record for userID, creating an empty one
// if the user is new. Missing collections are repaired rather than failed on.
func (s *Storage) getOrCreateUserRecord(userID string) (*Record, error) {
	data, exists := s.ds.Get(userID)
	if !exists {
		newRecord := &Record{
			Profile:  &companion.UserProfile{},
			Messages: []companion.Message{},
		}
		newRecord.Profile.Normalize()
		s.ds.Add(userID, newRecord)
		return newRecord, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling data: %w", err)
	}

	var record Record
	err = json.Unmarshal(jsonData, &record)
	if err != nil {
		return nil, fmt.Errorf("error unmarshalling to *Record: %w", err)
	}

	if record.Profile == nil {
		record.Profile = &companion.UserProfile{}
	}
	record.Profile.Normalize()
	if record.Messages == nil {
		record.Messages = []companion.Message{}
	}
	if len(record.Messages) > messageHistoryLimit {
		record.Messages = record.Messages[len(record.Messages)-messageHistoryLimit:]
	}

	return &record, nil
}

// Profile returns the stored profile for userID, normalized.
func (s *Storage) Profile(userID string) (*companion.UserProfile, error) {
	record, err := s.getOrCreateUserRecord(userID)
	if err != nil {
		return nil, err
	}
	return record.Profile, nil
}

// SaveProfile replaces the stored profile for userID.
func (s *Storage) SaveProfile(userID string, p *companion.UserProfile) error {
	record, err := s.getOrCreateUserRecord(userID)
	if err != nil {
		return err
	}
	record.Profile = p
	s.ds.Add(userID, record)
	return nil
}

// History returns the stored conversation for userID, oldest first.
func (s *Storage) History(userID string) ([]companion.Message, error) {
	record, err := s.getOrCreateUserRecord(userID)
	if err != nil {
		return nil, err
	}
	return record.Messages, nil
}

// AppendMessages appends messages to the user's conversation, trimming to the
// history limit.
func (s *Storage) AppendMessages(userID string, msgs ...companion.Message) error {
	record, err := s.getOrCreateUserRecord(userID)
	if err != nil {
		return err
	}
	record.Messages = append(record.Messages, msgs...)
	if len(record.Messages) > messageHistoryLimit {
		record.Messages = record.Messages[len(record.Messages)-messageHistoryLimit:]
	}
	s.ds.Add(userID, record)
	return nil
}

// Snapshot returns the user's record serialized for sync upload.
func (s *Storage) Snapshot(userID string) ([]byte, error) {
	record, err := s.getOrCreateUserRecord(userID)
	if err != nil {
		return nil, err
	}
	return json.Marshal(record)
}
