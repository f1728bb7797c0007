package store

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	profilesBucket   = []byte("profiles")
	transcriptBucket = []byte("transcripts")
)

const maxTranscriptLines = 100

// Profile links a chat session to the user id sent with backend calls.
type Profile struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Line is one chat message kept for a session.
type Line struct {
	Sender string    `json:"sender"`
	Text   string    `json:"text"`
	At     time.Time `json:"at"`
}

type Store interface {
	SaveProfile(p Profile) error
	GetProfile(sessionID string) (*Profile, error)
	DeleteProfile(sessionID string) error
	GetTranscript(sessionID string) ([]Line, error)
	AppendTranscript(sessionID string, lines ...Line) error
	Close() error
}

type BoltStore struct {
	db *bolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(profilesBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(transcriptBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating buckets: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) SaveProfile(p Profile) error {
	if p.SessionID == "" {
		return fmt.Errorf("saving profile: empty session id")
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(p)
		if err != nil {
			return err
		}
		return tx.Bucket(profilesBucket).Put([]byte(p.SessionID), data)
	})
}

// GetProfile returns nil without error when the session has no profile.
func (s *BoltStore) GetProfile(sessionID string) (*Profile, error) {
	var p Profile
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(profilesBucket).Get([]byte(sessionID))
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &p)
	})
	if err != nil {
		return nil, err
	}
	if p.SessionID == "" {
		return nil, nil
	}
	return &p, nil
}

func (s *BoltStore) DeleteProfile(sessionID string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(profilesBucket).Delete([]byte(sessionID))
	})
}

func (s *BoltStore) GetTranscript(sessionID string) ([]Line, error) {
	var lines []Line
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(transcriptBucket).Get([]byte(sessionID))
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &lines)
	})
	return lines, err
}

// AppendTranscript adds lines, keeping only the most recent maxTranscriptLines.
func (s *BoltStore) AppendTranscript(sessionID string, lines ...Line) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(transcriptBucket)
		var all []Line
		if v := b.Get([]byte(sessionID)); v != nil {
			if err := json.Unmarshal(v, &all); err != nil {
				return fmt.Errorf("decoding transcript: %w", err)
			}
		}
		all = append(all, lines...)
		if len(all) > maxTranscriptLines {
			all = all[len(all)-maxTranscriptLines:]
		}
		data, err := json.Marshal(all)
		if err != nil {
			return err
		}
		return b.Put([]byte(sessionID), data)
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
