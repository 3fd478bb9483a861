package docstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/Utkarsh123xd/Student-Sphere/config"
	"github.com/Utkarsh123xd/Student-Sphere/logger"
)

type BoltDB struct {
	store  *bolt.DB
	logger logger.Logger
}

const (
	usersBucket = "users"
	dropsBucket = "drops"
)

func New(logger logger.Logger, cfg *config.Config) (*BoltDB, error) {
	docstorePath := cfg.GetDocstorePath()
	if err := os.MkdirAll(filepath.Dir(docstorePath), 0755); err != nil {
		logger.Error("failed to create document store directory", "err", err.Error(), "path", docstorePath)
		return nil, fmt.Errorf("failed to create document store directory: %w", err)
	}

	store, err := bolt.Open(docstorePath, 0600, &bolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		logger.Error("failed to open document store", "err", err.Error(), "path", docstorePath)
		return nil, fmt.Errorf("failed to open document store: %w", err)
	}

	boltDB := &BoltDB{
		store:  store,
		logger: logger,
	}

	if err := boltDB.initBuckets(); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return boltDB, nil
}

func (b *BoltDB) initBuckets() error {
	return b.store.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{usersBucket, dropsBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				b.logger.Error("failed to create bucket", "bucket", name, "err", err.Error())
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

func (b *BoltDB) SaveUser(user *UserProfile) error {
	if user.Handle == "" {
		return fmt.Errorf("user handle cannot be empty")
	}
	if user.Followers == nil {
		user.Followers = []string{}
	}

	return b.store.Update(func(tx *bolt.Tx) error {
		return putJSON(tx.Bucket([]byte(usersBucket)), user.Handle, user)
	})
}

func (b *BoltDB) GetUser(handle string) (*UserProfile, error) {
	var user UserProfile
	err := b.store.View(func(tx *bolt.Tx) error {
		return getJSON(tx.Bucket([]byte(usersBucket)), usersBucket, handle, &user)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (b *BoltDB) UpdateUser(handle string, mutate func(*UserProfile) error) error {
	return b.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(usersBucket))
		var user UserProfile
		if err := getJSON(bucket, usersBucket, handle, &user); err != nil {
			return err
		}
		if err := mutate(&user); err != nil {
			return err
		}
		return putJSON(bucket, handle, &user)
	})
}

// FindUsersMatching returns users for which the fragment is a
// case-insensitive substring of at least one of the given attribute
// fields. Result order is the bucket's key order, which is stable
// across calls.
func (b *BoltDB) FindUsersMatching(fragment string, fields []string) ([]UserProfile, error) {
	needle := strings.ToLower(fragment)
	matched := []UserProfile{}

	err := b.store.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(usersBucket)).ForEach(func(_, v []byte) error {
			var user UserProfile
			if err := json.Unmarshal(v, &user); err != nil {
				return fmt.Errorf("failed to decode user document: %w", err)
			}
			for _, field := range fields {
				value := user.Field(field)
				if value != "" && strings.Contains(strings.ToLower(value), needle) {
					matched = append(matched, user)
					break
				}
			}
			return nil
		})
	})
	if err != nil {
		b.logger.Error("user scan failed", "err", err.Error())
		return nil, err
	}

	return matched, nil
}

func (b *BoltDB) SaveDrop(drop *Drop) error {
	if drop.ID == "" {
		drop.ID = uuid.NewString()
	}
	if drop.CreatedAt.IsZero() {
		drop.CreatedAt = time.Now().UTC()
	}

	return b.store.Update(func(tx *bolt.Tx) error {
		return putJSON(tx.Bucket([]byte(dropsBucket)), drop.ID, drop)
	})
}

func (b *BoltDB) GetDrop(id string) (*Drop, error) {
	var drop Drop
	err := b.store.View(func(tx *bolt.Tx) error {
		return getJSON(tx.Bucket([]byte(dropsBucket)), dropsBucket, id, &drop)
	})
	if err != nil {
		return nil, err
	}
	return &drop, nil
}

func (b *BoltDB) FindDropsByBody(fragment string, skip, limit int) ([]DropView, error) {
	needle := strings.ToLower(fragment)
	return b.findDrops(func(d *Drop) bool {
		return strings.Contains(strings.ToLower(d.Body), needle)
	}, skip, limit)
}

func (b *BoltDB) FindDropsByAuthor(handle string, skip, limit int) ([]DropView, error) {
	return b.findDrops(func(d *Drop) bool {
		return d.Author == handle
	}, skip, limit)
}

func (b *BoltDB) FindDropsByTag(tag string) ([]DropView, error) {
	return b.findDrops(func(d *Drop) bool {
		return d.Tag != "" && strings.EqualFold(d.Tag, tag)
	}, 0, -1)
}

// findDrops scans the drops collection, sorts matches by creation time
// descending, applies skip/limit (limit < 0 means no limit) and
// populates author and reply data within the same read transaction.
func (b *BoltDB) findDrops(match func(*Drop) bool, skip, limit int) ([]DropView, error) {
	views := []DropView{}

	err := b.store.View(func(tx *bolt.Tx) error {
		var matched []Drop
		err := tx.Bucket([]byte(dropsBucket)).ForEach(func(_, v []byte) error {
			var drop Drop
			if err := json.Unmarshal(v, &drop); err != nil {
				return fmt.Errorf("failed to decode drop document: %w", err)
			}
			if match(&drop) {
				matched = append(matched, drop)
			}
			return nil
		})
		if err != nil {
			return err
		}

		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		})

		matched = page(matched, skip, limit)
		for i := range matched {
			views = append(views, b.populate(tx, &matched[i], true))
		}
		return nil
	})
	if err != nil {
		b.logger.Error("drop scan failed", "err", err.Error())
		return nil, err
	}

	return views, nil
}

// populate attaches the author's identity and avatar and, when
// withReplies is set, inlines one level of replies.
func (b *BoltDB) populate(tx *bolt.Tx, drop *Drop, withReplies bool) DropView {
	view := DropView{
		ID:        drop.ID,
		Body:      drop.Body,
		Tag:       drop.Tag,
		PostedBy:  Author{Handle: drop.Author},
		CreatedAt: drop.CreatedAt,
	}

	var author UserProfile
	if err := getJSON(tx.Bucket([]byte(usersBucket)), usersBucket, drop.Author, &author); err == nil {
		view.PostedBy.Avatar = author.Avatar
	}

	if withReplies {
		dropBucket := tx.Bucket([]byte(dropsBucket))
		for _, replyID := range drop.ReplyIDs {
			var reply Drop
			if err := getJSON(dropBucket, dropsBucket, replyID, &reply); err != nil {
				b.logger.Warn("reply not found", "drop", drop.ID, "reply", replyID)
				continue
			}
			view.Replies = append(view.Replies, b.populate(tx, &reply, false))
		}
	}

	return view
}

func page[T any](items []T, skip, limit int) []T {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return nil
	}
	items = items[skip:]
	if limit >= 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func putJSON(bucket *bolt.Bucket, key string, doc any) error {
	if bucket == nil {
		return fmt.Errorf("bucket not found")
	}
	encoded, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", key, err)
	}
	if err := bucket.Put([]byte(key), encoded); err != nil {
		return fmt.Errorf("failed to store document %s: %w", key, err)
	}
	return nil
}

func getJSON(bucket *bolt.Bucket, collection, key string, doc any) error {
	if bucket == nil {
		return fmt.Errorf("bucket not found")
	}
	v := bucket.Get([]byte(key))
	if v == nil {
		return &NotFoundError{Collection: collection, Key: key}
	}
	if err := json.Unmarshal(v, doc); err != nil {
		return fmt.Errorf("failed to decode document %s: %w", key, err)
	}
	return nil
}

func (b *BoltDB) Close() error {
	if b.store != nil {
		return b.store.Close()
	}
	return nil
}
