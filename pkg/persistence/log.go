package persistence

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	pbzk "github.com/mikekulinski/zkclient/proto"
	bbolt "go.etcd.io/bbolt"
	"google.golang.org/protobuf/proto"
)

const (
	LogFileName = "txnlog.db"

	logFileMode   os.FileMode = 0o600
	logBucketName             = "transactions"
)

var (
	logOpenTimeout = 5 * time.Second

	ErrLogClosed = errors.New("persistence: log is closed")
)

// LogManager is a Write-Ahead Log (WAL) for our in memory database. Every committed
// transaction is stored in a single bbolt file inside the directory provided, keyed by
// its zxid so that iteration order is commit order.
// "{log_directory}/txnlog.db"
type LogManager struct {
	// mu is a mutex that protects all the fields in the LogManager. In order
	// to keep LogManager thread-safe, we should hold the lock before reading/writing to any
	// of the fields in LogManager.
	mu       *sync.Mutex
	db       *bbolt.DB
	bucket   []byte
	logPath  string
	LastZxid int64
}

func NewLogManager(logPath string) (*LogManager, error) {
	// Make sure to trim any trailing slashes if the provided path contains one.
	logPath = strings.TrimSuffix(logPath, "/")

	fileInfo, err := os.Stat(logPath)
	if err != nil {
		return nil, err
	}

	// Check if the file is a directory.
	if !fileInfo.IsDir() {
		return nil, fmt.Errorf("file path does not point to a directory")
	}

	db, err := bbolt.Open(filepath.Join(logPath, LogFileName), logFileMode, &bbolt.Options{Timeout: logOpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("persistence: opening log: %w", err)
	}

	l := &LogManager{
		mu:      &sync.Mutex{},
		db:      db,
		bucket:  []byte(logBucketName),
		logPath: logPath,
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(l.bucket)
		if err != nil {
			return err
		}
		// Pick up where the previous run left off.
		if k, _ := bucket.Cursor().Last(); k != nil {
			l.LastZxid = decodeKey(k)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("persistence: initializing log bucket: %w", err)
	}
	return l, nil
}

// Path returns the location of the log file.
func (l *LogManager) Path() string {
	return filepath.Join(l.logPath, LogFileName)
}

// Append will append the given transaction to the log. The write is synced to disk
// before Append returns.
func (l *LogManager) Append(txn *pbzk.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db == nil {
		return ErrLogClosed
	}
	if txn.GetZxid() <= l.LastZxid {
		return fmt.Errorf("transaction has already been added to the log")
	}

	bytes, err := proto.Marshal(txn)
	if err != nil {
		return fmt.Errorf("error marshalling txn: %w", err)
	}

	err = l.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(l.bucket)
		if bucket == nil {
			return fmt.Errorf("persistence: bucket %q missing", l.bucket)
		}
		return bucket.Put(encodeKey(txn.GetZxid()), bytes)
	})
	if err != nil {
		return fmt.Errorf("error writing transaction to log: %w", err)
	}

	// Update the last seen ZXID to be equal to the transaction we just wrote.
	// Do this after successfully writing the transaction.
	l.LastZxid = txn.GetZxid()
	return nil
}

// Replay calls fn for every logged transaction in zxid order. It stops at the
// first error fn returns.
func (l *LogManager) Replay(fn func(txn *pbzk.Transaction) error) error {
	l.mu.Lock()
	db := l.db
	l.mu.Unlock()
	if db == nil {
		return ErrLogClosed
	}

	return db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(l.bucket)
		if bucket == nil {
			return fmt.Errorf("persistence: bucket %q missing", l.bucket)
		}
		return bucket.ForEach(func(k, v []byte) error {
			txn := &pbzk.Transaction{}
			if err := proto.Unmarshal(v, txn); err != nil {
				return fmt.Errorf("corrupt transaction %d: %w", decodeKey(k), err)
			}
			return fn(txn)
		})
	})
}

// Close releases the log file. Further appends fail with ErrLogClosed.
func (l *LogManager) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// Zxids are positive, so the big endian form sorts the same way the numbers do.
func encodeKey(zxid int64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(zxid))
	return key
}

func decodeKey(key []byte) int64 {
	return int64(binary.BigEndian.Uint64(key))
}
