package store

import (
	"encoding/binary"
	"time"

	bolt "go.etcd.io/bbolt"

	. "github.com/elves/rope/pkg/store/storedefs"
)

// NextRunSeq returns the next sequence number of the run history.
func (s *dbStore) NextRunSeq() (int, error) {
	var seq uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		seq = tx.Bucket([]byte(bucketRun)).Sequence() + 1
		return nil
	})
	return int(seq), err
}

// AddRun adds a run to the history, and returns its sequence number. The Seq
// field of run is ignored.
func (s *dbStore) AddRun(run Run) (int, error) {
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketRun))
		var err error
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		rb, err := b.CreateBucket(marshalSeq(seq))
		if err != nil {
			return err
		}
		return putRun(rb, run)
	})
	return int(seq), err
}

func putRun(b *bolt.Bucket, run Run) error {
	t, err := run.Time.MarshalBinary()
	if err != nil {
		return err
	}
	elements := make([]byte, 8)
	binary.BigEndian.PutUint64(elements, uint64(run.Elements))
	for _, kv := range [...]struct {
		k string
		v []byte
	}{
		{keyWorkload, []byte(run.Workload)},
		{keyTime, t},
		{keyElements, elements},
	} {
		if err := b.Put([]byte(kv.k), kv.v); err != nil {
			return err
		}
	}
	if len(run.Failures) == 0 {
		return nil
	}
	// One key per failure, in order.
	fb, err := b.CreateBucket([]byte(keyFailures))
	if err != nil {
		return err
	}
	for i, f := range run.Failures {
		if err := fb.Put(marshalSeq(uint64(i)), []byte(f)); err != nil {
			return err
		}
	}
	return nil
}

func getRun(seq uint64, b *bolt.Bucket) (Run, error) {
	run := Run{Seq: int(seq), Workload: string(b.Get([]byte(keyWorkload)))}
	var t time.Time
	if err := t.UnmarshalBinary(b.Get([]byte(keyTime))); err != nil {
		return Run{}, err
	}
	run.Time = t
	if v := b.Get([]byte(keyElements)); len(v) == 8 {
		run.Elements = int(binary.BigEndian.Uint64(v))
	}
	if fb := b.Bucket([]byte(keyFailures)); fb != nil {
		err := fb.ForEach(func(_, v []byte) error {
			run.Failures = append(run.Failures, string(v))
			return nil
		})
		if err != nil {
			return Run{}, err
		}
	}
	return run, nil
}

// DelRun deletes the run with the given sequence number.
func (s *dbStore) DelRun(seq int) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		err := tx.Bucket([]byte(bucketRun)).DeleteBucket(marshalSeq(uint64(seq)))
		if err == bolt.ErrBucketNotFound {
			return ErrNoRun
		}
		return err
	})
}

// Run queries the run with the given sequence number.
func (s *dbStore) Run(seq int) (Run, error) {
	var run Run
	err := s.db.View(func(tx *bolt.Tx) error {
		rb := tx.Bucket([]byte(bucketRun)).Bucket(marshalSeq(uint64(seq)))
		if rb == nil {
			return ErrNoRun
		}
		var err error
		run, err = getRun(uint64(seq), rb)
		return err
	})
	return run, err
}

// IterateRuns iterates all the runs in the specified range, and calls the
// callback with each run sequentially.
func (s *dbStore) IterateRuns(from, upto int, f func(Run)) error {
	return s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketRun))
		c := b.Cursor()
		for k, _ := c.Seek(marshalSeq(uint64(from))); k != nil && unmarshalSeq(k) < uint64(upto); k, _ = c.Next() {
			run, err := getRun(unmarshalSeq(k), b.Bucket(k))
			if err != nil {
				return err
			}
			f(run)
		}
		return nil
	})
}

// Runs returns all runs within the specified range.
func (s *dbStore) Runs(from, upto int) ([]Run, error) {
	var runs []Run
	err := s.IterateRuns(from, upto, func(run Run) {
		runs = append(runs, run)
	})
	return runs, err
}
