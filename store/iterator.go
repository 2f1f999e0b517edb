package store

import (
	"bytes"
	"sync"

	"github.com/google/btree"

	"github.com/iov-one/ledger/errors"
)

///////////////////////////////////////////////////////
// From btree items to Iterator

type btreeIter struct {
	data    btree.Item
	hasMore bool
	read    <-chan btree.Item
	stop    chan<- struct{}
	once    sync.Once
}

// source marks where the current item comes from
type source int32

const (
	us source = iota
	parent
	both
	none
)

func ascendBtree(bt *btree.BTree, start, end []byte) *btreeIter {
	read := make(chan btree.Item)
	// ensure we never block when we call close()
	stop := make(chan struct{}, 1)
	iter := &btreeIter{
		read: read,
		stop: stop,
	}

	// Stopping the scan makes insert return false, which ends the Ascend
	// call in the producer goroutine below. Only the producer closes read,
	// so a Release before exhaustion cannot close the channel twice.
	insert := func(item btree.Item) bool {
		select {
		case read <- item:
			return true
		case <-stop:
			return false
		}
	}

	go func() {
		if start == nil && end == nil {
			bt.Ascend(insert)
		} else if start == nil { // end != nil
			bt.AscendLessThan(bkey{end}, insert)
		} else if end == nil { // start != nil
			bt.AscendGreaterOrEqual(bkey{start}, insert)
		} else { // both != nil
			bt.AscendRange(bkey{start}, bkey{end}, insert)
		}
		close(read)
	}()

	iter.next()
	return iter
}

func descendBtree(bt *btree.BTree, start, end []byte) *btreeIter {
	read := make(chan btree.Item)
	// ensure we never block when we call close()
	stop := make(chan struct{}, 1)
	iter := &btreeIter{
		read: read,
		stop: stop,
	}

	insert := func(item btree.Item) bool {
		select {
		case read <- item:
			return true
		case <-stop:
			return false
		}
	}

	go func() {
		if start == nil && end == nil {
			bt.Descend(insert)
		} else if start == nil { // end != nil
			bt.DescendLessOrEqual(bkeyLess{end}, insert)
		} else if end == nil { // start != nil
			bt.DescendGreaterThan(bkeyLess{start}, insert)
		} else { // both != nil
			bt.DescendRange(bkeyLess{end}, bkeyLess{start}, insert)
		}
		close(read)
	}()

	iter.next()
	return iter
}

func (b *btreeIter) wrap(parent Iterator) *itemIter {
	return &itemIter{
		wrap:   b,
		parent: parent,
	}
}

func (b *btreeIter) next() {
	b.data, b.hasMore = <-b.read
}

func (b *btreeIter) close() {
	b.once.Do(func() {
		b.stop <- struct{}{}
	})
}

// get requires this is valid, gets what we are pointing at
func (b *btreeIter) get() keyer {
	return b.data.(keyer)
}

func (b *btreeIter) valid() bool {
	return b.hasMore
}

// itemIter combines the uncommitted btree state with the
// iterator over the backing store, respecting overwrites
// and deletes in the cache layer.
type itemIter struct {
	wrap *btreeIter
	// if we are iterating in a cache-wrap (and who isn't),
	// we need to combine this iterator with the parent
	parent  Iterator
	reverse bool

	// one item of lookahead on the parent iterator
	parentKey   []byte
	parentValue []byte
	parentDone  bool
	primed      bool
}

var _ Iterator = (*itemIter)(nil)

// Next returns the next key/value pair in the merged view,
// or errors.ErrIteratorDone when exhausted.
func (i *itemIter) Next() (key, value []byte, err error) {
	if !i.primed {
		if err := i.advanceParent(); err != nil {
			return nil, nil, err
		}
		i.primed = true
	}

	for {
		src := i.firstKey()
		switch src {
		case none:
			return nil, nil, errors.ErrIteratorDone
		case parent:
			key, value = i.parentKey, i.parentValue
			if err := i.advanceParent(); err != nil {
				return nil, nil, err
			}
			return key, value, nil
		case us, both:
			item := i.wrap.get()
			if src == both {
				if err := i.advanceParent(); err != nil {
					return nil, nil, err
				}
			}
			i.wrap.next()
			// deleted in the cache layer, try the next one
			if _, gone := item.(deletedItem); gone {
				continue
			}
			set := item.(setItem)
			return set.Key(), set.value, nil
		}
	}
}

// Release frees both the cache and parent iterators.
func (i *itemIter) Release() {
	i.wrap.close()
	if i.parent != nil {
		i.parent.Release()
	}
}

// advanceParent pulls the next item from the parent iterator
// into the lookahead slot.
func (i *itemIter) advanceParent() error {
	if i.parent == nil {
		i.parentDone = true
		return nil
	}
	key, value, err := i.parent.Next()
	switch {
	case err == nil:
		i.parentKey, i.parentValue = key, value
		return nil
	case errors.ErrIteratorDone.Is(err):
		i.parentDone = true
		i.parentKey, i.parentValue = nil, nil
		return nil
	default:
		return err
	}
}

// firstKey selects the iterator with the lowest key, if any.
// For reverse iteration lowest means closest to the end.
func (i *itemIter) firstKey() source {
	// if only one or none is valid, it is clear which to use
	if i.parentDone {
		if !i.wrap.valid() {
			return none
		}
		return us
	} else if !i.wrap.valid() {
		return parent
	}

	// both are valid... compare keys....
	cmp := bytes.Compare(i.parentKey, i.wrap.get().Key())
	if i.reverse {
		cmp = -cmp
	}
	if cmp < 0 {
		return parent
	} else if cmp > 0 {
		return us
	}
	return both
}
