package hiatus

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/hiatus/greek"
)

// A scratch holds the per-run working memory of a detection run: a buffer
// for the traits of all clusters of a text and a classifier memoizing
// cluster traits. Scratches are re-used between runs, but only by one run
// at a time. Memoized traits are a pure function of cluster text, so
// re-using a classifier does not change results.
type scratch struct {
	traits     []greek.Traits
	classifier *greek.Classifier
	pooled     bool // created by the pool, to be returned to it
}

// Scratches are short-lived objects. To avoid multiple allocation of
// trait buffers we will pool them.
type scratchPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScratchPool *scratchPool

func init() {
	globalScratchPool = &scratchPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			scr := &scratch{
				classifier: greek.NewClassifier(greek.DefaultCacheSize),
				pooled:     true,
			}
			return scr, nil
		})
	globalScratchPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScratchPool.opool = pool.NewObjectPool(globalScratchPool.ctx, factory, config)
}

// borrowScratch returns a scratch with room for the traits of n clusters.
func borrowScratch(n int) *scratch {
	o, err := globalScratchPool.opool.BorrowObject(globalScratchPool.ctx)
	if err != nil {
		CT().Errorf("hiatus: cannot borrow scratch from pool: %v", err)
		o = &scratch{classifier: greek.NewClassifier(greek.DefaultCacheSize)}
	}
	scr := o.(*scratch)
	if cap(scr.traits) < n {
		scr.traits = make([]greek.Traits, n)
	}
	scr.traits = scr.traits[:n]
	return scr
}

// Clears the scratch and puts it back into the pool. Scratches not
// created by the pool are left to the garbage collector.
func (scr *scratch) releaseIntoPool() {
	for i := range scr.traits {
		scr.traits[i] = greek.Traits{}
	}
	scr.traits = scr.traits[:0]
	if !scr.pooled {
		return
	}
	if err := globalScratchPool.opool.ReturnObject(globalScratchPool.ctx, scr); err != nil {
		CT().Errorf("hiatus: cannot return scratch to pool: %v", err)
	}
}
