package greek

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of distinct cluster texts a Classifier
// remembers. Greek text uses a few hundred distinct letter/diacritic
// combinations at most.
const DefaultCacheSize = 512

// Classifier memoizes the Traits of cluster texts. Classification is a pure
// function of the cluster text, therefore a Classifier may be re-used for
// any number of texts.
type Classifier struct {
	cache *lru.Cache[string, Traits]
}

// NewClassifier creates a classifier remembering up to size cluster texts.
// If size is not positive, DefaultCacheSize is used.
func NewClassifier(size int) *Classifier {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, Traits](size)
	if err != nil { // cannot happen for size > 0
		panic(err)
	}
	return &Classifier{cache: cache}
}

// Classify returns the Traits of cluster text s.
func (c *Classifier) Classify(s string) Traits {
	if t, ok := c.cache.Get(s); ok {
		return t
	}
	t := Classify(s)
	c.cache.Add(s, t)
	return t
}

// Len returns the number of cluster texts currently remembered.
func (c *Classifier) Len() int {
	return c.cache.Len()
}
