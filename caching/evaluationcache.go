package caching

import (
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"voyager.com/solorpg/poker"
	"voyager.com/solorpg/util"
)

const DefaultEvaluationCacheSize = 4096

// EvaluationCache memoizes hand evaluations. A hand's rank only depends on
// suits and values, so the key is the sorted card ids.
type EvaluationCache struct {
	evaluator poker.HandEvaluator
	cache     *lru.Cache
}

func NewEvaluationCache(evaluator poker.HandEvaluator, size int) (*EvaluationCache, error) {
	if evaluator == nil {
		evaluator = poker.NewEvaluator()
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to initialize evaluation cache")
	}
	return &EvaluationCache{
		evaluator: evaluator,
		cache:     c,
	}, nil
}

func cacheKey(cards []poker.PlayingCard) string {
	ids := poker.CardIDs(cards)
	sort.Strings(ids)
	return strings.Join(ids, ",")
}

func (c *EvaluationCache) Evaluate(cards []poker.PlayingCard) (poker.Evaluation, error) {
	key := cacheKey(cards)
	if v, exists := c.cache.Get(key); exists {
		util.Metrics.EvaluationCacheHit()
		return v.(poker.Evaluation), nil
	}
	util.Metrics.EvaluationCacheMiss()
	eval, err := c.evaluator.Evaluate(cards)
	if err != nil {
		return eval, err
	}
	c.cache.Add(key, eval)
	return eval, nil
}

func (c *EvaluationCache) Len() int {
	return c.cache.Len()
}
