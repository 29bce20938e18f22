// Package storetest provides an in-memory store.Store for tests. It
// evaluates the filter subset the service actually emits: top-level
// equality, $or, and case-insensitive regex matches over strings and
// string arrays.
package storetest

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Fake struct {
	mu          sync.Mutex
	collections map[string][]bson.M
	insertErr   error
}

func NewFake() *Fake {
	return &Fake{collections: make(map[string][]bson.M)}
}

// FailInserts makes every subsequent Insert return err.
func (f *Fake) FailInserts(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.insertErr = err
}

func (f *Fake) Insert(_ context.Context, collection string, doc any) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.insertErr != nil {
		return "", f.insertErr
	}

	normalized, err := normalize(doc)
	if err != nil {
		return "", err
	}

	id := primitive.NewObjectID()
	normalized["_id"] = id
	f.collections[collection] = append(f.collections[collection], normalized)
	return id.Hex(), nil
}

func (f *Fake) Find(_ context.Context, collection string, filter bson.M) ([]bson.Raw, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []bson.Raw
	for _, doc := range f.collections[collection] {
		ok, err := matches(doc, filter)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		raw, err := bson.Marshal(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, bson.Raw(raw))
	}
	return out, nil
}

func (f *Fake) Count(_ context.Context, collection string, filter bson.M) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int64
	for _, doc := range f.collections[collection] {
		ok, err := matches(doc, filter)
		if err != nil {
			return 0, err
		}
		if ok {
			n++
		}
	}
	return n, nil
}

func (f *Fake) Collections(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	names := make([]string, 0, len(f.collections))
	for name := range f.collections {
		names = append(names, name)
	}
	return names, nil
}

// Len reports the number of documents in a collection.
func (f *Fake) Len(collection string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.collections[collection])
}

// normalize round-trips a document through bson so entities and raw
// maps end up with the same representation the driver would store.
func normalize(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func matches(doc bson.M, filter bson.M) (bool, error) {
	for key, want := range filter {
		if key == "$or" {
			clauses, ok := want.(bson.A)
			if !ok {
				return false, fmt.Errorf("storetest: unsupported $or operand %T", want)
			}
			matched := false
			for _, clause := range clauses {
				m, ok := clause.(bson.M)
				if !ok {
					return false, fmt.Errorf("storetest: unsupported $or clause %T", clause)
				}
				hit, err := matches(doc, m)
				if err != nil {
					return false, err
				}
				if hit {
					matched = true
					break
				}
			}
			if !matched {
				return false, nil
			}
			continue
		}

		if !fieldMatches(doc[key], want) {
			return false, nil
		}
	}
	return true, nil
}

func fieldMatches(have, want any) bool {
	if re, ok := want.(primitive.Regex); ok {
		return regexMatches(have, re)
	}

	// Numeric equality across bson integer widths.
	if wn, ok := asInt64(want); ok {
		hn, ok := asInt64(have)
		return ok && hn == wn
	}

	if ws, ok := want.(string); ok {
		switch hv := have.(type) {
		case string:
			return hv == ws
		case bson.A:
			// Mongo equality on an array field matches any element.
			for _, el := range hv {
				if s, ok := el.(string); ok && s == ws {
					return true
				}
			}
			return false
		}
	}

	return have == want
}

func regexMatches(have any, re primitive.Regex) bool {
	pattern := re.Pattern
	for _, opt := range re.Options {
		if opt == 'i' {
			pattern = "(?i)" + pattern
			break
		}
	}
	compiled, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}

	switch hv := have.(type) {
	case string:
		return compiled.MatchString(hv)
	case bson.A:
		for _, el := range hv {
			if s, ok := el.(string); ok && compiled.MatchString(s) {
				return true
			}
		}
	}
	return false
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}
