package model

import (
	"encoding/json"
	"fmt"
)

// ContentItem is the tagged union of things a window can hold. The three
// variants are GroupBlock, StandaloneArticle and Collection; the unexported
// marker method seals the set so every consumption site can switch
// exhaustively over pointers to these three types.
type ContentItem interface {
	ItemID() string
	contentItem()
}

// GroupBlock bundles articles that share the same source act.
//
// Invariant: no two articles in a block share canonical identity, and a block
// with zero articles must not exist.
type GroupBlock struct {
	ID        string    `json:"id"`
	Act       ActRef    `json:"act"`
	Articles  []Article `json:"articles"`
	Collapsed bool      `json:"collapsed,omitempty"`
}

func (g *GroupBlock) ItemID() string { return g.ID }
func (*GroupBlock) contentItem()     {}

// StandaloneArticle holds exactly one article detached from any group, with
// the act it came from.
type StandaloneArticle struct {
	ID        string  `json:"id"`
	Article   Article `json:"article"`
	SourceAct ActRef  `json:"sourceAct"`
}

func (s *StandaloneArticle) ItemID() string { return s.ID }
func (*StandaloneArticle) contentItem()     {}

// CollectionEntry is an article inside a collection together with its source
// act; collections mix articles from arbitrary acts, so the source travels
// with each entry.
type CollectionEntry struct {
	Article   Article `json:"article"`
	SourceAct ActRef  `json:"sourceAct"`
}

// Collection is a user-named, freely composed bundle of articles.
type Collection struct {
	ID        string            `json:"id"`
	Label     string            `json:"label"`
	Collapsed bool              `json:"collapsed,omitempty"`
	Entries   []CollectionEntry `json:"entries"`
}

func (c *Collection) ItemID() string { return c.ID }
func (*Collection) contentItem()     {}

// ContentList is a window's ordered content. It (un)marshals each item inside
// a {kind, item} envelope so the union survives persistence round-trips.
type ContentList []ContentItem

const (
	kindGroup      = "group"
	kindStandalone = "standalone"
	kindCollection = "collection"
)

type contentEnvelope struct {
	Kind string          `json:"kind"`
	Item json.RawMessage `json:"item"`
}

func (l ContentList) MarshalJSON() ([]byte, error) {
	out := make([]struct {
		Kind string      `json:"kind"`
		Item ContentItem `json:"item"`
	}, 0, len(l))
	for _, it := range l {
		kind := ""
		switch it.(type) {
		case *GroupBlock:
			kind = kindGroup
		case *StandaloneArticle:
			kind = kindStandalone
		case *Collection:
			kind = kindCollection
		default:
			return nil, fmt.Errorf("unknown content item type %T", it)
		}
		out = append(out, struct {
			Kind string      `json:"kind"`
			Item ContentItem `json:"item"`
		}{Kind: kind, Item: it})
	}
	return json.Marshal(out)
}

func (l *ContentList) UnmarshalJSON(b []byte) error {
	var envs []contentEnvelope
	if err := json.Unmarshal(b, &envs); err != nil {
		return err
	}
	out := make(ContentList, 0, len(envs))
	for _, env := range envs {
		switch env.Kind {
		case kindGroup:
			var g GroupBlock
			if err := json.Unmarshal(env.Item, &g); err != nil {
				return err
			}
			out = append(out, &g)
		case kindStandalone:
			var s StandaloneArticle
			if err := json.Unmarshal(env.Item, &s); err != nil {
				return err
			}
			out = append(out, &s)
		case kindCollection:
			var c Collection
			if err := json.Unmarshal(env.Item, &c); err != nil {
				return err
			}
			out = append(out, &c)
		default:
			return fmt.Errorf("unknown content item kind: %q", env.Kind)
		}
	}
	*l = out
	return nil
}
