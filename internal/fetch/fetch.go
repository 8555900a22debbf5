// Package fetch is the retrieval boundary: act trees and article bodies come
// from an external service and are fed into the workspace. The workspace
// model never depends on this package; results flow one way.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"lexdesk/internal/model"
)

// TreeNode is one article slot in an act's structure: enough to know the
// identifier exists, no body.
type TreeNode struct {
	Number  string `json:"number"`
	Heading string `json:"heading,omitempty"`
}

// Annex lists the article numbers that belong to one annex of the act.
// Number is empty for the main text.
type Annex struct {
	Number         string   `json:"number,omitempty"`
	ArticleNumbers []string `json:"articleNumbers"`
}

// Tree is the structure of an act.
type Tree struct {
	Articles []TreeNode `json:"articles"`
	Annexes  []Annex    `json:"annexes,omitempty"`
}

// ArticleNumbersForAnnex filters the tree down to one annex's article
// numbers. An empty annex selects the main text: every article not claimed
// by any annex.
func (t *Tree) ArticleNumbersForAnnex(annex string) []string {
	if annex != "" {
		for _, a := range t.Annexes {
			if a.Number == annex {
				return a.ArticleNumbers
			}
		}
		return nil
	}
	claimed := map[string]bool{}
	for _, a := range t.Annexes {
		for _, n := range a.ArticleNumbers {
			claimed[n] = true
		}
	}
	var out []string
	for _, n := range t.Articles {
		if !claimed[n.Number] {
			out = append(out, n.Number)
		}
	}
	return out
}

// TreeFetcher retrieves the structure of an act by permanent URN.
type TreeFetcher interface {
	FetchTree(ctx context.Context, actURN string) (*Tree, error)
}

// ArticleFetcher retrieves one article's full content. The annex is empty
// for main-text articles. A single number may expand to several articles
// (e.g. a numeral covering bis/ter variants), hence the slice.
type ArticleFetcher interface {
	FetchArticle(ctx context.Context, act model.ActRef, number, annex string) ([]model.Article, error)
}

// Client implements both fetchers over HTTP.
type Client struct {
	base string
	hc   *http.Client
	log  zerolog.Logger
}

func NewClient(baseURL string, logger zerolog.Logger) *Client {
	return &Client{
		base: baseURL,
		hc:   &http.Client{Timeout: 20 * time.Second},
		log:  logger,
	}
}

func (c *Client) FetchTree(ctx context.Context, actURN string) (*Tree, error) {
	q := url.Values{"urn": {actURN}}
	var out Tree
	if err := c.getJSON(ctx, "/v1/tree", q, &out); err != nil {
		c.log.Error().Err(err).Str("urn", actURN).Msg("fetch tree failed")
		return nil, err
	}
	c.log.Debug().Str("urn", actURN).Int("articles", len(out.Articles)).Msg("fetched tree")
	return &out, nil
}

func (c *Client) FetchArticle(ctx context.Context, act model.ActRef, number, annex string) ([]model.Article, error) {
	q := url.Values{
		"urn":    {act.URN},
		"number": {number},
	}
	if annex != "" {
		q.Set("annex", annex)
	}
	var out []model.Article
	if err := c.getJSON(ctx, "/v1/article", q, &out); err != nil {
		c.log.Error().Err(err).
			Str("urn", act.URN).
			Str("number", number).
			Str("annex", annex).
			Msg("fetch article failed")
		return nil, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, v any) error {
	u := c.base + path + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
