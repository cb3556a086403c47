package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
)

// SearchService indexes translated products into Elasticsearch and answers
// full-text queries. The client is nil when ES is not configured; callers
// fall back to substring filtering.
type SearchService struct {
	client *elasticsearch.Client
	index  string
}

func NewSearchService(host, prefix string) *SearchService {
	if prefix == "" {
		prefix = "oticaisis"
	}
	index := prefix + "_catalog_product"
	if host == "" {
		return &SearchService{index: index}
	}
	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{host}})
	if err != nil {
		return &SearchService{index: index}
	}
	return &SearchService{client: client, index: index}
}

// Enabled reports whether a reachable client was configured.
func (s *SearchService) Enabled() bool {
	return s != nil && s.client != nil
}

type searchDoc struct {
	Handle      string `json:"handle"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Brand       string `json:"brand"`
	Category    string `json:"category"`
}

// IndexProducts upserts product documents keyed by handle. The first
// indexing error aborts and is returned.
func (s *SearchService) IndexProducts(ctx context.Context, products []Product) error {
	if !s.Enabled() {
		return fmt.Errorf("elasticsearch not configured")
	}
	for _, p := range products {
		doc, err := json.Marshal(searchDoc{
			Handle:      p.Handle,
			Name:        p.Name,
			Description: p.Description,
			Brand:       p.Brand,
			Category:    p.Category,
		})
		if err != nil {
			return err
		}
		res, err := s.client.Index(
			s.index,
			bytes.NewReader(doc),
			s.client.Index.WithContext(ctx),
			s.client.Index.WithDocumentID(p.Handle),
		)
		if err != nil {
			return err
		}
		res.Body.Close()
		if res.IsError() {
			return fmt.Errorf("elasticsearch index error: %s", res.String())
		}
	}
	return nil
}

// Search returns the handles of matching products, best first.
func (s *SearchService) Search(ctx context.Context, query string) ([]string, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("elasticsearch not configured")
	}

	body := map[string]interface{}{
		"size": 20,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"name^3", "brand^2", "description", "category"},
			},
		},
	}
	bodyBytes, _ := json.Marshal(body)

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(bytes.NewReader(bodyBytes)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		if strings.Contains(res.String(), "index_not_found") {
			return nil, nil
		}
		return nil, fmt.Errorf("elasticsearch error: %s", res.String())
	}

	var esRes struct {
		Hits struct {
			Hits []struct {
				Source searchDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&esRes); err != nil {
		return nil, err
	}

	handles := make([]string, 0, len(esRes.Hits.Hits))
	for _, hit := range esRes.Hits.Hits {
		handles = append(handles, hit.Source.Handle)
	}
	return handles, nil
}
