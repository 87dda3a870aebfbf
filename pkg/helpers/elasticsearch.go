package helpers

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// NewESClient creates an Elasticsearch client with optional basic auth.
// It returns nil, nil when no addresses are configured.
func NewESClient(addrs []string, username, password string) (*elasticsearch.Client, error) {
	if len(addrs) == 0 {
		return nil, nil
	}
	cfg := elasticsearch.Config{
		Addresses: addrs,
		Username:  username,
		Password:  password,
		Transport: &http.Transport{
			MaxIdleConnsPerHost:   10,
			ResponseHeaderTimeout: 5 * time.Second,
			TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
			DialContext:           (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		},
	}
	return elasticsearch.NewClient(cfg)
}

// carsIndexMapping keeps the price a keyword so the decimal string round-trips untouched.
const carsIndexMapping = `{
  "mappings": {
    "properties": {
      "make":        {"type": "text"},
      "model":       {"type": "text"},
      "type":        {"type": "keyword"},
      "description": {"type": "text"},
      "pricePerDay": {"type": "keyword"},
      "available":   {"type": "boolean"},
      "featured":    {"type": "boolean"}
    }
  }
}`

// EnsureCarsIndex creates the cars index if it does not exist yet.
func EnsureCarsIndex(ctx context.Context, es *elasticsearch.Client, index string) error {
	if es == nil || index == "" {
		return nil
	}
	exists, err := esapi.IndicesExistsRequest{Index: []string{index}}.Do(ctx, es)
	if err != nil {
		return err
	}
	_ = exists.Body.Close()
	if exists.StatusCode == http.StatusOK {
		return nil
	}
	res, err := esapi.IndicesCreateRequest{Index: index, Body: strings.NewReader(carsIndexMapping)}.Do(ctx, es)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && res.StatusCode != http.StatusBadRequest {
		return fmt.Errorf("create index %s: %s", index, res.Status())
	}
	return nil
}
