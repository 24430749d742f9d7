package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/carework/internal/client/client"
	"github.com/dmitrijs2005/carework/internal/logging"
	"github.com/tidwall/gjson"
)

func get(endpoint string) client.Request {
	return client.Request{Method: http.MethodGet, Endpoint: endpoint}
}

func post(endpoint string, body any) client.Request {
	return client.Request{Method: http.MethodPost, Endpoint: endpoint, Body: body}
}

func put(endpoint string, body any) client.Request {
	return client.Request{Method: http.MethodPut, Endpoint: endpoint, Body: body}
}

func del(endpoint string) client.Request {
	return client.Request{Method: http.MethodDelete, Endpoint: endpoint}
}

// path joins a collection endpoint and escaped id segments.
func path(base string, segments ...string) string {
	var b strings.Builder
	b.WriteString(base)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// withQuery appends q to endpoint, leaving it bare when q is empty.
func withQuery(endpoint string, q url.Values) string {
	if enc := q.Encode(); enc != "" {
		return endpoint + "?" + enc
	}
	return endpoint
}

// fetch decodes one call into T and rejects results failing valid.
func fetch[T any](ctx context.Context, c client.Client, r client.Request, valid func(T) bool) (T, error) {
	var out T
	if err := c.Do(ctx, r, &out); err != nil {
		var zero T
		return zero, err
	}
	if valid != nil && !valid(out) {
		var zero T
		return zero, client.NewProtocolError("")
	}
	return out, nil
}

// fetchList accepts a bare array or an object carrying a "data" array.
func fetchList[T any](ctx context.Context, c client.Client, r client.Request) ([]T, error) {
	var raw json.RawMessage
	if err := c.Do(ctx, r, &raw); err != nil {
		return nil, err
	}

	list := gjson.ParseBytes(raw)
	if list.IsObject() {
		list = list.Get("data")
	}
	if !list.IsArray() {
		return nil, client.NewProtocolError("")
	}

	out := make([]T, 0)
	if err := json.Unmarshal([]byte(list.Raw), &out); err != nil {
		return nil, &client.APIError{Message: client.MsgInvalidResponse, Kind: client.KindParse}
	}
	return out, nil
}

// remove runs a delete and reports success as a bool.
func remove(ctx context.Context, c client.Client, log logging.Logger, what, endpoint string) bool {
	if err := c.Do(ctx, del(endpoint), nil); err != nil {
		log.Warn(ctx, fmt.Sprintf("delete %s failed", what), "endpoint", endpoint, "error", err)
		return false
	}
	return true
}
