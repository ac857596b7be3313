// Pulseboard - Social Content Analytics and Engagement Insights
// Copyright 2026 enamorak
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/enamorak/pulseboard

package vk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/enamorak/pulseboard/internal/config"
	"github.com/enamorak/pulseboard/internal/logging"
	"github.com/enamorak/pulseboard/internal/metrics"
	"github.com/enamorak/pulseboard/internal/models"
)

// ErrAPIError is returned when VK answers with its error envelope
// instead of a response payload.
var ErrAPIError = errors.New("vk api error")

// wallPost is the subset of the VK wall post object the pipeline
// consumes.
type wallPost struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"owner_id"`
	Date        int64  `json:"date"`
	Text        string `json:"text"`
	Attachments []struct {
		Type string `json:"type"`
	} `json:"attachments"`
	Comments struct {
		Count int `json:"count"`
	} `json:"comments"`
	Likes struct {
		Count int `json:"count"`
	} `json:"likes"`
	Reposts struct {
		Count int `json:"count"`
	} `json:"reposts"`
	Views struct {
		Count int `json:"count"`
	} `json:"views"`
}

type wallComment struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

type apiEnvelope struct {
	Error *struct {
		Code    int    `json:"error_code"`
		Message string `json:"error_msg"`
	} `json:"error"`
	Response json.RawMessage `json:"response"`
}

// Client fetches a community wall through the VK API.
type Client struct {
	cfg        config.VKConfig
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[[]byte]
	mock       bool
}

// NewClient creates a VK client from its config section.
func NewClient(cfg config.VKConfig) *Client {
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.Token == "" || cfg.GroupID == "" {
		logging.Info().Msg("vk credentials absent, serving mock wall")
		c.mock = true
		return c
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 3
	}
	c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "vk-api",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).
				Str("from", from.String()).Str("to", to.String()).
				Msg("circuit breaker state change")
			metrics.SetBreakerState("vk", breakerStateValue(to))
		},
	})
	return c
}

// Mock reports whether the client serves generated posts.
func (c *Client) Mock() bool { return c.mock }

func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateOpen:
		return 2
	case gobreaker.StateHalfOpen:
		return 1
	default:
		return 0
	}
}

// WallPosts returns up to count normalized posts from the community
// wall, newest first.
func (c *Client) WallPosts(ctx context.Context, count int) ([]models.ContentItem, error) {
	if c.mock {
		return mockWallPosts(time.Now().UTC(), count), nil
	}

	params := url.Values{}
	params.Set("owner_id", "-"+c.cfg.GroupID)
	params.Set("count", strconv.Itoa(count))
	params.Set("extended", "0")

	body, err := c.call(ctx, "wall.get", params)
	if err != nil {
		return nil, err
	}

	var page struct {
		Items []wallPost `json:"items"`
	}
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("decode wall.get response: %w", err)
	}

	items := make([]models.ContentItem, 0, len(page.Items))
	for _, post := range page.Items {
		items = append(items, normalizePost(post))
	}
	return items, nil
}

// Comments returns the comment texts of one post, for sentiment
// scoring. postID is the normalized content item ID.
func (c *Client) Comments(ctx context.Context, postID string, count int) ([]string, error) {
	if c.mock {
		return mockComments(postID), nil
	}

	rawID, err := postIDFromContentID(postID)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("owner_id", "-"+c.cfg.GroupID)
	params.Set("post_id", strconv.FormatInt(rawID, 10))
	params.Set("count", strconv.Itoa(count))

	body, err := c.call(ctx, "wall.getComments", params)
	if err != nil {
		return nil, err
	}

	var page struct {
		Items []wallComment `json:"items"`
	}
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("decode wall.getComments response: %w", err)
	}

	texts := make([]string, 0, len(page.Items))
	for _, comment := range page.Items {
		if comment.Text != "" {
			texts = append(texts, comment.Text)
		}
	}
	return texts, nil
}

// call executes one VK API method through the limiter and breaker and
// unwraps the response envelope.
func (c *Client) call(ctx context.Context, method string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("vk rate limit wait: %w", err)
	}

	params.Set("access_token", c.cfg.Token)
	params.Set("v", c.cfg.APIVersion)

	start := time.Now()
	result, err := c.breaker.Execute(func() ([]byte, error) {
		u := c.cfg.BaseURL + "/" + method + "?" + params.Encode()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, fmt.Errorf("build vk request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("vk %s: %w", method, err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read vk response: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("vk %s: status %d", method, resp.StatusCode)
		}

		var envelope apiEnvelope
		if err := json.Unmarshal(data, &envelope); err != nil {
			return nil, fmt.Errorf("decode vk envelope: %w", err)
		}
		if envelope.Error != nil {
			return nil, fmt.Errorf("%w: %s (code %d)", ErrAPIError, envelope.Error.Message, envelope.Error.Code)
		}
		return envelope.Response, nil
	})

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	metrics.RecordUpstreamRequest("vk", method, outcome, time.Since(start))
	return result, err
}
