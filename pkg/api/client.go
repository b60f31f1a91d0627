package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/xerrors"
)

type Client struct {
	http     *http.Client
	endpoint string
	token    string
	log      zerolog.Logger
}

func NewClient(endpoint, token string, timeout time.Duration, log zerolog.Logger) Interface {
	return &Client{
		http:     &http.Client{Timeout: timeout},
		endpoint: endpoint,
		token:    token,
		log:      log.With().Str("component", "api").Logger(),
	}
}

func (c Client) Fetch(ctx context.Context, fromDate int64) (interface{}, error) {
	req, err := c.newRequest(ctx, fromDate)
	if err != nil {
		return nil, c.fail(&RequestError{Err: err})
	}

	c.log.Debug().Int64("from_date", fromDate).Msg("sending API request")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.fail(&RequestError{Err: err})
	}
	defer resp.Body.Close()
	c.log.Debug().Int("status", resp.StatusCode).Msg("got API response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.fail(&StatusError{Code: resp.StatusCode})
	}

	var body interface{}
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return nil, c.fail(&RequestError{Err: xerrors.Errorf("decode body: %w", err)})
	}
	return body, nil
}

func (c Client) newRequest(ctx context.Context, fromDate int64) (*http.Request, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, xerrors.Errorf("parse endpoint %q: %w", c.endpoint, err)
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, xerrors.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)
	return req, nil
}

func (c Client) fail(err error) error {
	c.log.Error().Err(err).Msg("API request failed")
	return err
}
