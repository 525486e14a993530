package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

func (t *twitterImpl) SearchRecent(ctx context.Context, in SearchRecentInput) ([]Tweet, error) {
	if in.Query == "" {
		return nil, fmt.Errorf("twitter: query is required")
	}
	limit := in.MaxTweets
	if limit <= 0 {
		limit = MaxPageSize
	}

	headers := map[string]string{"Authorization": "Bearer " + t.bearerToken}
	tweets := make([]Tweet, 0, limit)
	nextToken := ""
	for len(tweets) < limit {
		pageSize := limit - len(tweets)
		if pageSize > MaxPageSize {
			pageSize = MaxPageSize
		}
		if pageSize < MinPageSize {
			pageSize = MinPageSize
		}

		body, status, err := t.httpClient.Get(ctx, t.searchURL(in, pageSize, nextToken), headers)
		if err != nil {
			return nil, fmt.Errorf("failed to call X API: %w", err)
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("X API returned status: %d, body: %s", status, string(body))
		}

		var resp searchResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("failed to unmarshal X API response: %w", err)
		}
		if len(resp.Data) == 0 && len(resp.Errors) > 0 {
			return nil, fmt.Errorf("X API error: %s: %s", resp.Errors[0].Title, resp.Errors[0].Detail)
		}

		usernames := make(map[string]string, len(resp.Includes.Users))
		for _, u := range resp.Includes.Users {
			usernames[u.ID] = u.Username
		}
		for _, tw := range resp.Data {
			tw.Username = usernames[tw.AuthorID]
			tweets = append(tweets, tw)
			if len(tweets) == limit {
				break
			}
		}

		if resp.Meta.NextToken == "" {
			break
		}
		nextToken = resp.Meta.NextToken
	}
	return tweets, nil
}

func (t *twitterImpl) searchURL(in SearchRecentInput, pageSize int, nextToken string) string {
	q := url.Values{}
	q.Set("query", in.Query)
	q.Set("tweet.fields", tweetFields)
	q.Set("user.fields", userFields)
	q.Set("expansions", expansions)
	q.Set("max_results", strconv.Itoa(pageSize))
	if !in.StartTime.IsZero() {
		q.Set("start_time", in.StartTime.UTC().Format(time.RFC3339))
	}
	if !in.EndTime.IsZero() {
		q.Set("end_time", in.EndTime.UTC().Format(time.RFC3339))
	}
	if nextToken != "" {
		q.Set("next_token", nextToken)
	}
	return t.baseURL + recentSearchPath + "?" + q.Encode()
}
