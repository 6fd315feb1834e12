package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"steamstatus/status-bot/models"
)

// GroupMe rejects bot posts longer than this.
const maxPostLength = 1000

// GroupMeClient posts messages to a group as a GroupMe bot.
type GroupMeClient struct {
	http    *http.Client
	botID   string
	token   string
	baseURL string
}

func NewGroupMeClient(botID, token, baseURL string, timeout time.Duration) *GroupMeClient {
	return &GroupMeClient{
		http:    &http.Client{Timeout: timeout},
		botID:   botID,
		token:   token,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Post sends text to the bot's group. Text over GroupMe's length limit is sent
// as several consecutive messages split between lines.
func (c *GroupMeClient) Post(ctx context.Context, text string) error {
	for _, chunk := range splitMessage(text, maxPostLength) {
		if err := c.post(ctx, chunk); err != nil {
			return err
		}
	}
	return nil
}

func (c *GroupMeClient) post(ctx context.Context, text string) error {
	body, err := json.Marshal(models.BotPost{BotID: c.botID, Text: text})
	if err != nil {
		return fmt.Errorf("failed to marshal bot post: %w", err)
	}

	endpoint := c.baseURL + "/bots/post"
	if c.token != "" {
		endpoint += "?" + url.Values{"token": {c.token}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build groupme request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("groupme request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("groupme api returned %s", resp.Status)
	}
	return nil
}

// splitMessage cuts text into pieces of at most limit characters, breaking at
// newlines. A single line longer than limit is hard-wrapped between runes.
func splitMessage(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var cur strings.Builder
	curLen := 0
	flush := func() {
		if cur.Len() > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
			curLen = 0
		}
	}

	for _, line := range strings.Split(text, "\n") {
		for utf8.RuneCountInString(line) > limit {
			flush()
			cut := runeOffset(line, limit)
			chunks = append(chunks, line[:cut])
			line = line[cut:]
		}
		n := utf8.RuneCountInString(line)
		if curLen > 0 && curLen+1+n > limit {
			flush()
		}
		if cur.Len() > 0 {
			cur.WriteByte('\n')
			curLen++
		}
		cur.WriteString(line)
		curLen += n
	}
	flush()
	return chunks
}

// runeOffset is the byte offset of the n-th rune of s, or len(s).
func runeOffset(s string, n int) int {
	count := 0
	for i := range s {
		if count == n {
			return i
		}
		count++
	}
	return len(s)
}
