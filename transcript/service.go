package transcript

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// VideoInfo is the metadata a clip review screen needs alongside suggestions.
type VideoInfo struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	ChannelID  string   `json:"channel_id"`
	Duration   string   `json:"duration"`
	CaptionIDs []string `json:"caption_ids,omitempty"`
}

// Service reads public video metadata and caption listings through the
// YouTube Data API.
type Service struct {
	yt *youtube.Service
}

// NewService builds a read-only client from an API key.
func NewService(ctx context.Context, apiKey string) (*Service, error) {
	yt, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("unable to create YouTube service: %w", err)
	}
	return &Service{yt: yt}, nil
}

// VideoInfo fetches a video's title, channel, duration and available caption
// tracks.
func (s *Service) VideoInfo(ctx context.Context, videoID string) (*VideoInfo, error) {
	resp, err := s.yt.Videos.List([]string{"snippet", "contentDetails"}).
		Id(videoID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to look up video %s: %w", videoID, err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("video %s not found", videoID)
	}
	v := resp.Items[0]

	info := &VideoInfo{
		ID:        videoID,
		Title:     v.Snippet.Title,
		ChannelID: v.Snippet.ChannelId,
		Duration:  v.ContentDetails.Duration,
	}

	caps, err := s.yt.Captions.List([]string{"snippet"}, videoID).Context(ctx).Do()
	if err != nil {
		// Caption listing is best effort; many videos restrict it.
		return info, nil
	}
	for _, c := range caps.Items {
		info.CaptionIDs = append(info.CaptionIDs, c.Id)
	}
	return info, nil
}

// EmbedURL builds the embeddable player link for a clip window.
func EmbedURL(videoID string, start, end float64) string {
	return fmt.Sprintf(
		"https://www.youtube.com/embed/%s?start=%d&end=%d&autoplay=0&rel=0",
		videoID, int(start), int(end),
	)
}
