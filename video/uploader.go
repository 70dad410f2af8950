package video

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"reelsmith/config"
	"reelsmith/types"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Uploader publishes rendered clips to a YouTube channel through a service
// account.
type Uploader struct {
	service *youtube.Service
}

// NewUploader authenticates with a service account JSON key file.
func NewUploader(serviceAccountFile string) (*Uploader, error) {
	ctx := context.Background()

	data, err := os.ReadFile(serviceAccountFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read service account file: %w", err)
	}

	cfg, err := google.JWTConfigFromJSON(data, youtube.YoutubeUploadScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account: %w", err)
	}

	client := cfg.Client(ctx)

	service, err := youtube.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create YouTube service: %w", err)
	}

	return &Uploader{service: service}, nil
}

// UploadVideo publishes the file at videoPath and returns its video ID.
func (u *Uploader) UploadVideo(videoPath string, metadata Metadata) (string, error) {
	file, err := os.Open(videoPath)
	if err != nil {
		return "", fmt.Errorf("failed to open video file: %w", err)
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat video file: %w", err)
	}

	log.Printf("📤 Uploading: %s (%.2f MB)", videoPath, float64(fileInfo.Size())/(1024*1024))

	vid := &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title:       metadata.Title,
			Description: metadata.Description,
			Tags:        metadata.Tags,
			CategoryId:  metadata.CategoryID,
		},
		Status: &youtube.VideoStatus{
			PrivacyStatus:           config.YouTubePrivacyStatus,
			SelfDeclaredMadeForKids: false,
		},
	}

	call := u.service.Videos.Insert([]string{"snippet", "status"}, vid)
	call = call.Media(file)

	response, err := call.Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload video: %w", err)
	}

	videoID := response.Id
	log.Printf("✅ Uploaded! https://youtube.com/shorts/%s", videoID)

	return videoID, nil
}

// GenerateMetadata builds a title, description and tags for a rendered quote
// clip.
func GenerateMetadata(req types.RenderRequest, keywords []string) Metadata {
	title := req.Text
	if req.Author != "" {
		title = fmt.Sprintf("%s — %s", req.Text, req.Author)
	}
	if len(title) > 100 {
		title = title[:97] + "..."
	}

	var hashtags []string
	for _, kw := range keywords {
		hashtags = append(hashtags, "#"+strings.ReplaceAll(kw, " ", ""))
	}
	hashtags = append(hashtags, "#quotes", "#motivation", "#shorts")

	description := fmt.Sprintf(
		"%s\n\n"+
			"📱 Follow for daily quotes!\n"+
			"%s",
		req.Text,
		strings.Join(hashtags, " "),
	)

	tags := append([]string{"quotes", "motivation", "daily quotes"}, keywords...)

	return Metadata{
		Title:       title,
		Description: description,
		Tags:        tags,
		CategoryID:  config.YouTubeCategoryID,
	}
}
