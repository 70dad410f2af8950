package api

import (
	"net/http"

	"reelsmith/transcript"
	"reelsmith/types"

	"github.com/gin-gonic/gin"
)

// RegisterTranscriptRoutes registers the clip suggestion endpoint. svc may be
// nil, in which case only inline cue scoring is available.
func RegisterTranscriptRoutes(r *gin.Engine, svc *transcript.Service) {
	r.POST("/api/transcript/clips", handleTranscriptClips(svc))
}

type clipRequest struct {
	VideoURL string      `json:"video_url,omitempty"`
	SRT      string      `json:"srt,omitempty"`
	Cues     []types.Cue `json:"cues,omitempty"`
}

// handleTranscriptClips scores caption cues and returns suggested clips.
// Cues come inline (raw cues or SRT text); when a video URL is given and the
// YouTube API is configured, the video's metadata is attached too.
// POST /api/transcript/clips
func handleTranscriptClips(svc *transcript.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req clipRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid clip request"})
			return
		}

		cues := req.Cues
		if len(cues) == 0 && req.SRT != "" {
			cues = transcript.ParseSRT(req.SRT)
			if len(cues) == 0 {
				cues = transcript.ParseBracketed(req.SRT)
			}
		}
		if len(cues) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cues or srt is required"})
			return
		}

		clips := transcript.SuggestClips(cues, transcript.DefaultScoreConfig())

		resp := gin.H{"clips": clips, "count": len(clips)}

		if req.VideoURL != "" {
			videoID := transcript.ExtractVideoID(req.VideoURL)
			if videoID == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unrecognized video url"})
				return
			}
			embeds := make([]string, len(clips))
			for i, clip := range clips {
				embeds[i] = transcript.EmbedURL(videoID, clip.Start, clip.End)
			}
			resp["video_id"] = videoID
			resp["embeds"] = embeds
			if svc != nil {
				if info, err := svc.VideoInfo(c.Request.Context(), videoID); err == nil {
					resp["video"] = info
				}
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}
