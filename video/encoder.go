package video

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"reelsmith/config"
	"reelsmith/render"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// WriteFramePNG writes one frame of a sequence under dir, named so ffmpeg's
// image2 demuxer picks the files up in order.
func WriteFramePNG(dir string, index int, img *image.NRGBA) error {
	path := filepath.Join(dir, fmt.Sprintf("frame_%06d.png", index))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create frame file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode frame %d: %w", index, err)
	}
	return nil
}

// WritePNG writes a single standalone image, for poster renders.
func WritePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

// EncodeMP4 turns a frame_%06d.png sequence in frameDir into an H.264 MP4.
func EncodeMP4(frameDir string, fps int, outputPath string) error {
	pattern := filepath.ToSlash(filepath.Join(frameDir, "frame_%06d.png"))

	err := ffmpeg.Input(pattern, ffmpeg.KwArgs{
		"framerate": fps,
	}).Output(outputPath, ffmpeg.KwArgs{
		"c:v":      config.VideoCodec,
		"pix_fmt":  config.PixelFormat,
		"preset":   config.VideoPreset,
		"crf":      config.VideoCRF,
		"movflags": "+faststart",
	}).OverWriteOutput().Run()

	if err != nil {
		return fmt.Errorf("ffmpeg failed: %w", err)
	}
	return nil
}

// EncodeSequence renders every frame of gen into a temp directory and encodes
// them to outputPath. onFrame, when non-nil, is called with each frame index
// as it is written so callers can surface progress.
func EncodeSequence(gen *render.Generator, fps int, outputPath string, onFrame func(i, total int)) error {
	frameDir, err := os.MkdirTemp("", "reelsmith-frames-")
	if err != nil {
		return fmt.Errorf("failed to create frame dir: %w", err)
	}
	defer os.RemoveAll(frameDir)

	total := gen.FrameCount()
	for i := 0; i < total; i++ {
		img, err := gen.Frame(i)
		if err != nil {
			return fmt.Errorf("failed to render frame %d: %w", i, err)
		}
		if err := WriteFramePNG(frameDir, i, img); err != nil {
			return err
		}
		if onFrame != nil {
			onFrame(i, total)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	return EncodeMP4(frameDir, fps, outputPath)
}
