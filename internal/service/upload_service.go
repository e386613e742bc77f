package service

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/zephyra-admin/internal/config"
	"github.com/zephyra-admin/internal/constants"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
)

const defaultUploadRoot = "uploads"

var uploadScenes = map[string]struct{}{
	constants.UploadSceneBlog:     {},
	constants.UploadSceneTeam:     {},
	constants.UploadSceneProject:  {},
	constants.UploadSceneClient:   {},
	constants.UploadSceneAlliance: {},
	constants.UploadSceneAvatar:   {},
	constants.UploadSceneEditor:   {},
}

// UploadService 图片上传服务，记录中只保存返回的相对 URL
type UploadService struct {
	cfg  config.UploadConfig
	root string
}

// NewUploadService 创建上传服务，root 为空时写入 ./uploads
func NewUploadService(cfg config.UploadConfig, root string) *UploadService {
	if strings.TrimSpace(root) == "" {
		root = defaultUploadRoot
	}
	return &UploadService{cfg: cfg, root: root}
}

// Root 上传根目录
func (s *UploadService) Root() string {
	return s.root
}

// SaveFile 校验并保存图片，返回 /uploads/<scene>/<yyyy>/<mm>/<uuid>.<ext>
func (s *UploadService) SaveFile(file *multipart.FileHeader, scene string) (string, error) {
	scene = strings.ToLower(strings.TrimSpace(scene))
	if _, ok := uploadScenes[scene]; !ok {
		return "", fmt.Errorf("%w: scene %q", ErrInvalidUpload, scene)
	}
	if s.cfg.MaxSize > 0 && file.Size > s.cfg.MaxSize {
		return "", ErrUploadTooLarge
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if len(s.cfg.AllowedExtensions) > 0 && !extensionAllowed(ext, s.cfg.AllowedExtensions) {
		return "", fmt.Errorf("%w: extension %q", ErrInvalidUpload, ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := s.inspect(src); err != nil {
		return "", err
	}

	now := nowUTC()
	rel := path.Join(scene, now.Format("2006"), now.Format("01"), uuid.NewString()+ext)
	target := filepath.Join(s.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", err
	}
	dst, err := os.Create(target)
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/uploads/" + rel, nil
}

// inspect 嗅探 MIME 并校验图片尺寸，结束后读指针回到开头
func (s *UploadService) inspect(src multipart.File) error {
	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	contentType := http.DetectContentType(head[:n])
	if len(s.cfg.AllowedTypes) > 0 && !containsFold(s.cfg.AllowedTypes, contentType) {
		return fmt.Errorf("%w: type %s", ErrInvalidUpload, contentType)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return fmt.Errorf("%w: not an image", ErrInvalidUpload)
	}

	width, height, err := imageSize(src, contentType)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUpload, err)
	}
	if (s.cfg.MaxWidth > 0 && width > s.cfg.MaxWidth) || (s.cfg.MaxHeight > 0 && height > s.cfg.MaxHeight) {
		return fmt.Errorf("%w: %dx%d", ErrUploadTooLarge, width, height)
	}
	_, err = src.Seek(0, io.SeekStart)
	return err
}

func extensionAllowed(ext string, allowed []string) bool {
	if ext == "" {
		return false
	}
	for _, item := range allowed {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" && !strings.HasPrefix(item, ".") {
			item = "." + item
		}
		if item == ext {
			return true
		}
	}
	return false
}

func containsFold(list []string, value string) bool {
	for _, item := range list {
		if strings.EqualFold(strings.TrimSpace(item), value) {
			return true
		}
	}
	return false
}

func imageSize(src io.ReadSeeker, contentType string) (int, int, error) {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return 0, 0, err
	}
	if strings.EqualFold(contentType, "image/webp") {
		return webpSize(src)
	}
	cfg, _, err := image.DecodeConfig(src)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

// webpSize 读取 RIFF 容器中第一个图像块的尺寸
func webpSize(src io.Reader) (int, int, error) {
	header := make([]byte, 12)
	if _, err := io.ReadFull(src, header); err != nil {
		return 0, 0, err
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WEBP" {
		return 0, 0, errors.New("invalid webp header")
	}
	for {
		chunk := make([]byte, 8)
		if _, err := io.ReadFull(src, chunk); err != nil {
			return 0, 0, err
		}
		size := int(binary.LittleEndian.Uint32(chunk[4:8]))
		data := make([]byte, size+size%2)
		if _, err := io.ReadFull(src, data); err != nil {
			return 0, 0, err
		}
		switch string(chunk[0:4]) {
		case "VP8X":
			if size < 10 {
				return 0, 0, errors.New("short VP8X chunk")
			}
			w := 1 + (int(data[4]) | int(data[5])<<8 | int(data[6])<<16)
			h := 1 + (int(data[7]) | int(data[8])<<8 | int(data[9])<<16)
			return w, h, nil
		case "VP8 ":
			if size < 10 {
				return 0, 0, errors.New("short VP8 chunk")
			}
			return int(binary.LittleEndian.Uint16(data[6:8]) & 0x3FFF), int(binary.LittleEndian.Uint16(data[8:10]) & 0x3FFF), nil
		case "VP8L":
			if size < 5 || data[0] != 0x2f {
				return 0, 0, errors.New("invalid VP8L chunk")
			}
			bits := binary.LittleEndian.Uint32(data[1:5])
			return int(bits&0x3FFF) + 1, int((bits>>14)&0x3FFF) + 1, nil
		}
	}
}
