package public

import (
	"github.com/zephyra-admin/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetCaptchaConfig 登录页验证码开关
func (h *Handler) GetCaptchaConfig(c *gin.Context) {
	response.Success(c, h.CaptchaService.PublicSetting())
}

// GetImageCaptcha 获取图片验证码挑战
func (h *Handler) GetImageCaptcha(c *gin.Context) {
	if !h.CaptchaService.Enabled() {
		response.Success(c, gin.H{"enabled": false})
		return
	}

	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, gin.H{
		"enabled":      true,
		"captcha_id":   challenge.CaptchaID,
		"image_base64": challenge.ImageBase64,
	})
}
