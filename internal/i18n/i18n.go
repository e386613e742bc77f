package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// 支持的语言
const (
	LocaleES = "es-ES"
	LocaleEN = "en-US"
	LocaleZH = "zh-CN"
)

// DefaultLocale 默认语言
const DefaultLocale = LocaleES

var (
	supported = []language.Tag{
		language.MustParse(LocaleES),
		language.MustParse(LocaleEN),
		language.MustParse(LocaleZH),
	}
	matcher = language.NewMatcher(supported)
)

// T 按语言取文案，缺失时回退默认语言，再回退 key 本身
func T(locale, key string) string {
	if msg, ok := messages[Normalize(locale)][key]; ok {
		return msg
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf 格式化文案
func Sprintf(locale, key string, args ...interface{}) string {
	format := T(locale, key)
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// Normalize 将任意语言标签归一到支持的语言
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	return supported[index].String()
}

// ResolveLocale 按 X-Locale、Accept-Language 顺序解析请求语言
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if locale := strings.TrimSpace(c.GetHeader("X-Locale")); locale != "" {
		return Normalize(locale)
	}
	return Normalize(c.GetHeader("Accept-Language"))
}
