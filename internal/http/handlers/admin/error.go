package admin

import (
	handlershared "github.com/zephyra-admin/internal/http/handlers/shared"
	"github.com/zephyra-admin/internal/i18n"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondServiceError(c *gin.Context, err error) {
	handlershared.RespondServiceError(c, err)
}

func successMsg(c *gin.Context, key string) string {
	return i18n.T(i18n.ResolveLocale(c), key)
}
