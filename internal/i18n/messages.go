package i18n

var messages = map[string]map[string]string{
	LocaleES: {
		"msg.success":                    "Operación completada",
		"msg.logged_out":                 "Sesión cerrada",
		"msg.password_changed":           "Contraseña actualizada",
		"msg.password_reset_requested":   "Si el correo existe, recibirás un enlace para restablecer la contraseña",
		"msg.password_reset_done":        "Contraseña restablecida, ya puedes iniciar sesión",
		"msg.subscribed":                 "Suscripción confirmada",
		"msg.already_subscribed":         "Ya estás suscrito",
		"msg.unsubscribed":               "Te has dado de baja",
		"msg.restored":                   "Elemento restaurado",
		"msg.deleted_permanently":        "Elemento eliminado definitivamente",
		"msg.moved_to_trash":             "Elemento movido a la papelera",
		"msg.cleanup_queued":             "Limpieza programada",
		"error.bad_request":              "Solicitud no válida",
		"error.not_found":                "Recurso no encontrado",
		"error.conflict":                 "El recurso ya existe",
		"error.validation":               "Datos no válidos",
		"error.unauthorized":             "No autorizado",
		"error.forbidden":                "No tienes permiso para esta acción",
		"error.internal":                 "Error interno del servidor",
		"error.rate_limited":             "Demasiados intentos, inténtalo de nuevo en %d segundos",
		"error.rate_limit_unavailable":   "Servicio temporalmente no disponible",
		"error.token_invalid":            "Sesión no válida o caducada",
		"error.token_revoked":            "La sesión ha sido revocada, inicia sesión de nuevo",
		"error.auth_header_missing":      "Falta la sesión",
		"error.auth_header_invalid":      "Cabecera de autorización no válida",
		"error.jwt_secret_missing":       "Clave de sesión no configurada",
		"error.invalid_credentials":      "Correo o contraseña incorrectos",
		"error.invalid_password":         "La contraseña actual no es correcta",
		"error.password_min_length":      "La contraseña debe tener al menos %d caracteres",
		"error.password_require_upper":   "La contraseña debe incluir una letra mayúscula",
		"error.password_require_lower":   "La contraseña debe incluir una letra minúscula",
		"error.password_require_number":  "La contraseña debe incluir un número",
		"error.password_require_special": "La contraseña debe incluir un carácter especial",
		"error.email_exists":             "Ya existe una cuenta con ese correo",
		"error.invalid_email":            "Correo electrónico no válido",
		"error.invalid_role":             "Rol no válido",
		"error.cannot_delete_self":       "No puedes eliminar tu propia cuenta",
		"error.cannot_change_own_role":   "No puedes cambiar tu propio rol",
		"error.superadmin_required":      "Solo un superadministrador puede hacer esto",
		"error.reset_token_invalid":      "Enlace de restablecimiento no válido",
		"error.reset_token_used":         "El enlace de restablecimiento ya se ha utilizado",
		"error.reset_token_expired":      "El enlace de restablecimiento ha caducado",
		"error.captcha_required":         "Introduce el código de verificación",
		"error.captcha_invalid":          "Código de verificación incorrecto",
		"error.email_disabled":           "El envío de correo no está habilitado",
		"error.slug_exists":              "Ya existe un elemento con ese slug",
		"error.title_required":           "El título es obligatorio",
		"error.name_required":            "El nombre es obligatorio",
		"error.invalid_post_status":      "Estado de artículo no válido",
		"error.author_not_found":         "El autor no existe",
		"error.project_not_found":        "El proyecto no existe",
		"error.invalid_upload":           "Archivo no válido",
		"error.upload_too_large":         "El archivo supera el tamaño permitido",
		"error.invalid_entity_kind":      "Tipo de elemento no válido",
		"error.team_member_in_use":       "No se puede eliminar: es autor de %d artículos activos",
		"error.cleanup_partial":          "La limpieza terminó con errores",
		"email.password_reset.subject":   "Restablecer contraseña - Zephyra",
		"email.password_reset.body":      "Hola %s,\n\nHemos recibido una solicitud para restablecer tu contraseña. Abre este enlace para elegir una nueva:\n\n%s\n\nSi no lo solicitaste, ignora este correo.\n\nEquipo Zephyra",
	},
	LocaleEN: {
		"msg.success":                    "Done",
		"msg.logged_out":                 "Logged out",
		"msg.password_changed":           "Password updated",
		"msg.password_reset_requested":   "If the email exists, you will receive a reset link",
		"msg.password_reset_done":        "Password reset, you can sign in now",
		"msg.subscribed":                 "Subscription confirmed",
		"msg.already_subscribed":         "You are already subscribed",
		"msg.unsubscribed":               "You have been unsubscribed",
		"msg.restored":                   "Item restored",
		"msg.deleted_permanently":        "Item permanently deleted",
		"msg.moved_to_trash":             "Item moved to trash",
		"msg.cleanup_queued":             "Cleanup queued",
		"error.bad_request":              "Invalid request",
		"error.not_found":                "Resource not found",
		"error.conflict":                 "Resource already exists",
		"error.validation":               "Invalid data",
		"error.unauthorized":             "Unauthorized",
		"error.forbidden":                "You are not allowed to do this",
		"error.internal":                 "Internal server error",
		"error.rate_limited":             "Too many attempts, try again in %d seconds",
		"error.rate_limit_unavailable":   "Service temporarily unavailable",
		"error.token_invalid":            "Invalid or expired session",
		"error.token_revoked":            "Session revoked, please sign in again",
		"error.auth_header_missing":      "Missing session",
		"error.auth_header_invalid":      "Invalid authorization header",
		"error.jwt_secret_missing":       "Session secret is not configured",
		"error.invalid_credentials":      "Wrong email or password",
		"error.invalid_password":         "Current password is incorrect",
		"error.password_min_length":      "Password must be at least %d characters",
		"error.password_require_upper":   "Password must contain an uppercase letter",
		"error.password_require_lower":   "Password must contain a lowercase letter",
		"error.password_require_number":  "Password must contain a number",
		"error.password_require_special": "Password must contain a special character",
		"error.email_exists":             "An account with this email already exists",
		"error.invalid_email":            "Invalid email address",
		"error.invalid_role":             "Invalid role",
		"error.cannot_delete_self":       "You cannot delete your own account",
		"error.cannot_change_own_role":   "You cannot change your own role",
		"error.superadmin_required":      "Only a superadmin can do this",
		"error.reset_token_invalid":      "Invalid reset link",
		"error.reset_token_used":         "This reset link has already been used",
		"error.reset_token_expired":      "This reset link has expired",
		"error.captcha_required":         "Please enter the verification code",
		"error.captcha_invalid":          "Wrong verification code",
		"error.email_disabled":           "Email delivery is disabled",
		"error.slug_exists":              "An item with this slug already exists",
		"error.title_required":           "Title is required",
		"error.name_required":            "Name is required",
		"error.invalid_post_status":      "Invalid post status",
		"error.author_not_found":         "Author does not exist",
		"error.project_not_found":        "Project does not exist",
		"error.invalid_upload":           "Invalid file",
		"error.upload_too_large":         "File is too large",
		"error.invalid_entity_kind":      "Invalid item type",
		"error.team_member_in_use":       "Cannot delete: author of %d active posts",
		"error.cleanup_partial":          "Cleanup finished with errors",
		"email.password_reset.subject":   "Reset your password - Zephyra",
		"email.password_reset.body":      "Hi %s,\n\nWe received a request to reset your password. Open this link to choose a new one:\n\n%s\n\nIf you did not request it, ignore this email.\n\nThe Zephyra team",
	},
	LocaleZH: {
		"msg.success":                    "操作成功",
		"msg.logged_out":                 "已退出登录",
		"msg.password_changed":           "密码已更新",
		"msg.password_reset_requested":   "如果邮箱存在，你将收到重置链接",
		"msg.password_reset_done":        "密码已重置，请重新登录",
		"msg.subscribed":                 "订阅成功",
		"msg.already_subscribed":         "你已订阅",
		"msg.unsubscribed":               "已取消订阅",
		"msg.restored":                   "已恢复",
		"msg.deleted_permanently":        "已永久删除",
		"msg.moved_to_trash":             "已移入回收站",
		"msg.cleanup_queued":             "清理任务已提交",
		"error.bad_request":              "请求参数错误",
		"error.not_found":                "资源不存在",
		"error.conflict":                 "资源已存在",
		"error.validation":               "数据校验失败",
		"error.unauthorized":             "未授权",
		"error.forbidden":                "无权执行此操作",
		"error.internal":                 "服务器内部错误",
		"error.rate_limited":             "尝试次数过多，请 %d 秒后再试",
		"error.rate_limit_unavailable":   "服务暂不可用",
		"error.token_invalid":            "会话无效或已过期",
		"error.token_revoked":            "会话已失效，请重新登录",
		"error.auth_header_missing":      "缺少会话",
		"error.auth_header_invalid":      "认证头格式错误",
		"error.jwt_secret_missing":       "未配置会话密钥",
		"error.invalid_credentials":      "邮箱或密码错误",
		"error.invalid_password":         "当前密码错误",
		"error.password_min_length":      "密码长度至少 %d 位",
		"error.password_require_upper":   "密码需包含大写字母",
		"error.password_require_lower":   "密码需包含小写字母",
		"error.password_require_number":  "密码需包含数字",
		"error.password_require_special": "密码需包含特殊字符",
		"error.email_exists":             "该邮箱已被使用",
		"error.invalid_email":            "邮箱格式错误",
		"error.invalid_role":             "角色无效",
		"error.cannot_delete_self":       "不能删除自己的账号",
		"error.cannot_change_own_role":   "不能修改自己的角色",
		"error.superadmin_required":      "仅超级管理员可操作",
		"error.reset_token_invalid":      "重置链接无效",
		"error.reset_token_used":         "重置链接已使用",
		"error.reset_token_expired":      "重置链接已过期",
		"error.captcha_required":         "请输入验证码",
		"error.captcha_invalid":          "验证码错误",
		"error.email_disabled":           "邮件服务未启用",
		"error.slug_exists":              "Slug 已存在",
		"error.title_required":           "标题不能为空",
		"error.name_required":            "名称不能为空",
		"error.invalid_post_status":      "文章状态无效",
		"error.author_not_found":         "作者不存在",
		"error.project_not_found":        "项目不存在",
		"error.invalid_upload":           "文件无效",
		"error.upload_too_large":         "文件过大",
		"error.invalid_entity_kind":      "类型无效",
		"error.team_member_in_use":       "无法删除：仍是 %d 篇文章的作者",
		"error.cleanup_partial":          "清理完成但存在失败记录",
		"email.password_reset.subject":   "重置密码 - Zephyra",
		"email.password_reset.body":      "%s 你好，\n\n我们收到了重置密码的请求，请打开以下链接设置新密码：\n\n%s\n\n如非本人操作，请忽略此邮件。\n\nZephyra 团队",
	},
}
