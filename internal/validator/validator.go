package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// NotBlank 自定义校验函数：要求字段去除空白后非空
// `binding:"required"` alone accepts all-whitespace strings, which is
// not good enough for titles and comment text.
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
