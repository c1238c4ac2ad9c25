package dto

import (
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var safeStringRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("safe_id", validateSafeID)
		_ = v.RegisterValidation("redirect_target", validateRedirectTarget)
	}
}

// validateSafeID allows alphanumeric, underscore, dash, and dot.
func validateSafeID(fl validator.FieldLevel) bool {
	return safeStringRe.MatchString(fl.Field().String())
}

// validateRedirectTarget accepts an absolute http(s) URL or an in-app path.
func validateRedirectTarget(fl validator.FieldLevel) bool {
	return IsRedirectTarget(fl.Field().String())
}

// IsRedirectTarget reports whether raw is an absolute http(s) URL or a
// path starting with a single slash.
func IsRedirectTarget(raw string) bool {
	if raw == "" {
		return true // optional field; use "required" tag to enforce presence
	}
	if strings.HasPrefix(raw, "/") {
		return !strings.HasPrefix(raw, "//") && !strings.ContainsAny(raw, "\r\n")
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// TrimStrings trims surrounding whitespace from every exported string field
// (including *string) of a struct pointer. Text is stored as submitted and
// escaped by whatever renders it: JSON responses escape HTML characters and
// the CSV export quotes every cell.
func TrimStrings(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	trimFields(rv.Elem())
}

func trimFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(strings.TrimSpace(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(strings.TrimSpace(elem.String()))
			}
		}
	}
}
