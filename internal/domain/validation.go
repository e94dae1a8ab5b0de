package domain

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/staffhq/staff-bot/pkg/util/errorutil"
)

// ErrInvalidRecord is wrapped by every store-level validation failure.
var ErrInvalidRecord = errors.New("invalid record")

var (
	discordTagPattern = regexp.MustCompile(`^.+#[0-9]{4}$`)
	snowflakePattern  = regexp.MustCompile(`^[0-9]{17,}$`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "discord_tag", discordTagPattern)
	mustRegister(v, "snowflake", snowflakePattern)
	return v
}

func mustRegister(v *validator.Validate, tag string, pattern *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// IsDiscordTag reports whether s looks like name#1234.
func IsDiscordTag(s string) bool {
	return discordTagPattern.MatchString(s)
}

// IsSnowflake reports whether s is a Discord id (17 or more digits).
func IsSnowflake(s string) bool {
	return snowflakePattern.MatchString(s)
}

// Validate checks record against its validate tags. Failures wrap
// ErrInvalidRecord and carry the offending fields as details.
func Validate(record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	details := make(map[string]any, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = fe.Tag()
	}
	return apperrors.WrapValidation(ErrInvalidRecord, fmt.Sprintf("invalid %s", recordName(record)), details)
}

func recordName(record any) string {
	t := reflect.TypeOf(record)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
