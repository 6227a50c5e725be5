package models

import (
	"errors"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	pt_BR_translations "github.com/go-playground/validator/v10/translations/pt_BR"
)

var (
	validate = validator.New(validator.WithRequiredStructEnabled())
	uni      *ut.UniversalTranslator
)

func init() {
	enLocale := en.New()
	uni = ut.New(enLocale, enLocale, pt_BR.New())

	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		panic("register en validation translations: " + err.Error())
	}
	trans, _ = uni.GetTranslator("pt_BR")
	if err := pt_BR_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		panic("register pt_BR validation translations: " + err.Error())
	}
}

// ValidationMessages turns a validation error into human readable messages
// in the given locale. Errors that did not come from the validator are
// returned as a single message.
func ValidationMessages(err error, locale string) []string {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	trans, _ := uni.GetTranslator(locale)
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fe.Translate(trans))
	}
	return messages
}

// IsValidationError reports whether err was produced by a Validate method.
func IsValidationError(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs) || errors.Is(err, ErrZeroTime)
}

// ErrZeroTime is returned when a required timestamp was never set.
var ErrZeroTime = errors.New("timestamp cannot be zero")

// ValidationSummary joins ValidationMessages into one line.
func ValidationSummary(err error, locale string) string {
	return strings.Join(ValidationMessages(err, locale), "; ")
}
