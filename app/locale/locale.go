// Package locale formats instants and UI labels for a fixed locale.
package locale

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/pt_BR"
)

// Default is the locale used when none is configured.
const Default = "pt_BR"

// Locale formats dates and looks up labels for one language.
type Locale struct {
	tag        string
	months     locales.Translator
	absolute   func(t time.Time, month string) string
	past       string
	future     string
	magnitudes []humanize.RelTimeMagnitude
	labels     map[string]string
}

// New returns the locale registered under tag.
func New(tag string) (*Locale, error) {
	switch tag {
	case "pt_BR", "pt-BR":
		return &Locale{
			tag:    "pt_BR",
			months: pt_BR.New(),
			absolute: func(t time.Time, month string) string {
				return fmt.Sprintf("%d de %s as %02d:%02d h", t.Day(), month, t.Hour(), t.Minute())
			},
			past:       "há",
			future:     "em",
			magnitudes: ptBRMagnitudes,
			labels:     ptBRLabels,
		}, nil
	case "en", "en_US", "en-US":
		return &Locale{
			tag:    "en",
			months: en.New(),
			absolute: func(t time.Time, month string) string {
				return fmt.Sprintf("%s %d at %02d:%02d", month, t.Day(), t.Hour(), t.Minute())
			},
			past:       "ago",
			future:     "from now",
			magnitudes: enMagnitudes,
			labels:     enLabels,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported locale %q", tag)
	}
}

// MustNew is like New but panics on an unknown tag.
func MustNew(tag string) *Locale {
	l, err := New(tag)
	if err != nil {
		panic(err)
	}
	return l
}

// Tag returns the canonical locale tag, e.g. "pt_BR".
func (l *Locale) Tag() string {
	return l.tag
}

// Absolute formats t as a day, month name and wall-clock time.
func (l *Locale) Absolute(t time.Time) string {
	return l.absolute(t, l.months.MonthWide(t.Month()))
}

// Relative describes t relative to now, e.g. "há cerca de 3 horas".
func (l *Locale) Relative(t, now time.Time) string {
	return humanize.CustomRelTime(t, now, l.past, l.future, l.magnitudes)
}

// MachineReadable formats t for a <time datetime> attribute.
func MachineReadable(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Label returns the UI string for key, or the key itself when missing.
func (l *Locale) Label(key string) string {
	if v, ok := l.labels[key]; ok {
		return v
	}
	return key
}
