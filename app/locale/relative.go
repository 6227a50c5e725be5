package locale

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// Magnitudes follow the date-fns distance buckets. Singular buckets are
// widened so integer division never yields "1 minutos".
var ptBRMagnitudes = []humanize.RelTimeMagnitude{
	{D: 30 * time.Second, Format: "%s menos de um minuto", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "%s 1 minuto", DivBy: time.Second},
	{D: 45 * time.Minute, Format: "%s %d minutos", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "%s cerca de 1 hora", DivBy: time.Second},
	{D: humanize.Day, Format: "%s cerca de %d horas", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "%s 1 dia", DivBy: time.Second},
	{D: humanize.Month, Format: "%s %d dias", DivBy: humanize.Day},
	{D: 45 * humanize.Day, Format: "%s cerca de 1 mês", DivBy: time.Second},
	{D: 2 * humanize.Month, Format: "%s cerca de 2 meses", DivBy: time.Second},
	{D: humanize.Year, Format: "%s %d meses", DivBy: humanize.Month},
	{D: 18 * humanize.Month, Format: "%s cerca de 1 ano", DivBy: time.Second},
	{D: 2 * humanize.Year, Format: "%s mais de 1 ano", DivBy: time.Second},
	{D: humanize.LongTime, Format: "%s %d anos", DivBy: humanize.Year},
	{D: math.MaxInt64, Format: "%s muito tempo", DivBy: time.Second},
}

var enMagnitudes = []humanize.RelTimeMagnitude{
	{D: 30 * time.Second, Format: "less than a minute %s", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "1 minute %s", DivBy: time.Second},
	{D: 45 * time.Minute, Format: "%d minutes %s", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "about 1 hour %s", DivBy: time.Second},
	{D: humanize.Day, Format: "about %d hours %s", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "1 day %s", DivBy: time.Second},
	{D: humanize.Month, Format: "%d days %s", DivBy: humanize.Day},
	{D: 45 * humanize.Day, Format: "about 1 month %s", DivBy: time.Second},
	{D: 2 * humanize.Month, Format: "about 2 months %s", DivBy: time.Second},
	{D: humanize.Year, Format: "%d months %s", DivBy: humanize.Month},
	{D: 18 * humanize.Month, Format: "about 1 year %s", DivBy: time.Second},
	{D: 2 * humanize.Year, Format: "over 1 year %s", DivBy: time.Second},
	{D: humanize.LongTime, Format: "%d years %s", DivBy: humanize.Year},
	{D: math.MaxInt64, Format: "a long while %s", DivBy: time.Second},
}
