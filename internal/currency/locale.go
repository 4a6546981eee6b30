package currency

import (
	"fmt"

	"github.com/bnema/ada-wallet-cli/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type separators struct {
	group   string
	decimal string
}

// The first entry is the matcher fallback.
var supportedLocales = []struct {
	tag  language.Tag
	seps separators
}{
	{tag: language.English, seps: separators{group: ",", decimal: "."}},
	{tag: language.German, seps: separators{group: ".", decimal: ","}},
	{tag: language.French, seps: separators{group: " ", decimal: ","}},
	{tag: language.Spanish, seps: separators{group: ".", decimal: ","}},
	{tag: language.Japanese, seps: separators{group: ",", decimal: "."}},
}

var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, 0, len(supportedLocales))
	for _, l := range supportedLocales {
		tags = append(tags, l.tag)
	}
	return language.NewMatcher(tags)
}()

func resolveLocale(raw string) (language.Tag, separators, error) {
	if raw == "" {
		raw = domain.DefaultLocale
	}

	requested, err := language.Parse(raw)
	if err != nil {
		return language.Und, separators{}, fmt.Errorf("%w: locale %q: %v", domain.ErrInvalidCurrency, raw, err)
	}

	_, index, _ := localeMatcher.Match(requested)
	return supportedLocales[index].tag, supportedLocales[index].seps, nil
}

// Printer returns a message printer for the converter's locale, used for
// plain counts that sit next to formatted amounts.
func (c *Converter) Printer() *message.Printer {
	return message.NewPrinter(c.tag)
}
