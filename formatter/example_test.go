package formatter_test

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/entrusc/log-formatters/core"
	"github.com/entrusc/log-formatters/formatter"
)

func ExampleNewSingleLinePatternFormatter() {
	f := formatter.NewSingleLinePatternFormatter("%H:%M:%S", language.English)

	r := &core.Record{
		Time:         time.Date(2016, 5, 4, 8, 17, 12, 0, time.UTC),
		Level:        core.InfoLevel,
		SourceClass:  "de.darkblue.core.SomeClass",
		SourceMethod: "doSth",
		Message:      "some info text",
	}

	out, _ := f.Format(r)
	// Timestamp, abbreviated origin, level symbol, message.
	fmt.Println(strings.HasPrefix(string(out), "08:17:12 d.d.c.SomeClass.doSth()"))
	fmt.Println(strings.Contains(string(out), ":: some info text"))
	// Output:
	// true
	// true
}

func ExampleSingleLineFormatter_Format_parameters() {
	f := formatter.NewSingleLinePatternFormatter("%H:%M:%S", language.English)

	r := &core.Record{
		Time:         time.Date(2016, 5, 4, 8, 17, 12, 0, time.UTC),
		Level:        core.WarningLevel,
		SourceClass:  "com.example.Store",
		SourceMethod: "open",
		Message:      "retrying {0} after {1} failures",
		Parameters:   []any{"connect", 3},
	}

	out, _ := f.Format(r)
	fmt.Println(strings.Contains(string(out), "!? retrying connect after 3 failures"))
	// Output:
	// true
}
