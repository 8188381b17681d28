package conf_test

import (
	"context"
	"fmt"
	"os"

	"github.com/ardnew/rbconf/conf"
)

func ExampleExpand() {
	t := conf.TableOf(
		"prefix", "/usr",
		"bindir", "$(prefix)/bin",
		"srcs", "main.c util.c",
	)

	fmt.Println(conf.Expand("$(bindir)/ruby", t))
	fmt.Println(conf.Expand("${srcs:.c=.o}", t))
	fmt.Println(conf.Expand("$(NOPE) costs $$5", t))

	v, _ := t.Get("bindir")
	fmt.Println(v)
	// Output:
	// /usr/bin/ruby
	// main.o util.o
	// $(NOPE) costs $5
	// /usr/bin
}

func ExampleNew() {
	c, err := conf.New(context.Background(),
		conf.WithLibDir("/opt/ruby/lib/ruby/2.3.0/universal-darwin17"),
		conf.WithEnv(map[string]string{"SDKROOT": ""}),
	)
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(c.Executable())
	fmt.Println(c.GemHome())

	v, _ := c.Get("rubyarchhdrdir")
	fmt.Println(v)
	// Output:
	// /opt/ruby/bin/ruby
	// /opt/ruby/lib/ruby/gems/2.3.0
	// /opt/ruby/include/ruby-2.3.0/universal-darwin17
}

func ExampleConfig_Write() {
	c, _ := conf.FromTable(context.Background(), conf.TableOf(
		"CC", "xcrun clang",
		"CPP", "$(CC) -E",
	))

	_ = c.Write(context.Background(), os.Stdout, conf.Output{Format: conf.FormatMake})
	// Output:
	// CC = xcrun clang
	// CPP = xcrun clang -E
}
