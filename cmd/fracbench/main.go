// fracbench compares fixed-width and arbitrary-precision fraction arithmetic.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/golang/glog"

	"github.com/govalues/fraction/cmd/fracbench/cli"
)

func main() {
	// glog complains about logging before flag.Parse; cobra parses the
	// real arguments.
	args := os.Args[:]
	os.Args = os.Args[:1]
	flag.Parse()
	os.Args = args

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.Main().ExecuteContext(ctx)
	stop()
	if err != nil {
		glog.Error(err)
		glog.Flush()
		os.Exit(1)
	}
	glog.Flush()
}
