// interp1d reads sample and query columns from whitespace-separated text
// tables and prints the interpolated value at every query point.
//
//	interp1d -config interp.cfg [-v 1] [-logtostderr]
package main

import (
	"bufio"
	"context"
	"flag"
	"os"

	"github.com/golang/glog"
)

var configPath = flag.String("config", "", "path to the gcfg configuration file")

func main() {
	flag.Parse()
	defer glog.Flush()

	if *configPath == "" {
		glog.Exitf("-config is required")
	}
	cfg, err := ReadConfigFile(*configPath)
	if err != nil {
		glog.Exitf("reading %s: %v", *configPath, err)
	}
	glog.V(1).Infof("config: %+v", cfg)

	in, err := LoadInput(cfg)
	if err != nil {
		glog.Exitf("loading input: %v", err)
	}

	w := bufio.NewWriter(os.Stdout)
	if err := Run(context.Background(), cfg, in, w); err != nil {
		glog.Exitf("%v", err)
	}
	if err := w.Flush(); err != nil {
		glog.Exitf("writing output: %v", err)
	}
}
