package main

import (
	"fmt"
	"net"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

type config struct {
	Interface string `toml:"interface"`
	Port      int    `toml:"port"`
	Dir       string `toml:"dir"`
}

func defaultConfig() config {
	return config{
		Interface: "127.0.0.1",
		Port:      8080,
	}
}

func (c config) addr() string {
	return net.JoinHostPort(c.Interface, strconv.Itoa(c.Port))
}

// mergeFile applies values from a TOML file for every setting the command
// line did not override. Unknown keys are rejected.
func (c *config) mergeFile(path string, flags *pflag.FlagSet) error {
	var f config
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if md.IsDefined("interface") && !flags.Changed("interface") {
		c.Interface = f.Interface
	}
	if md.IsDefined("port") && !flags.Changed("port") {
		c.Port = f.Port
	}
	if md.IsDefined("dir") && !flags.Changed("dir") {
		c.Dir = f.Dir
	}
	return nil
}
