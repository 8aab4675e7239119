package argbind_test

import (
	"fmt"
	"log"

	"github.com/mkraus/argbind"
)

type serverConfig struct {
	Addr    string `flag:"addr"`
	Port    uint16 `flag:"port"`
	Verbose bool   `flag:"verbose"`
}

func (serverConfig) Default() serverConfig {
	return serverConfig{Addr: "127.0.0.1", Port: 8080}
}

// ExampleParseArgs demonstrates binding an explicit argument vector. The first
// element is the invocation name and is skipped.
func ExampleParseArgs() {
	cfg, err := argbind.ParseArgs[serverConfig]([]string{"server", "--addr=0.0.0.0", "--port", "9000"})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s:%d verbose=%v\n", cfg.Addr, cfg.Port, cfg.Verbose)
	// Output: 0.0.0.0:9000 verbose=false
}
