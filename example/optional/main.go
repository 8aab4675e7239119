/*
This program shows optional (pointer) fields. The --greeting flag has a
non-zero default supplied by the factory, while --name distinguishes between
"never passed" (nil) and an explicitly supplied value.
*/

package main

import (
	"fmt"
	"log"

	"github.com/mkraus/argbind"
)

type params struct {
	Greeting string  `flag:"greeting"`
	Name     *string `flag:"name"`
	Shout    bool    `flag:"shout"`
}

func (params) Default() params {
	return params{Greeting: "Hello"}
}

func main() {
	// Flag parsing and validation
	p, err := argbind.Parse[params]()
	if err != nil {
		log.Fatalf("error while parsing the cli parameters: %s", err.Error())
	}

	// The program "logic"
	who := "whoever you are"
	if p.Name != nil {
		who = *p.Name
	}
	msg := fmt.Sprintf("%s, %s", p.Greeting, who)
	if p.Shout {
		msg += "!!!"
	}
	fmt.Println(msg)
}
