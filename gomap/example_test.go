package gomap_test

import (
	"fmt"

	"github.com/signadot/vtree/gomap"
	"github.com/signadot/vtree/ir"
)

type Server struct {
	Host  string   `vt:"host"`
	Ports []uint16 `vt:"ports,omitempty"`
	Debug bool     `vt:"debug"`
}

func ExampleToValue() {
	v, err := gomap.ToValue(Server{Host: "localhost", Ports: []uint16{80, 443}})
	if err != nil {
		panic(err)
	}
	port, _, _ := ir.Get[int](v, "/ports[-1]")
	fmt.Println(v.Keys(), port)
	// Output:
	// [debug host ports] 443
}

func ExampleFromValue() {
	var root ir.Value
	root.Set("/host", ir.FromString("example.com"))
	root.Set("/ports[0]", ir.FromString("8080"))
	root.Set("/debug", ir.FromString("on"))

	var s Server
	if err := gomap.FromValue(root, &s); err != nil {
		panic(err)
	}
	fmt.Printf("%+v\n", s)
	// Output:
	// {Host:example.com Ports:[8080] Debug:true}
}
