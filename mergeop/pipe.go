package mergeop

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/signadot/vtree/debug"
	"github.com/signadot/vtree/format"
	"github.com/signadot/vtree/ir"
)

var pipeSym = register(&pipeSymbol{name: pipeName})

// Pipe runs the command line given as its argument with the document on
// standard input and replaces the document with the output. A String
// document is passed as plain text and replaced by the plain output; any
// other document is passed and read back as JSON.
func Pipe() Symbol { return pipeSym }

const pipeName name = "pipe"

type pipeSymbol struct {
	name
}

func (s pipeSymbol) Instance(arg ir.Value) (Op, error) {
	if arg.Type != ir.StringType {
		return nil, fmt.Errorf("%s op takes a command line, got %s", s, ir.Describe(arg))
	}
	fields := strings.Fields(arg.Str)
	if len(fields) == 0 {
		return nil, fmt.Errorf("no command to pipe to")
	}
	return &pipeOp{argv: fields, op: op{name: s.name, arg: arg}}, nil
}

type pipeOp struct {
	op
	argv []string
}

func (n pipeOp) Patch(doc ir.Value) (ir.Value, error) {
	if debug.Merge() {
		debug.Log("pipe", "command", n.arg.Str)
	}
	cmd := exec.Command(n.argv[0], n.argv[1:]...)
	buf := bytes.NewBuffer(nil)
	if doc.Type == ir.StringType {
		buf.WriteString(doc.Str)
	} else {
		d, err := format.WriteJSON(doc)
		if err != nil {
			return ir.Value{}, err
		}
		buf.Write(d)
	}
	cmd.Stdin = buf
	oBuf := bytes.NewBuffer(nil)
	cmd.Stdout = oBuf
	eBuf := bytes.NewBuffer(nil)
	cmd.Stderr = eBuf
	if err := cmd.Run(); err != nil {
		return ir.Value{}, fmt.Errorf("error running %s: %w (%q)", cmd, err, eBuf.String())
	}
	if doc.Type == ir.StringType {
		return ir.FromString(oBuf.String()), nil
	}
	return format.ReadJSON(oBuf.Bytes(), format.Origin(n.arg.Str))
}
